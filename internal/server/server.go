package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/GGmuzem/web-calculator/internal/handlers"
	"github.com/GGmuzem/web-calculator/internal/web"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server HTTP сервер с веб-интерфейсом и JSON API
type Server struct {
	addr       string
	logger     *zap.Logger
	httpServer *http.Server
}

// New создает HTTP сервер и настраивает маршруты
func New(addr string, readHeaderTimeout time.Duration, logger *zap.Logger) (*Server, error) {
	router, err := NewRouter(logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		addr:   addr,
		logger: logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// NewRouter собирает маршруты сервиса
func NewRouter(logger *zap.Logger) (*mux.Router, error) {
	webHandler, err := web.NewWebHandler(logger)
	if err != nil {
		return nil, fmt.Errorf("error creating web handler: %w", err)
	}

	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	// API
	router.Handle("/api/v1/calculate", handlers.NewCalculateHandler(logger)).Methods(http.MethodPost)
	router.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)

	// Веб-интерфейс
	router.HandleFunc("/", webHandler.IndexHandler).Methods(http.MethodGet, http.MethodPost)
	router.PathPrefix("/static/").Handler(webHandler.ServeStaticFiles()).Methods(http.MethodGet)

	return router, nil
}

// Serve принимает соединения на уже открытом листенере.
// Возвращает nil после Shutdown.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("HTTP сервер запущен", zap.String("addr", lis.Addr().String()))
	if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// ListenAndServe открывает порт и обслуживает запросы
func (s *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.addr, err)
	}
	return s.Serve(lis)
}

// Shutdown останавливает сервер, дожидаясь завершения активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("остановка HTTP сервера")
	return s.httpServer.Shutdown(ctx)
}

// HealthHandler отвечает на проверку состояния
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(models.HealthResponse{Status: "ok"})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
