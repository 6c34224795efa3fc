package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"go.uber.org/zap"
)

// CalculateHandler обрабатывает POST-запросы с арифметическими выражениями
type CalculateHandler struct {
	logger *zap.Logger
}

// NewCalculateHandler создает обработчик JSON API
func NewCalculateHandler(logger *zap.Logger) *CalculateHandler {
	return &CalculateHandler{logger: logger}
}

func (h *CalculateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Парсинг тела запроса
	var reqBody models.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		h.logger.Debug("некорректный JSON", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, models.CalculateResponse{Error: "invalid JSON"})
		return
	}

	result, err := calculate.Calculate(reqBody.Expression)
	if err != nil {
		h.handleError(w, reqBody.Expression, err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.NewResultResponse(calculate.FormatResult(result), result))
}

func (h *CalculateHandler) handleError(w http.ResponseWriter, expression string, err error) {
	var calcErr *calculate.CalcError
	if errors.As(err, &calcErr) {
		h.logger.Info("выражение не вычислено",
			zap.String("expression", expression),
			zap.Stringer("kind", calcErr.Kind),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, models.CalculateResponse{
			Error: calcErr.Message,
			Kind:  calcErr.Kind.String(),
		})
		return
	}

	h.logger.Error("ошибка вычисления", zap.String("expression", expression), zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, models.CalculateResponse{Error: "internal server error"})
}

// writeJSON кодирует тело до WriteHeader, ошибка кодирования даёт 500
func (h *CalculateHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("ошибка кодирования ответа", zap.Int("status", status), zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}
