package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"go.uber.org/zap"
)

//go:embed templates static
var assets embed.FS

// FormField имя поля формы с выражением
const FormField = "display"

// Кнопки калькулятора в порядке отображения
var keys = []string{
	"7", "8", "9", "/",
	"4", "5", "6", "*",
	"1", "2", "3", "-",
	"0", ".", "+",
}

// PageData данные для шаблона страницы калькулятора
type PageData struct {
	Expression string
	Result     string
	Failed     bool
	Keys       []string
}

// WebHandler обработчик для веб-интерфейса
type WebHandler struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

// NewWebHandler создает новый обработчик для веб-интерфейса
func NewWebHandler(logger *zap.Logger) (*WebHandler, error) {
	handler := &WebHandler{
		templates: make(map[string]*template.Template),
		logger:    logger,
	}

	if err := handler.loadTemplates(); err != nil {
		return nil, err
	}

	return handler, nil
}

// loadTemplates собирает шаблон каждой страницы вместе с layout-ами
func (h *WebHandler) loadTemplates() error {
	layouts, err := fs.Glob(assets, "templates/layouts/*.html")
	if err != nil {
		return fmt.Errorf("error loading layouts: %w", err)
	}

	pages, err := fs.Glob(assets, "templates/pages/*.html")
	if err != nil {
		return fmt.Errorf("error loading pages: %w", err)
	}

	for _, page := range pages {
		files := append(append([]string{}, layouts...), page)

		name := path.Base(page)
		tmpl, err := template.ParseFS(assets, files...)
		if err != nil {
			return fmt.Errorf("error parsing template %s: %w", name, err)
		}

		h.templates[name] = tmpl
	}

	h.logger.Debug("шаблоны загружены", zap.Int("count", len(h.templates)))
	return nil
}

// ServeStaticFiles обрабатывает запросы к статическим файлам
func (h *WebHandler) ServeStaticFiles() http.Handler {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		// static встроен при компиляции, ошибки здесь быть не может
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(static)))
}

// RenderTemplate отображает шаблон
func (h *WebHandler) RenderTemplate(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := h.templates[name]
	if !ok {
		h.logger.Error("шаблон не найден", zap.String("template", name))
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		h.logger.Error("ошибка рендеринга шаблона", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// IndexHandler обработчик главной страницы.
// GET показывает пустой калькулятор, POST вычисляет выражение из поля display.
// Ответ всегда 200, ошибки вычисления видны только в тексте результата.
func (h *WebHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	data := PageData{Keys: keys}

	if r.Method == http.MethodPost {
		expression := r.PostFormValue(FormField)
		data.Expression = expression
		result, ok := calculate.Display(expression)
		data.Result = result
		data.Failed = !ok

		h.logger.Info("выражение вычислено",
			zap.String("expression", expression),
			zap.String("result", data.Result),
		)
	}

	h.RenderTemplate(w, "index.html", data)
}
