package models

import "math"

// CalculateRequest запрос на вычисление выражения
type CalculateRequest struct {
	Expression string `json:"expression"`
}

// CalculateResponse ответ с результатом вычисления.
// При ошибке вычисления заполняются только Error и Kind.
// Value пустой для inf и nan, JSON их не представляет, остаётся только Result.
type CalculateResponse struct {
	Result string   `json:"result,omitempty"`
	Value  *float64 `json:"value,omitempty"`
	Error  string   `json:"error,omitempty"`
	Kind   string   `json:"kind,omitempty"`
}

// NewResultResponse собирает успешный ответ
func NewResultResponse(result string, value float64) *CalculateResponse {
	resp := &CalculateResponse{Result: result}
	if !math.IsInf(value, 0) && !math.IsNaN(value) {
		resp.Value = &value
	}
	return resp
}

// Failed сообщает, закончилось ли вычисление ошибкой
func (r *CalculateResponse) Failed() bool {
	return r.Error != ""
}

// HealthResponse ответ health-check эндпоинта
type HealthResponse struct {
	Status string `json:"status"`
}
