package calculate

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrorPrefix добавляется к сообщению об ошибке при выводе пользователю
const ErrorPrefix = "Error: "

// Calculate вычисляет выражение вида "<число><оператор><число>".
// Поддерживается ровно один оператор из +, -, *, /. Пробелы игнорируются.
func Calculate(expression string) (float64, error) {
	if expression == "" {
		return 0, EmptyExpressionError()
	}

	s := stripSpaces(expression)

	// Ведущий минус тоже считается оператором, поэтому "-5+3" отклоняется
	opPos := -1
	for i := 0; i < len(s); i++ {
		if !IsOperator(s[i]) {
			continue
		}
		if opPos != -1 {
			return 0, MultipleOperatorsError()
		}
		opPos = i
	}

	// Нет оператора, либо он стоит в начале или в конце
	if opPos <= 0 || opPos >= len(s)-1 {
		return 0, InvalidFormatError()
	}

	left, err := parseOperand(s[:opPos])
	if err != nil {
		return 0, err
	}
	right, err := parseOperand(s[opPos+1:])
	if err != nil {
		return 0, err
	}

	op, _ := Lookup(s[opPos])
	return op(left, right)
}

// Evaluate принимает строковое выражение и возвращает отформатированный результат
func Evaluate(expression string) (string, error) {
	result, err := Calculate(expression)
	if err != nil {
		return "", err
	}
	return FormatResult(result), nil
}

// Display возвращает строку для показа на странице: результат или текст ошибки.
// ok равен false, если вычисление не удалось.
func Display(expression string) (text string, ok bool) {
	result, err := Evaluate(expression)
	if err != nil {
		return ErrorPrefix + err.Error(), false
	}
	return result, true
}

// FormatResult форматирует число в кратчайшую десятичную запись.
// Бесконечности и NaN выводятся как inf, -inf и nan.
func FormatResult(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	case math.IsNaN(value):
		return "nan"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// parseOperand разбирает число. Переполнение даёт ±Inf, а не ошибку.
func parseOperand(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, InvalidOperandsError()
	}
	return value, nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
