package calculate

import (
	"math"
	"sort"
)

// Operator бинарная арифметическая операция
type Operator func(x, y float64) (float64, error)

// Таблица операторов собирается один раз и больше не меняется.
var operators = map[byte]Operator{
	'+': Add,
	'-': Subtract,
	'*': Multiply,
	'/': Divide,
}

// Lookup возвращает операцию по символу оператора
func Lookup(symbol byte) (Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

// IsOperator проверяет, является ли символ оператором
func IsOperator(symbol byte) bool {
	_, ok := operators[symbol]
	return ok
}

// Symbols возвращает поддерживаемые символы операторов
func Symbols() []string {
	symbols := make([]string, 0, len(operators))
	for s := range operators {
		symbols = append(symbols, string(s))
	}
	sort.Strings(symbols)
	return symbols
}

// Add складывает два числа
func Add(x, y float64) (float64, error) {
	return x + y, nil
}

// Subtract вычитает y из x
func Subtract(x, y float64) (float64, error) {
	return x - y, nil
}

// Multiply перемножает два числа
func Multiply(x, y float64) (float64, error) {
	return x * y, nil
}

// Divide делит x на y с округлением вниз (целочисленное деление).
// Для нецелых аргументов результат тоже округляется вниз: 7.5 / 2.5 = 3.
func Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, DivisionByZeroError()
	}
	return floorDiv(x, y), nil
}

// floorDiv делит с округлением к минус бесконечности.
// Частное считается через остаток, а не через math.Floor(x/y).
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
