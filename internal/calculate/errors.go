package calculate

import "fmt"

// Kind классифицирует ошибку вычисления выражения
type Kind int

const (
	EmptyExpression Kind = iota + 1
	MultipleOperators
	InvalidFormat
	InvalidOperands
	DivisionByZero
)

var kindNames = map[Kind]string{
	EmptyExpression:   "empty_expression",
	MultipleOperators: "multiple_operators",
	InvalidFormat:     "invalid_format",
	InvalidOperands:   "invalid_operands",
	DivisionByZero:    "division_by_zero",
}

// String возвращает имя вида ошибки, которое уходит в JSON и gRPC ответы
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// CalcError описывает пользовательскую ошибку обработки выражения
type CalcError struct {
	Kind    Kind
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

// Is сравнивает ошибки по виду, чтобы работал errors.Is с сентинелами ниже
func (e *CalcError) Is(target error) bool {
	t, ok := target.(*CalcError)
	return ok && t.Kind == e.Kind
}

// NewCalcError создает новую ошибку CalcError
func NewCalcError(kind Kind, message string) *CalcError {
	return &CalcError{Kind: kind, Message: message}
}

// Сентинелы для errors.Is. Возвращать их напрямую нельзя, используйте конструкторы.
var (
	ErrEmptyExpression   = &CalcError{Kind: EmptyExpression}
	ErrMultipleOperators = &CalcError{Kind: MultipleOperators}
	ErrInvalidFormat     = &CalcError{Kind: InvalidFormat}
	ErrInvalidOperands   = &CalcError{Kind: InvalidOperands}
	ErrDivisionByZero    = &CalcError{Kind: DivisionByZero}
)

// EmptyExpressionError создаёт ошибку пустого выражения
func EmptyExpressionError() *CalcError {
	return NewCalcError(EmptyExpression, "empty expression")
}

// MultipleOperatorsError создаёт ошибку лишнего оператора
func MultipleOperatorsError() *CalcError {
	return NewCalcError(MultipleOperators, "only one operator is allowed")
}

// InvalidFormatError создаёт ошибку некорректного формата выражения
func InvalidFormatError() *CalcError {
	return NewCalcError(InvalidFormat, "invalid expression format")
}

// InvalidOperandsError создаёт ошибку нечисловых операндов
func InvalidOperandsError() *CalcError {
	return NewCalcError(InvalidOperands, "operands must be numbers")
}

// DivisionByZeroError создаёт ошибку деления на ноль
func DivisionByZeroError() *CalcError {
	return NewCalcError(DivisionByZero, "division by zero")
}
