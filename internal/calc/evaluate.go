// Package calc holds the calculator core: the input state machine and the
// arithmetic evaluator. It has no UI dependencies.
package calc

import "math"

// Operator is one of the four binary arithmetic operators.
type Operator int

const (
	OpNone Operator = iota // No pending operator
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// operatorAliases resolves every accepted spelling of an operator, from keypad
// glyphs and keyboard runes alike, to its canonical value.
var operatorAliases = map[string]Operator{
	"+": OpAdd,
	"-": OpSubtract,
	"−": OpSubtract, // U+2212 minus sign
	"*": OpMultiply,
	"x": OpMultiply,
	"X": OpMultiply,
	"×": OpMultiply,
	"/": OpDivide,
	"÷": OpDivide,
}

// ParseOperator normalizes an operator glyph or keyboard alias.
func ParseOperator(s string) (Operator, bool) {
	op, ok := operatorAliases[s]
	return op, ok
}

// Symbol returns the glyph used when rendering the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// Evaluate applies op to a and b. Division by zero follows IEEE-754 and
// yields +Inf, -Inf or NaN. An unknown operator returns b unchanged.
func Evaluate(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	default:
		return b
	}
}

// Function is a unary scientific function.
type Function int

const (
	FnUnknown Function = iota
	FnSin
	FnCos
	FnTan
	FnSqrt
	FnSquare
	FnLog
	FnLn
	FnPi
)

var functionNames = [...]string{
	FnUnknown: "unknown",
	FnSin:     "sin",
	FnCos:     "cos",
	FnTan:     "tan",
	FnSqrt:    "sqrt",
	FnSquare:  "square",
	FnLog:     "log",
	FnLn:      "ln",
	FnPi:      "pi",
}

// Functions lists every scientific function in keypad order.
func Functions() []Function {
	return []Function{FnSin, FnCos, FnTan, FnSqrt, FnSquare, FnLog, FnLn, FnPi}
}

// ParseFunction maps a function name such as "sqrt" to its Function.
func ParseFunction(name string) (Function, bool) {
	for fn, n := range functionNames {
		if fn != int(FnUnknown) && n == name {
			return Function(fn), true
		}
	}
	return FnUnknown, false
}

func (fn Function) String() string {
	if fn < 0 || int(fn) >= len(functionNames) {
		return functionNames[FnUnknown]
	}
	return functionNames[fn]
}

// Label returns the short keypad label for the function.
func (fn Function) Label() string {
	switch fn {
	case FnSqrt:
		return "√"
	case FnSquare:
		return "x²"
	case FnPi:
		return "π"
	default:
		return fn.String()
	}
}

// EvaluateScientific applies fn to x. Trigonometric functions take degrees.
// FnPi ignores x. Domain errors such as the square root of a negative number
// come back as NaN; an unknown function returns x unchanged.
func EvaluateScientific(x float64, fn Function) float64 {
	switch fn {
	case FnSin:
		return math.Sin(x * math.Pi / 180)
	case FnCos:
		return math.Cos(x * math.Pi / 180)
	case FnTan:
		return math.Tan(x * math.Pi / 180)
	case FnSqrt:
		return math.Sqrt(x)
	case FnSquare:
		return x * x
	case FnLog:
		return log10(x)
	case FnLn:
		return math.Log(x)
	case FnPi:
		return math.Pi
	default:
		return x
	}
}

// log10 is math.Log10 with exact powers of ten snapped to their integer
// exponent. math.Log10 can land one ulp away from it.
func log10(x float64) float64 {
	r := math.Log10(x)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return r
	}
	if n := math.Round(r); n != r && math.Pow(10, n) == x {
		return n
	}
	return r
}
