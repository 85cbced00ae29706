// Package calc holds the calculator widget's arithmetic entry state machine.
//
// A Calculator belongs to exactly one open calculator widget. It is created
// when the widget opens and dropped when it closes; nothing in this package
// is shared between instances.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrorText is the sentinel shown in place of a number after a division by zero.
const ErrorText = "Error"

// Operator is the binary operator staged between two operands.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// ParseOperator maps a keyboard operator to an Operator.
func ParseOperator(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSubtract, true
	case '*':
		return OpMultiply, true
	case '/':
		return OpDivide, true
	}
	return OpNone, false
}

// Symbol is the operator as it appears in the operation label.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return ""
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	}
	return "none"
}

// Display is what the calculator screen shows. It carries no state of its own.
type Display struct {
	Entry string
	Label string
}

// Result describes one resolved operation.
type Result struct {
	Expr   string // "5 + 3"
	Value  string // "8" or ErrorText
	Failed bool
}

// Calculator is the entry state of one calculator widget.
type Calculator struct {
	current string
	operand string
	op      Operator
	fresh   bool
	memory  float64
	label   string
	failed  bool
}

// New returns a calculator showing "0" with an empty memory register.
func New() *Calculator {
	return &Calculator{current: "0"}
}

// Display projects the current entry and operation label.
func (c *Calculator) Display() Display {
	return Display{Entry: c.current, Label: c.label}
}

// Entry returns the value currently shown.
func (c *Calculator) Entry() string { return c.current }

// Label returns the operation label.
func (c *Calculator) Label() string { return c.label }

// Pending returns the staged operator, OpNone when nothing is pending.
func (c *Calculator) Pending() Operator { return c.op }

// Memory returns the memory register.
func (c *Calculator) Memory() float64 { return c.memory }

// Failed reports whether the error sentinel is on screen.
func (c *Calculator) Failed() bool { return c.failed }

// Digit enters a digit or a decimal point. Repeated points are accepted as typed.
func (c *Calculator) Digit(d rune) {
	if (d < '0' || d > '9') && d != '.' {
		return
	}
	if c.failed {
		c.failed = false
		c.fresh = true
	}
	s := string(d)
	switch {
	case c.fresh:
		c.current = s
		c.fresh = false
	case c.current == "0":
		c.current = s
	default:
		c.current += s
	}
}

// ChooseOperator stages op. A pending operator whose second operand has been
// typed is resolved first, so 5 + 3 - behaves as 8 -; that resolution is
// returned with ok set.
func (c *Calculator) ChooseOperator(op Operator) (res Result, ok bool) {
	if op == OpNone || c.failed {
		return Result{}, false
	}
	if c.op != OpNone && !c.fresh {
		res, ok = c.Calculate()
		if c.failed {
			return res, ok
		}
	}
	c.operand = c.current
	c.op = op
	c.fresh = true
	c.label = c.operand + " " + op.Symbol()
	return res, ok
}

// Calculate applies the pending operator to the staged operand and the current
// entry. It reports false and changes nothing when no operator is pending.
func (c *Calculator) Calculate() (Result, bool) {
	if c.op == OpNone || c.operand == "" || c.failed {
		return Result{}, false
	}
	a, b := parseEntry(c.operand), parseEntry(c.current)
	expr := fmt.Sprintf("%s %s %s", formatNumber(a), c.op.Symbol(), formatNumber(b))

	var v float64
	switch c.op {
	case OpAdd:
		v = a + b
	case OpSubtract:
		v = a - b
	case OpMultiply:
		v = a * b
	case OpDivide:
		if b == 0 {
			c.current = ErrorText
			c.label = "Division by zero"
			c.failed = true
			c.op = OpNone
			c.fresh = true
			return Result{Expr: expr, Value: ErrorText, Failed: true}, true
		}
		v = a / b
	}

	c.current = formatNumber(v)
	c.label = expr + " ="
	c.op = OpNone
	c.fresh = true
	return Result{Expr: expr, Value: c.current}, true
}

// ClearAll resets everything except memory.
func (c *Calculator) ClearAll() {
	c.current = "0"
	c.operand = ""
	c.op = OpNone
	c.fresh = false
	c.label = ""
	c.failed = false
}

// ClearEntry resets only the current entry.
func (c *Calculator) ClearEntry() {
	c.current = "0"
	c.failed = false
}

// Backspace removes the last character of the current entry.
func (c *Calculator) Backspace() {
	if c.failed || len(c.current) <= 1 {
		c.current = "0"
		c.failed = false
		return
	}
	c.current = c.current[:len(c.current)-1]
}

// MemoryClear zeroes the memory register.
func (c *Calculator) MemoryClear() { c.memory = 0 }

// MemoryRecall copies memory into the current entry.
func (c *Calculator) MemoryRecall() {
	c.current = formatNumber(c.memory)
	c.failed = false
	c.fresh = false
}

// MemoryAdd adds the current entry to memory.
func (c *Calculator) MemoryAdd() {
	if c.failed {
		return
	}
	c.memory += parseEntry(c.current)
}

// MemorySubtract subtracts the current entry from memory.
func (c *Calculator) MemorySubtract() {
	if c.failed {
		return
	}
	c.memory -= parseEntry(c.current)
}

// parseEntry reads the longest numeric prefix of s, so "1.2.3" is 1.2.
// Anything without a numeric prefix counts as zero. Values beyond float64
// range become infinities.
func parseEntry(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1)
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1)
	}
	v, err := strconv.ParseFloat(s[:numericPrefix(s)], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// numericPrefix returns the length of the longest prefix of s shaped like
// [sign] digits [. digits] [e [sign] digits].
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return end
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// formatNumber renders v with the fewest digits that read back to v.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent drops the zero padding strconv puts on exponents: 1e-07 is 1e-7.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mant, sign, exp := s[:i+1], s[i+1:i+2], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + sign + exp
}
