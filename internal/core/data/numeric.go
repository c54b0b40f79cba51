package data

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/zeusync/tabletop/internal/core/record"
	"github.com/zeusync/tabletop/internal/core/visibility"
)

// Arithmetic errors
var (
	ErrNotNumeric     = errors.New("operand is not numeric")
	ErrDivisionByZero = errors.New("division by zero")
	ErrComplex        = errors.New("operation not defined for complex numbers")
	ErrOverflow       = errors.New("integer overflow")
)

// Number lists the Go types accepted as numeric content.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

var _ Data = (*Numeric)(nil)

// Numeric holds an integer, real or complex number, stored as int64, float64
// or complex128.
type Numeric struct {
	visibility.Scope
	content any
}

func NewNumeric[T Number](content T, opts ...Option) *Numeric {
	return &Numeric{Scope: newScope(opts), content: widen(reflect.ValueOf(content))}
}

// widen maps any Number, named types included, onto int64, float64 or complex128.
func widen(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return float64(u)
		}
		return int64(u)
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Complex64, reflect.Complex128:
		return v.Complex()
	default:
		return int64(0)
	}
}

func (d *Numeric) Kind() Kind   { return KindNumeric }
func (d *Numeric) Content() any { return d.content }

// Int returns the content when it is an integer.
func (d *Numeric) Int() (int64, bool) {
	i, ok := d.content.(int64)
	return i, ok
}

// Float returns the content as a real number. Complex content reports false.
func (d *Numeric) Float() (float64, bool) {
	switch n := d.content.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func (d *Numeric) SetContent(v any) error {
	n, ok := record.Number(v)
	if !ok {
		return fmt.Errorf("%w: the attribute `content` is not numeric", record.ErrType)
	}
	d.content = n
	return nil
}

func (d *Numeric) Add(v any) error      { return d.apply(opAdd, v) }
func (d *Numeric) Sub(v any) error      { return d.apply(opSub, v) }
func (d *Numeric) Mul(v any) error      { return d.apply(opMul, v) }
func (d *Numeric) Div(v any) error      { return d.apply(opDiv, v) }
func (d *Numeric) FloorDiv(v any) error { return d.apply(opFloorDiv, v) }
func (d *Numeric) Mod(v any) error      { return d.apply(opMod, v) }

// Increment adds one. Content at the int64 limit is left unchanged.
func (d *Numeric) Increment() {
	_ = d.apply(opAdd, int64(1))
}

func (d *Numeric) apply(op arithOp, v any) error {
	other, ok := record.Number(v)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
	res, err := arith(op, d.content, other)
	if err != nil {
		return err
	}
	d.content = res
	return nil
}

func (d *Numeric) Record() record.Record {
	return toRecord(KindNumeric, d.content, &d.Scope)
}

func (d *Numeric) Clone() Data {
	return &Numeric{Scope: d.Scope.Clone(), content: d.content}
}

func decodeNumeric(rec record.Record) (Data, error) {
	n, ok := record.Number(rec[record.KeyContent])
	if !ok {
		return nil, fmt.Errorf("%w: the attribute `content` is not numeric", record.ErrType)
	}
	scope, err := decodeScope(rec)
	if err != nil {
		return nil, err
	}
	return &Numeric{Scope: scope, content: n}, nil
}

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
	opFloorDiv
	opMod
)

// arith combines two normalized numbers, promoting int64 -> float64 -> complex128.
// Division is true division; floor division and modulo round toward negative
// infinity, so the remainder takes the sign of the divisor.
func arith(op arithOp, a, b any) (any, error) {
	ca, aComplex := a.(complex128)
	cb, bComplex := b.(complex128)
	if aComplex || bComplex {
		if !aComplex {
			ca = toComplex(a)
		}
		if !bComplex {
			cb = toComplex(b)
		}
		return complexArith(op, ca, cb)
	}

	ia, aInt := a.(int64)
	ib, bInt := b.(int64)
	if aInt && bInt && op != opDiv {
		return intArith(op, ia, ib)
	}
	return floatArith(op, toFloat(a), toFloat(b))
}

func intArith(op arithOp, a, b int64) (any, error) {
	switch op {
	case opAdd:
		r := a + b
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return nil, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
		}
		return r, nil
	case opSub:
		r := a - b
		if (b > 0 && r > a) || (b < 0 && r < a) {
			return nil, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
		}
		return r, nil
	case opMul:
		if a == 0 || b == 0 {
			return int64(0), nil
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return nil, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
		}
		return r, nil
	case opFloorDiv:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		if a == math.MinInt64 && b == -1 {
			return nil, fmt.Errorf("%w: %d // %d", ErrOverflow, a, b)
		}
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			q--
		}
		return q, nil
	case opMod:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		r := a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r, nil
	}
	return nil, fmt.Errorf("unsupported integer operation %d", op)
}

func floatArith(op arithOp, a, b float64) (any, error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return a / b, nil
	case opFloorDiv:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return math.Floor(a / b), nil
	case opMod:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r, nil
	}
	return nil, fmt.Errorf("unsupported real operation %d", op)
}

func complexArith(op arithOp, a, b complex128) (any, error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return a / b, nil
	}
	return nil, ErrComplex
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func toComplex(v any) complex128 {
	return complex(toFloat(v), 0)
}
