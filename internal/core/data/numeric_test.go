package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type points int

func TestNewNumeric_Widens(t *testing.T) {
	assert.Equal(t, int64(3), NewNumeric(points(3)).Content())
	assert.Equal(t, int64(255), NewNumeric(uint8(255)).Content())
	assert.Equal(t, float64(0.5), NewNumeric(float32(0.5)).Content())
	assert.Equal(t, complex128(1+1i), NewNumeric(complex64(1+1i)).Content())
}

func TestNumeric_Arithmetic(t *testing.T) {
	tests := []struct {
		name    string
		start   any
		op      func(*Numeric, any) error
		operand any
		want    any
		wantErr error
	}{
		{"add ints", int64(1), (*Numeric).Add, 2, int64(3), nil},
		{"add real", int64(1), (*Numeric).Add, 0.5, 1.5, nil},
		{"sub", int64(1), (*Numeric).Sub, 3, int64(-2), nil},
		{"mul", int64(4), (*Numeric).Mul, 2.5, 10.0, nil},
		{"true division", int64(7), (*Numeric).Div, 2, 3.5, nil},
		{"division by zero", int64(7), (*Numeric).Div, 0, int64(7), ErrDivisionByZero},
		{"floor div", int64(7), (*Numeric).FloorDiv, 2, int64(3), nil},
		{"floor div negative", int64(-7), (*Numeric).FloorDiv, 2, int64(-4), nil},
		{"floor div real", 7.5, (*Numeric).FloorDiv, 2, 3.0, nil},
		{"mod", int64(7), (*Numeric).Mod, 3, int64(1), nil},
		{"mod negative dividend", int64(-7), (*Numeric).Mod, 3, int64(2), nil},
		{"mod negative divisor", int64(7), (*Numeric).Mod, -3, int64(-2), nil},
		{"mod real", -1.5, (*Numeric).Mod, 1, 0.5, nil},
		{"mod by zero", int64(1), (*Numeric).Mod, 0, int64(1), ErrDivisionByZero},
		{"complex add", complex(1, 1), (*Numeric).Add, 1, complex(2, 1), nil},
		{"complex floor div", complex(1, 1), (*Numeric).FloorDiv, 1, complex(1, 1), ErrComplex},
		{"not numeric", int64(1), (*Numeric).Add, "1", int64(1), ErrNotNumeric},
		{"add overflow", int64(math.MaxInt64), (*Numeric).Add, 1, int64(math.MaxInt64), ErrOverflow},
		{"sub overflow", int64(math.MinInt64), (*Numeric).Sub, 1, int64(math.MinInt64), ErrOverflow},
		{"mul overflow", int64(math.MaxInt64), (*Numeric).Mul, 2, int64(math.MaxInt64), ErrOverflow},
		{"mul min by minus one", int64(math.MinInt64), (*Numeric).Mul, -1, int64(math.MinInt64), ErrOverflow},
		{"floor div min by minus one", int64(math.MinInt64), (*Numeric).FloorDiv, -1, int64(math.MinInt64), ErrOverflow},
		{"mul near limit", int64(math.MaxInt64 / 2), (*Numeric).Mul, 2, int64(math.MaxInt64 - 1), nil},
		{"add real past limit", int64(math.MaxInt64), (*Numeric).Add, 1.0, float64(math.MaxInt64) + 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Numeric{}
			require.NoError(t, n.SetContent(tt.start))
			err := tt.op(n, tt.operand)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, n.Content())
		})
	}
}

func TestNumeric_Accessors(t *testing.T) {
	n := NewNumeric(2)
	n.Increment()
	i, ok := n.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)

	f, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	require.NoError(t, n.Div(2))
	_, ok = n.Int()
	assert.False(t, ok)

	_, ok = NewNumeric(1i).Float()
	assert.False(t, ok)
}

func TestText_Mutators(t *testing.T) {
	s := NewText("ab")
	s.Append("c")
	assert.Equal(t, "abc", s.String())
	s.Repeat(2)
	assert.Equal(t, "abcabc", s.Content())
	s.Repeat(0)
	assert.Equal(t, "", s.Content())
}
