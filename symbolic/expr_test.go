// SPDX-License-Identifier: MIT

package symbolic_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/symbolic"
)

var (
	x = symbolic.Symbol("x")
	y = symbolic.Symbol("y")
)

func TestConstantFolding(t *testing.T) {
	e := symbolic.Const(2).Mul(symbolic.Const(3)).Add(symbolic.Const(1))
	v, ok := e.Value()
	require.True(t, ok)
	assert.Equal(t, 7.0, v)

	c := symbolic.Const(0).Apply1(scalar.OpCos)
	assert.True(t, c.IsOne())
	assert.True(t, symbolic.Expr{}.IsZero())
	assert.True(t, symbolic.Const(-1).IsMinusOne())
}

func TestIdentities(t *testing.T) {
	zero, one := symbolic.Const(0), symbolic.Const(1)
	cases := []struct {
		name string
		got  symbolic.Expr
		want symbolic.Expr
	}{
		{"x+0", x.Add(zero), x},
		{"0+x", zero.Add(x), x},
		{"x-0", x.Sub(zero), x},
		{"x-x", x.Sub(x), zero},
		{"x*0", x.Mul(zero), zero},
		{"1*x", one.Mul(x), x},
		{"x/1", x.Div(one), x},
		{"0/x", zero.Div(x), zero},
		{"--x", x.Neg().Neg(), x},
		{"x*-1", x.Mul(symbolic.Const(-1)), x.Neg()},
		{"0-x", zero.Sub(x), x.Neg()},
		{"xy-xy", x.Mul(y).Sub(symbolic.Symbol("x").Mul(y)), zero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Truef(t, tc.want.Equal(tc.got), "want %v got %v", tc.want, tc.got)
		})
	}
	assert.False(t, x.Sub(y).IsZero())
}

func TestEqualIsStructural(t *testing.T) {
	assert.True(t, x.Add(y).Equal(symbolic.Symbol("x").Add(symbolic.Symbol("y"))))
	assert.False(t, x.Add(y).Equal(y.Add(x)))
	assert.False(t, x.Equal(y))
}

func TestString(t *testing.T) {
	cases := map[string]symbolic.Expr{
		"x":                x,
		"2.5":              symbolic.Const(2.5),
		"((x+y)*2)":        x.Add(y).Mul(symbolic.Const(2)),
		"(-x)":             x.Neg(),
		"sin(x)":           x.Apply1(scalar.OpSin),
		"atan2(x, y)":      x.Apply2(scalar.OpAtan2, y),
		"(x<=y)":           x.Apply2(scalar.OpLe, y),
		"sqrt(abs((x/y)))": x.Div(y).Abs().Sqrt(),
	}
	for want, e := range cases {
		assert.Equal(t, want, e.String())
	}

	sq := x.Mul(x)
	assert.Equal(t, "@1=(x*x), ((@1*@1)*@1)", sq.Mul(sq).Mul(sq).String())
}

// squared returns e squared k times over, one new node per level.
func squared(e symbolic.Expr, k int) symbolic.Expr {
	for range k {
		e = e.Mul(e)
	}

	return e
}

func TestSharedGraph(t *testing.T) {
	const depth = 30
	e := squared(x.Add(y), depth)

	assert.Equal(t, []string{"x", "y"}, e.FreeSymbols())

	twin := squared(symbolic.Symbol("x").Add(symbolic.Symbol("y")), depth)
	assert.True(t, e.Equal(twin))
	assert.False(t, e.Equal(squared(y.Add(x), depth)))
	assert.True(t, e.Sub(e).IsZero())

	s := e.String()
	assert.Less(t, len(s), 1000)
	assert.True(t, strings.HasPrefix(s, "@1=(x+y), @2=(@1*@1), "), s)
	assert.True(t, strings.HasSuffix(s, "@30=(@29*@29), (@30*@30)"), s)

	v, err := e.Eval(symbolic.Env{"x": 0.5, "y": 0.5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestQueries(t *testing.T) {
	assert.True(t, x.IsSymbol())
	assert.Equal(t, "x", x.Name())
	assert.True(t, symbolic.Const(3).IsConstant())
	assert.False(t, x.IsConstant())
	assert.True(t, x.IsFinite())
	assert.False(t, symbolic.Const(math.Inf(1)).IsFinite())

	op, ok := x.Mul(y).Op()
	require.True(t, ok)
	assert.Equal(t, scalar.OpMul, op)
	_, ok = x.Op()
	assert.False(t, ok)

	e := x.Mul(y).Add(x.Apply1(scalar.OpExp))
	assert.Equal(t, []string{"x", "y"}, e.FreeSymbols())
	assert.Empty(t, symbolic.Const(1).FreeSymbols())

	_, err := symbolic.NewSymbol("")
	assert.ErrorIs(t, err, symbolic.ErrEmptyName)
	assert.Panics(t, func() { symbolic.Symbol("") })

	names := symbolic.Symbols("a", 2)
	assert.Equal(t, "a_1", names[1].Name())
}
