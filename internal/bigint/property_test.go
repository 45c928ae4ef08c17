package bigint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// propParams are small enough for exhaustive math/big cross-checks and cover
// a power-of-two base, the default base and a base above 36.
var propParams = []Params{
	MustNewParams(2, 16),
	MustNewParams(10, 8),
	MustNewParams(16, 6),
	MustNewParams(1000, 3),
}

func capacity(p Params) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(p.Base())), big.NewInt(int64(p.Size())), nil)
}

func newProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// TestRingOperations_PropertyBased checks Add, Sub and Mul against math/big
// modulo base^size.
func TestRingOperations_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	for _, p := range propParams {
		p := p
		n := capacity(p)
		properties.Property(p.String()+" agrees with math/big", prop.ForAll(
			func(a, b int64) bool {
				x, y := p.FromInt(a), p.FromInt(b)
				ba, bb := x.Big(), y.Big()

				sum, _ := x.Add(y)
				diff, _ := x.Sub(y)
				prod, _ := x.Mul(y)

				wantSum := new(big.Int).Add(ba, bb)
				wantDiff := new(big.Int).Sub(ba, bb)
				wantProd := new(big.Int).Mul(ba, bb)
				return sum.Big().Cmp(wantSum.Mod(wantSum, n)) == 0 &&
					diff.Big().Cmp(wantDiff.Mod(wantDiff, n)) == 0 &&
					prod.Big().Cmp(wantProd.Mod(wantProd, n)) == 0
			},
			gen.Int64(),
			gen.Int64(),
		))
	}

	properties.TestingRun(t)
}

// TestIdentities_PropertyBased covers the zero and one identities.
func TestIdentities_PropertyBased(t *testing.T) {
	properties := newProperties(t)
	p := MustNewParams(10, 8)

	properties.Property("a+0 = a, a-0 = a, a*0 = 0", prop.ForAll(
		func(a int64) bool {
			x := p.FromInt(a)
			s, _ := x.Add(p.Zero())
			d, _ := x.Sub(p.Zero())
			m, _ := x.Mul(p.Zero())
			return s.Equal(x) && d.Equal(x) && m.IsZero()
		},
		gen.Int64(),
	))

	properties.Property("GCD(a, 0) = a and LCM(a, 0) = 0", prop.ForAll(
		func(a int64) bool {
			x := p.FromInt(a)
			g, err := x.GCD(p.Zero())
			if err != nil || !g.Equal(x) {
				return false
			}
			l, err := x.LCM(p.Zero())
			return err == nil && l.IsZero()
		},
		gen.Int64(),
	))

	properties.Property("ModPow(a, 0, m) = 1 for non-zero m", prop.ForAll(
		func(a int64, m int64) bool {
			r, err := p.FromInt(a).ModPow(0, p.FromInt(m))
			return err == nil && r.Equal(p.One())
		},
		gen.Int64(),
		gen.Int64Range(1, 99999999),
	))

	properties.Property("Mod by zero fails", prop.ForAll(
		func(a int64) bool {
			_, err := p.FromInt(a).Mod(p.Zero())
			return errors.Is(err, ErrZeroModulus)
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestRsh_PropertyBased checks that a limb shift divides by base^k.
func TestRsh_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	for _, p := range propParams {
		p := p
		properties.Property(p.String()+" Rsh is division by base^k", prop.ForAll(
			func(a int64, k uint) bool {
				x := p.FromInt(a)
				got, _ := x.Rsh(k)
				div := new(big.Int).Exp(big.NewInt(int64(p.Base())), big.NewInt(int64(k)), nil)
				return got.Big().Cmp(div.Quo(x.Big(), div)) == 0
			},
			gen.Int64(),
			gen.UIntRange(0, 20),
		))
	}

	properties.TestingRun(t)
}

// TestDigitStringRoundTrip_PropertyBased checks that rendering and parsing are
// inverse for bases that render one character per digit.
func TestDigitStringRoundTrip_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	for _, base := range []int{2, 8, 10, 16} {
		p := MustNewParams(base, 12)
		properties.Property(p.String()+" round trip", prop.ForAll(
			func(a int64) bool {
				x := p.FromInt(a)
				y, err := p.FromDigitString(x.DigitString())
				return err == nil && y.Equal(x)
			},
			gen.Int64(),
		))
	}

	properties.TestingRun(t)
}

// TestReductionBounds_PropertyBased checks the digit-wise guarantees of Mod
// and the floor-division behaviour of Quo for repeated-digit divisors.
func TestReductionBounds_PropertyBased(t *testing.T) {
	properties := newProperties(t)
	p := MustNewParams(10, 8)

	properties.Property("Mod digits stay below modulus digits", prop.ForAll(
		func(a int64, mdigits []int) bool {
			m, err := p.FromDigits(mdigits)
			if err != nil {
				return false
			}
			r, err := p.FromInt(a).Mod(m)
			if err != nil {
				return false
			}
			for j := 0; j < r.Size(); j++ {
				if r.Digit(j) >= m.Digit(j) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.SliceOfN(8, gen.IntRange(1, 9)),
	))

	properties.Property("Quo by kk..k is floor division by k", prop.ForAll(
		func(a int64, k int) bool {
			x := p.FromInt(a)
			d := p.FromInt(int64(k) * 11111111)
			q, err := x.Quo(d)
			if err != nil {
				return false
			}
			want := new(big.Int).Quo(x.Big(), big.NewInt(int64(k)))
			return q.Big().Cmp(want) == 0
		},
		gen.Int64(),
		gen.IntRange(1, 9),
	))

	properties.TestingRun(t)
}
