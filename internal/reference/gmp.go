//go:build gmp

// This file provides a libgmp-backed oracle, compiled only with the "gmp"
// build tag (go build -tags=gmp). It requires libgmp on the system:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package reference

import (
	"fmt"
	"math/big"

	"github.com/ncw/gmp"

	"github.com/agbru/bigmod/internal/bigint"
)

func init() {
	defaultOracle = GMPOracle{}
}

// GMPOracle evaluates with libgmp. It shares BigOracle's contract; only the
// modular operations, where operands can be large, run on gmp integers.
type GMPOracle struct{}

// Name returns "gmp".
func (GMPOracle) Name() string { return "gmp" }

// Evaluate computes op exactly using libgmp for modular arithmetic.
func (GMPOracle) Evaluate(op string, a, b, m *big.Int, exp uint64, p bigint.Params) (*big.Int, error) {
	switch op {
	case "modadd", "modsub", "modmul", "modsquare", "modpow":
	default:
		return BigOracle{}.Evaluate(op, a, b, m, exp, p)
	}
	ga, gb, gm := toGMP(orZero(a)), toGMP(orZero(b)), toGMP(orZero(m))
	if gm.Sign() == 0 {
		return nil, fmt.Errorf("%s: %w: zero modulus", op, ErrUndefined)
	}
	z := gmp.NewInt(0)
	switch op {
	case "modadd":
		z.Add(ga, gb)
		z.Mod(z, gm)
	case "modsub":
		z.Sub(ga, gb)
		z.Mod(z, gm)
	case "modmul":
		z.Mul(ga, gb)
		z.Mod(z, gm)
	case "modsquare":
		z.Exp(ga, gmp.NewInt(2), gm)
	case "modpow":
		z.Exp(ga, new(gmp.Int).SetUint64(exp), gm)
	}
	return fromGMP(z), nil
}

func toGMP(x *big.Int) *gmp.Int {
	return new(gmp.Int).SetBytes(x.Bytes())
}

func fromGMP(g *gmp.Int) *big.Int {
	return new(big.Int).SetBytes(g.Bytes())
}
