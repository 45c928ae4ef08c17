// Package reference computes the mathematically exact result of every engine
// operation. The engine's digit-local reductions only agree with these values
// for single-limb moduli, so the CLI shows both and flags divergences.
package reference

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/agbru/bigmod/internal/bigint"
)

var (
	// ErrUndefined reports an operation with no exact value, such as a
	// reduction by zero.
	ErrUndefined = errors.New("undefined")
	// ErrUnknownOperation reports an operation name the oracle cannot
	// evaluate.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Oracle evaluates operations exactly. Operands are non-negative; results of
// add, sub, mul, rsh and quo are reduced modulo base^size like the engine's
// fixed-width arithmetic, every other result is the plain mathematical value.
type Oracle interface {
	Name() string
	Evaluate(op string, a, b, m *big.Int, exp uint64, p bigint.Params) (*big.Int, error)
}

// BigOracle evaluates with math/big.
type BigOracle struct{}

// Name returns "math/big".
func (BigOracle) Name() string { return "math/big" }

// Evaluate computes op exactly. Missing operands are treated as zero.
func (BigOracle) Evaluate(op string, a, b, m *big.Int, exp uint64, p bigint.Params) (*big.Int, error) {
	a, b, m = orZero(a), orZero(b), orZero(m)
	z := new(big.Int)
	switch op {
	case "add":
		return z.Mod(z.Add(a, b), capacity(p)), nil
	case "sub":
		return z.Mod(z.Sub(a, b), capacity(p)), nil
	case "mul":
		return z.Mod(z.Mul(a, b), capacity(p)), nil
	case "rsh":
		// A shift past the capacity drops every digit of a reduced operand.
		if exp >= uint64(p.Size()) {
			return z, nil
		}
		return z.Quo(a, power(p.Base(), exp)), nil
	case "gcd":
		return gcd(a, b), nil
	case "lcm":
		return lcm(a, b), nil
	}

	if m.Sign() == 0 {
		switch op {
		case "mod", "quo", "modadd", "modsub", "modmul", "modsquare", "modpow":
			return nil, fmt.Errorf("%s: %w: zero modulus", op, ErrUndefined)
		}
	}
	switch op {
	case "mod":
		return z.Mod(a, m), nil
	case "quo":
		return z.Mod(z.Quo(a, m), capacity(p)), nil
	case "modadd":
		return z.Mod(z.Add(a, b), m), nil
	case "modsub":
		return z.Mod(z.Sub(a, b), m), nil
	case "modmul":
		return z.Mod(z.Mul(a, b), m), nil
	case "modsquare":
		return z.Exp(a, big.NewInt(2), m), nil
	case "modpow":
		return z.Exp(a, new(big.Int).SetUint64(exp), m), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

// Default returns the fastest oracle compiled into the binary.
func Default() Oracle {
	if defaultOracle != nil {
		return defaultOracle
	}
	return BigOracle{}
}

// defaultOracle is set by build-tagged oracles at init time.
var defaultOracle Oracle

func orZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}

func capacity(p bigint.Params) *big.Int {
	return power(p.Base(), uint64(p.Size()))
}

func power(base int, e uint64) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(base)), new(big.Int).SetUint64(e), nil)
}

// gcd follows the convention gcd(a, 0) = a.
func gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// lcm is zero when either operand is zero.
func lcm(a, b *big.Int) *big.Int {
	g := gcd(a, b)
	if g.Sign() == 0 {
		return new(big.Int)
	}
	z := new(big.Int).Mul(a, b)
	return z.Quo(z, g)
}
