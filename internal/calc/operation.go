// Package calc exposes the engine as a set of named operations. Each
// operation takes the shared operand set (a, b, modulus and exponent), so a
// plan can run any subset of them concurrently and present the results side
// by side.
package calc

import (
	"context"

	"github.com/agbru/bigmod/internal/bigint"
)

// Operands is the input shared by every operation of a plan. Operations read
// only the fields named in their Arity.
type Operands struct {
	A, B bigint.BigInt
	M    bigint.BigInt
	Exp  uint64
}

// Operation is a named engine computation.
type Operation interface {
	// Name returns the registry name (e.g., "modpow").
	Name() string
	// Arity describes the operands used, e.g. "a^exp mod m".
	Arity() string
	// Apply runs the computation. Implementations must not mutate the
	// operands and must be safe for concurrent use.
	Apply(ctx context.Context, in Operands) (bigint.BigInt, error)
}

// coreOp adapts an engine method to the Operation interface.
type coreOp struct {
	name  string
	arity string
	fn    func(Operands) (bigint.BigInt, error)
}

func (o coreOp) Name() string  { return o.name }
func (o coreOp) Arity() string { return o.arity }

func (o coreOp) Apply(_ context.Context, in Operands) (bigint.BigInt, error) {
	return o.fn(in)
}

// coreOps lists the engine operations in plan order.
var coreOps = []coreOp{
	{"add", "a + b", func(in Operands) (bigint.BigInt, error) { return in.A.Add(in.B) }},
	{"sub", "a - b", func(in Operands) (bigint.BigInt, error) { return in.A.Sub(in.B) }},
	{"mul", "a * b", func(in Operands) (bigint.BigInt, error) { return in.A.Mul(in.B) }},
	{"rsh", "a >> exp limbs", func(in Operands) (bigint.BigInt, error) { return in.A.Rsh(shiftCount(in.Exp)) }},
	{"mod", "a mod m", func(in Operands) (bigint.BigInt, error) { return in.A.Mod(in.M) }},
	{"quo", "a / m", func(in Operands) (bigint.BigInt, error) { return in.A.Quo(in.M) }},
	{"gcd", "gcd(a, b)", func(in Operands) (bigint.BigInt, error) { return in.A.GCD(in.B) }},
	{"lcm", "lcm(a, b)", func(in Operands) (bigint.BigInt, error) { return in.A.LCM(in.B) }},
	{"modadd", "(a + b) mod m", func(in Operands) (bigint.BigInt, error) { return in.A.ModAdd(in.B, in.M) }},
	{"modsub", "(a - b) mod m", func(in Operands) (bigint.BigInt, error) { return in.A.ModSub(in.B, in.M) }},
	{"modmul", "(a * b) mod m", func(in Operands) (bigint.BigInt, error) { return in.A.ModMul(in.B, in.M) }},
	{"modsquare", "a^2 mod m", func(in Operands) (bigint.BigInt, error) { return in.A.ModSquare(in.M) }},
	{"modpow", "a^exp mod m", func(in Operands) (bigint.BigInt, error) { return in.A.ModPow(in.Exp, in.M) }},
}

// shiftCount clamps an exponent to a limb shift; anything past the capacity
// already yields zero.
func shiftCount(e uint64) uint {
	if e > bigint.MaxSize {
		return bigint.MaxSize
	}
	return uint(e)
}
