package bigint

import (
	"fmt"
	"math/big"
)

const (
	// DefaultBase is the radix of DefaultParams.
	DefaultBase = 10
	// DefaultSize is the digit capacity of DefaultParams.
	DefaultSize = 2048
	// MaxBase bounds the radix so that digit products, column sums and
	// borrows stay well inside an int64.
	MaxBase = 1 << 16
	// MaxSize bounds the digit capacity.
	MaxSize = 1 << 16
)

// Params is the shared contract of a family of values: the radix of every
// digit and the fixed number of digits every value carries. Values built from
// different Params cannot be combined.
//
// The zero Params is equivalent to DefaultParams().
type Params struct {
	base int
	size int
}

// NewParams returns Params for the given base and size, or ErrInvalidParams
// when either is out of range.
func NewParams(base, size int) (Params, error) {
	if base < 2 || base > MaxBase {
		return Params{}, fmt.Errorf("%w: base %d outside [2, %d]", ErrInvalidParams, base, MaxBase)
	}
	if size < 1 || size > MaxSize {
		return Params{}, fmt.Errorf("%w: size %d outside [1, %d]", ErrInvalidParams, size, MaxSize)
	}
	return Params{base: base, size: size}, nil
}

// DefaultParams returns base 10 with 2048 digits.
func DefaultParams() Params {
	return Params{base: DefaultBase, size: DefaultSize}
}

func (p Params) norm() Params {
	if p.base == 0 {
		return DefaultParams()
	}
	return p
}

// Base returns the radix.
func (p Params) Base() int { return p.norm().base }

// Size returns the digit capacity.
func (p Params) Size() int { return p.norm().size }

// String implements fmt.Stringer.
func (p Params) String() string {
	p = p.norm()
	return fmt.Sprintf("base %d, %d digits", p.base, p.size)
}

// BigInt is a fixed-capacity unsigned integer stored as little-endian digits.
// Index 0 holds the least-significant digit. A BigInt is immutable once built.
//
// The zero BigInt is malformed: it has no digits and every operation rejects
// it with ErrMalformedOperand. Use [Params.Zero] for the value zero.
type BigInt struct {
	digits []int
	params Params
}

// Zero returns the all-zero value.
func (p Params) Zero() BigInt {
	p = p.norm()
	return BigInt{digits: make([]int, p.size), params: p}
}

// One returns the multiplicative identity.
func (p Params) One() BigInt {
	return p.FromInt(1)
}

// FromInt converts n digit by digit, least-significant first, keeping only the
// low size digits. Negative inputs produce their base complement, so
// FromInt(-1) equals Zero minus One.
func (p Params) FromInt(n int64) BigInt {
	z := p.Zero()
	b := int64(z.params.base)
	for i := range z.digits {
		if n == 0 {
			break
		}
		d := n % b
		n /= b
		if d < 0 {
			d += b
			n--
		}
		z.digits[i] = int(d)
	}
	return z
}

// FromUint64 converts n, keeping only the low size digits.
func (p Params) FromUint64(n uint64) BigInt {
	z := p.Zero()
	b := uint64(z.params.base)
	for i := range z.digits {
		if n == 0 {
			break
		}
		z.digits[i] = int(n % b)
		n /= b
	}
	return z
}

// FromBig converts x modulo base^size. Negative inputs produce their base
// complement. A nil x yields zero.
func (p Params) FromBig(x *big.Int) BigInt {
	z := p.Zero()
	if x == nil || x.Sign() == 0 {
		return z
	}
	b := big.NewInt(int64(z.params.base))
	capacity := new(big.Int).Exp(b, big.NewInt(int64(z.params.size)), nil)
	n := new(big.Int).Mod(x, capacity)

	if z.params.base <= 36 {
		text := n.Text(z.params.base)
		for i := 0; i < len(text); i++ {
			d, _ := digitValue(text[len(text)-1-i])
			z.digits[i] = d
		}
		return z
	}

	d := new(big.Int)
	for i := range z.digits {
		if n.Sign() == 0 {
			break
		}
		n.DivMod(n, b, d)
		z.digits[i] = int(d.Int64())
	}
	return z
}

// FromDigits builds a value from a little-endian digit slice. The slice must
// hold exactly size digits, each in [0, base). The slice is copied.
func (p Params) FromDigits(digits []int) (BigInt, error) {
	z := p.Zero()
	if len(digits) != len(z.digits) {
		return BigInt{}, fmt.Errorf("%w: got %d digits, want %d", ErrLengthMismatch, len(digits), len(z.digits))
	}
	for i, d := range digits {
		if d < 0 || d >= z.params.base {
			return BigInt{}, &DigitError{Pos: i, Value: d, Base: z.params.base}
		}
		z.digits[i] = d
	}
	return z, nil
}

// Params returns the parameters the value was built with.
func (x BigInt) Params() Params { return x.params }

// Base returns the radix of the value.
func (x BigInt) Base() int { return x.params.base }

// Size returns the number of digits the value carries.
func (x BigInt) Size() int { return len(x.digits) }

// Digits returns a copy of the little-endian digits.
func (x BigInt) Digits() []int {
	d := make([]int, len(x.digits))
	copy(d, x.digits)
	return d
}

// Digit returns the digit at position i, or 0 outside the capacity.
func (x BigInt) Digit(i int) int {
	if i < 0 || i >= len(x.digits) {
		return 0
	}
	return x.digits[i]
}

// Len returns the number of significant digits: the index of the highest
// non-zero digit plus one, or 0 for zero.
func (x BigInt) Len() int {
	for i := len(x.digits) - 1; i >= 0; i-- {
		if x.digits[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// IsZero reports whether every digit is zero.
func (x BigInt) IsZero() bool {
	for _, d := range x.digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether x and y hold the same digit sequence. Base and size
// are not compared beyond the sequence length.
func (x BigInt) Equal(y BigInt) bool {
	if len(x.digits) != len(y.digits) {
		return false
	}
	for i, d := range x.digits {
		if y.digits[i] != d {
			return false
		}
	}
	return true
}

// Big returns the exact value of the digits as a *big.Int.
func (x BigInt) Big() *big.Int {
	z := new(big.Int)
	if len(x.digits) == 0 {
		return z
	}
	b := big.NewInt(int64(x.params.base))
	d := new(big.Int)
	for i := x.Len() - 1; i >= 0; i-- {
		z.Mul(z, b)
		z.Add(z, d.SetInt64(int64(x.digits[i])))
	}
	return z
}

// check validates that x and y were built by constructors of the same Params.
func (x BigInt) check(y BigInt) error {
	if len(x.digits) == 0 || len(y.digits) == 0 {
		return ErrMalformedOperand
	}
	if len(x.digits) != len(y.digits) {
		return fmt.Errorf("%w: operands hold %d and %d digits", ErrLengthMismatch, len(x.digits), len(y.digits))
	}
	if x.params.base != y.params.base {
		return fmt.Errorf("%w: operands use base %d and %d", ErrBaseMismatch, x.params.base, y.params.base)
	}
	return nil
}

func (x BigInt) clone() BigInt {
	return BigInt{digits: x.Digits(), params: x.params}
}
