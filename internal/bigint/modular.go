package bigint

import (
	"fmt"
	"math/big"
)

// barrettShift is the reduction parameter k of the Barrett constant
// base^(k*size) / m.
const barrettShift = 2

func checkAll(x BigInt, ys ...BigInt) error {
	for _, y := range ys {
		if err := x.check(y); err != nil {
			return err
		}
	}
	return nil
}

// ModAdd returns Mod(x + y, m).
func (x BigInt) ModAdd(y, m BigInt) (BigInt, error) {
	if err := checkAll(x, y, m); err != nil {
		return BigInt{}, err
	}
	return x.add(y).mod(m)
}

// ModSub returns Mod(x - y, m), where the difference wraps as in Sub.
func (x BigInt) ModSub(y, m BigInt) (BigInt, error) {
	if err := checkAll(x, y, m); err != nil {
		return BigInt{}, err
	}
	return x.sub(y).mod(m)
}

// ModMul returns x*y reduced by m in the shape of Barrett reduction:
//
//	mu = base^(2*size) / m[0]
//	q1 = (x*y) >> 2*size limbs
//	q2 = mu * (q1 * m)
//	r  = Mod(x*y - q2*m, m)
//
// The constant uses only the least-significant digit of m, so the estimate is
// meaningful only for single-limb moduli. A zero m, or an m whose lowest digit
// is zero, fails with ErrZeroModulus.
func (x BigInt) ModMul(y, m BigInt) (BigInt, error) {
	if err := checkAll(x, y, m); err != nil {
		return BigInt{}, err
	}
	return x.modMul(y, m)
}

// ModSquare returns ModMul(x, x, m).
func (x BigInt) ModSquare(m BigInt) (BigInt, error) {
	if err := x.check(m); err != nil {
		return BigInt{}, err
	}
	return x.modMul(x, m)
}

func (x BigInt) modMul(y, m BigInt) (BigInt, error) {
	if m.IsZero() {
		return BigInt{}, ErrZeroModulus
	}
	if m.digits[0] == 0 {
		return BigInt{}, fmt.Errorf("%w: modulus digit 0 is zero", ErrZeroModulus)
	}
	mu := x.params.barrettConstant(m.digits[0])
	xy := x.mul(y)
	q1 := xy.rsh(uint(barrettShift * len(x.digits)))
	q2 := mu.mul(q1.mul(m))
	return xy.sub(q2.mul(m)).mod(m)
}

// barrettConstant returns base^(2*size) / d truncated to size digits.
func (p Params) barrettConstant(d int) BigInt {
	num := new(big.Int).Exp(big.NewInt(int64(p.base)), big.NewInt(int64(barrettShift*p.size)), nil)
	return p.FromBig(num.Quo(num, big.NewInt(int64(d))))
}

// ModPow computes x^e reduced by m with right-to-left square-and-multiply.
// The exponent is a native integer. The accumulator starts at One and the
// running power at Mod(x, m); each set bit multiplies and reduces the
// accumulator, and the running power is squared and reduced for the next bit.
//
// ModPow(x, 0, m) is One for any non-zero m.
func (x BigInt) ModPow(e uint64, m BigInt) (BigInt, error) {
	if err := x.check(m); err != nil {
		return BigInt{}, err
	}
	if m.IsZero() {
		return BigInt{}, ErrZeroModulus
	}
	acc := x.params.One()
	if e == 0 {
		return acc, nil
	}

	p, err := x.mod(m)
	if err != nil {
		return BigInt{}, err
	}
	for {
		if e&1 == 1 {
			if acc, err = acc.mul(p).mod(m); err != nil {
				return BigInt{}, err
			}
		}
		e >>= 1
		if e == 0 {
			return acc, nil
		}
		if p, err = p.mul(p).mod(m); err != nil {
			return BigInt{}, err
		}
	}
}
