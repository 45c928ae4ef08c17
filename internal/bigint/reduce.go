package bigint

import "fmt"

// floorDiv and floorMod round toward negative infinity; m is positive.
func floorDiv(a, m int64) int64 {
	q := a / m
	if a%m < 0 {
		q--
	}
	return q
}

func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Mod reduces x by m with a digit-local algorithm. Walking from the top digit
// down, position j is reduced modulo m's digit at j, and the quotient of the
// two-digit window (x[j-1] + x[j]*base) by that same divisor is borrowed from
// position j-1.
//
// The result is the true remainder only when m is effectively a single limb.
// A zero m, or an m with a zero digit at any position, fails with
// ErrZeroModulus. A zero x yields zero without inspecting m's digits.
func (x BigInt) Mod(m BigInt) (BigInt, error) {
	if err := x.check(m); err != nil {
		return BigInt{}, err
	}
	return x.mod(m)
}

func (x BigInt) mod(m BigInt) (BigInt, error) {
	if m.IsZero() {
		return BigInt{}, ErrZeroModulus
	}
	if x.IsZero() {
		return x.params.Zero(), nil
	}

	base := int64(x.params.base)
	r := make([]int64, len(x.digits))
	for i, d := range x.digits {
		r[i] = int64(d)
	}
	for j := len(r) - 1; j >= 0; j-- {
		mj := int64(m.digits[j])
		if mj == 0 {
			return BigInt{}, fmt.Errorf("%w: modulus digit %d is zero", ErrZeroModulus, j)
		}
		r[j] = floorMod(r[j], mj)
		if j > 0 {
			r[j-1] -= floorDiv(r[j-1]+r[j]*base, mj)
		}
	}

	z := x.params.Zero()
	for i, v := range r {
		z.digits[i] = int(v)
	}
	return z, nil
}

// Quo divides x by d under the same digit-local assumption as Mod: a short
// division from the top digit where position j is divided by d's digit at j.
// Quotient digits are then carried so that every digit is below the base.
// When every digit of d holds the same value k, Quo is floor division by k.
//
// A zero d, or a d with a zero digit, fails with ErrZeroModulus. A zero x
// yields zero.
func (x BigInt) Quo(d BigInt) (BigInt, error) {
	if err := x.check(d); err != nil {
		return BigInt{}, err
	}
	return x.quo(d)
}

func (x BigInt) quo(d BigInt) (BigInt, error) {
	if d.IsZero() {
		return BigInt{}, ErrZeroModulus
	}
	if x.IsZero() {
		return x.params.Zero(), nil
	}

	base := int64(x.params.base)
	q := make([]int64, len(x.digits))
	var rem int64
	for j := len(x.digits) - 1; j >= 0; j-- {
		dj := int64(d.digits[j])
		if dj == 0 {
			return BigInt{}, fmt.Errorf("%w: divisor digit %d is zero", ErrZeroModulus, j)
		}
		cur := rem*base + int64(x.digits[j])
		q[j] = cur / dj
		rem = cur % dj
	}

	z := x.params.Zero()
	var carry int64
	for k, v := range q {
		t := v + carry
		z.digits[k] = int(t % base)
		carry = t / base
	}
	return z, nil
}

// GCD runs the Euclidean loop (a, b) = (b, a mod b) with Mod as the reduction
// step until b is zero, and returns a. GCD(x, 0) is x.
//
// The loop always terminates: Mod leaves every digit strictly below the
// corresponding divisor digit, so each step lowers every digit of b.
func (x BigInt) GCD(y BigInt) (BigInt, error) {
	if err := x.check(y); err != nil {
		return BigInt{}, err
	}
	return x.gcd(y)
}

func (x BigInt) gcd(y BigInt) (BigInt, error) {
	a, b := x, y
	for !b.IsZero() {
		r, err := a.mod(b)
		if err != nil {
			return BigInt{}, err
		}
		a, b = b, r
	}
	return a.clone(), nil
}

// LCM returns x*y divided by GCD(x, y) using Quo. When the GCD is zero the
// least common multiple is undefined and LCM returns zero.
func (x BigInt) LCM(y BigInt) (BigInt, error) {
	if err := x.check(y); err != nil {
		return BigInt{}, err
	}
	g, err := x.gcd(y)
	if err != nil {
		return BigInt{}, err
	}
	if g.IsZero() {
		return x.params.Zero(), nil
	}
	return x.mul(y).quo(g)
}
