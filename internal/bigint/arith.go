package bigint

// Add returns x + y modulo base^size. The carry out of the top digit is
// discarded.
func (x BigInt) Add(y BigInt) (BigInt, error) {
	if err := x.check(y); err != nil {
		return BigInt{}, err
	}
	return x.add(y), nil
}

func (x BigInt) add(y BigInt) BigInt {
	z := x.params.Zero()
	base := x.params.base
	carry := 0
	for i, d := range x.digits {
		s := d + y.digits[i] + carry
		z.digits[i] = s % base
		carry = s / base
	}
	return z
}

// Sub returns x - y modulo base^size. When y exceeds x the result is the
// base complement of the difference.
func (x BigInt) Sub(y BigInt) (BigInt, error) {
	if err := x.check(y); err != nil {
		return BigInt{}, err
	}
	return x.sub(y), nil
}

func (x BigInt) sub(y BigInt) BigInt {
	z := x.params.Zero()
	base := x.params.base
	borrow := 0
	for i, d := range x.digits {
		diff := d - y.digits[i] - borrow
		if diff < 0 {
			diff += base
			borrow = 1
		} else {
			borrow = 0
		}
		z.digits[i] = diff
	}
	return z
}

// Mul returns x * y modulo base^size using schoolbook multiplication.
// Products landing at or beyond position size are dropped.
func (x BigInt) Mul(y BigInt) (BigInt, error) {
	if err := x.check(y); err != nil {
		return BigInt{}, err
	}
	return x.mul(y), nil
}

func (x BigInt) mul(y BigInt) BigInt {
	n := len(x.digits)
	ylen := y.Len()
	acc := make([]int64, n)
	for i, xd := range x.digits {
		if xd == 0 {
			continue
		}
		xi := int64(xd)
		lim := n - i
		if ylen < lim {
			lim = ylen
		}
		col := acc[i : i+lim]
		for j := range col {
			col[j] += xi * int64(y.digits[j])
		}
	}

	// Folding carries once per column yields the same digits as folding after
	// every product: both are the unique base-b form of the sum mod base^size.
	z := x.params.Zero()
	base := int64(x.params.base)
	var carry int64
	for k, v := range acc {
		t := v + carry
		z.digits[k] = int(t % base)
		carry = t / base
	}
	return z
}

// Rsh drops the k least-significant digits, which divides by base^k. This is a
// limb shift regardless of the base. Shifting by size or more yields zero.
func (x BigInt) Rsh(k uint) (BigInt, error) {
	if len(x.digits) == 0 {
		return BigInt{}, ErrMalformedOperand
	}
	return x.rsh(k), nil
}

func (x BigInt) rsh(k uint) BigInt {
	z := x.params.Zero()
	if k < uint(len(x.digits)) {
		copy(z.digits, x.digits[k:])
	}
	return z
}
