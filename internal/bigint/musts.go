package bigint

import "fmt"

// MustNewParams is like NewParams but panics on invalid input.
func MustNewParams(base, size int) Params {
	p, err := NewParams(base, size)
	if err != nil {
		panic(fmt.Sprintf("MustNewParams(%v, %v) failed: %v", base, size, err))
	}
	return p
}

// MustFromDigitString is like FromDigitString but panics if s cannot be
// parsed.
func (p Params) MustFromDigitString(s string) BigInt {
	x, err := p.FromDigitString(s)
	if err != nil {
		panic(fmt.Sprintf("MustFromDigitString(%q) failed: %v", s, err))
	}
	return x
}

// MustFromDigits is like FromDigits but panics if the digits are invalid.
func (p Params) MustFromDigits(digits []int) BigInt {
	x, err := p.FromDigits(digits)
	if err != nil {
		panic(fmt.Sprintf("MustFromDigits(%v) failed: %v", digits, err))
	}
	return x
}
