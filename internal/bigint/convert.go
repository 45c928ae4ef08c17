package bigint

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// digitValue maps 0-9, a-z and A-Z to 0..35.
func digitValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// FromDigitString parses s, most-significant digit first. Each character is
// one digit of the base (0-9, then A-Z case-insensitively). s must hold
// exactly size characters; pad with leading zeros.
func (p Params) FromDigitString(s string) (BigInt, error) {
	z := p.Zero()
	if len(s) != len(z.digits) {
		return BigInt{}, fmt.Errorf("%w: got %d characters, want %d", ErrLengthMismatch, len(s), len(z.digits))
	}
	last := len(s) - 1
	for i := range z.digits {
		c := s[last-i]
		d, ok := digitValue(c)
		if !ok || d >= z.params.base {
			return BigInt{}, charError(s, last-i, z.params.base)
		}
		z.digits[i] = d
	}
	return z, nil
}

// charError reports the character that contains byte off of s, with its
// position counted in characters so multi-byte input reads naturally.
func charError(s string, off, base int) *DigitError {
	start := off
	for back := off; back >= 0 && off-back < utf8.UTFMax; back-- {
		if !utf8.RuneStart(s[back]) {
			continue
		}
		if _, size := utf8.DecodeRuneInString(s[back:]); back+size > off {
			start = back
		}
		break
	}
	r, _ := utf8.DecodeRuneInString(s[start:])
	return &DigitError{Pos: utf8.RuneCountInString(s[:start]), Char: r, Base: base}
}

// DigitString renders every digit, most-significant first, as its uppercase
// hexadecimal text. The rendering is one character per digit, and therefore
// reversible, only for bases up to 16; larger digits expand to several
// characters.
func (x BigInt) DigitString() string {
	var sb strings.Builder
	sb.Grow(len(x.digits))
	for i := len(x.digits) - 1; i >= 0; i-- {
		d := x.digits[i]
		if d < len(hexDigits) {
			sb.WriteByte(hexDigits[d])
			continue
		}
		sb.WriteString(strings.ToUpper(strconv.FormatInt(int64(d), 16)))
	}
	return sb.String()
}

// String implements fmt.Stringer and returns DigitString.
func (x BigInt) String() string { return x.DigitString() }

// TrimmedString returns DigitString without leading zeros, keeping at least
// one digit.
func (x BigInt) TrimmedString() string {
	s := strings.TrimLeft(x.DigitString(), "0")
	if s == "" {
		return "0"
	}
	return s
}
