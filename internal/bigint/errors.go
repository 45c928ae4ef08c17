package bigint

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit reports a character or digit value that is not valid in
	// the configured base.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrZeroModulus reports a zero modulus or divisor, including a modulus
	// with a zero digit at a position the digit-local reduction divides by.
	ErrZeroModulus = errors.New("zero modulus")
	// ErrLengthMismatch reports a digit sequence whose length differs from the
	// fixed capacity, or two operands of different capacity.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrMalformedOperand reports an operand that was not built by a
	// constructor (for example the zero BigInt).
	ErrMalformedOperand = errors.New("malformed operand")
	// ErrBaseMismatch reports operands expressed in different bases.
	ErrBaseMismatch = errors.New("base mismatch")
	// ErrInvalidParams reports a base or size outside the supported range.
	ErrInvalidParams = errors.New("invalid parameters")
)

// DigitError describes a digit that cannot be represented in the configured
// base. It unwraps to [ErrInvalidDigit].
type DigitError struct {
	// Pos is the offset of the offending digit in the input, counted from the
	// start of the input: in characters, most-significant first, for digit
	// strings and in elements, least-significant first, for digit slices.
	Pos int
	// Char is the offending character (decoded as UTF-8, utf8.RuneError for
	// invalid bytes), or 0 when the input was a digit slice.
	Char rune
	// Value is the offending digit value when the input was a digit slice.
	Value int
	// Base is the radix the digit was checked against.
	Base int
}

func (e *DigitError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%v: %q at position %d is not a base-%d digit", ErrInvalidDigit, e.Char, e.Pos, e.Base)
	}
	return fmt.Sprintf("%v: %d at position %d is outside [0, %d)", ErrInvalidDigit, e.Value, e.Pos, e.Base)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }
