// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// operation, validation) and for carrying the underlying engine cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Types that carry a cause implement Unwrap() to support errors.Is() and errors.As(),
// so callers can still branch on engine sentinels such as bigint.ErrZeroModulus.
package apperrors
