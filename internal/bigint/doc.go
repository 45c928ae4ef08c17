// Package bigint implements a fixed-width big-integer engine.
//
// A [BigInt] is a little-endian vector of digits in a configurable base. Every
// value carries the same digit capacity as the [Params] that built it, and all
// arithmetic wraps modulo base^size: carries out of the top digit are dropped
// and subtraction below zero yields the base complement. Values are immutable;
// every operation returns a fresh value and never aliases its operands.
//
// # Operations
//
//   - Construction: [Params.FromInt], [Params.FromUint64], [Params.FromBig],
//     [Params.FromDigitString], [Params.FromDigits].
//   - Core arithmetic: [BigInt.Add], [BigInt.Sub], [BigInt.Mul], [BigInt.Rsh].
//   - Reduction: [BigInt.Mod], [BigInt.Quo], [BigInt.GCD], [BigInt.LCM].
//   - Modular layer: [BigInt.ModAdd], [BigInt.ModSub], [BigInt.ModMul],
//     [BigInt.ModSquare], [BigInt.ModPow].
//
// # Validity domain
//
// [BigInt.Mod] is a digit-local reduction. It divides position j by the
// modulus digit at the same position and pushes a borrow into position j-1.
// The result is the true remainder only for effectively single-limb moduli;
// for general multi-digit moduli it is an approximation, and any modulus with
// a zero digit fails with [ErrZeroModulus]. [BigInt.Quo], [BigInt.GCD],
// [BigInt.LCM] and the whole modular layer inherit that domain. [BigInt.ModMul]
// follows the shape of Barrett reduction but derives its constant from the
// lowest modulus digit only.
//
// Use [BigInt.Big] to compare results against exact arithmetic.
//
// # Errors
//
// Failures are reported with the sentinel errors of this package
// ([ErrInvalidDigit], [ErrZeroModulus], [ErrLengthMismatch],
// [ErrMalformedOperand], [ErrBaseMismatch], [ErrInvalidParams]), possibly
// wrapped with detail. Match them with [errors.Is].
package bigint
