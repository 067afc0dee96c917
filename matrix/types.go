// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// This file contains ONLY the type-set constraints used by Dense and the
// kernels. Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Signed is the set of signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Element is any type a Dense can hold: it supports +, -, * and conversion
// from the untyped constants 0 (additive identity) and 1 (diagonal of I).
// Named types are accepted through their underlying kind.
type Element interface {
	Signed | Unsigned | Float | Complex
}
