// Package matrix offers a generic dense matrix, Dense[T], and the small
// algebra built on it.
//
// The matrix package provides:
//
//   - Construction by shape (NewDense, NewZeros, NewIdentity) or from row
//     data (NewDenseFromRows), with explicit copy (Clone, CopyFrom) and
//     ownership transfer (Move).
//   - Bounds-checked access (At, Set, Row) that fails with ErrOutOfRange
//     instead of returning a made-up value.
//   - Pure arithmetic (Add, Sub, Mul, Scale) that never mutates operands.
//   - Integer powers by repeated squaring (Pow), with Pow(A, 0) = I.
//   - Whitespace-delimited text input (Parse, ParseDense) and a decorated
//     "| a b |" output for humans (WriteTo, Format, String).
//
// T may be any integer, float or complex kind, including named types.
// A Dense is not safe for concurrent mutation; distinct values never share
// storage.
//
// See the examples in this package for usage patterns.
package matrix
