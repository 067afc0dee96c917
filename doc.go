// Package lvmat is a small, generic dense-matrix toolkit.
//
// What is in the box?
//
//	matrix/       - Dense[T]: construction, bounds-checked access, Add/Sub/Mul/Scale,
//	                Pow by repeated squaring, whitespace-delimited parsing and
//	                "| a b |" formatting
//	cmd/matcalc/  - reads two matrices from stdin and prints A*B, A+B, A-B, A^p, s*A
//
// Why lvmat?
//
//   - One element-type parameter: ints, uints, floats, complex, named types
//   - Every failure is an error you can match with errors.Is, never a silent default
//   - Operands are never mutated; results never alias inputs
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]int{{1, 2}, {3, 4}})
//	p, _ := a.Pow(3)
//	fmt.Print(p)
//	// | 37 54 |
//	// | 81 118 |
//
//	go get github.com/katalvlaran/lvmat
package lvmat
