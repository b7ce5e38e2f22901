package source

import "github.com/arloliu/parfill/types"

// Index returns the index itself.
type Index struct{}

var _ types.ValueSource = Index{}

// NewIndex creates the identity value source.
//
// Returns:
//   - Index: Source with value_at(i) = i
func NewIndex() Index {
	return Index{}
}

// ValueAt returns i.
func (Index) ValueAt(i int) (int, error) {
	return i, nil
}

// Affine computes a*i + b.
type Affine struct {
	A int
	B int
}

var _ types.ValueSource = Affine{}

// NewAffine creates an affine value source.
//
// Parameters:
//   - a: Slope
//   - b: Offset
//
// Returns:
//   - Affine: Source with value_at(i) = a*i + b
//
// Example:
//
//	src := source.NewAffine(2, 1) // 1, 3, 5, 7, ...
func NewAffine(a, b int) Affine {
	return Affine{A: a, B: b}
}

// ValueAt returns a*i + b.
func (s Affine) ValueAt(i int) (int, error) {
	return s.A*i + s.B, nil
}

// Polynomial evaluates a polynomial in the index with Horner's method.
type Polynomial struct {
	coeffs []int
}

var _ types.ValueSource = (*Polynomial)(nil)

// NewPolynomial creates a polynomial value source.
//
// Coefficients are given lowest degree first; no coefficients yields the
// zero polynomial. The slice is copied.
//
// Parameters:
//   - coeffs: c0, c1, c2, ... for c0 + c1*i + c2*i^2 + ...
//
// Returns:
//   - *Polynomial: Initialized polynomial source
//
// Example:
//
//	src := source.NewPolynomial(0, 0, 1) // i*i
func NewPolynomial(coeffs ...int) *Polynomial {
	return &Polynomial{coeffs: append([]int(nil), coeffs...)}
}

// Degree returns the degree of the polynomial (-1 for the zero polynomial).
func (s *Polynomial) Degree() int {
	return len(s.coeffs) - 1
}

// ValueAt evaluates the polynomial at i.
func (s *Polynomial) ValueAt(i int) (int, error) {
	v := 0
	for k := len(s.coeffs) - 1; k >= 0; k-- {
		v = v*i + s.coeffs[k]
	}

	return v, nil
}
