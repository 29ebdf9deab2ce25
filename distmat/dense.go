package distmat

import "fmt"

// Dense is an n×n symmetric distance matrix with a zero diagonal, stored
// row-major in one flat slice for cache friendliness. Matrices are built
// once by the package builders and are read-only afterwards: only the
// constructors write into the backing slice.
type Dense struct {
	n    int       // matrix order
	data []float64 // flat backing storage, length == n*n
}

// NewDense allocates an n×n zero matrix.
// Returns ErrBadShape if n is not positive.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix order.
func (m *Dense) N() int { return m.n }

// At returns the distance between points i and j. Indices are not
// re-validated here: At sits on the O(B·N²) statistic hot path and relies
// on the runtime bounds check, mirroring the read-only contract of Dense.
func (m *Dense) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i as a subslice of the backing storage. The slice
// aliases internal data and must not be mutated.
func (m *Dense) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// set writes v into both (i,j) and (j,i), preserving symmetry.
// Only the builders call it; Dense is immutable once published.
func (m *Dense) set(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}
