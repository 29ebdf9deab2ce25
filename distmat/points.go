package distmat

// Points is a read-only row-major view over pooled coordinate data:
// n observation vectors of dimension d stored in one flat slice of
// length n·d, row i occupying data[i·d : (i+1)·d].
//
// The view owns a private copy of the caller's buffer, so the caller is
// free to reuse or mutate the original slice after construction.
type Points struct {
	n, d int       // number of points and coordinate dimension
	data []float64 // flat row-major storage, length == n*d
}

// NewPoints builds a Points view from a flat buffer of n·d values.
// When byRow is true the buffer is already row-major (point i contiguous);
// when false it is column-major (coordinate k of all points contiguous)
// and is transposed into row order during the copy.
//
// Returns ErrBadShape if n or d is not positive, ErrBufferSize if the
// buffer length differs from n·d.
// Complexity: O(n·d) time and memory.
func NewPoints(data []float64, n, d int, byRow bool) (*Points, error) {
	if n <= 0 || d <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != n*d {
		return nil, ErrBufferSize
	}

	rows := make([]float64, n*d)
	if byRow {
		copy(rows, data)
	} else {
		// Column-major input: element (i,k) lives at data[k*n+i].
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				rows[i*d+k] = data[k*n+i]
			}
		}
	}

	return &Points{n: n, d: d, data: rows}, nil
}

// N returns the number of points in the view.
func (p *Points) N() int { return p.n }

// Dim returns the coordinate dimension of each point.
func (p *Points) Dim() int { return p.d }

// Row returns the coordinates of point i as a subslice of the backing
// storage. The slice aliases internal data and must not be mutated.
// Out-of-range indices panic via the runtime bounds check, matching the
// read-only, hot-path contract of the statistic kernels.
func (p *Points) Row(i int) []float64 {
	return p.data[i*p.d : (i+1)*p.d]
}

// At returns coordinate k of point i.
func (p *Points) At(i, k int) float64 {
	return p.data[i*p.d+k]
}
