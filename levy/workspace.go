package levy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Buffer slots used by the samplers.
const (
	bufY = iota
	bufZ
	bufA
	bufSkew
	bufCorr
	bufG
	nbufs
)

// Workspace holds preallocated buffers for repeated simulations with a
// fixed increment dimension m. It is a single-owner resource: exactly one
// in-flight call may use it at a time, and a matrix returned from a call
// that used the workspace stays valid only until the next such call.
//
// The term count is free to change between calls; buffers are re-shaped
// per call and keep their backing storage whenever it is large enough.
type Workspace struct {
	m    int
	bufs [nbufs]mat.Dense
	rw   mat.VecDense
}

// NewWorkspace returns a workspace for increments of dimension m.
func NewWorkspace(m int) (*Workspace, error) {
	if m < 1 {
		return nil, fmt.Errorf("workspace dimension m=%d must be positive: %w", m, ErrInvalidParameter)
	}
	return &Workspace{m: m}, nil
}

// Dim returns the increment dimension the workspace was built for.
func (ws *Workspace) Dim() int { return ws.m }

// check rejects an increment the workspace was not sized for. A nil
// workspace accepts everything and allocates fresh buffers instead.
func (ws *Workspace) check(m int) error {
	if ws == nil {
		return nil
	}
	if ws.m != m {
		return fmt.Errorf("workspace sized for m=%d, increment has m=%d: %w", ws.m, m, ErrShape)
	}
	return nil
}

// buf returns buffer i re-shaped to r x c. Contents are unspecified; every
// user overwrites the buffer before reading it.
func (ws *Workspace) buf(i, r, c int) *mat.Dense {
	if ws == nil {
		return mat.NewDense(r, c, nil)
	}
	d := &ws.bufs[i]
	d.Reset()
	d.ReuseAs(r, c)
	return d
}

// vec returns the shared length-n vector buffer.
func (ws *Workspace) vec(n int) *mat.VecDense {
	if ws == nil {
		return mat.NewVecDense(n, nil)
	}
	ws.rw.Reset()
	ws.rw.ReuseAsVec(n)
	return &ws.rw
}
