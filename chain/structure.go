// Package chain classifies the structure of a transition matrix:
// communicating classes, their periods and recurrence, and absorbing states.
//
// Classification reads A(i,j) as the probability of moving from state j to
// state i and thresholds entries against epsilon, so any square matrix is
// accepted; validity as a stochastic matrix is a separate concern.
package chain

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// classifier encapsulates mutable classification state.
type classifier struct {
	n    int
	eps  float64
	adj  [][]int // adj[u] lists v with an edge u→v, ascending
	radj [][]int // radj[v] lists u with an edge u→v, ascending
	res  *Structure
}

// Classify decomposes the chain described by a into communicating classes
// and derives their periods, their recurrence, and the absorbing states,
// applying any number of functional Options.
// Returns ErrNilMatrix or ErrNonSquare for invalid input and
// ErrOptionViolation for bad options. A 0×0 matrix yields an empty
// Structure.
//
// Complexity: O(n²) to threshold the matrix plus O(n + e) for the
// traversal passes, e being the number of retained edges.
func Classify(a mat.Matrix, opts ...Option) (*Structure, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate shape
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	// Prepare classifier
	w := &classifier{
		n:    r,
		eps:  o.Epsilon,
		adj:  make([][]int, r),
		radj: make([][]int, r),
		res:  &Structure{},
	}

	w.buildAdjacency(a)
	w.condense(w.postorder())
	w.markRecurrence()
	w.findPeriods()
	w.findAbsorbing(a)

	return w.res, nil
}

// buildAdjacency thresholds every entry once, recording successors and
// predecessors in ascending order. Edge u→v exists when a.At(v, u) > eps,
// matching the column convention: column u holds the moves out of u.
func (w *classifier) buildAdjacency(a mat.Matrix) {
	for u := 0; u < w.n; u++ {
		for v := 0; v < w.n; v++ {
			if a.At(v, u) > w.eps {
				w.adj[u] = append(w.adj[u], v)
				w.radj[v] = append(w.radj[v], u)
			}
		}
	}
}

// postorder runs an iterative depth-first pass over the forward graph,
// returning vertices in order of completion.
func (w *classifier) postorder() []int {
	order := make([]int, 0, w.n)
	seen := make([]bool, w.n)
	type frame struct{ u, next int }
	stack := make([]frame, 0, w.n)
	for s := 0; s < w.n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		stack = append(stack, frame{u: s})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(w.adj[top.u]) {
				v := w.adj[top.u][top.next]
				top.next++
				if !seen[v] {
					seen[v] = true
					stack = append(stack, frame{u: v})
				}

				continue
			}
			order = append(order, top.u)
			stack = stack[:len(stack)-1]
		}
	}

	return order
}

// condense walks the reverse graph in reverse completion order; each tree
// discovered there is one communicating class. Classes are then ordered by
// smallest member and Index is rebuilt to match.
func (w *classifier) condense(order []int) {
	comp := make([]int, w.n)
	for i := range comp {
		comp[i] = -1
	}
	classes := make([][]int, 0)
	for idx := len(order) - 1; idx >= 0; idx-- {
		root := order[idx]
		if comp[root] != -1 {
			continue
		}
		members := make([]int, 0, 1)
		stack := []int{root}
		comp[root] = len(classes)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, u)
			for _, v := range w.radj[u] {
				if comp[v] == -1 {
					comp[v] = len(classes)
					stack = append(stack, v)
				}
			}
		}
		sort.Ints(members)
		classes = append(classes, members)
	}
	sort.Slice(classes, func(x, y int) bool { return classes[x][0] < classes[y][0] })

	w.res.Classes = classes
	w.res.Index = make([]int, w.n)
	for ci, members := range classes {
		for _, s := range members {
			w.res.Index[s] = ci
		}
	}
}

// markRecurrence flags each class with no transition leaving it. In a
// finite chain a class is recurrent exactly when it is closed.
func (w *classifier) markRecurrence() {
	rec := make([]bool, len(w.res.Classes))
	for ci := range rec {
		rec[ci] = true
	}
	for u := 0; u < w.n; u++ {
		for _, v := range w.adj[u] {
			if w.res.Index[u] != w.res.Index[v] {
				rec[w.res.Index[u]] = false
			}
		}
	}
	w.res.Recurrent = rec
}

// findPeriods labels each class breadth-first from its smallest member and
// folds every intra-class edge into a gcd of level differences. A class
// containing no cycle keeps period 0.
func (w *classifier) findPeriods() {
	depth := make([]int, w.n)
	for i := range depth {
		depth[i] = -1
	}
	w.res.Period = make([]int, len(w.res.Classes))
	for ci, members := range w.res.Classes {
		root := members[0]
		depth[root] = 0
		queue := make([]int, 0, len(members))
		queue = append(queue, root)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range w.adj[u] {
				if w.res.Index[v] != ci || depth[v] != -1 {
					continue
				}
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
		g := 0
		for _, u := range members {
			for _, v := range w.adj[u] {
				if w.res.Index[v] == ci {
					g = gcd(g, depth[u]+1-depth[v])
				}
			}
		}
		w.res.Period[ci] = g
	}
}

// findAbsorbing scans the diagonal for self-transitions within eps of 1.
func (w *classifier) findAbsorbing(a mat.Matrix) {
	for i := 0; i < w.n; i++ {
		if math.Abs(a.At(i, i)-1) <= w.eps {
			w.res.Absorbing = append(w.res.Absorbing, i)
		}
	}
}

// gcd folds b into a, treating 0 as the identity and normalizing signs.
func gcd(a, b int) int {
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
