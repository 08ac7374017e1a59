// File: bfs.go
// Role: the walker shared by BFS, Distances and Components.
//
// Determinism:
//   - Neighbors are enqueued in the order the Topology yields them.
//
// Concurrency:
//   - A walker is owned by one call; the graph is only read.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/randnet/core"
)

// walker holds the mutable state of a search. depth doubles as the visited
// set (a vertex is seen iff its depth is not Unreached), so successive runs
// over one walker explore disjoint components.
type walker struct {
	graph  core.Topology
	opts   BFSOptions
	queue  []int
	depth  []int
	parent []int // nil unless trace is set
	order  []int
	trace  bool // record parent links and visit order
}

// newWalker prepares a walker over g; depth must have length
// g.VertexCount() and be filled with Unreached.
func newWalker(g core.Topology, o BFSOptions, depth []int, trace bool) *walker {
	n := len(depth)
	w := &walker{graph: g, opts: o, queue: make([]int, 0, n), depth: depth, trace: trace}
	if trace {
		w.parent = filled(n, Unreached)
		w.order = make([]int, 0, n)
	}

	return w
}

// resolve applies opts over DefaultOptions and surfaces the first invalid one.
func resolve(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On a hook or context error the partial
// result is returned alongside it.
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g core.Topology, startID int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n := g.VertexCount()
	if startID < 0 || startID >= n {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o, filled(n, Unreached), true)
	err = w.run(startID)

	return &BFSResult{Order: w.order, Depth: w.depth, Parent: w.parent}, err
}

// ctxCheckInterval is how many dequeues pass between cancellation checks.
const ctxCheckInterval = 1024

// run explores the component of start. The queue is reused, so after a
// successful run it holds exactly the vertices discovered by this run.
func (w *walker) run(start int) error {
	w.queue = w.queue[:0]
	w.enqueue(start, 0, Unreached)

	for head := 0; head < len(w.queue); head++ {
		if head%ctxCheckInterval == 0 {
			if err := w.opts.Ctx.Err(); err != nil {
				return err
			}
		}

		id := w.queue[head]
		depth := w.depth[id]
		if w.trace {
			w.order = append(w.order, id)
		}
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for nbr := range w.graph.Neighbors(id) {
			if w.depth[nbr] != Unreached || !w.opts.FilterNeighbor(id, nbr) {
				continue
			}
			w.enqueue(nbr, next, id)
		}
	}

	return nil
}

// enqueue records depth (and parent when tracing), fires OnEnqueue and
// appends id to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.depth[id] = d
	if w.trace {
		w.parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
}

// Distances returns hop distances from source to every vertex of g,
// Unreached for vertices in other components. It runs the walker without
// hooks or tracing; dist is reused when it has length n.
//
// Complexity: O(V + E) time, O(V) space.
func Distances(ctx context.Context, g core.Topology, source int, dist []int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, ErrStartVertexNotFound
	}
	if len(dist) != n {
		dist = make([]int, n)
	}
	for i := range dist {
		dist[i] = Unreached
	}

	o, _ := resolve([]Option{WithContext(ctx)})
	if err := newWalker(g, o, dist, false).run(source); err != nil {
		return nil, err
	}

	return dist, nil
}

// filled returns a slice of length n with every element set to v.
func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
