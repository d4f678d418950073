// Package solve runs the directional shortest-path search over a
// junction graph and answers the two maze queries: the minimum cost to
// reach the end, and the number of cells lying on any minimum-cost
// route.
package solve

import (
	"container/heap"

	"github.com/katalvlaran/lvlmaze/corridor"
	"github.com/katalvlaran/lvlmaze/grid"
)

// MinimumCost returns the minimum cost of travelling from the start
// junction (holding the configured initial facing) to the end junction
// with any final facing.
//
// Returns ErrNilGraph for a nil graph and ErrNoPath when Start and End
// are disconnected. The cost table is rebuilt per call, so repeated
// queries on one immutable Graph always agree.
//
// Complexity: O((J·F + E·F) log(J·F)) with J junctions, E edges, F=4
// facings; Space: O(J·F).
func MinimumCost(g *corridor.Graph, opts ...Option) (Cost, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	table := costTable(g, o)
	best := minOverFacings(table[corridor.EndID])
	if best == Inf {
		return 0, ErrNoPath
	}

	return best, nil
}

// costTable computes, for every (junction, facing) state, the minimum
// cost of reaching it from (StartID, o.InitialFacing). Unreachable
// states hold Inf. Dense [NumFacings]Cost rows keep lookups
// cache-friendly; the mapping is a performance choice, not a
// correctness requirement.
func costTable(g *corridor.Graph, o Options) [][grid.NumFacings]Cost {
	table := make([][grid.NumFacings]Cost, g.NodeCount())
	for id := range table {
		for f := range table[id] {
			table[id][f] = Inf
		}
	}
	table[corridor.StartID][o.InitialFacing] = 0

	// Lazy-decrease-key: stale heap entries are skipped on pop by
	// comparing against the table.
	pq := newStatePQ(g.NodeCount())
	heap.Push(pq, &stateItem{cost: 0, node: corridor.StartID, facing: o.InitialFacing})
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*stateItem)
		if cur.cost > table[cur.node][cur.facing] {
			continue
		}

		for _, e := range g.EdgesFrom(cur.node) {
			next := cur.cost + o.scalar(e.Cost.Steps, e.Cost.Turns)
			if e.Leave != cur.facing {
				// Turning in place at the junction before leaving.
				next += o.TurnCost
			}
			if next < table[e.To][e.Arrive] {
				table[e.To][e.Arrive] = next
				heap.Push(pq, &stateItem{cost: next, node: e.To, facing: e.Arrive})
			}
		}
	}

	return table
}

// minOverFacings returns the smallest entry of a table row.
func minOverFacings(row [grid.NumFacings]Cost) Cost {
	best := row[0]
	for _, c := range row[1:] {
		if c < best {
			best = c
		}
	}

	return best
}

// stateItem is one (junction, facing) entry in the priority queue.
// seq is the insertion sequence number used as an explicit tie-break
// so equal-cost pops follow insertion order deterministically.
type stateItem struct {
	cost   Cost
	seq    uint64
	node   int
	facing grid.Facing
}

// statePQ is a min-heap of *stateItem ordered by (cost, seq).
type statePQ struct {
	items []*stateItem
	seq   uint64
}

func newStatePQ(capacity int) *statePQ {
	return &statePQ{items: make([]*stateItem, 0, capacity)}
}

func (pq *statePQ) Len() int { return len(pq.items) }

func (pq *statePQ) Less(i, j int) bool {
	if pq.items[i].cost != pq.items[j].cost {
		return pq.items[i].cost < pq.items[j].cost
	}

	return pq.items[i].seq < pq.items[j].seq
}

func (pq *statePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds x onto the heap, stamping its insertion sequence number.
// Called by heap.Push; x must be a *stateItem.
func (pq *statePQ) Push(x interface{}) {
	item := x.(*stateItem)
	item.seq = pq.seq
	pq.seq++
	pq.items = append(pq.items, item)
}

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
