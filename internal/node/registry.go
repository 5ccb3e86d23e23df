package node

import (
	"math/rand/v2"
	"sync"
)

// Registry maintains the set of currently announced nodes. Every operation
// serializes on a single mutex over the whole collection; entries keep
// insertion order and duplicate (address, port) pairs are allowed.
type Registry struct {
	mu    sync.Mutex
	nodes []Node
	rng   *rand.Rand
}

// NewRegistry creates an empty Registry with its own random source, so
// independent instances do not share a selection stream.
func NewRegistry() *Registry {
	return &Registry{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Register appends the node to the registry. The reserved AddressV6 field
// is cleared so stored entries stay normalized. Registering the same
// (address, port) pair again produces a second entry.
func (r *Registry) Register(n Node) {
	n.AddressV6 = ""

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes = append(r.nodes, n)
}

// Deregister removes every entry matching the node's (address, port) pair.
// Deregistering a pair that was never registered is a no-op.
func (r *Registry) Deregister(n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.nodes[:0]
	for _, entry := range r.nodes {
		if !entry.Matches(n) {
			kept = append(kept, entry)
		}
	}
	r.nodes = kept
}

// PickRandom returns a copy of one entry drawn uniformly over the
// current collection, or false when the registry is empty. Duplicate
// registrations weight the draw; no dedup pass is performed.
func (r *Registry) PickRandom() (Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.nodes) == 0 {
		return Node{}, false
	}
	return r.nodes[r.rng.IntN(len(r.nodes))], true
}

// Len returns the number of entries currently registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}
