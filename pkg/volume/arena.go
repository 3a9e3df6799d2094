package volume

// Handle identifies a dataset inside an Arena. Views hold handles rather
// than dataset pointers, so every access goes back through the arena and a
// stale alias can never be held across arena growth.
type Handle int

// Arena owns all datasets of a session
type Arena struct {
	datasets []*Dataset
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{datasets: make([]*Dataset, 0)}
}

// Add stores a dataset and returns its handle
func (a *Arena) Add(ds *Dataset) Handle {
	a.datasets = append(a.datasets, ds)
	return Handle(len(a.datasets) - 1)
}

// Get resolves a handle to its dataset. Panics on an invalid handle, since
// handles are only ever produced by Add.
func (a *Arena) Get(h Handle) *Dataset {
	return a.datasets[h]
}

// Len returns the number of datasets in the arena
func (a *Arena) Len() int {
	return len(a.datasets)
}
