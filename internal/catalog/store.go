package catalog

import "sync/atomic"

// Store publishes the current Snapshot to concurrent readers.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore(s *Snapshot) *Store {
	st := &Store{}
	st.current.Store(s)
	return st
}

// Current returns the live snapshot, or nil if none was loaded.
func (st *Store) Current() *Snapshot {
	return st.current.Load()
}

// Replace publishes s and returns the snapshot it replaced.
func (st *Store) Replace(s *Snapshot) *Snapshot {
	return st.current.Swap(s)
}
