package config

// Index gives map-style access to a Store. Every operation behaves exactly like the
// corresponding Store method.
type Index struct {
	store *Store
}

// Index returns a map-style view of the store.
func (s *Store) Index() Index {
	return Index{store: s}
}

// Exists reports whether key holds a non-nil value.
func (i Index) Exists(key string) bool {
	return i.store.Has(key)
}

// Get returns the value at key, or nil.
func (i Index) Get(key string) any {
	return i.store.Get(key)
}

// Put stores value at key.
func (i Index) Put(key string, value any) {
	i.store.Set(key, value)
}

// Delete sets key to nil. The key itself stays in its mapping, so Exists reports
// false afterwards while the parent mapping still lists it.
func (i Index) Delete(key string) {
	i.store.Set(key, nil)
}
