package core

import "sync"

// EntryRegistry groups entry files by extension tag. Insertion order is kept
// per tag and decides the order assets appear in the rendered page.
// Duplicates are kept as added.
type EntryRegistry struct {
	mu      sync.RWMutex
	entries map[string][]string
}

func NewEntryRegistry() *EntryRegistry {
	return &EntryRegistry{
		entries: make(map[string][]string),
	}
}

func (r *EntryRegistry) Add(paths ...string) *EntryRegistry {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, path := range paths {
		tag := ExtensionTag(path)
		r.entries[tag] = append(r.entries[tag], path)
	}
	return r
}

// Has reports whether path was registered verbatim. No path cleaning is done.
func (r *EntryRegistry) Has(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.entries[ExtensionTag(path)]
	if !ok {
		return false
	}
	for _, entry := range list {
		if entry == path {
			return true
		}
	}
	return false
}

func (r *EntryRegistry) Tag(tag string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.entries[tag]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

func (r *EntryRegistry) Snapshot() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string][]string, len(r.entries))
	for tag, list := range r.entries {
		snapshot[tag] = append([]string(nil), list...)
	}
	return snapshot
}
