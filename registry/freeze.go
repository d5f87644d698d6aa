package registry

// CompleteInput freezes the registry: subsequent AddSurface/AddCell calls
// return ErrFrozen. Per spec.md 9's Open Question, this actually enforces
// its documented intent (the original routine was a no-op that never
// rejected late insertion); idempotent if called more than once.
func (r *Registry) CompleteInput() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether CompleteInput has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}
