package registry

import "github.com/orbital-csg/geomkit/core"

// AddSurface clones proto (so the caller may reuse or discard its own
// copy), stamps userID onto the clone, and appends it to the registry.
// Returns the newly assigned dense index.
//
// Fatal per spec.md 7's construction-error taxonomy: ErrDuplicateSurfaceID
// if userID is already registered, ErrFrozen if CompleteInput has run.
func (r *Registry) AddSurface(userID uint64, proto core.Surface) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return 0, ErrFrozen
	}
	if _, exists := r.surfaceIndexOf[userID]; exists {
		return 0, ErrDuplicateSurfaceID
	}

	stamped := proto.WithUserID(userID)
	index := len(r.surfaces)
	r.surfaces = append(r.surfaces, stamped)
	r.surfaceIndexOf[userID] = index
	return index, nil
}

// NumSurfaces returns the number of registered surfaces.
func (r *Registry) NumSurfaces() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.surfaces)
}

// Surface returns the surface at dense index i.
func (r *Registry) Surface(i int) (core.Surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.surfaces) {
		return nil, ErrSurfaceIndexRange
	}
	return r.surfaces[i], nil
}

// SurfaceByUserID returns the surface registered under userID.
func (r *Registry) SurfaceByUserID(userID uint64) (core.Surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.surfaceIndexOf[userID]
	if !ok {
		return nil, ErrUnknownSurfaceUserID
	}
	return r.surfaces[idx], nil
}

// UserIDOfSurface returns the user-assigned ID of the surface at dense
// index i.
func (r *Registry) UserIDOfSurface(i int) (uint64, error) {
	s, err := r.Surface(i)
	if err != nil {
		return 0, err
	}
	return s.UserID(), nil
}

// SurfaceIndexOfUserID is the inverse of UserIDOfSurface.
func (r *Registry) SurfaceIndexOfUserID(userID uint64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.surfaceIndexOf[userID]
	if !ok {
		return 0, ErrUnknownSurfaceUserID
	}
	return idx, nil
}
