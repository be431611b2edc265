package vector

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Registry hands out one FlatIndex per tenant, loading from disk on first
// access. Constructed once at startup and passed by reference.
type Registry struct {
	mu      sync.Mutex
	baseDir string
	dim     int
	indexes map[string]*FlatIndex
}

func NewRegistry(baseDir string, dim int) *Registry {
	return &Registry{
		baseDir: baseDir,
		dim:     dim,
		indexes: make(map[string]*FlatIndex),
	}
}

// Get returns the tenant's index, creating and loading it on first use.
func (r *Registry) Get(tenant string) (*FlatIndex, error) {
	if tenant == "" {
		return nil, fmt.Errorf("tenant must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.indexes[tenant]; ok {
		return idx, nil
	}

	idx := NewFlatIndex(filepath.Join(r.baseDir, tenant), r.dim)
	if err := idx.Load(); err != nil {
		return nil, fmt.Errorf("load index for tenant %s: %w", tenant, err)
	}
	r.indexes[tenant] = idx
	return idx, nil
}
