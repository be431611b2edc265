package vector

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const (
	indexFileName    = "index.bin"
	metadataFileName = "metadata.json"
)

// Metadata travels with each vector and is returned on search hits.
type Metadata map[string]interface{}

// SearchResult is one index hit. Score is 1/(1+d) over squared L2 distance,
// so higher is closer.
type SearchResult struct {
	Index    int
	Distance float32
	Score    float64
	Metadata Metadata
}

// FlatIndex is an append-only brute-force L2 index over fixed-dimension
// vectors. The vectors and metadata slices always have equal length.
type FlatIndex struct {
	mu       sync.RWMutex
	dim      int
	dir      string
	vectors  [][]float32
	metadata []Metadata
}

func NewFlatIndex(dir string, dim int) *FlatIndex {
	return &FlatIndex{
		dim: dim,
		dir: dir,
	}
}

// Dimension returns the fixed vector dimension of the index.
func (idx *FlatIndex) Dimension() int {
	return idx.dim
}

// Len returns the number of stored vectors.
func (idx *FlatIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.vectors)
}

// Add appends vectors with their metadata. Counts must match and every
// vector must have the index dimension; on error nothing is appended.
func (idx *FlatIndex) Add(vectors [][]float32, metadata []Metadata) error {
	if len(vectors) != len(metadata) {
		return fmt.Errorf("vector count %d does not match metadata count %d", len(vectors), len(metadata))
	}
	for i, v := range vectors {
		if len(v) != idx.dim {
			return fmt.Errorf("vector %d has dimension %d, index expects %d", i, len(v), idx.dim)
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.vectors = append(idx.vectors, vectors...)
	idx.metadata = append(idx.metadata, metadata...)
	return nil
}

// Search scans a 2k candidate window of nearest vectors, drops candidates
// whose metadata does not exactly match every filter, and returns at most k
// results in ascending distance order. No backfill happens when the filter
// eats into the window.
func (idx *FlatIndex) Search(query []float32, k int, filters Metadata) ([]SearchResult, error) {
	if len(query) != idx.dim {
		return nil, fmt.Errorf("query has dimension %d, index expects %d", len(query), idx.dim)
	}
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.vectors) == 0 {
		return nil, nil
	}

	candidates := make([]SearchResult, 0, len(idx.vectors))
	for i, v := range idx.vectors {
		d := squaredL2(query, v)
		candidates = append(candidates, SearchResult{
			Index:    i,
			Distance: d,
			Score:    1.0 / (1.0 + float64(d)),
			Metadata: idx.metadata[i],
		})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Distance < candidates[b].Distance
	})

	window := 2 * k
	if window > len(candidates) {
		window = len(candidates)
	}
	candidates = candidates[:window]

	results := make([]SearchResult, 0, k)
	for _, c := range candidates {
		if !matchesFilters(c.Metadata, filters) {
			continue
		}
		results = append(results, c)
		if len(results) == k {
			break
		}
	}
	return results, nil
}

func matchesFilters(md Metadata, filters Metadata) bool {
	for key, want := range filters {
		got, ok := md[key]
		if !ok || fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Save writes the vector blob and metadata under the index directory.
// Layout: 8-byte header (count, dim as uint32 LE) followed by the raw
// float32 values, plus a metadata.json sidecar.
func (idx *FlatIndex) Save() error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := os.MkdirAll(idx.dir, 0o755); err != nil {
		return err
	}

	buf := make([]byte, 8+len(idx.vectors)*idx.dim*4)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(idx.vectors)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(idx.dim))
	offset := 8
	for _, v := range idx.vectors {
		for _, f := range v {
			binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(f))
			offset += 4
		}
	}
	if err := os.WriteFile(filepath.Join(idx.dir, indexFileName), buf, 0o644); err != nil {
		return err
	}

	metaBytes, err := json.Marshal(idx.metadata)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(idx.dir, metadataFileName), metaBytes, 0o644)
}

// Load replaces the index contents from disk. A missing index file leaves
// the index empty, which is the fresh-tenant case.
func (idx *FlatIndex) Load() error {
	buf, err := os.ReadFile(filepath.Join(idx.dir, indexFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(buf) < 8 {
		return fmt.Errorf("index file too short: %d bytes", len(buf))
	}

	count := int(binary.LittleEndian.Uint32(buf[0:4]))
	dim := int(binary.LittleEndian.Uint32(buf[4:8]))
	if dim != idx.dim {
		return fmt.Errorf("index file has dimension %d, index expects %d", dim, idx.dim)
	}
	if len(buf) != 8+count*dim*4 {
		return fmt.Errorf("index file has %d bytes, expected %d", len(buf), 8+count*dim*4)
	}

	vectors := make([][]float32, count)
	offset := 8
	for i := 0; i < count; i++ {
		v := make([]float32, dim)
		for j := 0; j < dim; j++ {
			v[j] = math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
			offset += 4
		}
		vectors[i] = v
	}

	metaBytes, err := os.ReadFile(filepath.Join(idx.dir, metadataFileName))
	if err != nil {
		return err
	}
	var metadata []Metadata
	if err := json.Unmarshal(metaBytes, &metadata); err != nil {
		return err
	}
	if len(metadata) != count {
		return fmt.Errorf("metadata has %d entries, index has %d vectors", len(metadata), count)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.vectors = vectors
	idx.metadata = metadata
	return nil
}

// Path returns the directory the index persists into.
func (idx *FlatIndex) Path() string {
	return idx.dir
}
