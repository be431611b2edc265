package vector

import (
	"path/filepath"
	"testing"
)

func vec(vals ...float32) []float32 {
	return vals
}

func TestFlatIndexAddValidation(t *testing.T) {
	idx := NewFlatIndex(t.TempDir(), 3)

	if err := idx.Add([][]float32{vec(1, 2, 3)}, []Metadata{{"doc": "a"}, {"doc": "b"}}); err == nil {
		t.Fatal("expected count mismatch error")
	}
	if err := idx.Add([][]float32{vec(1, 2)}, []Metadata{{"doc": "a"}}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
	if idx.Len() != 0 {
		t.Fatalf("failed Add must not append, len = %d", idx.Len())
	}

	if err := idx.Add([][]float32{vec(1, 2, 3), vec(4, 5, 6)}, []Metadata{{"doc": "a"}, {"doc": "b"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("len = %d, want 2", idx.Len())
	}
}

func TestFlatIndexSearchOrdering(t *testing.T) {
	idx := NewFlatIndex(t.TempDir(), 2)
	err := idx.Add(
		[][]float32{vec(0, 0), vec(1, 0), vec(5, 5), vec(0.1, 0)},
		[]Metadata{{"doc": "origin"}, {"doc": "near"}, {"doc": "far"}, {"doc": "nearest"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	results, err := idx.Search(vec(0, 0), 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	wantDocs := []string{"origin", "nearest", "near"}
	for i, want := range wantDocs {
		if results[i].Metadata["doc"] != want {
			t.Errorf("result %d = %v, want %s", i, results[i].Metadata["doc"], want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Fatal("results not in ascending distance order")
		}
	}
	for _, r := range results {
		if r.Score <= 0 || r.Score > 1 {
			t.Errorf("score %f out of (0,1]", r.Score)
		}
	}
}

func TestFlatIndexSearchReturnsAtMostK(t *testing.T) {
	idx := NewFlatIndex(t.TempDir(), 2)
	_ = idx.Add([][]float32{vec(0, 0)}, []Metadata{{"doc": "only"}})

	results, err := idx.Search(vec(0, 0), 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestFlatIndexSearchFilters(t *testing.T) {
	idx := NewFlatIndex(t.TempDir(), 2)
	err := idx.Add(
		[][]float32{vec(0, 0), vec(0.1, 0), vec(0.2, 0), vec(0.3, 0)},
		[]Metadata{
			{"doc": "a", "department": "retail"},
			{"doc": "b", "department": "corporate"},
			{"doc": "c", "department": "retail"},
			{"doc": "d", "department": "corporate"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	results, err := idx.Search(vec(0, 0), 2, Metadata{"department": "retail"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Metadata["department"] != "retail" {
			t.Errorf("filter leaked: %v", r.Metadata)
		}
	}
}

// The filter is applied inside a 2k candidate window; matches outside the
// window are not pulled in to backfill.
func TestFlatIndexSearchNoBackfill(t *testing.T) {
	idx := NewFlatIndex(t.TempDir(), 1)
	vectors := [][]float32{}
	metadata := []Metadata{}
	// Two nearest are "other"; the only "target" vector sits outside the
	// 2k=2 window.
	for i, dept := range []string{"other", "other", "target"} {
		vectors = append(vectors, vec(float32(i)))
		metadata = append(metadata, Metadata{"department": dept})
	}
	if err := idx.Add(vectors, metadata); err != nil {
		t.Fatal(err)
	}

	results, err := idx.Search(vec(0), 1, Metadata{"department": "target"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results outside candidate window, got %d", len(results))
	}
}

func TestFlatIndexSearchIdempotent(t *testing.T) {
	idx := NewFlatIndex(t.TempDir(), 2)
	_ = idx.Add(
		[][]float32{vec(0, 0), vec(1, 1), vec(2, 2)},
		[]Metadata{{"doc": "a"}, {"doc": "b"}, {"doc": "c"}},
	)

	first, err := idx.Search(vec(0.5, 0.5), 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := idx.Search(vec(0.5, 0.5), 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Index != second[i].Index || first[i].Distance != second[i].Distance {
			t.Errorf("result %d differs between identical searches", i)
		}
	}
}

func TestFlatIndexSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	idx := NewFlatIndex(dir, 3)
	err := idx.Add(
		[][]float32{vec(1, 2, 3), vec(4, 5, 6)},
		[]Metadata{{"doc": "a", "page": float64(1)}, {"doc": "b"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Save(); err != nil {
		t.Fatal(err)
	}

	loaded := NewFlatIndex(dir, 3)
	if err := loaded.Load(); err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("loaded len = %d, want 2", loaded.Len())
	}

	results, err := loaded.Search(vec(1, 2, 3), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Metadata["doc"] != "a" {
		t.Fatalf("unexpected nearest after reload: %+v", results)
	}
	if results[0].Distance != 0 {
		t.Errorf("exact match distance = %f, want 0", results[0].Distance)
	}
}

func TestFlatIndexLoadDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	idx := NewFlatIndex(dir, 2)
	_ = idx.Add([][]float32{vec(1, 2)}, []Metadata{{"doc": "a"}})
	if err := idx.Save(); err != nil {
		t.Fatal(err)
	}

	wrong := NewFlatIndex(dir, 3)
	if err := wrong.Load(); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestFlatIndexLoadMissingFile(t *testing.T) {
	idx := NewFlatIndex(filepath.Join(t.TempDir(), "never-written"), 2)
	if err := idx.Load(); err != nil {
		t.Fatalf("missing index file must load empty, got %v", err)
	}
	if idx.Len() != 0 {
		t.Fatalf("len = %d, want 0", idx.Len())
	}
}

func TestRegistryPerTenant(t *testing.T) {
	reg := NewRegistry(t.TempDir(), 2)

	a, err := reg.Get("bank-asia")
	if err != nil {
		t.Fatal(err)
	}
	b, err := reg.Get("bank-europa")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("tenants must not share an index")
	}

	again, err := reg.Get("bank-asia")
	if err != nil {
		t.Fatal(err)
	}
	if again != a {
		t.Fatal("repeated Get must return the same index instance")
	}

	if _, err := reg.Get(""); err == nil {
		t.Fatal("empty tenant must error")
	}
}
