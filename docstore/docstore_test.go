package docstore

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kreopt/structure/ir"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "docs.db"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	d := ir.MustFrom(map[string]any{"a": []any{1, 2.5, "x", nil, true}, "b": map[string]any{}})
	changed, err := s.Put(ctx, "one", d)
	if err != nil || !changed {
		t.Fatalf("put: %v %v", changed, err)
	}
	got, err := s.Get(ctx, "one")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d.Interface(), got.Interface()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPutUnchanged(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	d := ir.MustFrom(map[string]any{"a": 1})
	if _, err := s.Put(ctx, "k", d); err != nil {
		t.Fatal(err)
	}
	changed, err := s.Put(ctx, "k", d.DeepCopy())
	if err != nil || changed {
		t.Fatalf("second put: %v %v", changed, err)
	}
	d.Key("a").Set(2)
	changed, err = s.Put(ctx, "k", d)
	if err != nil || !changed {
		t.Fatalf("third put: %v %v", changed, err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if got.GetInt("a", 0) != 2 {
		t.Errorf("got %v", got.Interface())
	}
}

func TestPutSignedZeroUnchanged(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	if _, err := s.Put(ctx, "z", ir.MustFrom([]any{0.0})); err != nil {
		t.Fatal(err)
	}
	changed, err := s.Put(ctx, "z", ir.MustFrom([]any{math.Copysign(0, -1)}))
	if err != nil || changed {
		t.Errorf("equal document reported changed: %v %v", changed, err)
	}
}

func TestNotFound(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get: %v", err)
	}
	if err := s.Delete(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: %v", err)
	}
}

func TestDeleteList(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	for _, name := range []string{"b", "a", "c"} {
		if _, err := s.Put(ctx, name, ir.MustFrom(name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Delete(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	infos, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
		if info.Size == 0 || info.Updated.IsZero() {
			t.Errorf("%s: empty info %+v", info.Name, info)
		}
	}
	if diff := cmp.Diff([]string{"a", "c"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if infos[0].Hash != ir.MustFrom("a").Hash() {
		t.Errorf("hash %x", infos[0].Hash)
	}
}

func TestPutErrors(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	if _, err := s.Put(ctx, "", ir.New()); err == nil {
		t.Error("empty name accepted")
	}
	bad := ir.MustFrom(1).Key("x")
	if _, err := s.Put(ctx, "x", bad); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("errored handle: %v", err)
	}
}
