package symbol

import (
	"sync"
	"testing"
)

func TestInternStable(t *testing.T) {
	tab := NewTable()
	a := tab.Intern("alpha")
	b := tab.Intern("beta")
	if a == b {
		t.Fatalf("distinct names share hash %s", a)
	}
	if got := tab.Intern("alpha"); got != a {
		t.Errorf("re-intern alpha = %s, want %s", got, a)
	}
	if a != Sum("alpha") {
		t.Errorf("first intern should use the FNV slot")
	}
	name, ok := tab.Name(b)
	if !ok || name != "beta" {
		t.Errorf("Name(%s) = %q, %v", b, name, ok)
	}
	if _, ok := tab.Name(Hash(12345)); ok {
		t.Errorf("unknown hash resolved")
	}
}

func TestInternResolvesCollisions(t *testing.T) {
	tab := NewTable()
	// occupy the slot alpha would get with a different name.
	h := Sum("alpha")
	tab.names[h] = "squatter"
	tab.hashes["squatter"] = h

	got := tab.Intern("alpha")
	if got == h {
		t.Fatalf("collision not resolved")
	}
	if got != h+1 {
		t.Errorf("next slot = %s, want %s", got, h+1)
	}
	if name, _ := tab.Name(got); name != "alpha" {
		t.Errorf("Name(next slot) = %q", name)
	}
}

func TestTablesIsolated(t *testing.T) {
	t1, t2 := NewTable(), NewTable()
	t1.Intern("only-in-one")
	if t2.Len() != 0 {
		t.Errorf("t2 has %d names", t2.Len())
	}
}

func TestNameOf(t *testing.T) {
	tab := NewTable()
	h := tab.Intern("k")
	if got := NameOf(tab, h); got != "k" {
		t.Errorf("NameOf = %q", got)
	}
	if got := NameOf(tab, Hash(0xff)); got != "#ff" {
		t.Errorf("NameOf unknown = %q", got)
	}
}

func TestInternConcurrent(t *testing.T) {
	tab := NewTable()
	var wg sync.WaitGroup
	res := make([]Hash, 16)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i] = tab.Intern("shared")
		}(i)
	}
	wg.Wait()
	for i := range res {
		if res[i] != res[0] {
			t.Fatalf("goroutine %d got %s, want %s", i, res[i], res[0])
		}
	}
}
