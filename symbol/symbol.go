// Package symbol interns object keys.
//
// Documents key their objects by Hash rather than by string. A Table maps
// a key name to its Hash and back; the reverse mapping is needed whenever a
// key has to be printed (iteration results, codec output, error messages).
package symbol

import (
	"hash/fnv"
	"strconv"
	"sync"
)

// Hash is the interned form of a key name.
type Hash uint32

func (h Hash) String() string {
	return "#" + strconv.FormatUint(uint64(h), 16)
}

// Table is the interning service consumed by documents and codecs.
type Table interface {
	// Intern returns the hash of name, recording name if it is new.
	Intern(name string) Hash
	// Name returns the name interned under h.
	Name(h Hash) (string, bool)
}

// MapTable is a Table backed by a pair of maps. It is safe for concurrent
// use.
type MapTable struct {
	mu     sync.RWMutex
	names  map[Hash]string
	hashes map[string]Hash
}

// NewTable returns an empty, isolated table.
func NewTable() *MapTable {
	return &MapTable{
		names:  map[Hash]string{},
		hashes: map[string]Hash{},
	}
}

var defaultTable = NewTable()

// Default returns the process-wide table used by documents without an
// injected table.
func Default() Table {
	return defaultTable
}

// Sum returns the hash of name before collision resolution: 32 bit FNV-1a.
func Sum(name string) Hash {
	h := fnv.New32a()
	h.Write([]byte(name))
	return Hash(h.Sum32())
}

// Intern returns the hash for name. When the FNV slot of name is taken by
// another name, the next free slot is used, so a name keeps the hash it
// was first given for the life of the table.
func (t *MapTable) Intern(name string) Hash {
	t.mu.RLock()
	h, ok := t.hashes[name]
	t.mu.RUnlock()
	if ok {
		return h
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if h, ok := t.hashes[name]; ok {
		return h
	}
	h = Sum(name)
	for {
		if _, taken := t.names[h]; !taken {
			break
		}
		h++
	}
	t.names[h] = name
	t.hashes[name] = h
	return h
}

func (t *MapTable) Name(h Hash) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.names[h]
	return name, ok
}

// Len returns the number of interned names.
func (t *MapTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}

// NameOf returns the name of h in t, or the printed hash if t does not
// know h.
func NameOf(t Table, h Hash) string {
	if name, ok := t.Name(h); ok {
		return name
	}
	return h.String()
}
