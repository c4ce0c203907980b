package memo

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/on-the-ground/toolbelt/decorators/internal/callkey"
)

// Table is an append-only result table keyed by call keys.
//
// Buckets are addressed by the key digest and hold every canonical encoding
// that shares it, so digest collisions never return a foreign result.
// Entries are never evicted.
//
// Access is safe from several goroutines, but Table does not coordinate
// computations: two callers missing on the same key both store, and the
// last Store wins.
type Table[O any] struct {
	ID      string
	buckets sync.Map // uint64 -> *bucket[O]
	size    atomic.Int64
}

type bucket[O any] struct {
	mu      sync.RWMutex
	entries []entry[O]
}

type entry[O any] struct {
	canon string
	value O
}

func NewTable[O any]() *Table[O] {
	return &Table[O]{ID: uuid.New().String()}
}

func (t *Table[O]) Load(k callkey.Key) (O, bool) {
	var zero O
	raw, ok := t.buckets.Load(k.Sum)
	if !ok {
		return zero, false
	}
	b := raw.(*bucket[O])
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, e := range b.entries {
		if e.canon == k.Canon {
			return e.value, true
		}
	}
	return zero, false
}

func (t *Table[O]) Store(k callkey.Key, value O) {
	raw, _ := t.buckets.LoadOrStore(k.Sum, &bucket[O]{})
	b := raw.(*bucket[O])
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		if b.entries[i].canon == k.Canon {
			b.entries[i].value = value
			return
		}
	}
	b.entries = append(b.entries, entry[O]{canon: k.Canon, value: value})
	t.size.Add(1)
}

// Len reports the number of distinct keys stored.
func (t *Table[O]) Len() int {
	return int(t.size.Load())
}
