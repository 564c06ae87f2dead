package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Views keeps one Holder per viewer so a snapshot fetched on behalf of one caller is
// never rendered for another. The least recently used views are evicted once size is
// reached, and idle views expire after ttl.
type Views[T any] struct {
	mu      sync.Mutex
	holders *expirable.LRU[string, *Holder[T]]
}

func NewViews[T any](size int, ttl time.Duration) *Views[T] {
	return &Views[T]{
		holders: expirable.NewLRU[string, *Holder[T]](size, nil, ttl),
	}
}

// Holder returns the holder for key, creating an empty one on first use.
func (v *Views[T]) Holder(key string) *Holder[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	if holder, ok := v.holders.Get(key); ok {
		return holder
	}
	holder := NewHolder[T]()
	v.holders.Add(key, holder)
	return holder
}

func (v *Views[T]) Len() int {
	return v.holders.Len()
}

// ViewKey derives a view key from a credential without keeping the credential itself.
// Anonymous callers share the key of the empty credential.
func ViewKey(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:])
}
