// Package store remembers opened URLs using a Bloom filter in front of an LRU cache.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidCapacity is returned when a store is created without room for any URL.
var ErrInvalidCapacity = errors.New("dedup capacity must be positive")

// DedupStore provides thread-safe deduplication of URLs.
// The Bloom filter answers most misses; the LRU holds the authoritative set and bounds its size.
type DedupStore struct {
	bloom             *bloom.BloomFilter
	lru               *lru.Cache[string, struct{}]
	mutex             sync.RWMutex
	capacity          int
	falsePositiveRate float64
}

// NewDedupStore creates a store remembering up to capacity URLs.
func NewDedupStore(capacity int, falsePositiveRate float64) (*DedupStore, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		return nil, fmt.Errorf("dedup false positive rate must be in (0, 1), got %v", falsePositiveRate)
	}

	cache, err := lru.New[string, struct{}](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create dedup cache: %w", err)
	}

	return &DedupStore{
		bloom:             bloom.NewWithEstimates(uint(capacity), falsePositiveRate),
		lru:               cache,
		capacity:          capacity,
		falsePositiveRate: falsePositiveRate,
	}, nil
}

// Has reports whether url was added and not yet evicted.
func (ds *DedupStore) Has(url string) bool {
	ds.mutex.RLock()
	defer ds.mutex.RUnlock()

	if !ds.bloom.TestString(url) {
		return false
	}

	return ds.lru.Contains(url)
}

// Add remembers url, evicting the least recently added URL when full.
func (ds *DedupStore) Add(url string) {
	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	if ds.lru.Contains(url) {
		return
	}

	ds.bloom.AddString(url)
	ds.lru.Add(url, struct{}{})
}

// Load clears the store and loads the provided URLs, skipping empty ones.
func (ds *DedupStore) Load(urls []string) {
	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	ds.clear()

	for _, url := range urls {
		if url != "" {
			ds.bloom.AddString(url)
			ds.lru.Add(url, struct{}{})
		}
	}
}

// Size returns the number of URLs currently stored.
func (ds *DedupStore) Size() int {
	ds.mutex.RLock()
	defer ds.mutex.RUnlock()
	return ds.lru.Len()
}

// Clear removes all URLs from the store.
func (ds *DedupStore) Clear() {
	ds.mutex.Lock()
	defer ds.mutex.Unlock()
	ds.clear()
}

func (ds *DedupStore) clear() {
	ds.bloom = bloom.NewWithEstimates(uint(ds.capacity), ds.falsePositiveRate)
	ds.lru.Purge()
}
