// pkg/memcache/parse_results.go
package mem

import (
	"sync"
	"time"

	"itinera/pkg/itinerary"
)

const defaultMaxEntries = 1000

type ParseResultStore interface {
	Set(key string, value CachedParse, ttl time.Duration)

	// Get returns a copy of the cached parse for key if it has not expired.
	Get(key string) (CachedParse, bool)

	Len() int
}

type CachedParse struct {
	Result     itinerary.Result
	Validation itinerary.ValidationResult
	Normalized bool
}

func (c CachedParse) clone() CachedParse {
	c.Result.Itinerary = c.Result.Itinerary.Clone()
	c.Validation.Errors = append([]string(nil), c.Validation.Errors...)
	return c
}

type entry struct {
	value     CachedParse
	expiresAt time.Time
}

type ParseResults struct {
	mu         sync.RWMutex
	data       map[string]entry
	maxEntries int
	now        func() time.Time
}

func NewParseResults(maxEntries int) *ParseResults {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &ParseResults{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *ParseResults) Set(key string, value CachedParse, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.data[key] = entry{
		value:     value.clone(),
		expiresAt: now.Add(ttl),
	}

	if len(s.data) > s.maxEntries {
		s.evict(now)
	}
}

func (s *ParseResults) Get(key string) (CachedParse, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return CachedParse{}, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.data, key) // cleanup expired
		}
		s.mu.Unlock()
		return CachedParse{}, false
	}
	return e.value.clone(), true
}

func (s *ParseResults) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// evict drops expired entries, then the soonest-to-expire ones until the
// store is back under its limit. Caller holds the write lock.
func (s *ParseResults) evict(now time.Time) {
	for key, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, key)
		}
	}
	for len(s.data) > s.maxEntries {
		var oldestKey string
		var oldest time.Time
		for key, e := range s.data {
			if oldestKey == "" || e.expiresAt.Before(oldest) {
				oldestKey, oldest = key, e.expiresAt
			}
		}
		delete(s.data, oldestKey)
	}
}
