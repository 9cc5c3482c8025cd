package mem

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/pkg/itinerary"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newStore(max int) (*ParseResults, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, time.July, 16, 8, 0, 0, 0, time.UTC)}
	s := NewParseResults(max)
	s.now = clock.now
	return s, clock
}

func sampleParse(title string) CachedParse {
	return CachedParse{
		Result: itinerary.Result{
			Itinerary: itinerary.Itinerary{{
				DayNumber:  1,
				Date:       "2025-07-16",
				Activities: []itinerary.Activity{{Title: title, Category: itinerary.CategoryFood, Time: "12:00"}},
			}},
			Strategy: itinerary.StrategyJSON,
		},
		Validation: itinerary.ValidationResult{IsValid: true, Errors: []string{}},
	}
}

func TestParseResultsGetSet(t *testing.T) {
	s, clock := newStore(10)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", sampleParse("Lunch"), time.Minute)
	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "Lunch", got.Result.Itinerary[0].Activities[0].Title)

	clock.advance(2 * time.Minute)
	_, ok = s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len(), "expired entry is removed on read")
}

func TestParseResultsZeroTTLDisablesCaching(t *testing.T) {
	s, _ := newStore(10)
	s.Set("k", sampleParse("Lunch"), 0)
	assert.Equal(t, 0, s.Len())
}

func TestParseResultsReturnsCopies(t *testing.T) {
	s, _ := newStore(10)
	s.Set("k", sampleParse("Lunch"), time.Minute)

	got, _ := s.Get("k")
	got.Result.Itinerary[0].Activities[0].Title = "mutated"

	again, _ := s.Get("k")
	assert.Equal(t, "Lunch", again.Result.Itinerary[0].Activities[0].Title)
}

func TestParseResultsEviction(t *testing.T) {
	s, clock := newStore(3)
	for i := 0; i < 3; i++ {
		s.Set(fmt.Sprintf("k%d", i), sampleParse("x"), time.Duration(i+1)*time.Minute)
	}
	clock.advance(90 * time.Second)

	s.Set("k3", sampleParse("x"), time.Hour)

	assert.Equal(t, 3, s.Len())
	_, ok := s.Get("k0")
	assert.False(t, ok, "expired entry evicted first")

	s.Set("k4", sampleParse("x"), time.Hour)
	assert.Equal(t, 3, s.Len())
	_, ok = s.Get("k1")
	assert.False(t, ok, "soonest-to-expire entry evicted when over limit")
	_, ok = s.Get("k4")
	assert.True(t, ok)
}

func TestParseResultsConcurrentAccess(t *testing.T) {
	s := NewParseResults(50)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (i*100+j)%80)
				s.Set(key, sampleParse(key), time.Minute)
				s.Get(key)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 50)
}
