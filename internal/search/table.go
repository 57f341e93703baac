package search

import (
	"strconv"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"golang.org/x/sync/singleflight"
)

// table memoizes scores per key. A miss is computed at most once per key and
// depth: concurrent callers asking for the same key from the same depth wait
// for the first computation instead of running their own. Failed
// computations are not stored.
type table[K comparable] struct {
	mu     sync.RWMutex
	values map[K]tictactoe.Score
	flight singleflight.Group
	name   func(K) string
}

func newTable[K comparable](name func(K) string) *table[K] {
	return &table[K]{
		values: make(map[K]tictactoe.Score),
		name:   name,
	}
}

func (that *table[K]) lookup(key K) (tictactoe.Score, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	score, ok := that.values[key]
	return score, ok
}

func (that *table[K]) store(key K, score tictactoe.Score) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.values[key] = score
}

func (that *table[K]) len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.values)
}

func (that *table[K]) reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.values = make(map[K]tictactoe.Score)
}

// solve returns the cached score for key or computes it. depth is the
// caller's distance from its search root. hit reports whether the value came
// from the table without running compute.
func (that *table[K]) solve(key K, depth int, compute func() (tictactoe.Score, error)) (tictactoe.Score, bool, error) {
	if score, ok := that.lookup(key); ok {
		return score, true, nil
	}

	result, err, _ := that.flight.Do(that.name(key)+"@"+strconv.Itoa(depth), func() (interface{}, error) {
		if score, ok := that.lookup(key); ok {
			return score, nil
		}

		score, err := compute()
		if err != nil {
			return tictactoe.Score(0), err
		}

		that.store(key, score)

		return score, nil
	})
	if err != nil {
		return 0, false, err
	}

	return result.(tictactoe.Score), false, nil //nolint: forcetypeassert // only scores go through the group
}
