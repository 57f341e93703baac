package search

import (
	"fmt"
	"sync/atomic"
)

// Stats is a snapshot of the engine counters and table sizes.
type Stats struct {
	Nodes      uint64 // search calls, cached or not
	Expansions uint64 // boards expanded for the first time
	CacheHits  uint64 // search calls answered from a table
	Cutoffs    uint64 // alpha-beta prunes

	NodeEntries      int
	MinimaxEntries   int
	AlphaBetaEntries int
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d expansions=%d hits=%d cutoffs=%d minimax=%d alphabeta=%d",
		s.Nodes, s.Expansions, s.CacheHits, s.Cutoffs, s.MinimaxEntries, s.AlphaBetaEntries)
}

type counters struct {
	nodes      atomic.Uint64
	expansions atomic.Uint64
	cacheHits  atomic.Uint64
	cutoffs    atomic.Uint64
}

func (that *counters) reset() {
	that.nodes.Store(0)
	that.expansions.Store(0)
	that.cacheHits.Store(0)
	that.cutoffs.Store(0)
}
