package search

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// node is the cached expansion of a board: terminal score, legal moves and
// the child reached by each move, index aligned with moves.
type node struct {
	score    tictactoe.Score
	moves    []tictactoe.Move
	children []tictactoe.Board
}

type nodeTable struct {
	mu    sync.RWMutex
	nodes map[tictactoe.Board]*node
}

func newNodeTable() *nodeTable {
	return &nodeTable{nodes: make(map[tictactoe.Board]*node)}
}

// get returns the expansion of b and whether it had to be built.
func (that *nodeTable) get(b tictactoe.Board) (*node, bool) {
	that.mu.RLock()
	n, ok := that.nodes[b]
	that.mu.RUnlock()

	if ok {
		return n, false
	}

	n = &node{
		score:    tictactoe.TerminalScore(b),
		moves:    tictactoe.ValidMoves(b),
		children: tictactoe.Children(b),
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if existing, ok := that.nodes[b]; ok {
		return existing, false
	}
	that.nodes[b] = n

	return n, true
}

func (that *nodeTable) len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.nodes)
}

func (that *nodeTable) reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.nodes = make(map[tictactoe.Board]*node)
}
