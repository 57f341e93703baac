package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const cellCount = tictactoe.Size * tictactoe.Size

var errBoardLength = errors.New("board must hold 9 cells")

type analyzer interface {
	Analyze(b tictactoe.Board) (*search.Decision, error)
}

type BestMoveHandler interface {
	BestMoveHandler(w http.ResponseWriter, r *http.Request)
}

type bestMoveRequest struct {
	Board  []int `json:"board"`
	Player int   `json:"player"`
}

type bestMoveResponse struct {
	Move     tictactoe.Move `json:"move"`
	Board    []int          `json:"board"`
	Score    int            `json:"score"`
	Terminal bool           `json:"terminal"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type bestMoveHandler struct {
	logger   *slog.Logger
	analyzer analyzer
}

func NewBestMoveHandler(logger *slog.Logger, analyzer analyzer) BestMoveHandler {
	return &bestMoveHandler{
		logger:   logger.With("component", "best_move_handler"),
		analyzer: analyzer,
	}
}

// BestMoveHandler answers with the move the engine plays for the side to move.
func (that *bestMoveHandler) BestMoveHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "BestMoveHandler")

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req bestMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return
	}

	b, err := req.toBoard()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if tictactoe.IsTerminal(b) {
		writeJSON(w, http.StatusConflict, errorResponse{Error: apperror.ErrGameFinished.Error()})
		return
	}

	decision, err := that.analyzer.Analyze(b)
	if err != nil {
		log.Error("failed to analyze position", "error", err)
		if errors.Is(err, apperror.ErrRecursionExhausted) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: apperror.ErrRecursionExhausted.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	if decision == nil {
		writeJSON(w, http.StatusConflict, errorResponse{Error: apperror.ErrGameFinished.Error()})
		return
	}

	writeJSON(w, http.StatusOK, bestMoveResponse{
		Move:     decision.Move,
		Board:    flatten(decision.Board),
		Score:    int(decision.Score),
		Terminal: tictactoe.IsTerminal(decision.Board),
	})
}

func (that bestMoveRequest) toBoard() (tictactoe.Board, error) {
	if len(that.Board) != cellCount {
		return tictactoe.Board{}, errBoardLength
	}

	var cells [tictactoe.Size][tictactoe.Size]tictactoe.Mark
	for i, v := range that.Board {
		if v < int(tictactoe.X) || v > int(tictactoe.O) {
			return tictactoe.Board{}, fmt.Errorf("%w: cell %d holds %d", tictactoe.ErrInvalidBoard, i, v)
		}
		cells[i/tictactoe.Size][i%tictactoe.Size] = tictactoe.Mark(v)
	}

	if that.Player != int(tictactoe.X) && that.Player != int(tictactoe.O) {
		return tictactoe.Board{}, fmt.Errorf("%w: player %d", tictactoe.ErrInvalidBoard, that.Player)
	}

	b, err := tictactoe.FromCells(cells, tictactoe.Mark(that.Player))
	if err != nil {
		return tictactoe.Board{}, fmt.Errorf("failed to build board: %w", err)
	}

	return b, nil
}

func flatten(b tictactoe.Board) []int {
	cells := b.Cells()
	out := make([]int, 0, cellCount)
	for _, row := range cells {
		for _, mark := range row {
			out = append(out, int(mark))
		}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint: errchkjson // headers already sent
}
