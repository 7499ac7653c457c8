package minimax

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Engine picks optimal moves by full, unpruned minimax over the game tree.
// It holds no game state, only the random source used for the opening.
type Engine struct {
	randomOpening bool

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Engine)

// WithRandomOpening - when enabled, the empty board gets a random cell instead of a search.
func WithRandomOpening(enabled bool) Option {
	return func(that *Engine) {
		that.randomOpening = enabled
	}
}

// WithRand - uses the given source for the random opening instead of the global one.
func WithRand(rnd *rand.Rand) Option {
	return func(that *Engine) {
		that.rnd = rnd
	}
}

func New(opts ...Option) *Engine {
	engine := &Engine{randomOpening: true}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

var defaultEngine = New()

// BestMove - returns an optimal move for the player to move, using the default engine.
func BestMove(board entity.Board) (entity.Move, error) {
	return defaultEngine.BestMove(board)
}

// BestMove - returns an optimal move for the player to move on the board.
//
// Legal moves are tried in row-major order and a move replaces the current
// best only when it is strictly better, so among equally good moves the
// first one in that order wins.
func (that *Engine) BestMove(board entity.Board) (entity.Move, error) {
	if board.IsTerminal() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if err := board.Validate(); err != nil {
		return entity.Move{}, err
	}

	if that.randomOpening && board == entity.InitialState() {
		return that.randomMove(), nil
	}

	var best entity.Move

	switch board.CurrentPlayer() {
	case entity.MarkX:
		value := math.MinInt
		for _, move := range board.LegalMoves() {
			if v := MinValue(mustApply(board, move)); v > value {
				value = v
				best = move
			}
		}
	case entity.MarkO:
		value := math.MaxInt
		for _, move := range board.LegalMoves() {
			if v := MaxValue(mustApply(board, move)); v < value {
				value = v
				best = move
			}
		}
	}

	return best, nil
}

// Value - returns the game-theoretic value of the board under perfect play:
// 1 if X forces a win, -1 if O does, 0 for a draw.
func (that *Engine) Value(board entity.Board) (int, error) {
	if err := board.Validate(); err != nil {
		return 0, err
	}

	if board.CurrentPlayer() == entity.MarkO {
		return MinValue(board), nil
	}
	return MaxValue(board), nil
}

// MaxValue is the value of the board when X, the maximizing player, is to move.
func MaxValue(board entity.Board) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	value := math.MinInt
	for _, move := range board.LegalMoves() {
		value = max(value, MinValue(mustApply(board, move)))
	}
	return value
}

// MinValue is the value of the board when O, the minimizing player, is to move.
func MinValue(board entity.Board) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	value := math.MaxInt
	for _, move := range board.LegalMoves() {
		value = min(value, MaxValue(mustApply(board, move)))
	}
	return value
}

func (that *Engine) randomMove() entity.Move {
	if that.rnd == nil {
		return entity.Move{Row: rand.Intn(entity.Size), Col: rand.Intn(entity.Size)} //nolint: gosec // it's ok
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.Move{Row: that.rnd.Intn(entity.Size), Col: that.rnd.Intn(entity.Size)}
}

// mustApply is only fed moves from LegalMoves of a non-terminal board.
func mustApply(board entity.Board, move entity.Move) entity.Board {
	next, err := board.ApplyMove(move)
	if err != nil {
		panic(fmt.Errorf("minimax: applying legal move %s to %s: %w", move, board, err))
	}
	return next
}
