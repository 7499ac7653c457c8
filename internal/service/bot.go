package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type BotService interface {
	MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error)
}

type moveFinder interface {
	BestMove(board entity.Board) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
	finder moveFinder
}

func NewBotService(logger *slog.Logger, finder moveFinder) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		finder: finder,
	}
}

// MakeTurn - asks the engine for a move and plays it for whoever is to move.
func (that *botService) MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return board, entity.Move{}, fmt.Errorf("bot turn canceled: %w", err)
	}

	if board.IsTerminal() {
		return board, entity.Move{}, apperror.ErrGameFinished
	}

	player := board.CurrentPlayer()

	move, err := that.finder.BestMove(board)
	if err != nil {
		return board, entity.Move{}, fmt.Errorf("failed to find move: %w", err)
	}

	next, err := board.ApplyMove(move)
	if err != nil {
		return board, entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.DebugContext(ctx, "bot made turn",
		"player", player.String(), "move", move.String(), "board", next.String())

	return next, move, nil
}
