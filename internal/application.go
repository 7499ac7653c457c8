package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

var ErrNoGames = errors.New("self-play needs at least one game")

// Summary counts the outcomes of finished self-play games.
type Summary struct {
	XWins int
	OWins int
	Draws int
}

func (that *Summary) record(outcome entity.Outcome) {
	switch outcome {
	case entity.XWins:
		that.XWins++
	case entity.OWins:
		that.OWins++
	case entity.Draw:
		that.Draws++
	}
}

func (that *Summary) Games() int {
	return that.XWins + that.OWins + that.Draws
}

// RunApp - runs the configured self-play games.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	start, err := startPosition(conf.SelfPlay.StartPosition)
	if err != nil {
		return err
	}

	engine := minimax.New(engineOptions(conf.Engine)...)
	bot := service.NewBotService(logger, engine)

	log.Info("Starting self-play", "games", conf.SelfPlay.Games, "start", start.String())

	summary, err := PlaySelf(ctx, logger, bot, start, conf.SelfPlay.Games)
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	log.Info("Self-play finished",
		"games", summary.Games(), "x_wins", summary.XWins, "o_wins", summary.OWins, "draws", summary.Draws)

	return nil
}

// PlaySelf - lets the bot play both sides from start until the game ends, games times.
func PlaySelf(ctx context.Context, logger *slog.Logger, bot service.BotService, start entity.Board, games int) (Summary, error) {
	var summary Summary

	if games < 1 {
		return summary, ErrNoGames
	}

	for range games {
		board, err := playGame(ctx, logger, bot, start)
		if err != nil {
			return summary, err
		}
		summary.record(board.Outcome())
	}

	return summary, nil
}

func playGame(ctx context.Context, logger *slog.Logger, bot service.BotService, start entity.Board) (entity.Board, error) {
	gameID := uuid.NewString()
	log := logger.With("component", "self-play", "game_id", gameID)

	board := start
	for ply := 1; !board.IsTerminal(); ply++ {
		player := board.CurrentPlayer()

		next, move, err := bot.MakeTurn(ctx, board)
		if err != nil {
			return board, fmt.Errorf("game %s, ply %d: %w", gameID, ply, err)
		}

		log.Debug("Ply", "ply", ply, "player", player.String(), "move", move.String(), "board", next.String())
		board = next
	}

	log.Info("Game over", "outcome", board.Outcome().String(), "board", board.String())

	return board, nil
}

func startPosition(notation string) (entity.Board, error) {
	if notation == "" {
		return entity.InitialState(), nil
	}

	board, err := entity.ParseBoard(notation)
	if err != nil {
		return board, fmt.Errorf("invalid start position: %w", err)
	}

	if err = board.Validate(); err != nil {
		return board, fmt.Errorf("invalid start position: %w", err)
	}

	return board, nil
}

func engineOptions(conf config.Engine) []minimax.Option {
	opts := []minimax.Option{minimax.WithRandomOpening(!conf.SearchOpening)}
	if conf.Seed != 0 {
		opts = append(opts, minimax.WithRand(rand.New(rand.NewSource(conf.Seed)))) //nolint: gosec // it's ok
	}
	return opts
}
