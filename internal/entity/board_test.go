package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestInitialState(t *testing.T) {
	// When: the initial board is created
	board := InitialState()

	// Then: every cell is empty and X is to move
	require.Equal(t, Board{}, board)
	assert.Equal(t, MarkX, board.CurrentPlayer())
	assert.Len(t, board.LegalMoves(), 9)
	assert.False(t, board.IsTerminal())
	assert.Equal(t, InProgress, board.Outcome())
}

func TestBoard_CurrentPlayer(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected Mark
	}{
		{name: "X leads by one", board: "X../.../...", expected: MarkO},
		{name: "equal counts", board: "XO./.../...", expected: MarkX},
		{name: "mid game", board: "XO./.X./..O", expected: MarkX},
		{name: "X won", board: "XXX/OO./...", expected: Empty},
		{name: "full board", board: "XOX/XOO/OXX", expected: Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board
			board := MustParseBoard(tt.board)

			// When: asking whose turn it is
			player := board.CurrentPlayer()

			// Then: the expected mark is returned
			assert.Equal(t, tt.expected, player)
		})
	}
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Returns empty cells in row-major order", func(t *testing.T) {
		// Given: a board with four marks
		board := MustParseBoard("X.O/.X./O..")

		// When: listing legal moves
		moves := board.LegalMoves()

		// Then: the empty cells come back row by row
		expected := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
		require.Equal(t, expected, moves)
	})

	t.Run("Center opening leaves eight replies", func(t *testing.T) {
		// Given: X plays the center on the initial board
		board, err := InitialState().ApplyMove(Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: O is to move with eight legal replies
		assert.Equal(t, MarkO, board.CurrentPlayer())
		assert.Len(t, board.LegalMoves(), 8)
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Places the current player's mark on a copy", func(t *testing.T) {
		// Given: a board where O is to move
		board := MustParseBoard("X../.../...")

		// When: O plays the center
		next, err := board.ApplyMove(Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: only that cell changed and the original is untouched
		assert.Equal(t, MarkO, next.At(Move{Row: 1, Col: 1}))
		assert.Equal(t, MustParseBoard("X../.O./..."), next)
		assert.Equal(t, MustParseBoard("X../.../..."), board)

		x, o := next.Counts()
		assert.Equal(t, 2, x+o)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X in the corner
		board := MustParseBoard("X../.../...")

		// When: O tries the same cell
		next, err := board.ApplyMove(Move{Row: 0, Col: 0})

		// Then: ErrInvalidMove is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, board, next)
	})

	t.Run("Error on cell outside the board", func(t *testing.T) {
		board := InitialState()

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := board.ApplyMove(move)
			assert.ErrorIs(t, err, apperror.ErrInvalidMove, move.String())
		}
	})

	t.Run("Error on finished game", func(t *testing.T) {
		// Given: a board X has already won
		board := MustParseBoard("XXX/OO./...")

		// When: O tries to keep playing
		_, err := board.ApplyMove(Move{Row: 2, Col: 2})

		// Then: the game is reported finished, which is an invalid state
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.ErrorIs(t, err, apperror.ErrInvalidState)
	})
}

func TestBoard_Winner(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected Mark
	}{
		{name: "X row 0", board: "XXX/OO./...", expected: MarkX},
		{name: "X column 2", board: "..X/O.X/O.X", expected: MarkX},
		{name: "X diagonal", board: "X.O/.XO/..X", expected: MarkX},
		{name: "X anti-diagonal", board: "O.X/.X./XO.", expected: MarkX},
		{name: "O column 1", board: "XOX/.O./XO.", expected: MarkO},
		{name: "O row 2", board: "XX./X../OOO", expected: MarkO},
		{name: "no line", board: "XO./.X./..O", expected: Empty},
		{name: "drawn board", board: "XOX/XOO/OXX", expected: Empty},
		{name: "both lines reports X", board: "XXX/OOO/...", expected: MarkX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParseBoard(tt.board)

			assert.Equal(t, tt.expected, board.Winner())
			assert.Equal(t, board.Winner() != Empty || board.IsFull(), board.IsTerminal())
		})
	}
}

func TestBoard_Score(t *testing.T) {
	t.Run("X win scores 1", func(t *testing.T) {
		score, err := MustParseBoard("XXX/OO./...").Score()
		require.NoError(t, err)
		assert.Equal(t, 1, score)
	})

	t.Run("O win scores -1", func(t *testing.T) {
		score, err := MustParseBoard("XX./X../OOO").Score()
		require.NoError(t, err)
		assert.Equal(t, -1, score)
	})

	t.Run("Drawn board", func(t *testing.T) {
		// Given: a full board without three in a row
		board := MustParseBoard("XOX/XOO/OXX")

		// Then: it is terminal with no winner and scores 0
		assert.True(t, board.IsTerminal())
		assert.Equal(t, Empty, board.Winner())
		assert.Equal(t, Draw, board.Outcome())

		score, err := board.Score()
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})

	t.Run("Error on game in progress", func(t *testing.T) {
		_, err := MustParseBoard("XO./.X./..O").Score()
		require.ErrorIs(t, err, apperror.ErrInvalidState)
	})
}

func TestBoard_Validate(t *testing.T) {
	assert.NoError(t, MustParseBoard("XO./.X./...").Validate())
	assert.ErrorIs(t, MustParseBoard("XX./.../...").Validate(), apperror.ErrInvalidState)
	assert.ErrorIs(t, MustParseBoard("O../.../...").Validate(), apperror.ErrInvalidState)
}

func TestBoard_QueriesArePure(t *testing.T) {
	// Given: a mid-game board
	board := MustParseBoard("XO./.X./..O")
	snapshot := board

	// When: every query runs twice
	for range 2 {
		assert.Equal(t, MarkX, board.CurrentPlayer())
		assert.Len(t, board.LegalMoves(), 5)
		assert.Equal(t, Empty, board.Winner())
		assert.False(t, board.IsTerminal())
		_, _ = board.ApplyMove(Move{Row: 2, Col: 0})
	}

	// Then: the board was never modified
	assert.Equal(t, snapshot, board)
}

func TestBoard_ReachablePositions(t *testing.T) {
	// Given: every board reachable from the initial state by legal play
	visited := make(map[Board]struct{})

	var walk func(board Board)
	walk = func(board Board) {
		if _, ok := visited[board]; ok {
			return
		}
		visited[board] = struct{}{}

		x, o := board.Counts()

		// Then: the count and turn invariants hold everywhere
		require.NoError(t, board.Validate())
		require.Len(t, board.LegalMoves(), 9-x-o)
		require.Equal(t, board.Winner() != Empty || x+o == 9, board.IsTerminal())

		if board.IsTerminal() {
			require.Equal(t, Empty, board.CurrentPlayer())
			return
		}

		if x == o {
			require.Equal(t, MarkX, board.CurrentPlayer())
		} else {
			require.Equal(t, MarkO, board.CurrentPlayer())
		}

		for _, move := range board.LegalMoves() {
			next, err := board.ApplyMove(move)
			require.NoError(t, err)

			nx, no := next.Counts()
			require.Equal(t, x+o+1, nx+no)
			walk(next)
		}
	}

	walk(InitialState())

	assert.Len(t, visited, 5478)
}
