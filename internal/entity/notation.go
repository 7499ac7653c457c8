package entity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidNotation = errors.New("invalid board notation")

// String renders the board as three rows separated by '/', e.g. "XO./.X./..O".
func (that Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range Size {
			sb.WriteString(that[row][col].String())
		}
	}
	return sb.String()
}

// ParseBoard - reads the notation produced by Board.String. Whitespace is ignored,
// 'x'/'o' are accepted in either case and '-' or '_' may stand for an empty cell.
func ParseBoard(notation string) (Board, error) {
	var board Board

	rows := strings.Split(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, notation), "/")

	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidNotation, Size, len(rows))
	}

	for row, cells := range rows {
		if len(cells) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidNotation, row, len(cells))
		}

		for col, cell := range []byte(cells) {
			switch cell {
			case 'X', 'x':
				board[row][col] = MarkX
			case 'O', 'o':
				board[row][col] = MarkO
			case '.', '-', '_':
				board[row][col] = Empty
			default:
				return board, fmt.Errorf("%w: unexpected %q at %s", ErrInvalidNotation, cell, Move{Row: row, Col: col})
			}
		}
	}

	return board, nil
}

// MustParseBoard is ParseBoard for literals known to be valid.
func MustParseBoard(notation string) Board {
	board, err := ParseBoard(notation)
	if err != nil {
		panic(err)
	}
	return board
}
