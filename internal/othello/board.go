// Package othello implements the 6x6 board, move rules, threat detection and
// damage formula of the Othellonia variant. Everything here is pure: functions
// take a Board value and return new values, so callers can keep old boards as
// history snapshots without copying.
package othello

import (
	"fmt"
	"strings"
)

// Size is the board dimension. It is fixed for this variant.
const Size = 6

// Color identifies the owner of a stone.
type Color uint8

const (
	None Color = iota
	Black
	White
)

// Opponent returns the other side. None has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

// String returns the lower-case color name used in log lines.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Icon returns the glyph shown next to a player's log entries.
func (c Color) Icon() string {
	if c == Black {
		return "⚫"
	}
	return "⚪"
}

// ParseColor converts "black" or "white" (any case) to a Color.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return None, fmt.Errorf("othello: unknown color %q", s)
}

// Provenance records how a stone came to have its current color.
type Provenance uint8

const (
	Initial Provenance = iota // one of the four seed stones
	Placed                    // put down directly by its owner
	Flipped                   // turned as a side effect of a move
)

func (p Provenance) String() string {
	switch p {
	case Initial:
		return "initial"
	case Placed:
		return "placed"
	case Flipped:
		return "flipped"
	default:
		return "unknown"
	}
}

// Cell is one square of the board. A cell with Color None is empty and its
// Provenance is meaningless.
type Cell struct {
	Color      Color
	Provenance Provenance
}

// Empty reports whether no stone occupies the cell.
func (c Cell) Empty() bool {
	return c.Color == None
}

// Pos addresses a cell by row and column, both 0-indexed from the top left.
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// IsCorner reports whether the position is one of the four corners.
func (p Pos) IsCorner() bool {
	return IsCorner(p.Row, p.Col)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// IsCorner reports whether (row, col) is a corner square. It only affects styling.
func IsCorner(row, col int) bool {
	return (row == 0 || row == Size-1) && (col == 0 || col == Size-1)
}

// Board is a row-major 6x6 grid. It is a value type: assigning a Board copies
// every cell.
type Board [Size][Size]Cell

// NewBoard returns the starting position with the four initial stones.
func NewBoard() Board {
	var b Board
	b[2][2] = Cell{Color: White, Provenance: Initial}
	b[2][3] = Cell{Color: Black, Provenance: Initial}
	b[3][2] = Cell{Color: Black, Provenance: Initial}
	b[3][3] = Cell{Color: White, Provenance: Initial}
	return b
}

// At returns the cell at p. Out-of-bounds positions read as empty.
func (b Board) At(p Pos) Cell {
	if !p.InBounds() {
		return Cell{}
	}
	return b[p.Row][p.Col]
}

// Count returns the number of stones on the board.
func (b Board) Count() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if !b[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

// CountColor returns the number of stones of the given color.
func (b Board) CountColor(color Color) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b[r][c].Color == color {
				n++
			}
		}
	}
	return n
}

// HasPlaced reports whether any stone on the board was placed by a player.
// A board without placed stones has not seen its first move yet.
func (b Board) HasPlaced() bool {
	for r := range Size {
		for c := range Size {
			if !b[r][c].Empty() && b[r][c].Provenance == Placed {
				return true
			}
		}
	}
	return false
}

// Board notation runes. Upper case X/O are the seed stones, B/W placed stones
// and b/w flipped stones.
const (
	emptyRune = '.'
)

var cellRunes = map[Cell]rune{
	{Color: Black, Provenance: Initial}: 'X',
	{Color: White, Provenance: Initial}: 'O',
	{Color: Black, Provenance: Placed}:  'B',
	{Color: White, Provenance: Placed}:  'W',
	{Color: Black, Provenance: Flipped}: 'b',
	{Color: White, Provenance: Flipped}: 'w',
}

// String renders the board in the notation accepted by ParseBoard.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			cell := b[r][c]
			if cell.Empty() {
				sb.WriteRune(emptyRune)
				continue
			}
			sb.WriteRune(cellRunes[cell])
		}
	}
	return sb.String()
}

// ParseBoard builds a board from six rows of six runes in the notation
// produced by Board.String. Whitespace around rows is ignored.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("othello: board needs %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		row = strings.TrimSpace(row)
		runes := []rune(row)
		if len(runes) != Size {
			return b, fmt.Errorf("othello: row %d needs %d cells, got %d", r, Size, len(runes))
		}
		for c, ch := range runes {
			if ch == emptyRune {
				continue
			}
			cell, ok := parseCellRune(ch)
			if !ok {
				return b, fmt.Errorf("othello: row %d col %d: unknown cell %q", r, c, ch)
			}
			b[r][c] = cell
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed inputs; it panics on error.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func parseCellRune(ch rune) (Cell, bool) {
	for cell, r := range cellRunes {
		if r == ch {
			return cell, true
		}
	}
	return Cell{}, false
}
