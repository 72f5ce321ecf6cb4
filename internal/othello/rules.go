package othello

// Direction is a unit step on the board.
type Direction struct {
	DRow, DCol int
}

// Directions lists the eight compass directions in scan order: up-left, up,
// up-right, left, right, down-left, down, down-right. Flip lists are built in
// this order.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// OpeningRule forces a color's very first move onto a single square. It is in
// effect only while no stone on the board has provenance Placed.
type OpeningRule struct {
	Enabled bool
	Color   Color
	Pos     Pos
}

// Rules holds the variant-specific legality settings.
type Rules struct {
	Opening OpeningRule
}

// StandardRules returns the default rules: black must open at (4,3). White's
// first move is unrestricted.
func StandardRules() Rules {
	return Rules{
		Opening: OpeningRule{
			Enabled: true,
			Color:   Black,
			Pos:     Pos{Row: 4, Col: 3},
		},
	}
}

// Move is a legal move for the player about to act, with the stones it flips
// and its threat level.
type Move struct {
	Pos         Pos
	Flips       []Pos
	ThreatLevel int
}

// IsThreat reports whether the move ends at least one flip run on a placed stone.
func (m Move) IsThreat() bool {
	return m.ThreatLevel > 0
}

// run walks from pos in direction d over contiguous opponent stones. It
// returns the run and the cell that terminated it; ok is false when the walk
// left the board or the run is empty.
func run(b Board, pos Pos, d Direction, player Color) (stones []Pos, end Cell, ok bool) {
	opponent := player.Opponent()
	cur := Pos{Row: pos.Row + d.DRow, Col: pos.Col + d.DCol}
	for cur.InBounds() && b[cur.Row][cur.Col].Color == opponent {
		stones = append(stones, cur)
		cur = Pos{Row: cur.Row + d.DRow, Col: cur.Col + d.DCol}
	}
	if len(stones) == 0 || !cur.InBounds() {
		return nil, Cell{}, false
	}
	return stones, b[cur.Row][cur.Col], true
}

// captures reports whether direction d from pos flips anything for player.
func captures(b Board, pos Pos, d Direction, player Color) bool {
	_, end, ok := run(b, pos, d, player)
	return ok && end.Color == player
}

// openingBlocks reports whether the opening rule forbids player from playing at pos.
func (r Rules) openingBlocks(b Board, pos Pos, player Color) bool {
	o := r.Opening
	if !o.Enabled || player != o.Color || b.HasPlaced() {
		return false
	}
	return pos != o.Pos
}

// IsLegalMove reports whether player may place a stone at pos.
func (r Rules) IsLegalMove(b Board, pos Pos, player Color) bool {
	if !pos.InBounds() || player == None {
		return false
	}
	if !b[pos.Row][pos.Col].Empty() {
		return false
	}
	if r.openingBlocks(b, pos, player) {
		return false
	}
	for _, d := range Directions {
		if captures(b, pos, d, player) {
			return true
		}
	}
	return false
}

// HasAnyLegalMove reports whether player has at least one legal move.
func (r Rules) HasAnyLegalMove(b Board, player Color) bool {
	for row := range Size {
		for col := range Size {
			if r.IsLegalMove(b, Pos{Row: row, Col: col}, player) {
				return true
			}
		}
	}
	return false
}

// LegalMoves enumerates player's legal moves in row-major order.
func (r Rules) LegalMoves(b Board, player Color) []Move {
	var moves []Move
	for row := range Size {
		for col := range Size {
			pos := Pos{Row: row, Col: col}
			if !r.IsLegalMove(b, pos, player) {
				continue
			}
			moves = append(moves, Move{
				Pos:         pos,
				Flips:       FlippableStones(b, pos, player),
				ThreatLevel: ThreatLevel(b, pos, player),
			})
		}
	}
	return moves
}

// FlippableStones returns the opponent stones that a stone of player's color
// at pos would flip. Runs are concatenated in Directions order. The opening
// rule is not consulted; an occupied or off-board pos yields nothing.
func FlippableStones(b Board, pos Pos, player Color) []Pos {
	if !pos.InBounds() || !b[pos.Row][pos.Col].Empty() {
		return nil
	}
	var flips []Pos
	for _, d := range Directions {
		stones, end, ok := run(b, pos, d, player)
		if ok && end.Color == player {
			flips = append(flips, stones...)
		}
	}
	return flips
}

// Apply places a stone for player at pos and flips the captured runs. It
// returns the resulting board and the flipped positions; b itself is not
// modified. Apply does not check legality.
func Apply(b Board, pos Pos, player Color) (Board, []Pos) {
	flips := FlippableStones(b, pos, player)
	next := b
	next[pos.Row][pos.Col] = Cell{Color: player, Provenance: Placed}
	for _, f := range flips {
		next[f.Row][f.Col] = Cell{Color: player, Provenance: Flipped}
	}
	return next, flips
}
