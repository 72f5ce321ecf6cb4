package othello

// ThreatLevel counts the directions in which a stone for player at pos would
// flip at least one opponent stone and close the run on one of player's own
// placed stones. Stones that were only ever flipped into player's color, and
// the seed stones, do not count.
func ThreatLevel(b Board, pos Pos, player Color) int {
	if !pos.InBounds() || !b[pos.Row][pos.Col].Empty() {
		return 0
	}
	level := 0
	for _, d := range Directions {
		_, end, ok := run(b, pos, d, player)
		if ok && end.Color == player && end.Provenance == Placed {
			level++
		}
	}
	return level
}

// IsThreat reports whether the move at pos has a threat level of at least one.
func IsThreat(b Board, pos Pos, player Color) bool {
	return ThreatLevel(b, pos, player) > 0
}
