package match

import (
	"math/rand"

	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

// Opponent picks a move for the computer-controlled side.
type Opponent interface {
	// Choose returns one of moves. ok is false when moves is empty.
	Choose(moves []othello.Move) (move othello.Move, ok bool)
}

// RandomOpponent picks uniformly among the legal moves. It does no evaluation.
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent returns a RandomOpponent with a deterministic seed.
func NewRandomOpponent(seed int64) *RandomOpponent {
	return &RandomOpponent{rng: rand.New(rand.NewSource(seed))}
}

func (o *RandomOpponent) Choose(moves []othello.Move) (othello.Move, bool) {
	if len(moves) == 0 {
		return othello.Move{}, false
	}
	return moves[o.rng.Intn(len(moves))], true
}
