package othello

import "math"

// DamageParams are the constants of the damage formula
//
//	round(Base * Growth^(flips-1) + Special + [ThreatBonus if threat])
//
// The zero value is not useful; start from DefaultDamageParams.
type DamageParams struct {
	Base        float64 // normal component for a single flip
	Growth      float64 // multiplier per additional flip
	Special     float64 // special component paid on every move
	ThreatBonus float64 // added to the special component for threats
}

// DefaultDamageParams returns the stock constants: 1500, x1.2, 1500, +2500.
func DefaultDamageParams() DamageParams {
	return DamageParams{
		Base:        1500,
		Growth:      1.2,
		Special:     1500,
		ThreatBonus: 2500,
	}
}

// Compute returns the damage for a move that flips flipCount stones. A move
// that flips nothing deals no damage.
func (p DamageParams) Compute(flipCount int, isThreat bool) int {
	if flipCount <= 0 {
		return 0
	}
	normal := p.Base * math.Pow(p.Growth, float64(flipCount-1))
	special := p.Special
	if isThreat {
		special += p.ThreatBonus
	}
	// Both components are non-negative, so Floor(x+0.5) rounds half up.
	return int(math.Floor(normal + special + 0.5))
}

// ComputeDamage applies the default constants.
func ComputeDamage(flipCount int, isThreat bool) int {
	return DefaultDamageParams().Compute(flipCount, isThreat)
}
