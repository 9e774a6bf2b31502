package progression

import (
	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
)

// Progress tracks the accumulated XP of a single item. Only the XP total
// is state; the rank is re-derived from the registry on every read, so
// replacing a curve reinterprets existing XP instead of stranding it.
//
// A Progress belongs to exactly one item and inherits the inventory's
// single-owner contract: callers serialize mutations per owner.
type Progress struct {
	registry *CurveRegistry
	rarity   entities.Rarity
	xp       int64
}

// NewProgress creates progress at rank 1 with zero XP. The rarity must
// already have a curve registered.
func NewProgress(registry *CurveRegistry, rarity entities.Rarity) (*Progress, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("curve registry is required")
	}
	if _, err := registry.Lookup(rarity); err != nil {
		return nil, err
	}

	return &Progress{
		registry: registry,
		rarity:   rarity,
	}, nil
}

// Rarity returns the rarity whose curve governs this progress.
func (p *Progress) Rarity() entities.Rarity {
	return p.rarity
}

// XP returns the accumulated XP total.
func (p *Progress) XP() int64 {
	return p.xp
}

// AddXP adds a non-negative XP amount and reports whether the rank
// increased as a result. Negative amounts are rejected and leave the state
// untouched. XP keeps accumulating past the final threshold; the rank just
// stops moving.
func (p *Progress) AddXP(amount int64) (bool, error) {
	if amount < 0 {
		return false, errors.InvalidArgumentf("xp award cannot be negative: %d", amount)
	}

	curve, err := p.registry.Lookup(p.rarity)
	if err != nil {
		return false, err
	}

	before, _ := resolveRank(curve, p.xp)
	p.xp += amount
	after, _ := resolveRank(curve, p.xp)

	return after.Rank > before.Rank, nil
}

// Snapshot resolves the current state against the registry: current level,
// the next level when one exists (nil at max rank), and the XP total.
func (p *Progress) Snapshot() (entities.ProgressionSnapshot, error) {
	curve, err := p.registry.Lookup(p.rarity)
	if err != nil {
		return entities.ProgressionSnapshot{}, err
	}

	current, next := resolveRank(curve, p.xp)
	return entities.ProgressionSnapshot{
		Rarity:  p.rarity,
		Current: current,
		Next:    next,
		XP:      p.xp,
	}, nil
}
