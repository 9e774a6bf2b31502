// Package progression implements weapon leveling: rarity-keyed level
// curves, per-item XP tracking with rank derived from the curve, and a
// directory that pushes rank changes out to the attribute sink.
package progression

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
)

// Curve is the ordered level table for one rarity. Thresholds are
// cumulative: RequiredXP is the total XP at which that rank is reached, so
// the first entry is always rank 1 at zero XP.
type Curve []entities.LevelDefinition

// CurveRegistry maps rarities to their level curves. Registries are
// explicitly constructed and injected into whatever needs them; there is no
// package-level instance. Curves can be replaced but never removed, so a
// rarity that resolved once keeps resolving.
type CurveRegistry struct {
	mu     sync.RWMutex
	curves map[entities.Rarity]Curve
}

// NewCurveRegistry creates an empty registry.
func NewCurveRegistry() *CurveRegistry {
	return &CurveRegistry{
		curves: make(map[entities.Rarity]Curve),
	}
}

// Register validates the curve and stores it for the rarity, replacing any
// curve registered earlier. XP already accumulated against the old curve is
// reinterpreted against the new one on the next resolve.
func (r *CurveRegistry) Register(rarity entities.Rarity, curve Curve) error {
	if err := validateCurve(rarity, curve); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.curves[rarity] = append(Curve(nil), curve...)
	return nil
}

// Lookup returns a copy of the curve registered for the rarity.
func (r *CurveRegistry) Lookup(rarity entities.Rarity) (Curve, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	curve, ok := r.curves[rarity]
	if !ok {
		return nil, errors.NotFoundf("no level curve registered for rarity %q", rarity)
	}
	return append(Curve(nil), curve...), nil
}

// MaxRank returns the highest rank on the rarity's curve.
func (r *CurveRegistry) MaxRank(rarity entities.Rarity) (int32, error) {
	curve, err := r.Lookup(rarity)
	if err != nil {
		return 0, err
	}
	return curve[len(curve)-1].Rank, nil
}

// Rarities returns the registered rarities in lexical order.
func (r *CurveRegistry) Rarities() []entities.Rarity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rarities := make([]entities.Rarity, 0, len(r.curves))
	for rarity := range r.curves {
		rarities = append(rarities, rarity)
	}
	sort.Slice(rarities, func(i, j int) bool { return rarities[i] < rarities[j] })
	return rarities
}

func validateCurve(rarity entities.Rarity, curve Curve) error {
	vb := errors.NewValidationBuilder()

	if !rarity.IsValid() {
		vb.InvalidField("rarity", fmt.Sprintf("unknown rarity %q", rarity))
	}
	if len(curve) == 0 {
		vb.Field("curve", "must contain at least one level")
		return vb.Build()
	}

	if curve[0].Rank != 1 {
		vb.Fieldf("curve[0].rank", "must be 1, got %d", curve[0].Rank)
	}
	if curve[0].RequiredXP != 0 {
		vb.Fieldf("curve[0].xp", "first threshold must be 0, got %d", curve[0].RequiredXP)
	}
	for i := 1; i < len(curve); i++ {
		if curve[i].Rank != curve[i-1].Rank+1 {
			vb.Fieldf(fmt.Sprintf("curve[%d].rank", i),
				"ranks must be contiguous, got %d after %d", curve[i].Rank, curve[i-1].Rank)
		}
		if curve[i].RequiredXP < curve[i-1].RequiredXP {
			vb.Fieldf(fmt.Sprintf("curve[%d].xp", i),
				"thresholds must not decrease, got %d after %d", curve[i].RequiredXP, curve[i-1].RequiredXP)
		}
	}

	return vb.Build()
}

// resolveRank returns the highest level whose threshold is within xp, plus
// the following level when one exists. XP past the last threshold leaves
// the item at max rank.
func resolveRank(curve Curve, xp int64) (entities.LevelDefinition, *entities.LevelDefinition) {
	idx := 0
	for i := 1; i < len(curve); i++ {
		if curve[i].RequiredXP > xp {
			break
		}
		idx = i
	}

	current := curve[idx]
	if idx+1 < len(curve) {
		next := curve[idx+1]
		return current, &next
	}
	return current, nil
}
