package entities

// LevelDefinition is one entry in a rarity's level curve. RequiredXP is the
// cumulative XP threshold to reach Rank, not the delta from the previous rank.
type LevelDefinition struct {
	Rank       int32
	RequiredXP int64
}

// ProgressionSnapshot is the read-only view of an item's progression pushed
// to external observers (attribute sync, display). Next is nil at max rank.
type ProgressionSnapshot struct {
	Rarity  Rarity
	Current LevelDefinition
	Next    *LevelDefinition
	XP      int64
}

// AtMaxRank reports whether the snapshot was taken at the curve's last rank
func (s ProgressionSnapshot) AtMaxRank() bool {
	return s.Next == nil
}
