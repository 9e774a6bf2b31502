package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Two-Ocean/armory/internal/catalog"
	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/progression"
)

// TestCurve returns the standard three-rank common curve used across
// service-level tests: rank 2 at 100 XP, rank 3 (max) at 300.
func TestCurve() progression.Curve {
	return progression.Curve{
		{Rank: 1, RequiredXP: 0},
		{Rank: 2, RequiredXP: 100},
		{Rank: 3, RequiredXP: 300},
	}
}

// TestCurveRare returns the two-rank rare curve: rank 2 (max) at 500 XP.
func TestCurveRare() progression.Curve {
	return progression.Curve{
		{Rank: 1, RequiredXP: 0},
		{Rank: 2, RequiredXP: 500},
	}
}

// TestSword returns a common sword definition.
func TestSword() entities.WeaponDefinition {
	return entities.WeaponDefinition{
		ID:           "iron-sword",
		Name:         "Iron Sword",
		Rarity:       entities.RarityCommon,
		WeaponType:   entities.WeaponTypeSword,
		ModelAssetID: "assets/weapons/iron_sword",
		Description:  "A plain but dependable blade.",
	}
}

// TestAxe returns a rare axe definition.
func TestAxe() entities.WeaponDefinition {
	return entities.WeaponDefinition{
		ID:           "frost-axe",
		Name:         "Frost Axe",
		Rarity:       entities.RarityRare,
		WeaponType:   entities.WeaponTypeAxe,
		ModelAssetID: "assets/weapons/frost_axe",
		Description:  "The edge sweats rime even in summer.",
	}
}

// CreateTestContent returns a curve registry and catalog populated with
// the standard fixtures: common and rare curves, one weapon of each.
func CreateTestContent(t *testing.T) (*progression.CurveRegistry, *catalog.Catalog) {
	t.Helper()

	registry := progression.NewCurveRegistry()
	require.NoError(t, registry.Register(entities.RarityCommon, TestCurve()))
	require.NoError(t, registry.Register(entities.RarityRare, TestCurveRare()))

	cat := catalog.New()
	require.NoError(t, cat.Register(TestSword()))
	require.NoError(t, cat.Register(TestAxe()))

	return registry, cat
}
