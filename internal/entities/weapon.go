// Package entities defines the core domain types for the armory
package entities

// Rarity selects which level curve applies to a weapon
type Rarity string

// Define all rarity tiers
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// String returns the string representation of the rarity
func (r Rarity) String() string {
	return string(r)
}

// IsValid checks if the rarity is a known tier
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// AllRarities returns a slice of all valid rarities, lowest tier first
func AllRarities() []Rarity {
	return []Rarity{
		RarityCommon,
		RarityUncommon,
		RarityRare,
		RarityEpic,
		RarityLegendary,
	}
}

// RarityFromString converts a string to a Rarity
// Returns the rarity and true if valid, empty rarity and false if invalid
func RarityFromString(s string) (Rarity, bool) {
	rarity := Rarity(s)
	if rarity.IsValid() {
		return rarity, true
	}
	return "", false
}

// WeaponType classifies a weapon's handling style
type WeaponType string

// Define all weapon types
const (
	WeaponTypeSword  WeaponType = "sword"
	WeaponTypeAxe    WeaponType = "axe"
	WeaponTypeDagger WeaponType = "dagger"
	WeaponTypeHammer WeaponType = "hammer"
	WeaponTypeBow    WeaponType = "bow"
	WeaponTypeStaff  WeaponType = "staff"
)

// String returns the string representation of the weapon type
func (t WeaponType) String() string {
	return string(t)
}

// IsValid checks if the weapon type is known
func (t WeaponType) IsValid() bool {
	switch t {
	case WeaponTypeSword, WeaponTypeAxe, WeaponTypeDagger,
		WeaponTypeHammer, WeaponTypeBow, WeaponTypeStaff:
		return true
	default:
		return false
	}
}

// WeaponTypeFromString converts a string to a WeaponType
// Returns the type and true if valid, empty type and false if invalid
func WeaponTypeFromString(s string) (WeaponType, bool) {
	weaponType := WeaponType(s)
	if weaponType.IsValid() {
		return weaponType, true
	}
	return "", false
}

// WeaponDefinition is the immutable identity of a weapon: authored content,
// shared by every item instance stamped from it. The definition carries the
// metadata the engine needs (rarity for curve lookup, type and model asset
// for the runtime representation); item instances hold the mutable state.
type WeaponDefinition struct {
	ID           string
	Name         string
	Rarity       Rarity
	WeaponType   WeaponType
	ModelAssetID string
	Description  string
}
