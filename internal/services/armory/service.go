// Package armory defines the interface for armory operations: per-owner
// loadout sessions, the weapon equip lifecycle, and progression awards.
// This is the surface a game server embeds; everything scene- or
// network-facing stays behind the collaborator interfaces.
package armory

//go:generate mockgen -destination=mock/mock_service.go -package=armorymock github.com/Two-Ocean/armory/internal/services/armory Service

import (
	"context"
	"time"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/inventory"
)

// Service defines the interface for armory operations. Calls touching one
// owner must be serialized by the caller; calls for different owners may
// run concurrently.
type Service interface {
	// Session lifecycle
	LoadLoadout(ctx context.Context, input *LoadLoadoutInput) (*LoadLoadoutOutput, error)
	SaveLoadout(ctx context.Context, input *SaveLoadoutInput) (*SaveLoadoutOutput, error)
	ReleaseLoadout(ctx context.Context, input *ReleaseLoadoutInput) (*ReleaseLoadoutOutput, error)

	// Collection operations
	GrantWeapon(ctx context.Context, input *GrantWeaponInput) (*GrantWeaponOutput, error)
	RemoveWeapon(ctx context.Context, input *RemoveWeaponInput) (*RemoveWeaponOutput, error)

	// Equip lifecycle
	EquipWeapon(ctx context.Context, input *EquipWeaponInput) (*EquipWeaponOutput, error)
	UnequipWeapon(ctx context.Context, input *UnequipWeaponInput) (*UnequipWeaponOutput, error)
	DrawWeapon(ctx context.Context, input *DrawWeaponInput) (*DrawWeaponOutput, error)
	StowWeapon(ctx context.Context, input *StowWeaponInput) (*StowWeaponOutput, error)

	// Progression
	AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error)

	// Reads
	GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error)
}

// Session lifecycle types

// LoadLoadoutInput defines the request for loading an owner's loadout
type LoadLoadoutInput struct {
	OwnerID string
}

// LoadLoadoutOutput defines the response for loading a loadout
type LoadLoadoutOutput struct {
	// Restored is the number of persisted items brought back.
	Restored int
	// Skipped counts persisted records that no longer resolve against
	// the current content and were dropped with a warning.
	Skipped int
}

// SaveLoadoutInput defines the request for saving an owner's loadout
type SaveLoadoutInput struct {
	OwnerID string
}

// SaveLoadoutOutput defines the response for saving a loadout
type SaveLoadoutOutput struct {
	Saved     int
	UpdatedAt time.Time
}

// ReleaseLoadoutInput defines the request for releasing an owner's session
type ReleaseLoadoutInput struct {
	OwnerID string
}

// ReleaseLoadoutOutput defines the response for releasing a session
type ReleaseLoadoutOutput struct {
	Saved int
}

// Collection types

// GrantWeaponInput defines the request for granting a weapon
type GrantWeaponInput struct {
	OwnerID      string
	DefinitionID string
}

// GrantWeaponOutput defines the response for granting a weapon
type GrantWeaponOutput struct {
	ItemID string
	Index  int
}

// RemoveWeaponInput defines the request for removing a weapon
type RemoveWeaponInput struct {
	OwnerID string
	Index   int
}

// RemoveWeaponOutput defines the response for removing a weapon
type RemoveWeaponOutput struct {
	ItemID string
}

// Equip lifecycle types

// EquipWeaponInput defines the request for equipping a weapon by index
type EquipWeaponInput struct {
	OwnerID string
	Index   int
}

// EquipWeaponOutput defines the response for equipping a weapon
type EquipWeaponOutput struct {
	ItemID string
}

// UnequipWeaponInput defines the request for unequipping the held weapon
type UnequipWeaponInput struct {
	OwnerID string
}

// UnequipWeaponOutput defines the response for unequipping
type UnequipWeaponOutput struct {
	// WasEquipped is false when there was nothing to unequip.
	WasEquipped bool
}

// DrawWeaponInput defines the request for drawing the equipped weapon
type DrawWeaponInput struct {
	OwnerID string
}

// DrawWeaponOutput defines the response for drawing
type DrawWeaponOutput struct{}

// StowWeaponInput defines the request for sheathing the equipped weapon
type StowWeaponInput struct {
	OwnerID string
}

// StowWeaponOutput defines the response for sheathing
type StowWeaponOutput struct{}

// Progression types

// AwardExperienceInput defines the request for awarding XP to an item.
// Item keys live in a flat namespace, so no owner ID is needed; combat
// code can award XP knowing only which weapon dealt the blow.
type AwardExperienceInput struct {
	ItemKey string
	Amount  int64
}

// AwardExperienceOutput defines the response for awarding XP
type AwardExperienceOutput struct {
	Snapshot entities.ProgressionSnapshot
}

// Read types

// GetLoadoutInput defines the request for reading an owner's loadout
type GetLoadoutInput struct {
	OwnerID string
}

// GetLoadoutOutput defines the response for reading a loadout
type GetLoadoutOutput struct {
	OwnerID       string
	Rows          []inventory.DisplayRow
	EquippedIndex int
}
