// Package loadout persists each owner's weapon collection: one record per
// item carrying the definition reference and progression totals. Runtime
// state (equipped, sheathed) is deliberately not part of the shape;
// restored items always come back stored.
package loadout

//go:generate mockgen -destination=mock/mock_repository.go -package=loadoutmock github.com/Two-Ocean/armory/internal/repositories/loadout Repository

import (
	"context"
	"time"

	"github.com/Two-Ocean/armory/internal/entities"
)

// ItemRecord is the persisted shape of one owned item. Rank is written so
// external readers can show levels without curve access, but restores
// recompute it from XP against the current curve; a rebalanced curve
// retroactively reinterprets stored XP.
type ItemRecord struct {
	ItemID       string          `json:"item_id"`
	DefinitionID string          `json:"definition_id"`
	Rarity       entities.Rarity `json:"rarity"`
	Rank         int32           `json:"current_rank"`
	XP           int64           `json:"xp"`
}

// Data is an owner's full persisted loadout.
type Data struct {
	OwnerID   string       `json:"owner_id"`
	Items     []ItemRecord `json:"items"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Repository defines the interface for loadout persistence
type Repository interface {
	// Get retrieves the loadout for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.NotFound if no loadout exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores the loadout for an owner, creating or replacing it
	// Returns errors.InvalidArgument for validation failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the loadout for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.NotFound if no loadout exists
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a loadout
type GetInput struct {
	OwnerID string
}

// GetOutput defines the output for getting a loadout
type GetOutput struct {
	Loadout *Data
}

// SaveInput defines the input for saving a loadout
type SaveInput struct {
	OwnerID string
	Items   []ItemRecord
}

// SaveOutput defines the output for saving a loadout
type SaveOutput struct {
	Loadout *Data
}

// DeleteInput defines the input for deleting a loadout
type DeleteInput struct {
	OwnerID string
}

// DeleteOutput defines the output for deleting a loadout
type DeleteOutput struct {
	// Empty for now, can be extended later
}
