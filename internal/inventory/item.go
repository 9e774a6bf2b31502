package inventory

import (
	"context"
	"log/slog"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/progression"
	"github.com/Two-Ocean/armory/internal/scene"
)

// Item is one owned weapon instance: a definition reference, its live
// progression, and the equip state machine. Stored and Equipped are the two
// states, and holding a non-nil handle is what Equipped means; there is no
// separate flag to drift out of sync.
//
// Items are created by their Inventory and share its single-owner contract.
type Item struct {
	id        string
	ownerID   string
	def       entities.WeaponDefinition
	progress  *progression.Progress
	directory *progression.Directory
	models    scene.ModelProvider
	rigs      scene.Attacher

	handle   scene.Handle
	sheathed bool
}

// ID returns the item instance key.
func (i *Item) ID() string {
	return i.id
}

// OwnerID returns the owning entity's ID.
func (i *Item) OwnerID() string {
	return i.ownerID
}

// Definition returns the weapon definition this item was stamped from.
func (i *Item) Definition() entities.WeaponDefinition {
	return i.def
}

// IsEquipped reports whether the item currently holds a live runtime
// representation.
func (i *Item) IsEquipped() bool {
	return i.handle != nil
}

// IsSheathed reports whether the equipped weapon is stowed on the back
// rather than drawn. Always false while Stored.
func (i *Item) IsSheathed() bool {
	return i.handle != nil && i.sheathed
}

// Equip brings the item from Stored to Equipped: resolve the model, attach
// it to the owner's rig, present it drawn, and push the current progression
// snapshot out so attached displays start correct. Fails with
// FailedPrecondition when already equipped. On resolve or attach failure
// the item stays Stored and anything acquired is released.
func (i *Item) Equip(ctx context.Context) error {
	if i.IsEquipped() {
		return errors.FailedPreconditionf("weapon %q is already equipped", i.id)
	}

	handle, err := i.models.ResolveModel(ctx, &i.def)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable,
			"failed to resolve model for weapon %q", i.def.ID)
	}

	if err := i.rigs.Attach(ctx, handle, i.ownerID); err != nil {
		if closeErr := handle.Close(); closeErr != nil {
			slog.WarnContext(ctx, "failed to close weapon model after attach failure",
				"item_id", i.id,
				"error", closeErr)
		}
		return errors.WrapWithCodef(err, errors.CodeUnavailable,
			"failed to attach weapon %q to rig of %q", i.def.ID, i.ownerID)
	}

	i.handle = handle
	i.sheathed = false

	// Equipping draws the weapon. A failed visual toggle degrades the
	// presentation but the item is attached and equipped.
	if err := handle.SetSheathed(ctx, false); err != nil {
		slog.WarnContext(ctx, "failed to present weapon drawn on equip",
			"item_id", i.id,
			"error", err)
	}

	if err := i.directory.Sync(ctx, i.id); err != nil {
		slog.WarnContext(ctx, "failed to sync progression on equip",
			"item_id", i.id,
			"error", err)
	}

	return nil
}

// Unequip tears the runtime representation down and returns the item to
// Stored, reporting whether there was anything to tear down. Detach and
// close failures are logged, never returned: teardown always completes and
// the item always ends Stored.
func (i *Item) Unequip(ctx context.Context) bool {
	if !i.IsEquipped() {
		return false
	}

	if err := i.rigs.Detach(ctx, i.handle); err != nil {
		slog.WarnContext(ctx, "failed to detach weapon model",
			"item_id", i.id,
			"error", err)
	}
	if err := i.handle.Close(); err != nil {
		slog.WarnContext(ctx, "failed to close weapon model",
			"item_id", i.id,
			"error", err)
	}

	i.handle = nil
	i.sheathed = false
	return true
}

// Sheathe stows the drawn weapon on the owner's back. FailedPrecondition
// while Stored; a no-op when already sheathed.
func (i *Item) Sheathe(ctx context.Context) error {
	return i.setSheathed(ctx, true)
}

// Unsheathe draws the sheathed weapon into the owner's hand.
// FailedPrecondition while Stored; a no-op when already drawn.
func (i *Item) Unsheathe(ctx context.Context) error {
	return i.setSheathed(ctx, false)
}

func (i *Item) setSheathed(ctx context.Context, sheathed bool) error {
	if !i.IsEquipped() {
		return errors.FailedPreconditionf("weapon %q is not equipped", i.id)
	}
	if i.sheathed == sheathed {
		return nil
	}

	if err := i.handle.SetSheathed(ctx, sheathed); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable,
			"failed to toggle sheathe state of weapon %q", i.id)
	}

	i.sheathed = sheathed
	return nil
}

// AwardXP grants XP through the progression directory so the level-up
// publish hook fires. Legal in both states; a stored weapon levels the
// same as an equipped one.
func (i *Item) AwardXP(ctx context.Context, amount int64) (entities.ProgressionSnapshot, error) {
	return i.directory.AwardXP(ctx, i.id, amount)
}

// Snapshot returns the item's current progression state.
func (i *Item) Snapshot() (entities.ProgressionSnapshot, error) {
	return i.progress.Snapshot()
}
