// Package scene defines the boundary between the armory engine and the
// scene integration that owns models, rigs, and displayed attributes. The
// engine only ever talks to these interfaces; the concrete implementations
// (asset streaming, rig hierarchy, replication) live outside this module.
package scene

//go:generate mockgen -destination=mock/mock_scene.go -package=scenemock -source=scene.go

import (
	"context"

	"github.com/Two-Ocean/armory/internal/entities"
)

// Handle is the live runtime representation of an equipped weapon: the
// instantiated model plus its attachment state. A Handle exists only while
// its item is equipped. Close releases everything the handle owns and must
// be called on every path that abandons the handle, including failed
// attachment during equip.
type Handle interface {
	// SetSheathed switches the visual sub-models between the sheathed
	// (stowed on the back) and unsheathed (drawn in hand) presentation.
	SetSheathed(ctx context.Context, sheathed bool) error

	// Close destroys the runtime representation. Idempotent.
	Close() error
}

// ModelProvider resolves a weapon definition's model asset into a live
// runtime representation. Resolution is treated as a blocking call that
// either returns a usable handle or fails; the provider owns its own
// timeouts.
type ModelProvider interface {
	ResolveModel(ctx context.Context, def *entities.WeaponDefinition) (Handle, error)
}

// Attacher parents runtime representations to character rigs. Rigs are
// addressed by owner ID; the integration maps owner IDs to whatever rig
// representation the scene uses, keeping the engine free of scene types.
type Attacher interface {
	// Attach parents the handle's model to the owner's rig.
	Attach(ctx context.Context, handle Handle, ownerID string) error

	// Detach unparents the handle's model from whatever rig holds it.
	Detach(ctx context.Context, handle Handle) error
}

// AttributeSink receives progression snapshots so UI and replication layers
// can read current level and XP without polling the engine. Published on
// level-up and on equip.
type AttributeSink interface {
	Publish(ctx context.Context, itemKey string, snapshot entities.ProgressionSnapshot) error
}
