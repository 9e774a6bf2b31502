package progression

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/scene"
)

// DirectoryConfig holds the directory's collaborators. The sink is
// optional; without one the directory is a pure lookup table.
type DirectoryConfig struct {
	Sink scene.AttributeSink
}

// Directory indexes the live Progress of every tracked item by its item
// key and pushes snapshots through the attribute sink when ranks change.
// Keys live in a flat namespace, so awarding XP needs only the key, not
// the owning inventory.
//
// The map is safe for concurrent use across owners; mutations of any one
// entry follow the single-owner contract of its inventory.
type Directory struct {
	mu      sync.RWMutex
	entries map[string]*Progress
	sink    scene.AttributeSink
}

// NewDirectory creates an empty directory. A nil config is allowed and
// means no sink.
func NewDirectory(cfg *DirectoryConfig) *Directory {
	d := &Directory{
		entries: make(map[string]*Progress),
	}
	if cfg != nil {
		d.sink = cfg.Sink
	}
	return d
}

// Register tracks progress under the item key.
func (d *Directory) Register(key string, progress *Progress) error {
	if key == "" {
		return errors.InvalidArgument("item key is required")
	}
	if progress == nil {
		return errors.InvalidArgument("progress is required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.entries[key]; exists {
		return errors.AlreadyExistsf("progression already tracked for item %q", key)
	}
	d.entries[key] = progress
	return nil
}

// Unregister stops tracking the key. Unknown keys are a no-op so teardown
// paths can call it unconditionally.
func (d *Directory) Unregister(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, key)
}

// Get returns the tracked progress for the key.
func (d *Directory) Get(key string) (*Progress, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	progress, ok := d.entries[key]
	if !ok {
		return nil, errors.NotFoundf("no progression tracked for item %q", key)
	}
	return progress, nil
}

// AwardXP adds XP to the keyed progress and returns the resulting
// snapshot. When the award crosses a threshold the snapshot is also
// published through the sink; publish failures are logged, never returned,
// because the award itself has already taken effect.
func (d *Directory) AwardXP(ctx context.Context, key string, amount int64) (entities.ProgressionSnapshot, error) {
	progress, err := d.Get(key)
	if err != nil {
		return entities.ProgressionSnapshot{}, err
	}

	leveled, err := progress.AddXP(amount)
	if err != nil {
		return entities.ProgressionSnapshot{}, err
	}

	snapshot, err := progress.Snapshot()
	if err != nil {
		return entities.ProgressionSnapshot{}, err
	}

	if leveled {
		d.publish(ctx, key, snapshot)
	}
	return snapshot, nil
}

// Sync publishes the current snapshot for the key unconditionally. Called
// on equip so displays attached to a freshly equipped weapon start from
// the right values.
func (d *Directory) Sync(ctx context.Context, key string) error {
	progress, err := d.Get(key)
	if err != nil {
		return err
	}

	snapshot, err := progress.Snapshot()
	if err != nil {
		return err
	}

	d.publish(ctx, key, snapshot)
	return nil
}

// Snapshot returns the current snapshot for the key without publishing.
func (d *Directory) Snapshot(key string) (entities.ProgressionSnapshot, error) {
	progress, err := d.Get(key)
	if err != nil {
		return entities.ProgressionSnapshot{}, err
	}
	return progress.Snapshot()
}

func (d *Directory) publish(ctx context.Context, key string, snapshot entities.ProgressionSnapshot) {
	if d.sink == nil {
		return
	}
	if err := d.sink.Publish(ctx, key, snapshot); err != nil {
		slog.WarnContext(ctx, "failed to publish progression snapshot",
			"item_key", key,
			"rank", snapshot.Current.Rank,
			"error", err)
	}
}
