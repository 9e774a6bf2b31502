// Package inventory implements per-owner weapon collections: an ordered
// list of items, the Stored/Equipped state machine, and the at-most-one
// equipped invariant. Runtime representations (models attached to rigs)
// exist only while an item is equipped; everything else is plain data.
//
// An Inventory has a single logical owner. Calls for one owner must be
// serialized by the caller; the package adds no internal locking.
package inventory

import (
	"context"
	"fmt"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/pkg/idgen"
	"github.com/Two-Ocean/armory/internal/progression"
	"github.com/Two-Ocean/armory/internal/scene"
)

// Config holds everything an Inventory needs to mint and run items.
type Config struct {
	OwnerID   string
	Curves    *progression.CurveRegistry
	Directory *progression.Directory
	Models    scene.ModelProvider
	Rigs      scene.Attacher
	IDGen     idgen.Generator
}

// Validate checks that all required dependencies are set.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("OwnerID", c.OwnerID, vb)
	if c.Curves == nil {
		vb.RequiredField("Curves")
	}
	if c.Directory == nil {
		vb.RequiredField("Directory")
	}
	if c.Models == nil {
		vb.RequiredField("Models")
	}
	if c.Rigs == nil {
		vb.RequiredField("Rigs")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Inventory is an ordered weapon collection with at most one item
// equipped. Indices are dense and shift down on removal.
type Inventory struct {
	ownerID   string
	curves    *progression.CurveRegistry
	directory *progression.Directory
	models    scene.ModelProvider
	rigs      scene.Attacher
	idGen     idgen.Generator

	items    []*Item
	equipped int
}

// New creates an empty inventory for the configured owner.
func New(cfg *Config) (*Inventory, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Inventory{
		ownerID:   cfg.OwnerID,
		curves:    cfg.Curves,
		directory: cfg.Directory,
		models:    cfg.Models,
		rigs:      cfg.Rigs,
		idGen:     cfg.IDGen,
		equipped:  -1,
	}, nil
}

// OwnerID returns the owning entity's ID.
func (inv *Inventory) OwnerID() string {
	return inv.ownerID
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Add mints a new Stored item from the definition, registers its
// progression in the directory, and returns its index. When initial is
// nil the item starts at rank 1 with zero XP; a non-nil initial carries
// pre-built progression and must match the definition's rarity.
func (inv *Inventory) Add(def entities.WeaponDefinition, initial *progression.Progress) (int, error) {
	return inv.add(inv.idGen.Generate(), def, initial)
}

// Restore re-adds a persisted item under its original item key so
// progression tracking and external readers keep a stable identity across
// sessions. Restored items always start Stored.
func (inv *Inventory) Restore(id string, def entities.WeaponDefinition, progress *progression.Progress) (int, error) {
	if id == "" {
		return 0, errors.InvalidArgument("item key is required")
	}
	if progress == nil {
		return 0, errors.InvalidArgument("progress is required")
	}
	return inv.add(id, def, progress)
}

func (inv *Inventory) add(id string, def entities.WeaponDefinition, initial *progression.Progress) (int, error) {
	if err := validateDefinition(def); err != nil {
		return 0, err
	}

	progress := initial
	if progress == nil {
		p, err := progression.NewProgress(inv.curves, def.Rarity)
		if err != nil {
			return 0, err
		}
		progress = p
	} else if progress.Rarity() != def.Rarity {
		return 0, errors.InvalidArgumentf(
			"progression rarity %q does not match definition rarity %q",
			progress.Rarity(), def.Rarity)
	}

	if err := inv.directory.Register(id, progress); err != nil {
		return 0, err
	}

	inv.items = append(inv.items, &Item{
		id:        id,
		ownerID:   inv.ownerID,
		def:       def,
		progress:  progress,
		directory: inv.directory,
		models:    inv.models,
		rigs:      inv.rigs,
	})
	return len(inv.items) - 1, nil
}

// Remove deletes the item at the index, tearing its runtime representation
// down first when it is the equipped one. Later items shift down one index
// and the equipped index follows its item.
func (inv *Inventory) Remove(ctx context.Context, index int) error {
	if err := inv.checkIndex(index); err != nil {
		return err
	}

	item := inv.items[index]
	if inv.equipped == index {
		item.Unequip(ctx)
		inv.equipped = -1
	} else if inv.equipped > index {
		inv.equipped--
	}

	inv.directory.Unregister(item.id)
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	return nil
}

// Equip equips the item at the index, unequipping the current item first
// so at most one runtime representation is ever live. Equipping the index
// that is already equipped is a no-op. When the target item fails to
// equip, the previous item stays unequipped and the failure is returned;
// the inventory ends with nothing equipped.
func (inv *Inventory) Equip(ctx context.Context, index int) error {
	if err := inv.checkIndex(index); err != nil {
		return err
	}
	if inv.equipped == index {
		return nil
	}

	if inv.equipped >= 0 {
		inv.items[inv.equipped].Unequip(ctx)
		inv.equipped = -1
	}

	if err := inv.items[index].Equip(ctx); err != nil {
		return err
	}
	inv.equipped = index
	return nil
}

// Unequip returns the equipped item to Stored, reporting whether anything
// was equipped.
func (inv *Inventory) Unequip(ctx context.Context) bool {
	if inv.equipped < 0 {
		return false
	}

	inv.items[inv.equipped].Unequip(ctx)
	inv.equipped = -1
	return true
}

// Equipped returns the equipped item, or nil.
func (inv *Inventory) Equipped() *Item {
	if inv.equipped < 0 {
		return nil
	}
	return inv.items[inv.equipped]
}

// EquippedIndex returns the equipped item's index, or -1.
func (inv *Inventory) EquippedIndex() int {
	return inv.equipped
}

// Item returns the item at the index.
func (inv *Inventory) Item(index int) (*Item, error) {
	if err := inv.checkIndex(index); err != nil {
		return nil, err
	}
	return inv.items[index], nil
}

// Items returns the items in inventory order. The slice is a copy; the
// items are the live instances.
func (inv *Inventory) Items() []*Item {
	return append([]*Item(nil), inv.items...)
}

// Close tears the whole inventory down: unequips, unregisters every item
// from the progression directory, and empties the collection. Used when
// the owner leaves.
func (inv *Inventory) Close(ctx context.Context) {
	inv.Unequip(ctx)
	for _, item := range inv.items {
		inv.directory.Unregister(item.id)
	}
	inv.items = nil
	inv.equipped = -1
}

func (inv *Inventory) checkIndex(index int) error {
	if index < 0 || index >= len(inv.items) {
		return errors.OutOfRangef("inventory index %d out of range [0,%d)", index, len(inv.items))
	}
	return nil
}

func validateDefinition(def entities.WeaponDefinition) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", def.ID, vb)
	errors.ValidateRequired("name", def.Name, vb)
	errors.ValidateRequired("modelAssetId", def.ModelAssetID, vb)
	if !def.Rarity.IsValid() {
		vb.InvalidField("rarity", fmt.Sprintf("unknown rarity %q", def.Rarity))
	}
	if !def.WeaponType.IsValid() {
		vb.InvalidField("weaponType", fmt.Sprintf("unknown weapon type %q", def.WeaponType))
	}

	return vb.Build()
}
