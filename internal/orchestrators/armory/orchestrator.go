// Package armory implements the armory orchestrator
package armory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Two-Ocean/armory/internal/catalog"
	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/inventory"
	"github.com/Two-Ocean/armory/internal/pkg/idgen"
	"github.com/Two-Ocean/armory/internal/progression"
	loadoutrepo "github.com/Two-Ocean/armory/internal/repositories/loadout"
	"github.com/Two-Ocean/armory/internal/scene"
	"github.com/Two-Ocean/armory/internal/services/armory"
)

// Config holds the dependencies for the armory orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	Curves      *progression.CurveRegistry
	Directory   *progression.Directory
	Models      scene.ModelProvider
	Rigs        scene.Attacher
	LoadoutRepo loadoutrepo.Repository

	// IDGenerator mints item keys for newly granted weapons.
	// Optional, defaults to a UUID generator.
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
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
	if c.LoadoutRepo == nil {
		vb.RequiredField("LoadoutRepo")
	}

	return vb.Build()
}

// Orchestrator implements the armory.Service interface. It owns one
// inventory session per loaded owner; the map is safe for concurrent
// owners, but calls touching a single owner must be serialized by the
// caller (the inventory itself is single-owner).
type Orchestrator struct {
	catalog     *catalog.Catalog
	curves      *progression.CurveRegistry
	directory   *progression.Directory
	models      scene.ModelProvider
	rigs        scene.Attacher
	loadoutRepo loadoutrepo.Repository
	idGen       idgen.Generator

	mu       sync.RWMutex
	sessions map[string]*inventory.Inventory
}

// New creates a new armory orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("item")
	}

	return &Orchestrator{
		catalog:     cfg.Catalog,
		curves:      cfg.Curves,
		directory:   cfg.Directory,
		models:      cfg.Models,
		rigs:        cfg.Rigs,
		loadoutRepo: cfg.LoadoutRepo,
		idGen:       idGen,
		sessions:    make(map[string]*inventory.Inventory),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ armory.Service = (*Orchestrator)(nil)

// Session lifecycle methods

// LoadLoadout restores an owner's persisted loadout into a live session.
// Owners with no saved loadout start empty. Persisted records that no
// longer resolve against the current content are skipped with a warning.
func (o *Orchestrator) LoadLoadout(ctx context.Context, input *armory.LoadLoadoutInput) (*armory.LoadLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.RLock()
	_, loaded := o.sessions[input.OwnerID]
	o.mu.RUnlock()
	if loaded {
		return nil, errors.AlreadyExistsf("loadout for owner %q is already loaded", input.OwnerID)
	}

	var records []loadoutrepo.ItemRecord
	getOutput, err := o.loadoutRepo.Get(ctx, loadoutrepo.GetInput{OwnerID: input.OwnerID})
	switch {
	case err == nil:
		records = getOutput.Loadout.Items
	case errors.IsNotFound(err):
		// First session for this owner, start empty.
	default:
		return nil, errors.Wrapf(err, "failed to load loadout for owner %q", input.OwnerID)
	}

	inv, err := inventory.New(&inventory.Config{
		OwnerID:   input.OwnerID,
		Curves:    o.curves,
		Directory: o.directory,
		Models:    o.models,
		Rigs:      o.rigs,
		IDGen:     o.idGen,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory")
	}

	restored, skipped := 0, 0
	for _, record := range records {
		if err := o.restoreRecord(inv, record); err != nil {
			slog.WarnContext(ctx, "skipping persisted item",
				"owner_id", input.OwnerID,
				"item_id", record.ItemID,
				"definition_id", record.DefinitionID,
				"error", err)
			skipped++
			continue
		}
		restored++
	}

	o.mu.Lock()
	if _, raced := o.sessions[input.OwnerID]; raced {
		o.mu.Unlock()
		inv.Close(ctx)
		return nil, errors.AlreadyExistsf("loadout for owner %q is already loaded", input.OwnerID)
	}
	o.sessions[input.OwnerID] = inv
	o.mu.Unlock()

	return &armory.LoadLoadoutOutput{
		Restored: restored,
		Skipped:  skipped,
	}, nil
}

// restoreRecord rebuilds one persisted item inside the session inventory.
// Rank is not read from the record: progression is rebuilt from stored XP
// against the currently registered curve, so rebalanced curves
// reinterpret old saves.
func (o *Orchestrator) restoreRecord(inv *inventory.Inventory, record loadoutrepo.ItemRecord) error {
	def, err := o.catalog.Get(record.DefinitionID)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve definition %q", record.DefinitionID)
	}

	progress, err := progression.NewProgress(o.curves, record.Rarity)
	if err != nil {
		return errors.Wrapf(err, "failed to rebuild progression for rarity %q", record.Rarity)
	}
	if _, err := progress.AddXP(record.XP); err != nil {
		return errors.Wrapf(err, "failed to restore %d xp", record.XP)
	}

	if _, err := inv.Restore(record.ItemID, def, progress); err != nil {
		return errors.Wrap(err, "failed to restore item")
	}
	return nil
}

// SaveLoadout persists the owner's current loadout, replacing any prior save.
func (o *Orchestrator) SaveLoadout(ctx context.Context, input *armory.SaveLoadoutInput) (*armory.SaveLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	saveOutput, err := o.saveSession(ctx, inv)
	if err != nil {
		return nil, err
	}

	return &armory.SaveLoadoutOutput{
		Saved:     len(saveOutput.Loadout.Items),
		UpdatedAt: saveOutput.Loadout.UpdatedAt,
	}, nil
}

// ReleaseLoadout saves the owner's loadout, tears down any equipped
// runtime state, and drops the session. A failed save keeps the session
// alive so the caller can retry without losing progress.
func (o *Orchestrator) ReleaseLoadout(ctx context.Context, input *armory.ReleaseLoadoutInput) (*armory.ReleaseLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	saveOutput, err := o.saveSession(ctx, inv)
	if err != nil {
		return nil, err
	}

	inv.Close(ctx)

	o.mu.Lock()
	delete(o.sessions, input.OwnerID)
	o.mu.Unlock()

	return &armory.ReleaseLoadoutOutput{
		Saved: len(saveOutput.Loadout.Items),
	}, nil
}

// Collection methods

// GrantWeapon mints a new item from a catalog definition and adds it to
// the owner's loadout at rank 1 with zero XP.
func (o *Orchestrator) GrantWeapon(ctx context.Context, input *armory.GrantWeaponInput) (*armory.GrantWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("definitionID", input.DefinitionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	def, err := o.catalog.Get(input.DefinitionID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve definition %q", input.DefinitionID)
	}

	index, err := inv.Add(def, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to grant weapon %q", input.DefinitionID)
	}

	item, err := inv.Item(index)
	if err != nil {
		return nil, err
	}

	return &armory.GrantWeaponOutput{
		ItemID: item.ID(),
		Index:  index,
	}, nil
}

// RemoveWeapon removes the item at the given index, unequipping it first
// if it is the held weapon.
func (o *Orchestrator) RemoveWeapon(ctx context.Context, input *armory.RemoveWeaponInput) (*armory.RemoveWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	item, err := inv.Item(input.Index)
	if err != nil {
		return nil, err
	}
	itemID := item.ID()

	if err := inv.Remove(ctx, input.Index); err != nil {
		return nil, errors.Wrapf(err, "failed to remove weapon at index %d", input.Index)
	}

	return &armory.RemoveWeaponOutput{
		ItemID: itemID,
	}, nil
}

// Equip lifecycle methods

// EquipWeapon makes the item at the given index the held weapon,
// unequipping the current one first.
func (o *Orchestrator) EquipWeapon(ctx context.Context, input *armory.EquipWeaponInput) (*armory.EquipWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := inv.Equip(ctx, input.Index); err != nil {
		return nil, errors.Wrapf(err, "failed to equip weapon at index %d", input.Index)
	}

	equipped := inv.Equipped()
	if equipped == nil {
		// Unreachable after a successful Equip, kept as a guard.
		return nil, errors.Internalf("no weapon equipped after equip at index %d", input.Index)
	}

	return &armory.EquipWeaponOutput{
		ItemID: equipped.ID(),
	}, nil
}

// UnequipWeapon stores the held weapon, if any.
func (o *Orchestrator) UnequipWeapon(ctx context.Context, input *armory.UnequipWeaponInput) (*armory.UnequipWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &armory.UnequipWeaponOutput{
		WasEquipped: inv.Unequip(ctx),
	}, nil
}

// DrawWeapon unsheathes the held weapon.
func (o *Orchestrator) DrawWeapon(ctx context.Context, input *armory.DrawWeaponInput) (*armory.DrawWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	item := inv.Equipped()
	if item == nil {
		return nil, errors.FailedPreconditionf("owner %q has no weapon equipped", input.OwnerID)
	}

	if err := item.Unsheathe(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to draw weapon %q", item.ID())
	}

	return &armory.DrawWeaponOutput{}, nil
}

// StowWeapon sheathes the held weapon.
func (o *Orchestrator) StowWeapon(ctx context.Context, input *armory.StowWeaponInput) (*armory.StowWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	item := inv.Equipped()
	if item == nil {
		return nil, errors.FailedPreconditionf("owner %q has no weapon equipped", input.OwnerID)
	}

	if err := item.Sheathe(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to stow weapon %q", item.ID())
	}

	return &armory.StowWeaponOutput{}, nil
}

// Progression methods

// AwardExperience grants XP to an item by its key. Keys live in a flat
// namespace, so callers need not know which owner holds the item.
func (o *Orchestrator) AwardExperience(ctx context.Context, input *armory.AwardExperienceInput) (*armory.AwardExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("itemKey", input.ItemKey, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	snapshot, err := o.directory.AwardXP(ctx, input.ItemKey, input.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to award experience to item %q", input.ItemKey)
	}

	return &armory.AwardExperienceOutput{
		Snapshot: snapshot,
	}, nil
}

// Read methods

// GetLoadout returns the display projection of an owner's loadout.
func (o *Orchestrator) GetLoadout(ctx context.Context, input *armory.GetLoadoutInput) (*armory.GetLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	rows, err := inv.DisplayRows()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build loadout view for owner %q", input.OwnerID)
	}

	return &armory.GetLoadoutOutput{
		OwnerID:       input.OwnerID,
		Rows:          rows,
		EquippedIndex: inv.EquippedIndex(),
	}, nil
}

// session returns the live inventory for an owner.
func (o *Orchestrator) session(ownerID string) (*inventory.Inventory, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", ownerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.RLock()
	inv, ok := o.sessions[ownerID]
	o.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("no loadout loaded for owner %q", ownerID)
	}
	return inv, nil
}

// saveSession writes the inventory's current records through the repository.
func (o *Orchestrator) saveSession(ctx context.Context, inv *inventory.Inventory) (*loadoutrepo.SaveOutput, error) {
	items := inv.Items()
	records := make([]loadoutrepo.ItemRecord, 0, len(items))
	for _, item := range items {
		snapshot, err := item.Snapshot()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to snapshot item %q", item.ID())
		}
		def := item.Definition()
		records = append(records, loadoutrepo.ItemRecord{
			ItemID:       item.ID(),
			DefinitionID: def.ID,
			Rarity:       snapshot.Rarity,
			Rank:         snapshot.Current.Rank,
			XP:           snapshot.XP,
		})
	}

	saveOutput, err := o.loadoutRepo.Save(ctx, loadoutrepo.SaveInput{
		OwnerID: inv.OwnerID(),
		Items:   records,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save loadout for owner %q", inv.OwnerID())
	}
	return saveOutput, nil
}
