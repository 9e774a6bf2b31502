// Package catalog holds the authored weapon definitions and the loader
// for the YAML content files that carry them together with the level
// curves. Definitions are immutable once registered; items reference them
// by ID.
package catalog

import (
	"fmt"
	"sync"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
)

// Catalog is a registry of weapon definitions keyed by definition ID.
type Catalog struct {
	mu    sync.RWMutex
	defs  map[string]entities.WeaponDefinition
	order []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		defs: make(map[string]entities.WeaponDefinition),
	}
}

// Register validates the definition and adds it to the catalog. Definition
// IDs are unique; registering an ID twice is an error, content files are
// expected to carry each weapon once.
func (c *Catalog) Register(def entities.WeaponDefinition) error {
	if err := validateDefinition(def); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.defs[def.ID]; exists {
		return errors.AlreadyExistsf("weapon definition %q is already registered", def.ID)
	}
	c.defs[def.ID] = def
	c.order = append(c.order, def.ID)
	return nil
}

// Get returns the definition registered under the ID.
func (c *Catalog) Get(id string) (entities.WeaponDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.defs[id]
	if !ok {
		return entities.WeaponDefinition{}, errors.NotFoundf("no weapon definition %q", id)
	}
	return def, nil
}

// All returns every definition in registration order.
func (c *Catalog) All() []entities.WeaponDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]entities.WeaponDefinition, 0, len(c.order))
	for _, id := range c.order {
		defs = append(defs, c.defs[id])
	}
	return defs
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.defs)
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
