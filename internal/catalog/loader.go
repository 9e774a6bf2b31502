package catalog

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/progression"
)

// DataFile is the YAML content document: level curves per rarity plus the
// weapon definitions. One file carries both because curves and weapons
// ship together as authored content.
type DataFile struct {
	Curves  map[string][]LevelEntry `yaml:"curves"`
	Weapons []WeaponEntry           `yaml:"weapons"`
}

// LevelEntry is one curve step as authored: the rank and the cumulative
// XP at which it is reached.
type LevelEntry struct {
	Rank int32 `yaml:"rank"`
	XP   int64 `yaml:"xp"`
}

// WeaponEntry is one weapon definition as authored.
type WeaponEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Rarity      string `yaml:"rarity"`
	Type        string `yaml:"type"`
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// LoadFile reads and parses a content file.
func LoadFile(path string) (*DataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read content file %s", path)
	}
	return Parse(data)
}

// Parse parses YAML content.
func Parse(data []byte) (*DataFile, error) {
	var file DataFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse content file")
	}
	return &file, nil
}

// Apply registers everything in the file: curves into the registry first,
// weapons into the catalog second, so a weapon's rarity always has its
// curve by the time items are minted from it. The first invalid entry
// aborts the load with its validation error.
func (d *DataFile) Apply(curves *progression.CurveRegistry, cat *Catalog) error {
	if curves == nil {
		return errors.InvalidArgument("curve registry is required")
	}
	if cat == nil {
		return errors.InvalidArgument("catalog is required")
	}

	for name, entries := range d.Curves {
		rarity, ok := entities.RarityFromString(name)
		if !ok {
			return errors.InvalidArgumentf("curves: unknown rarity %q", name)
		}

		curve := make(progression.Curve, 0, len(entries))
		for _, entry := range entries {
			curve = append(curve, entities.LevelDefinition{
				Rank:       entry.Rank,
				RequiredXP: entry.XP,
			})
		}
		if err := curves.Register(rarity, curve); err != nil {
			return errors.Wrapf(err, "curve for rarity %q", name)
		}
	}

	for _, entry := range d.Weapons {
		def := entities.WeaponDefinition{
			ID:           entry.ID,
			Name:         entry.Name,
			Rarity:       entities.Rarity(entry.Rarity),
			WeaponType:   entities.WeaponType(entry.Type),
			ModelAssetID: entry.Model,
			Description:  entry.Description,
		}
		if err := cat.Register(def); err != nil {
			return errors.Wrapf(err, "weapon %q", entry.ID)
		}
	}

	slog.Info("armory content applied",
		"curves", len(d.Curves),
		"weapons", len(d.Weapons))
	return nil
}
