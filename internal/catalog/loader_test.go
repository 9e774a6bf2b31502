package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Two-Ocean/armory/internal/catalog"
	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/progression"
)

const validContent = `
curves:
  common:
    - {rank: 1, xp: 0}
    - {rank: 2, xp: 100}
    - {rank: 3, xp: 300}
  rare:
    - {rank: 1, xp: 0}
    - {rank: 2, xp: 500}

weapons:
  - id: iron-sword
    name: Iron Sword
    rarity: common
    type: sword
    model: assets/weapons/iron_sword
    description: A plain but dependable blade.
  - id: frost-axe
    name: Frost Axe
    rarity: rare
    type: axe
    model: assets/weapons/frost_axe
`

type LoaderSuite struct {
	suite.Suite
	registry *progression.CurveRegistry
	catalog  *catalog.Catalog
}

func (s *LoaderSuite) SetupTest() {
	s.registry = progression.NewCurveRegistry()
	s.catalog = catalog.New()
}

func (s *LoaderSuite) TestParse() {
	file, err := catalog.Parse([]byte(validContent))

	s.Require().NoError(err)
	s.Len(file.Curves, 2)
	s.Len(file.Curves["common"], 3)
	s.Equal(int64(100), file.Curves["common"][1].XP)
	s.Require().Len(file.Weapons, 2)
	s.Equal("iron-sword", file.Weapons[0].ID)
	s.Equal("rare", file.Weapons[1].Rarity)
}

func (s *LoaderSuite) TestParseMalformed() {
	_, err := catalog.Parse([]byte("curves: [not: a: map"))

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderSuite) TestApply() {
	file, err := catalog.Parse([]byte(validContent))
	s.Require().NoError(err)

	s.Require().NoError(file.Apply(s.registry, s.catalog))

	curve, err := s.registry.Lookup(entities.RarityCommon)
	s.Require().NoError(err)
	s.Len(curve, 3)
	s.Equal(int64(300), curve[2].RequiredXP)

	def, err := s.catalog.Get("frost-axe")
	s.Require().NoError(err)
	s.Equal(entities.RarityRare, def.Rarity)
	s.Equal(entities.WeaponTypeAxe, def.WeaponType)
	s.Equal("assets/weapons/frost_axe", def.ModelAssetID)
}

func (s *LoaderSuite) TestApplyUnknownRarityKey() {
	file, err := catalog.Parse([]byte(`
curves:
  mythic:
    - {rank: 1, xp: 0}
`))
	s.Require().NoError(err)

	err = file.Apply(s.registry, s.catalog)

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "mythic")
}

func (s *LoaderSuite) TestApplyInvalidCurve() {
	file, err := catalog.Parse([]byte(`
curves:
  common:
    - {rank: 1, xp: 50}
`))
	s.Require().NoError(err)

	err = file.Apply(s.registry, s.catalog)

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "common")

	// Nothing half-applied.
	_, lookupErr := s.registry.Lookup(entities.RarityCommon)
	s.True(errors.IsNotFound(lookupErr))
}

func (s *LoaderSuite) TestApplyDuplicateWeapon() {
	file, err := catalog.Parse([]byte(`
curves:
  common:
    - {rank: 1, xp: 0}

weapons:
  - {id: iron-sword, name: Iron Sword, rarity: common, type: sword, model: assets/a}
  - {id: iron-sword, name: Iron Sword Again, rarity: common, type: sword, model: assets/b}
`))
	s.Require().NoError(err)

	err = file.Apply(s.registry, s.catalog)

	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Contains(err.Error(), "iron-sword")
}

func (s *LoaderSuite) TestApplyInvalidWeapon() {
	file, err := catalog.Parse([]byte(`
weapons:
  - {id: whip-weapon, name: Whip, rarity: common, type: whip, model: assets/whip}
`))
	s.Require().NoError(err)

	err = file.Apply(s.registry, s.catalog)

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "whip-weapon")
}

func (s *LoaderSuite) TestApplyNilTargets() {
	file, err := catalog.Parse([]byte(validContent))
	s.Require().NoError(err)

	s.True(errors.IsInvalidArgument(file.Apply(nil, s.catalog)))
	s.True(errors.IsInvalidArgument(file.Apply(s.registry, nil)))
}

func (s *LoaderSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "armory.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(validContent), 0o600))

	file, err := catalog.LoadFile(path)

	s.Require().NoError(err)
	s.Len(file.Weapons, 2)
}

func (s *LoaderSuite) TestLoadFileMissing() {
	_, err := catalog.LoadFile(filepath.Join(s.T().TempDir(), "nope.yaml"))

	s.Error(err)
	s.Contains(err.Error(), "failed to read content file")
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}
