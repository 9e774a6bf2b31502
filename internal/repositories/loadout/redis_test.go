package loadout_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
	clockmock "github.com/Two-Ocean/armory/internal/pkg/clock/mock"
	redisclient "github.com/Two-Ocean/armory/internal/redis"
	"github.com/Two-Ocean/armory/internal/repositories/loadout"
	"github.com/Two-Ocean/armory/internal/testutils"
)

const testLoadoutOwnerID = "player_456"

var testSavedAt = time.Date(2026, 3, 14, 15, 9, 2, 0, time.UTC)

func testRecords() []loadout.ItemRecord {
	return []loadout.ItemRecord{
		{
			ItemID:       "item_1",
			DefinitionID: "iron-sword",
			Rarity:       entities.RarityCommon,
			Rank:         2,
			XP:           150,
		},
		{
			ItemID:       "item_2",
			DefinitionID: "frost-axe",
			Rarity:       entities.RarityRare,
			Rank:         1,
			XP:           40,
		},
	}
}

type RedisRepositorySuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	client    redisclient.Client
	cleanup   func()
	mockClock *clockmock.MockClock
	repo      loadout.Repository
	ctx       context.Context
}

func (s *RedisRepositorySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.mockClock = clockmock.NewMockClock(s.ctrl)

	repo, err := loadout.NewRedis(&loadout.RedisConfig{
		Client: s.client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositorySuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositorySuite) TestSaveAndGet() {
	s.mockClock.EXPECT().Now().Return(testSavedAt)

	saveOut, err := s.repo.Save(s.ctx, loadout.SaveInput{
		OwnerID: testLoadoutOwnerID,
		Items:   testRecords(),
	})
	s.Require().NoError(err)
	s.Require().NotNil(saveOut.Loadout)
	s.Equal(testSavedAt, saveOut.Loadout.UpdatedAt)

	getOut, err := s.repo.Get(s.ctx, loadout.GetInput{OwnerID: testLoadoutOwnerID})
	s.Require().NoError(err)
	s.Require().NotNil(getOut.Loadout)
	s.Equal(testLoadoutOwnerID, getOut.Loadout.OwnerID)
	s.Equal(testRecords(), getOut.Loadout.Items)
	s.True(testSavedAt.Equal(getOut.Loadout.UpdatedAt))
}

func (s *RedisRepositorySuite) TestSaveReplaces() {
	s.mockClock.EXPECT().Now().Return(testSavedAt).Times(2)

	_, err := s.repo.Save(s.ctx, loadout.SaveInput{
		OwnerID: testLoadoutOwnerID,
		Items:   testRecords(),
	})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, loadout.SaveInput{
		OwnerID: testLoadoutOwnerID,
		Items:   testRecords()[:1],
	})
	s.Require().NoError(err)

	getOut, err := s.repo.Get(s.ctx, loadout.GetInput{OwnerID: testLoadoutOwnerID})
	s.Require().NoError(err)
	s.Len(getOut.Loadout.Items, 1)
	s.Equal("item_1", getOut.Loadout.Items[0].ItemID)
}

func (s *RedisRepositorySuite) TestSaveEmptyLoadout() {
	s.mockClock.EXPECT().Now().Return(testSavedAt)

	_, err := s.repo.Save(s.ctx, loadout.SaveInput{OwnerID: testLoadoutOwnerID})
	s.Require().NoError(err)

	getOut, err := s.repo.Get(s.ctx, loadout.GetInput{OwnerID: testLoadoutOwnerID})
	s.Require().NoError(err)
	s.Empty(getOut.Loadout.Items)
}

func (s *RedisRepositorySuite) TestSaveEmptyOwnerID() {
	_, err := s.repo.Save(s.ctx, loadout.SaveInput{Items: testRecords()})

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositorySuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, loadout.GetInput{OwnerID: "nobody"})

	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositorySuite) TestGetEmptyOwnerID() {
	_, err := s.repo.Get(s.ctx, loadout.GetInput{})

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositorySuite) TestDelete() {
	s.mockClock.EXPECT().Now().Return(testSavedAt)

	_, err := s.repo.Save(s.ctx, loadout.SaveInput{
		OwnerID: testLoadoutOwnerID,
		Items:   testRecords(),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, loadout.DeleteInput{OwnerID: testLoadoutOwnerID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, loadout.GetInput{OwnerID: testLoadoutOwnerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositorySuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, loadout.DeleteInput{OwnerID: "nobody"})

	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositorySuite) TestDeleteEmptyOwnerID() {
	_, err := s.repo.Delete(s.ctx, loadout.DeleteInput{})

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositorySuite) TestPersistedShape() {
	s.mockClock.EXPECT().Now().Return(testSavedAt)

	_, err := s.repo.Save(s.ctx, loadout.SaveInput{
		OwnerID: testLoadoutOwnerID,
		Items:   testRecords()[:1],
	})
	s.Require().NoError(err)

	// External readers depend on these exact field names.
	raw, err := s.client.Get(s.ctx, loadout.GetKey(testLoadoutOwnerID)).Result()
	s.Require().NoError(err)

	var stored map[string]any
	s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
	s.Equal(testLoadoutOwnerID, stored["owner_id"])

	items, ok := stored["items"].([]any)
	s.Require().True(ok)
	s.Require().Len(items, 1)
	record, ok := items[0].(map[string]any)
	s.Require().True(ok)
	s.Equal("item_1", record["item_id"])
	s.Equal("iron-sword", record["definition_id"])
	s.Equal("common", record["rarity"])
	s.Equal(float64(2), record["current_rank"])
	s.Equal(float64(150), record["xp"])
}

func (s *RedisRepositorySuite) TestNewRedisValidation() {
	_, err := loadout.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = loadout.NewRedis(&loadout.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositorySuite) TestNewRedisDefaultsClock() {
	repo, err := loadout.NewRedis(&loadout.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	out, err := repo.Save(s.ctx, loadout.SaveInput{OwnerID: testLoadoutOwnerID})
	s.Require().NoError(err)
	s.False(out.Loadout.UpdatedAt.IsZero())
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositorySuite))
}
