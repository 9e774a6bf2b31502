package progression_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Two-Ocean/armory/internal/entities"
	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/progression"
	scenemock "github.com/Two-Ocean/armory/internal/scene/mock"
)

type DirectorySuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSink  *scenemock.MockAttributeSink
	registry  *progression.CurveRegistry
	directory *progression.Directory
	ctx       context.Context
}

func (s *DirectorySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSink = scenemock.NewMockAttributeSink(s.ctrl)
	s.registry = progression.NewCurveRegistry()
	s.Require().NoError(s.registry.Register(entities.RarityCommon, progression.Curve{
		{Rank: 1, RequiredXP: 0},
		{Rank: 2, RequiredXP: 100},
		{Rank: 3, RequiredXP: 300},
	}))
	s.directory = progression.NewDirectory(&progression.DirectoryConfig{
		Sink: s.mockSink,
	})
	s.ctx = context.Background()
}

func (s *DirectorySuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DirectorySuite) track(key string) *progression.Progress {
	progress, err := progression.NewProgress(s.registry, entities.RarityCommon)
	s.Require().NoError(err)
	s.Require().NoError(s.directory.Register(key, progress))
	return progress
}

func (s *DirectorySuite) TestRegister() {
	s.Run("duplicate key", func() {
		s.track("item_1")

		progress, err := progression.NewProgress(s.registry, entities.RarityCommon)
		s.Require().NoError(err)

		err = s.directory.Register("item_1", progress)
		s.Error(err)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("empty key", func() {
		progress, err := progression.NewProgress(s.registry, entities.RarityCommon)
		s.Require().NoError(err)

		err = s.directory.Register("", progress)
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil progress", func() {
		err := s.directory.Register("item_2", nil)
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *DirectorySuite) TestUnregister() {
	s.track("item_1")

	s.directory.Unregister("item_1")

	_, err := s.directory.Get("item_1")
	s.True(errors.IsNotFound(err))

	// Unknown keys are tolerated so teardown can always call this.
	s.directory.Unregister("item_1")
	s.directory.Unregister("never_registered")
}

func (s *DirectorySuite) TestAwardXPPublishesOnLevelUp() {
	s.track("item_1")

	var published entities.ProgressionSnapshot
	s.mockSink.EXPECT().
		Publish(s.ctx, "item_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot entities.ProgressionSnapshot) error {
			published = snapshot
			return nil
		})

	snapshot, err := s.directory.AwardXP(s.ctx, "item_1", 150)

	s.Require().NoError(err)
	s.Equal(int32(2), snapshot.Current.Rank)
	s.Equal(int64(150), snapshot.XP)
	s.Equal(snapshot, published)
}

func (s *DirectorySuite) TestAwardXPWithoutLevelUpDoesNotPublish() {
	s.track("item_1")

	// No Publish expectation: the sink must stay untouched below the
	// rank 2 threshold.
	snapshot, err := s.directory.AwardXP(s.ctx, "item_1", 99)

	s.Require().NoError(err)
	s.Equal(int32(1), snapshot.Current.Rank)
	s.Equal(int64(99), snapshot.XP)
}

func (s *DirectorySuite) TestAwardXPUnknownKey() {
	_, err := s.directory.AwardXP(s.ctx, "ghost", 50)

	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *DirectorySuite) TestAwardXPNegative() {
	s.track("item_1")

	_, err := s.directory.AwardXP(s.ctx, "item_1", -10)

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DirectorySuite) TestAwardXPSinkFailureIsNotFatal() {
	s.track("item_1")

	s.mockSink.EXPECT().
		Publish(s.ctx, "item_1", gomock.Any()).
		Return(errors.Unavailable("display offline"))

	snapshot, err := s.directory.AwardXP(s.ctx, "item_1", 150)

	// The award took effect even though the publish failed.
	s.Require().NoError(err)
	s.Equal(int32(2), snapshot.Current.Rank)
}

func (s *DirectorySuite) TestSyncPublishesCurrentSnapshot() {
	s.track("item_1")

	s.mockSink.EXPECT().
		Publish(s.ctx, "item_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot entities.ProgressionSnapshot) error {
			s.Equal(int32(1), snapshot.Current.Rank)
			s.Equal(int64(0), snapshot.XP)
			return nil
		})

	s.NoError(s.directory.Sync(s.ctx, "item_1"))
}

func (s *DirectorySuite) TestSyncUnknownKey() {
	err := s.directory.Sync(s.ctx, "ghost")

	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *DirectorySuite) TestSnapshot() {
	progress := s.track("item_1")
	_, err := progress.AddXP(42)
	s.Require().NoError(err)

	snapshot, err := s.directory.Snapshot("item_1")
	s.Require().NoError(err)
	s.Equal(int64(42), snapshot.XP)

	_, err = s.directory.Snapshot("ghost")
	s.True(errors.IsNotFound(err))
}

func (s *DirectorySuite) TestNilConfigMeansNoSink() {
	directory := progression.NewDirectory(nil)

	progress, err := progression.NewProgress(s.registry, entities.RarityCommon)
	s.Require().NoError(err)
	s.Require().NoError(directory.Register("item_1", progress))

	// Level up with no sink wired: nothing to publish, no error.
	snapshot, err := directory.AwardXP(s.ctx, "item_1", 150)
	s.Require().NoError(err)
	s.Equal(int32(2), snapshot.Current.Rank)

	s.NoError(directory.Sync(s.ctx, "item_1"))
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}
