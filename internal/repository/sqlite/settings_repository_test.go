package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/db"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository/sqlite"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/testutil"
)

type SettingsRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.SettingsRepository
}

func (s *SettingsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSettingsRepository(s.db.DB)
}

func (s *SettingsRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SettingsRepositorySuite) TestGet_DefaultsWhenAbsent() {
	settings, err := s.repo.Get(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal(models.DefaultSettings(), settings)
}

func (s *SettingsRepositorySuite) TestSaveAndGet() {
	ctx := context.Background()

	want := models.Settings{
		NewCardsPerDay:    5,
		ReviewsPerDay:     40,
		LearnAhead:        true,
		QuizBidirectional: true,
	}
	s.Require().NoError(s.repo.Save(ctx, want))

	got, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(want, got)
}

func (s *SettingsRepositorySuite) TestSave_Overwrites() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Save(ctx, models.Settings{NewCardsPerDay: 5, ReviewsPerDay: 40}))
	s.Require().NoError(s.repo.Save(ctx, models.Settings{NewCardsPerDay: 10, ReviewsPerDay: 80}))

	got, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(10, got.NewCardsPerDay)
	s.Assert().Equal(80, got.ReviewsPerDay)
}

func (s *SettingsRepositorySuite) TestSeed_WritesWhenAbsent() {
	ctx := context.Background()

	want := models.Settings{NewCardsPerDay: 15, ReviewsPerDay: 60, LearnAhead: true}
	s.Require().NoError(s.repo.Seed(ctx, want))

	got, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(want, got)
}

func (s *SettingsRepositorySuite) TestSeed_DoesNotOverwrite() {
	ctx := context.Background()

	saved := models.Settings{NewCardsPerDay: 5, ReviewsPerDay: 40}
	s.Require().NoError(s.repo.Save(ctx, saved))
	s.Require().NoError(s.repo.Seed(ctx, models.Settings{NewCardsPerDay: 99, ReviewsPerDay: 999}))

	got, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(saved, got)
}

func TestSettingsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositorySuite))
}
