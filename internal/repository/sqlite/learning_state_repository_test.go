package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/db"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository/sqlite"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/testutil"
)

type LearningStateRepositorySuite struct {
	suite.Suite
	db    *db.DB
	repo  repository.LearningStateRepository
	words repository.WordRepository
}

func (s *LearningStateRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewLearningStateRepository(s.db.DB)
	s.words = sqlite.NewWordRepository(s.db.DB)
}

func (s *LearningStateRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *LearningStateRepositorySuite) insertWord(text string) int64 {
	id, err := s.words.Insert(context.Background(), models.Word{Text: text})
	s.Require().NoError(err)
	return id
}

func (s *LearningStateRepositorySuite) TestSaveAndGet() {
	ctx := context.Background()
	wordID := s.insertWord("bonjour")

	due := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	reviewed := due.AddDate(0, 0, -6)
	state := models.LearningState{
		WordID:         wordID,
		EaseFactor:     2.35,
		IntervalDays:   6,
		Repetitions:    2,
		DueAt:          &due,
		LastReviewAt:   &reviewed,
		TotalReviews:   4,
		CorrectReviews: 3,
		UpdatedAt:      reviewed,
	}

	s.Require().NoError(s.repo.Save(ctx, state))

	got, err := s.repo.Get(ctx, wordID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(wordID, got.WordID)
	s.Assert().InDelta(2.35, got.EaseFactor, 0.0001)
	s.Assert().Equal(6, got.IntervalDays)
	s.Assert().Equal(2, got.Repetitions)
	s.Assert().Equal(4, got.TotalReviews)
	s.Assert().Equal(3, got.CorrectReviews)
	s.Require().NotNil(got.DueAt)
	s.Assert().True(got.DueAt.Equal(due))
	s.Require().NotNil(got.LastReviewAt)
	s.Assert().True(got.LastReviewAt.Equal(reviewed))
}

func (s *LearningStateRepositorySuite) TestGet_Absent() {
	got, err := s.repo.Get(context.Background(), 99999)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *LearningStateRepositorySuite) TestSave_NilTimes() {
	ctx := context.Background()
	wordID := s.insertWord("neuf")

	state := models.LearningState{WordID: wordID, EaseFactor: 2.5, UpdatedAt: time.Now()}
	s.Require().NoError(s.repo.Save(ctx, state))

	got, err := s.repo.Get(ctx, wordID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Nil(got.DueAt)
	s.Assert().Nil(got.LastReviewAt)
}

func (s *LearningStateRepositorySuite) TestSave_Upsert() {
	ctx := context.Background()
	wordID := s.insertWord("bonjour")

	state := models.LearningState{WordID: wordID, EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1, TotalReviews: 1, UpdatedAt: time.Now()}
	s.Require().NoError(s.repo.Save(ctx, state))

	state.IntervalDays = 6
	state.Repetitions = 2
	state.TotalReviews = 2
	s.Require().NoError(s.repo.Save(ctx, state))

	got, err := s.repo.Get(ctx, wordID)
	s.Require().NoError(err)
	s.Assert().Equal(6, got.IntervalDays)
	s.Assert().Equal(2, got.Repetitions)

	all, err := s.repo.All(ctx)
	s.Require().NoError(err)
	s.Assert().Len(all, 1)
}

func (s *LearningStateRepositorySuite) TestForWords() {
	ctx := context.Background()
	w1 := s.insertWord("un")
	w2 := s.insertWord("deux")
	w3 := s.insertWord("trois")

	s.Require().NoError(s.repo.Save(ctx, models.LearningState{WordID: w1, EaseFactor: 2.5, TotalReviews: 1, UpdatedAt: time.Now()}))
	s.Require().NoError(s.repo.Save(ctx, models.LearningState{WordID: w2, EaseFactor: 2.3, TotalReviews: 2, UpdatedAt: time.Now()}))

	states, err := s.repo.ForWords(ctx, []int64{w1, w2, w3})
	s.Require().NoError(err)

	s.Assert().Len(states, 2)
	s.Assert().Contains(states, w1)
	s.Assert().Contains(states, w2)
	s.Assert().NotContains(states, w3)
}

func (s *LearningStateRepositorySuite) TestForWords_Empty() {
	states, err := s.repo.ForWords(context.Background(), nil)
	s.Require().NoError(err)
	s.Assert().Empty(states)
}

func (s *LearningStateRepositorySuite) TestDeleteWordCascades() {
	ctx := context.Background()
	wordID := s.insertWord("adieu")

	s.Require().NoError(s.repo.Save(ctx, models.LearningState{WordID: wordID, EaseFactor: 2.5, TotalReviews: 1, UpdatedAt: time.Now()}))
	s.Require().NoError(s.words.Delete(ctx, wordID))

	got, err := s.repo.Get(ctx, wordID)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func TestLearningStateRepositorySuite(t *testing.T) {
	suite.Run(t, new(LearningStateRepositorySuite))
}
