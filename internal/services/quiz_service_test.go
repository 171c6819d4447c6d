package services_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/services"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/srs"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/testutil/mocks"
)

var serviceNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return serviceNow }

type quizFixture struct {
	words    *mocks.MockWordRepository
	states   *mocks.MockLearningStateRepository
	sessions *mocks.MockSessionRepository
	settings *mocks.MockSettingsRepository
	svc      services.QuizService
}

func newQuizFixture() *quizFixture {
	f := &quizFixture{
		words:    new(mocks.MockWordRepository),
		states:   new(mocks.MockLearningStateRepository),
		sessions: new(mocks.MockSessionRepository),
		settings: new(mocks.MockSettingsRepository),
	}
	f.svc = services.NewQuizService(
		f.words, f.states, f.sessions, f.settings,
		services.WithClock(fixedClock),
		services.WithRand(rand.New(rand.NewSource(1))),
	)
	return f
}

func (f *quizFixture) expectStart(wordIDs []int64, states map[int64]models.LearningState) {
	f.settings.On("Get", mock.Anything).Return(models.DefaultSettings(), nil)
	f.words.On("WordIDsForLists", mock.Anything, []int64{10}).Return(wordIDs, nil)
	f.states.On("ForWords", mock.Anything, wordIDs).Return(states, nil)
}

func TestQuizService_StartSession(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1, 2, 3}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, models.SessionActive, session.Status)
	assert.ElementsMatch(t, []int64{1, 2, 3}, session.WordIDs)
	assert.Equal(t, models.ModeWordToTranslation, session.Mode)
	assert.Equal(t, serviceNow, session.StartedAt)

	active := f.svc.ActiveSession()
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)
}

func TestQuizService_StartSession_NothingToReview(t *testing.T) {
	due := serviceNow.AddDate(0, 0, 5)
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{
		1: {WordID: 1, TotalReviews: 3, DueAt: &due},
	})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, f.svc.ActiveSession())
}

func TestQuizService_StartSession_EmptyLists(t *testing.T) {
	f := newQuizFixture()
	f.settings.On("Get", mock.Anything).Return(models.DefaultSettings(), nil)
	f.words.On("List", mock.Anything, models.WordFilter{}).Return([]models.Word{{ID: 1}, {ID: 2}}, nil)
	f.states.On("ForWords", mock.Anything, []int64{1, 2}).Return(map[int64]models.LearningState{}, nil)

	session, err := f.svc.StartSession(context.Background(), nil, "", "")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.ElementsMatch(t, []int64{1, 2}, session.WordIDs)
}

func TestQuizService_StartSession_AlreadyActive(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{})

	_, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	_, err = f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already active")
}

func TestQuizService_RecordAnswer(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	f.states.On("Get", mock.Anything, int64(1)).Return(nil, nil)
	f.states.On("Save", mock.Anything, mock.MatchedBy(func(s models.LearningState) bool {
		return s.WordID == 1 && s.TotalReviews == 1 && s.IntervalDays == 1
	})).Return(nil)

	result, err := f.svc.RecordAnswer(context.Background(), session.ID, 1, models.RatingGood)
	require.NoError(t, err)

	assert.Len(t, result.Session.Answers, 1)
	assert.Equal(t, 1, result.State.TotalReviews)
	f.states.AssertExpectations(t)

	active := f.svc.ActiveSession()
	require.NotNil(t, active)
	assert.Len(t, active.Answers, 1)
}

func TestQuizService_RecordAnswer_SaveFailureLeavesSessionUnchanged(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	f.states.On("Get", mock.Anything, int64(1)).Return(nil, nil).Once()
	f.states.On("Save", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full")).Once()

	_, err = f.svc.RecordAnswer(context.Background(), session.ID, 1, models.RatingGood)
	require.Error(t, err)

	// The answer was not committed; the caller retries the whole call and
	// gets an identical scheduling result.
	active := f.svc.ActiveSession()
	require.NotNil(t, active)
	assert.Empty(t, active.Answers)

	f.states.On("Get", mock.Anything, int64(1)).Return(nil, nil).Once()
	f.states.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := f.svc.RecordAnswer(context.Background(), session.ID, 1, models.RatingGood)
	require.NoError(t, err)
	assert.Len(t, result.Session.Answers, 1)
}

func TestQuizService_RecordAnswer_ExistingState(t *testing.T) {
	f := newQuizFixture()
	due := serviceNow.Add(-time.Hour)
	f.expectStart([]int64{1}, map[int64]models.LearningState{
		1: {WordID: 1, EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2, TotalReviews: 2, DueAt: &due},
	})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	existing := &models.LearningState{WordID: 1, EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2, TotalReviews: 2, DueAt: &due}
	f.states.On("Get", mock.Anything, int64(1)).Return(existing, nil)
	f.states.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.RecordAnswer(context.Background(), session.ID, 1, models.RatingGood)
	require.NoError(t, err)

	assert.Equal(t, 15, result.State.IntervalDays)
	assert.Equal(t, 3, result.State.Repetitions)
}

func TestQuizService_RecordAnswer_UnknownSession(t *testing.T) {
	f := newQuizFixture()

	_, err := f.svc.RecordAnswer(context.Background(), "nope", 1, models.RatingGood)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestQuizService_RecordAnswer_WordNotInSession(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	f.states.On("Get", mock.Anything, int64(99)).Return(nil, nil)

	_, err = f.svc.RecordAnswer(context.Background(), session.ID, 99, models.RatingGood)
	require.Error(t, err)
	f.states.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestQuizService_FinishSession(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	f.sessions.On("Insert", mock.Anything, mock.MatchedBy(func(s models.QuizSession) bool {
		return s.ID == session.ID && s.Status == models.SessionFinished && s.EndedAt != nil
	})).Return(nil)

	finished, err := f.svc.FinishSession(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.SessionFinished, finished.Status)
	assert.Nil(t, f.svc.ActiveSession())
	f.sessions.AssertExpectations(t)
}

func TestQuizService_FinishSession_InsertFailureKeepsSessionActive(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	f.sessions.On("Insert", mock.Anything, mock.Anything).Return(fmt.Errorf("locked")).Once()

	_, err = f.svc.FinishSession(context.Background(), session.ID)
	require.Error(t, err)
	require.NotNil(t, f.svc.ActiveSession())

	f.sessions.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	_, err = f.svc.FinishSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, f.svc.ActiveSession())
}

func TestQuizService_CancelSession(t *testing.T) {
	f := newQuizFixture()
	f.expectStart([]int64{1, 2}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	// Answer one card first: its learning state is persisted immediately.
	f.states.On("Get", mock.Anything, int64(1)).Return(nil, nil)
	f.states.On("Save", mock.Anything, mock.Anything).Return(nil)
	_, err = f.svc.RecordAnswer(context.Background(), session.ID, 1, models.RatingGood)
	require.NoError(t, err)

	err = f.svc.CancelSession(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Nil(t, f.svc.ActiveSession())

	// Cancelling never writes history and never rolls back the saved state:
	// the answered card keeps its new schedule.
	f.sessions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	f.states.AssertNumberOfCalls(t, "Save", 1)
}

func TestQuizService_CancelSession_UnknownSession(t *testing.T) {
	f := newQuizFixture()

	err := f.svc.CancelSession(context.Background(), "nope")
	require.Error(t, err)
}

func TestQuizService_SchedulerIntegration(t *testing.T) {
	// The service delegates scheduling to the srs package; spot-check the
	// values that land in Save.
	f := newQuizFixture()
	f.expectStart([]int64{1}, map[int64]models.LearningState{})

	session, err := f.svc.StartSession(context.Background(), []int64{10}, "", "")
	require.NoError(t, err)

	var saved models.LearningState
	f.states.On("Get", mock.Anything, int64(1)).Return(nil, nil)
	f.states.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(models.LearningState)
	}).Return(nil)

	_, err = f.svc.RecordAnswer(context.Background(), session.ID, 1, models.RatingAgain)
	require.NoError(t, err)

	expected := srs.NextState(srs.NewState(1), models.RatingAgain, serviceNow)
	assert.Equal(t, expected.IntervalDays, saved.IntervalDays)
	assert.Equal(t, expected.EaseFactor, saved.EaseFactor)
	assert.Equal(t, expected.Repetitions, saved.Repetitions)
}
