package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/errors"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/quiz"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/srs"
)

// AnswerResult carries the outcome of a recorded answer back to the caller.
type AnswerResult struct {
	Session models.QuizSession   `json:"session"`
	State   models.LearningState `json:"state"`
}

// QuizService orchestrates quiz sessions: card selection, answer recording,
// and session history. Exactly one session is active per application
// instance.
type QuizService interface {
	StartSession(ctx context.Context, listIDs []int64, mode, style string) (*models.QuizSession, error)
	ActiveSession() *models.QuizSession
	RecordAnswer(ctx context.Context, sessionID string, wordID int64, rating models.Rating) (*AnswerResult, error)
	FinishSession(ctx context.Context, sessionID string) (*models.QuizSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

type quizService struct {
	mu       sync.Mutex
	active   *models.QuizSession
	words    repository.WordRepository
	states   repository.LearningStateRepository
	sessions repository.SessionRepository
	settings repository.SettingsRepository
	rng      *rand.Rand
	now      func() time.Time
}

// QuizOption configures a QuizService.
type QuizOption func(*quizService)

// WithRand injects the random source used for card shuffling, so tests can
// pass a seeded generator.
func WithRand(rng *rand.Rand) QuizOption {
	return func(s *quizService) {
		s.rng = rng
	}
}

// WithClock injects the time source.
func WithClock(now func() time.Time) QuizOption {
	return func(s *quizService) {
		s.now = now
	}
}

// NewQuizService creates a new QuizService
func NewQuizService(
	words repository.WordRepository,
	states repository.LearningStateRepository,
	sessions repository.SessionRepository,
	settings repository.SettingsRepository,
	opts ...QuizOption,
) QuizService {
	s := &quizService{
		words:    words,
		states:   states,
		sessions: sessions,
		settings: settings,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession selects due and new cards from the given lists and opens a
// session over them. A nil session with nil error means there is nothing to
// review right now.
func (s *quizService) StartSession(ctx context.Context, listIDs []int64, mode, style string) (*models.QuizSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting quiz session: lists=%v, mode=%s, style=%s", listIDs, mode, style)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, errors.NewConflictError("a quiz session is already active")
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		log.Error("failed to load settings: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if mode == "" {
		mode = models.ModeWordToTranslation
		if cfg.QuizBidirectional && s.rng.Intn(2) == 1 {
			mode = models.ModeTranslationToWord
		}
	}

	candidates, err := s.candidateWords(ctx, listIDs)
	if err != nil {
		log.Error("failed to collect candidate words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(candidates) == 0 {
		log.Debug("no candidate words in selected lists")
		return nil, nil
	}

	states, err := s.states.ForWords(ctx, candidates)
	if err != nil {
		log.Error("failed to load learning states: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := s.now()
	order := quiz.SelectDueCards(candidates, states, cfg, now, s.rng)
	if len(order) == 0 {
		log.Debug("nothing to review")
		return nil, nil
	}

	session, err := quiz.Start(order, listIDs, mode, style, now)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	s.active = &session
	log.Info("quiz session started: id=%s, cards=%d", session.ID, len(order))
	out := session
	return &out, nil
}

func (s *quizService) candidateWords(ctx context.Context, listIDs []int64) ([]int64, error) {
	if len(listIDs) > 0 {
		return s.words.WordIDsForLists(ctx, listIDs)
	}
	// No lists selected: quiz over the whole vocabulary.
	words, err := s.words.List(ctx, models.WordFilter{})
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.ID)
	}
	return ids, nil
}

// ActiveSession returns a copy of the in-progress session, or nil.
func (s *quizService) ActiveSession() *models.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil
	}
	out := *s.active
	return &out
}

// RecordAnswer runs the scheduler over the answered card and persists the new
// learning state before the answer is committed to the session. When the save
// fails the session is left unchanged, so retrying the answer retries the
// save.
func (s *quizService) RecordAnswer(ctx context.Context, sessionID string, wordID int64, rating models.Rating) (*AnswerResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording answer: session=%s, word_id=%d, rating=%s", sessionID, wordID, rating.Clamp())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.ID != sessionID {
		return nil, errors.NewNotFoundError("session", sessionID)
	}

	statePtr, err := s.states.Get(ctx, wordID)
	if err != nil {
		log.Error("failed to load learning state: %v", err)
		return nil, errors.NewInternalError(err)
	}
	state := srs.NewState(wordID)
	if statePtr != nil {
		state = *statePtr
	}

	updatedSession, newState, err := quiz.RecordAnswer(*s.active, state, rating, s.now())
	switch err {
	case nil:
	case quiz.ErrNotActive:
		return nil, errors.NewConflictError("session is not active")
	case quiz.ErrWordNotInSession:
		return nil, errors.NewValidationError("word_id", "word is not part of this session")
	default:
		return nil, errors.NewInternalError(err)
	}

	// Persist first; the answer only lands in the session once the state is
	// safely stored. Updates for the same word are serialized by the lock.
	if err := s.states.Save(ctx, newState); err != nil {
		log.Error("failed to persist learning state: %v", err)
		return nil, errors.NewInternalError(err)
	}

	s.active = &updatedSession
	log.Debug("answer recorded: word_id=%d, next_due=%v, interval=%d", wordID, newState.DueAt, newState.IntervalDays)
	return &AnswerResult{Session: updatedSession, State: newState}, nil
}

// FinishSession freezes the session and appends it to session history. The
// session stays active if the history write fails, so finishing can be
// retried.
func (s *quizService) FinishSession(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("finishing session: id=%s", sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.ID != sessionID {
		return nil, errors.NewNotFoundError("session", sessionID)
	}

	finished, err := quiz.Finish(*s.active, s.now())
	if err != nil {
		return nil, errors.NewConflictError("session is not active")
	}

	if err := s.sessions.Insert(ctx, finished); err != nil {
		log.Error("failed to store session history: %v", err)
		return nil, errors.NewInternalError(err)
	}

	s.active = nil
	log.Info("session finished: id=%s, answers=%d, correct=%d", finished.ID, len(finished.Answers), finished.CorrectCount())
	return &finished, nil
}

// CancelSession discards the in-progress session without writing history.
// Learning-state updates already persisted for answered cards stay in place.
func (s *quizService) CancelSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)
	log.Debug("cancelling session: id=%s", sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.ID != sessionID {
		return errors.NewNotFoundError("session", sessionID)
	}

	if _, err := quiz.Cancel(*s.active); err != nil {
		return errors.NewConflictError("session is not active")
	}

	s.active = nil
	log.Info("session cancelled: id=%s", sessionID)
	return nil
}
