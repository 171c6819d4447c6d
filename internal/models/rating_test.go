package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

func TestRating_Clamp(t *testing.T) {
	assert.Equal(t, models.RatingAgain, models.Rating(0).Clamp())
	assert.Equal(t, models.RatingAgain, models.Rating(-5).Clamp())
	assert.Equal(t, models.RatingEasy, models.Rating(5).Clamp())
	assert.Equal(t, models.RatingGood, models.RatingGood.Clamp())
}

func TestRating_IsCorrect(t *testing.T) {
	assert.False(t, models.RatingAgain.IsCorrect())
	assert.False(t, models.RatingHard.IsCorrect())
	assert.True(t, models.RatingGood.IsCorrect())
	assert.True(t, models.RatingEasy.IsCorrect())
}

func TestRating_JSON(t *testing.T) {
	data, err := json.Marshal(models.RatingHard)
	require.NoError(t, err)
	assert.Equal(t, `"hard"`, string(data))

	var byName models.Rating
	require.NoError(t, json.Unmarshal([]byte(`"easy"`), &byName))
	assert.Equal(t, models.RatingEasy, byName)

	var byRank models.Rating
	require.NoError(t, json.Unmarshal([]byte(`3`), &byRank))
	assert.Equal(t, models.RatingGood, byRank)

	var invalid models.Rating
	assert.Error(t, json.Unmarshal([]byte(`"meh"`), &invalid))
}

func TestLearningState_Accuracy(t *testing.T) {
	state := models.LearningState{TotalReviews: 4, CorrectReviews: 3}
	assert.InDelta(t, 0.75, state.Accuracy(), 0.0001)

	empty := models.LearningState{}
	assert.Equal(t, 0.0, empty.Accuracy())
}

func TestQuizSession_CorrectCount(t *testing.T) {
	session := models.QuizSession{
		Answers: []models.SessionAnswer{
			{Correct: true},
			{Correct: false},
			{Correct: true},
		},
	}
	assert.Equal(t, 2, session.CorrectCount())
}
