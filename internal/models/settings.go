package models

// Settings are the user-tunable review options. They are persisted in storage
// and edited from the reader's settings screen.
type Settings struct {
	NewCardsPerDay    int  `json:"new_cards_per_day"`
	ReviewsPerDay     int  `json:"reviews_per_day"`
	LearnAhead        bool `json:"learn_ahead"`
	QuizBidirectional bool `json:"quiz_bidirectional"`
}

// DefaultSettings returns the out-of-the-box review options.
func DefaultSettings() Settings {
	return Settings{
		NewCardsPerDay:    20,
		ReviewsPerDay:     100,
		LearnAhead:        false,
		QuizBidirectional: false,
	}
}
