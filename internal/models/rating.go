package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Rating represents the user's assessment of recall quality during a quiz.
type Rating int

const (
	RatingAgain Rating = iota + 1 // Failed to recall.
	RatingHard                    // Recalled with significant difficulty.
	RatingGood                    // Recalled with some effort.
	RatingEasy                    // Recalled effortlessly.
)

var ratingNames = [...]string{RatingAgain: "again", RatingHard: "hard", RatingGood: "good", RatingEasy: "easy"}

var ratingByName = map[string]Rating{
	"again": RatingAgain,
	"hard":  RatingHard,
	"good":  RatingGood,
	"easy":  RatingEasy,
}

// String returns the lowercase name of the rating. Invalid values render as "rating(n)".
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("rating(%d)", int(r))
}

// IsValid reports whether r is one of the four quiz ratings.
func (r Rating) IsValid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

// Clamp returns the nearest valid rating. Quiz input should never crash the app,
// so out-of-range values are pulled to the boundary instead of rejected.
func (r Rating) Clamp() Rating {
	if r < RatingAgain {
		return RatingAgain
	}
	if r > RatingEasy {
		return RatingEasy
	}
	return r
}

// IsCorrect reports whether the rating counts as a correct answer for
// accuracy statistics. Good and Easy count; Again and Hard do not.
func (r Rating) IsCorrect() bool {
	return r >= RatingGood
}

// MarshalJSON serializes the rating as its name string.
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rating: %d", int(r))
	}
	return json.Marshal(ratingNames[r])
}

// UnmarshalJSON accepts either a name ("good") or a numeric rank (3).
func (r *Rating) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		v, ok := ratingByName[name]
		if !ok {
			return fmt.Errorf("invalid rating: %q", name)
		}
		*r = v
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid rating: %s", string(data))
	}
	*r = Rating(n)
	return nil
}
