package models

import "time"

type Word struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
	Language    string    `json:"language"`
	Notes       string    `json:"notes"`
	Familiarity int       `json:"familiarity"`
	CreatedAt   time.Time `json:"created_at"`
}

type WordList struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
}

type WordFilter struct {
	ListID   int64
	Language string
	Search   string
	Limit    int
	Offset   int
}
