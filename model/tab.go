package model

import "time"

// Tab is one saved entry in the tab library.
type Tab struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}
