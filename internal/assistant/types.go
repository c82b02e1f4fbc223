package assistant

import (
	"fmt"
	"time"
)

// HistoryEntry is one utterance in a user's append-only chat history blob.
type HistoryEntry struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	Datetime string `json:"datetime"`
}

// TodoItem is one schedule entry in a user's to-do blob. The whole list is
// regenerated by the model on every extraction; this type only pins the
// wire schema.
type TodoItem struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Destination string `json:"destination"`
	Purpose     string `json:"purpose"`
	IsDone      bool   `json:"is_done"`
	Comment     string `json:"comment"`
}

// Validate checks the date and time formats the model is instructed to emit.
func (t TodoItem) Validate() error {
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", t.Date, err)
	}
	if _, err := time.Parse("15:04", t.Time); err != nil {
		return fmt.Errorf("invalid time %q: %w", t.Time, err)
	}
	return nil
}
