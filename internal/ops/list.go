package ops

import (
	"database/sql"

	"github.com/thantzin/linklet/internal/errors"
	"github.com/thantzin/linklet/internal/history"
)

// HistoryInput contains parameters for the History operation.
type HistoryInput struct {
	Limit int // 0 means all (the store is bounded anyway)
}

// HistoryOutput contains the result of the History operation.
type HistoryOutput struct {
	Items []history.Entry `json:"items"`
	Count int             `json:"count"`
}

// History lists recently generated links, most-recent-first.
func History(database *sql.DB, input HistoryInput) (*HistoryOutput, error) {
	if input.Limit < 0 {
		return nil, errors.NewInvalidRequest("limit must not be negative")
	}

	items := history.NewStore(database).Entries()
	if input.Limit > 0 && len(items) > input.Limit {
		items = items[:input.Limit]
	}

	return &HistoryOutput{
		Items: items,
		Count: len(items),
	}, nil
}
