package ops

import (
	"database/sql"

	"github.com/thantzin/linklet/internal/history"
)

// ClearOutput contains the result of the Clear operation.
type ClearOutput struct {
	Cleared int `json:"cleared"`
}

// Clear removes all history entries.
func Clear(database *sql.DB) (*ClearOutput, error) {
	n := history.NewStore(database).Clear()
	return &ClearOutput{Cleared: n}, nil
}
