package ops

import (
	"database/sql"
	"strings"

	"github.com/thantzin/linklet/internal/config"
	"github.com/thantzin/linklet/internal/errors"
	"github.com/thantzin/linklet/internal/history"
	"github.com/thantzin/linklet/internal/link"
	"github.com/thantzin/linklet/internal/token"
)

// ShareInput contains parameters for the Share operation.
type ShareInput struct {
	Text    string // required
	BaseURL string // optional override of cfg.BaseURL
}

// ShareOutput contains the result of the Share operation.
type ShareOutput struct {
	ID      string `json:"id"`
	Token   string `json:"token"`
	Link    string `json:"link"`
	Preview string `json:"preview"`
	Chars   int    `json:"chars"`
}

// Share turns text into a shareable link and records a history entry.
// Empty or whitespace-only text is rejected before the codec runs; no token
// is produced and no history entry is added. History persistence is
// best-effort and never fails the operation.
func Share(database *sql.DB, cfg *config.Config, input ShareInput) (*ShareOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.NewInvalidRequest("text must not be empty")
	}

	chars := CountChars(input.Text)
	if cfg.MaxTextChars > 0 && chars > cfg.MaxTextChars {
		return nil, errors.NewTextTooLarge(cfg.MaxTextChars, chars)
	}

	tok, err := token.Encode(input.Text)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSpace(input.BaseURL)
	if base == "" {
		base = cfg.BaseURL
	}
	fullLink := link.Build(base, tok)

	entry, err := history.NewEntry(input.Text, fullLink)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	history.NewStore(database).Append(entry)

	return &ShareOutput{
		ID:      entry.ID,
		Token:   tok,
		Link:    fullLink,
		Preview: entry.Preview,
		Chars:   chars,
	}, nil
}
