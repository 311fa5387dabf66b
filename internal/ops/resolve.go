package ops

import (
	"github.com/thantzin/linklet/internal/router"
)

// ResolveInput contains parameters for the Resolve operation.
type ResolveInput struct {
	Target string // full link or bare token
}

// ResolveOutput contains the result of the Resolve operation.
type ResolveOutput struct {
	Mode  string `json:"mode"`
	Text  string `json:"text"`
	Chars int    `json:"chars"`
}

// Resolve feeds a link or token through the router and reports the resulting
// mode and text. An empty target means no incoming token: create mode, no
// text. A fragment that fails to decode surfaces the structured decode error.
func Resolve(input ResolveInput) (*ResolveOutput, error) {
	r := router.New()
	r.Resolve(input.Target)

	if err := r.Err(); err != nil {
		return nil, err
	}

	return &ResolveOutput{
		Mode:  string(r.Mode()),
		Text:  r.Text(),
		Chars: CountChars(r.Text()),
	}, nil
}
