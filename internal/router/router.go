// Package router decides whether a session is authoring new content or
// displaying content carried by an incoming link. It is a two-state machine
// driven entirely by fragment changes: a fragment that decodes puts the
// session in view mode, everything else falls back to create mode.
package router

import (
	"github.com/thantzin/linklet/internal/link"
	"github.com/thantzin/linklet/internal/token"
)

// Mode identifies what the session is doing.
type Mode string

const (
	// ModeCreate means no valid incoming token is present; the user is authoring.
	ModeCreate Mode = "create"

	// ModeView means a valid token was present and its text is being displayed.
	ModeView Mode = "view"
)

// Router tracks the current mode, displayed text, and fragment.
// All transitions are synchronous and idempotent: feeding the same fragment
// twice yields the same mode, text, and error both times.
type Router struct {
	mode     Mode
	text     string
	fragment string
	err      error
}

// New creates a Router in create mode with no text.
// Call OnFragmentChange with the startup fragment to compute the initial
// state, same as any later navigation.
func New() *Router {
	return &Router{mode: ModeCreate}
}

// OnFragmentChange recomputes state from a new fragment value.
// Non-empty fragment: decode success enters view mode with the decoded text;
// decode failure records the error, clears the fragment, and falls back to
// create mode with empty text. Empty fragment always means create mode.
func (r *Router) OnFragmentChange(fragment string) {
	r.err = nil

	if fragment == "" {
		r.mode = ModeCreate
		r.text = ""
		r.fragment = ""
		return
	}

	text, err := token.Decode(fragment)
	if err != nil {
		r.mode = ModeCreate
		r.text = ""
		r.fragment = ""
		r.err = err
		return
	}

	r.mode = ModeView
	r.text = text
	r.fragment = fragment
}

// Resolve feeds a raw link or bare token through OnFragmentChange.
func (r *Router) Resolve(raw string) {
	r.OnFragmentChange(link.Fragment(raw))
}

// Reset clears the fragment and forces create mode, discarding any
// decoded text and pending error.
func (r *Router) Reset() {
	r.mode = ModeCreate
	r.text = ""
	r.fragment = ""
	r.err = nil
}

// Mode returns the current mode.
func (r *Router) Mode() Mode {
	return r.mode
}

// Text returns the decoded text, or empty in create mode.
func (r *Router) Text() string {
	return r.text
}

// Fragment returns the current fragment, empty after a failed decode.
func (r *Router) Fragment() string {
	return r.fragment
}

// Err returns the decode error from the most recent transition, if any.
// It is the user-notification signal; the next transition clears it.
func (r *Router) Err() error {
	return r.err
}
