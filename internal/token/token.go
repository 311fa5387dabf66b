// Package token implements the text-to-token codec behind every linklet
// link. Text is treated as UTF-8 bytes and base64url-encoded without
// padding, so the resulting token survives inside a URL fragment untouched:
// no '+', '/', '=', and nothing that needs percent-encoding.
package token

import (
	"encoding/base64"
	"regexp"
	"unicode/utf8"

	"github.com/thantzin/linklet/internal/errors"
)

// alphabetRegex matches the full token alphabet (base64url, no padding).
var alphabetRegex = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Encode converts text into a URL-fragment-safe token.
// Every valid UTF-8 string round-trips exactly, including the empty string,
// emoji, combining characters, and CJK. The only failure case is a Go
// string that holds invalid UTF-8 bytes.
func Encode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", errors.NewEncodeFailed("text is not valid UTF-8")
	}
	return base64.RawURLEncoding.EncodeToString([]byte(text)), nil
}

// Decode reconstructs the original text from a token produced by Encode.
// Tokens arrive from untrusted URLs, so every malformed shape fails cleanly:
// characters outside the alphabet, impossible base64 lengths, and byte
// sequences that do not decode to valid UTF-8 all return a decode error,
// never partial output.
func Decode(tok string) (string, error) {
	if !Valid(tok) {
		return "", errors.NewDecodeFailed("token contains characters outside [A-Za-z0-9_-]")
	}
	data, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return "", errors.NewDecodeFailed("token is not valid base64url")
	}
	if !utf8.Valid(data) {
		return "", errors.NewDecodeFailed("decoded bytes are not valid UTF-8")
	}
	return string(data), nil
}

// Valid reports whether tok uses only the token alphabet.
// An empty token is valid and decodes to the empty string.
func Valid(tok string) bool {
	return alphabetRegex.MatchString(tok)
}
