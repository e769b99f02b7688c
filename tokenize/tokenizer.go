// Package tokenize splits strings into tokens on a configurable separator,
// treating double-quoted segments as single tokens.
package tokenize

import (
	"strings"

	"github.com/Fantom-foundation/Coffer/common"
)

const (
	// ErrUnmatchedQuote is returned when a quoted segment is not closed.
	ErrUnmatchedQuote = common.ConstError("unmatched quote")

	// ErrEmptyToken is returned when two separators enclose no content.
	ErrEmptyToken = common.ConstError("empty token")

	// ErrTrailingData is returned when a closing quote is followed by
	// anything but a separator or the end of the input.
	ErrTrailingData = common.ConstError("unexpected trailing data after quote")
)

// Tokenizer splits strings on a fixed separator. Double-quoted segments are
// returned as single tokens with the quotes stripped; the separator loses
// its meaning inside quotes.
type Tokenizer struct {
	separator byte
}

// NewTokenizer creates a tokenizer splitting on the given separator.
func NewTokenizer(separator byte) *Tokenizer {
	return &Tokenizer{separator: separator}
}

// Split breaks the input into its tokens. An empty input produces no
// tokens; an empty token between two separators, an unclosed quote, or
// data following a closing quote are rejected.
func (t *Tokenizer) Split(input string) ([]string, error) {
	if len(input) == 0 {
		return nil, nil
	}
	var tokens []string
	var sb strings.Builder
	pos := 0
	for pos < len(input) {
		if input[pos] == '"' {
			end := strings.IndexByte(input[pos+1:], '"')
			if end < 0 {
				return nil, ErrUnmatchedQuote
			}
			sb.WriteString(input[pos+1 : pos+1+end])
			pos += end + 2
			if pos < len(input) && input[pos] != t.separator {
				return nil, ErrTrailingData
			}
			continue
		}
		if input[pos] == t.separator {
			if sb.Len() == 0 {
				return nil, ErrEmptyToken
			}
			tokens = append(tokens, sb.String())
			sb.Reset()
			pos++
			continue
		}
		sb.WriteByte(input[pos])
		pos++
	}
	if sb.Len() == 0 {
		return nil, ErrEmptyToken
	}
	return append(tokens, sb.String()), nil
}
