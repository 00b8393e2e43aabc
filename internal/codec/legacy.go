package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/timestamper/internal/model"
)

// Legacy entry layout: <marker>><identifier>><escaped json>
const (
	legacyMarker    = "&..&"
	legacySeparator = ">"
	legacyPrefix    = legacyMarker + legacySeparator

	escapedQuote = "&&^'"
	escapedComma = "&&^."
	escapeLead   = "&&^"
)

// Legacy is the entry format written by the original scoreboard add-on.
//
// Identifiers containing '>' and names containing the escape sequences
// do not survive a round trip. Existing worlds depend on this exact layout,
// so those inputs are left undefended.
type Legacy struct{}

var _ Codec = Legacy{}

type legacyPayload struct {
	Value  int64  `json:"value"`
	Player string `json:"player,omitempty"`
}

// Encode implements Codec
func (Legacy) Encode(rec model.TimeRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(legacyPayload{Value: rec.Timestamp, Player: rec.Player}); err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	payload := strings.TrimSuffix(buf.String(), "\n")

	return legacyPrefix + rec.Identifier + legacySeparator + escapeLegacy(payload), nil
}

// Decode implements Codec
func (Legacy) Decode(entry string) (model.TimeRecord, error) {
	if !strings.HasPrefix(entry, legacyPrefix) {
		return model.TimeRecord{}, fmt.Errorf("%w: missing marker", model.ErrMalformedEntry)
	}

	parts := strings.Split(entry, legacySeparator)
	if len(parts) < 3 {
		return model.TimeRecord{}, fmt.Errorf("%w: expected 3 fields, got %d", model.ErrMalformedEntry, len(parts))
	}

	var payload legacyPayload
	if err := json.Unmarshal([]byte(unescapeLegacy(parts[2])), &payload); err != nil {
		return model.TimeRecord{}, fmt.Errorf("%w: %v", model.ErrMalformedEntry, err)
	}

	return model.TimeRecord{
		Identifier: parts[1],
		Player:     payload.Player,
		Timestamp:  payload.Value,
	}, nil
}

// Matches implements Codec
func (Legacy) Matches(entry string) bool {
	return strings.HasPrefix(entry, legacyPrefix)
}

func escapeLegacy(s string) string {
	s = strings.ReplaceAll(s, `"`, escapedQuote)
	return strings.ReplaceAll(s, ",", escapedComma)
}

// unescapeLegacy restores quotes first, then turns any remaining
// "&&^" plus one character into a comma. Old entries were read this way.
func unescapeLegacy(s string) string {
	s = strings.ReplaceAll(s, escapedQuote, `"`)
	if !strings.Contains(s, escapeLead) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], escapeLead) && i+len(escapeLead) < len(s) {
			_, size := utf8.DecodeRuneInString(s[i+len(escapeLead):])
			b.WriteByte(',')
			i += len(escapeLead) + size
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
