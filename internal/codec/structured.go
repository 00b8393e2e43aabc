package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcoot/timestamper/internal/model"
)

const structuredPrefix = "ts1."

// Structured stores the record as base64url JSON, so identifiers and
// player names may contain any character.
type Structured struct{}

var _ Codec = Structured{}

type structuredPayload struct {
	Identifier string `json:"id"`
	Player     string `json:"player,omitempty"`
	Value      int64  `json:"value"`
}

// Encode implements Codec
func (Structured) Encode(rec model.TimeRecord) (string, error) {
	data, err := json.Marshal(structuredPayload{
		Identifier: rec.Identifier,
		Player:     rec.Player,
		Value:      rec.Timestamp,
	})
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return structuredPrefix + base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode implements Codec
func (Structured) Decode(entry string) (model.TimeRecord, error) {
	if !strings.HasPrefix(entry, structuredPrefix) {
		return model.TimeRecord{}, fmt.Errorf("%w: missing marker", model.ErrMalformedEntry)
	}

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(entry, structuredPrefix))
	if err != nil {
		return model.TimeRecord{}, fmt.Errorf("%w: %v", model.ErrMalformedEntry, err)
	}

	var payload structuredPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.TimeRecord{}, fmt.Errorf("%w: %v", model.ErrMalformedEntry, err)
	}

	return model.TimeRecord{
		Identifier: payload.Identifier,
		Player:     payload.Player,
		Timestamp:  payload.Value,
	}, nil
}

// Matches implements Codec
func (Structured) Matches(entry string) bool {
	return strings.HasPrefix(entry, structuredPrefix)
}
