// Package codec maps TimeRecords to and from scoreboard entry names.
package codec

import (
	"fmt"

	"github.com/mcoot/timestamper/internal/model"
)

// Codec names
const (
	NameLegacy     = "legacy"
	NameStructured = "structured"
)

// Codec converts between a TimeRecord and a single entry name
type Codec interface {
	// Encode returns the entry name that stores the record
	Encode(rec model.TimeRecord) (string, error)
	// Decode parses an entry name produced by Encode
	Decode(entry string) (model.TimeRecord, error)
	// Matches reports whether the entry carries this codec's marker
	Matches(entry string) bool
}

// ByName returns the codec registered under name; "" selects the legacy codec
func ByName(name string) (Codec, error) {
	switch name {
	case "", NameLegacy:
		return Legacy{}, nil
	case NameStructured:
		return Structured{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q: must be %q or %q", name, NameLegacy, NameStructured)
	}
}
