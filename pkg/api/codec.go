package api

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Codec marshals plain Go structs as JSON for Connect. It replaces Connect's
// protobuf JSON codec, which only accepts generated messages.
type Codec struct {
	name string
}

// Codecs returns the JSON codec under both names Connect negotiates for
// application/json.
func Codecs() []Codec {
	return []Codec{{name: "json"}, {name: "json; charset=utf-8"}}
}

// Name is the codec's Content-Type suffix.
func (c Codec) Name() string {
	if c.name == "" {
		return "json"
	}
	return c.name
}

// Marshal encodes message.
func (c Codec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", message, err)
	}
	return data, nil
}

// Unmarshal decodes data into message. An empty body leaves message zeroed.
func (c Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal %T: %w", message, err)
	}
	return nil
}
