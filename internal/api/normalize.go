package api

import (
	"encoding/json"

	"collegehub/internal/keymap"
)

// decode normalizes a raw response value to camelCase keys and unmarshals it
// into out. The backend answers in snake_case for some resources and
// camelCase for others; running everything through the key-mapper means the
// services tolerate whichever casing actually comes back.
func decode(v any, out any) error {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(keymap.CamelKeys(v))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// snakePayload converts an outbound value to the snake_case field names the
// backend expects for clubs, projects, schedule and parliament writes.
func snakePayload(in any) (any, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return keymap.SnakeKeys(v), nil
}
