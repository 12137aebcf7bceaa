package ast

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders a Kind as its name, e.g. "Command", rather than its underlying int, so the
// wire format survives reordering the Kind constants.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a Kind from its name. It is the inverse of [Kind.MarshalJSON].
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range kindNames {
		if n == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("ast: unknown node kind %q", name)
}
