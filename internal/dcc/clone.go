package dcc

import (
	"encoding/json"
	"fmt"
)

// Clone returns a deep copy of the document. The copy shares no slices,
// maps, or attachment pointers with the original.
//
// Implemented as a JSON round-trip: every field of Document is plain
// data with JSON tags, and draft replay already depends on documents
// surviving serialization unchanged.
func (d *Document) Clone() (*Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}
	return &out, nil
}
