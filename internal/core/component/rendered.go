package component

import "github.com/zeusync/tabletop/internal/core/record"

// Rendered is the player-specific projection of a component. It is a one-way
// view and is never decoded back into a Component.
type Rendered struct {
	Name     string         `json:"name" yaml:"name"`
	Position *string        `json:"position" yaml:"position"`
	Data     map[string]any `json:"data" yaml:"data"`
}

func (r *Rendered) Record() record.Record {
	var position any
	if r.Position != nil {
		position = *r.Position
	}
	return record.Record{
		record.KeyName:     r.Name,
		record.KeyPosition: position,
		record.KeyData:     r.Data,
	}
}
