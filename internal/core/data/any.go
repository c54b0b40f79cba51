package data

import (
	"github.com/zeusync/tabletop/internal/core/record"
	"github.com/zeusync/tabletop/internal/core/visibility"
)

var _ Data = (*Any)(nil)

// Any holds unconstrained content.
type Any struct {
	visibility.Scope
	content any
}

func NewAny(content any, opts ...Option) *Any {
	return &Any{Scope: newScope(opts), content: content}
}

func (d *Any) Kind() Kind   { return KindAny }
func (d *Any) Content() any { return d.content }

func (d *Any) SetContent(v any) error {
	d.content = v
	return nil
}

func (d *Any) Record() record.Record {
	return toRecord(KindAny, d.content, &d.Scope)
}

func (d *Any) Clone() Data {
	return &Any{Scope: d.Scope.Clone(), content: d.content}
}

func decodeAny(rec record.Record) (Data, error) {
	scope, err := decodeScope(rec)
	if err != nil {
		return nil, err
	}
	return &Any{Scope: scope, content: rec[record.KeyContent]}, nil
}
