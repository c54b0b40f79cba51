package data

import (
	"fmt"
	"strings"

	"github.com/zeusync/tabletop/internal/core/record"
	"github.com/zeusync/tabletop/internal/core/visibility"
)

var _ Data = (*Text)(nil)

// Text holds string content. Its record discriminator is "string".
type Text struct {
	visibility.Scope
	content string
}

func NewText(content string, opts ...Option) *Text {
	return &Text{Scope: newScope(opts), content: content}
}

func (d *Text) Kind() Kind     { return KindString }
func (d *Text) Content() any   { return d.content }
func (d *Text) String() string { return d.content }

func (d *Text) SetContent(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: the attribute `content` is not string", record.ErrType)
	}
	d.content = s
	return nil
}

// Append concatenates s to the content.
func (d *Text) Append(s string) {
	d.content += s
}

// Repeat replaces the content with n copies of itself. n <= 0 empties it.
func (d *Text) Repeat(n int) {
	if n <= 0 {
		d.content = ""
		return
	}
	d.content = strings.Repeat(d.content, n)
}

func (d *Text) Record() record.Record {
	return toRecord(KindString, d.content, &d.Scope)
}

func (d *Text) Clone() Data {
	return &Text{Scope: d.Scope.Clone(), content: d.content}
}

func decodeText(rec record.Record) (Data, error) {
	s, ok := rec[record.KeyContent].(string)
	if !ok {
		return nil, fmt.Errorf("%w: the attribute `content` is not string", record.ErrType)
	}
	scope, err := decodeScope(rec)
	if err != nil {
		return nil, err
	}
	return &Text{Scope: scope, content: s}, nil
}
