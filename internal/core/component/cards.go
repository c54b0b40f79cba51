package component

import (
	"github.com/zeusync/tabletop/internal/core/data"
	"github.com/zeusync/tabletop/internal/core/record"
)

var (
	_ Component = (*Simple)(nil)
	_ Component = (*SimpleCard)(nil)
	_ Component = (*TwoSidedCard)(nil)
)

// Simple is a component with a single `content` field.
type Simple struct {
	Base
}

// NewSimple wraps content in a private data.Any unless it already is a data.Data.
func NewSimple(name string, content any, opts ...Option) *Simple {
	return &Simple{Base: *build(KindSimple, name, map[string]data.Data{
		FieldContent: asData(content, false),
	}, opts)}
}

// ContentData returns the sole field.
func (s *Simple) ContentData() data.Data {
	return s.data[FieldContent]
}

func (s *Simple) Content() any {
	return s.ContentData().Content()
}

func (s *Simple) SetContent(v any) error {
	return s.ContentData().SetContent(v)
}

// ShowContent makes the content public.
func (s *Simple) ShowContent() {
	s.ContentData().MakePublic()
}

// SimpleCard is a single-sided card: flipping toggles whether its face is public.
type SimpleCard struct {
	Simple
}

func NewSimpleCard(name string, content any, opts ...Option) *SimpleCard {
	return &SimpleCard{Simple: Simple{Base: *build(KindSimpleCard, name, map[string]data.Data{
		FieldContent: asData(content, false),
	}, opts)}}
}

func (c *SimpleCard) Flip() {
	d := c.ContentData()
	if d.IsPublic() {
		d.MakePrivate()
	} else {
		d.MakePublic()
	}
}

// TwoSidedCard has a `front` and a `back`; normally exactly one of them is public.
type TwoSidedCard struct {
	Base
}

// NewTwoSidedCard wraps raw sides in data.Any, front public and back private.
func NewTwoSidedCard(name string, front, back any, opts ...Option) *TwoSidedCard {
	return &TwoSidedCard{Base: *build(KindTwoSidedCard, name, map[string]data.Data{
		FieldFront: asData(front, true),
		FieldBack:  asData(back, false),
	}, opts)}
}

func (c *TwoSidedCard) Front() data.Data { return c.data[FieldFront] }
func (c *TwoSidedCard) Back() data.Data  { return c.data[FieldBack] }

// Flip swaps which side is public. When both sides share the same
// visibility there is no side to swap and Flip does nothing.
func (c *TwoSidedCard) Flip() {
	front, back := c.Front(), c.Back()
	switch {
	case front.IsPublic() && back.IsPrivate():
		front.MakePrivate()
		back.MakePublic()
	case front.IsPrivate() && back.IsPublic():
		front.MakePublic()
		back.MakePrivate()
	}
}

func build(kind Kind, name string, fields map[string]data.Data, opts []Option) *Base {
	b := newBase(kind, name, fields)
	for _, opt := range opts {
		opt(b)
	}
	// options must not rename the kind of a structured component
	b.kind = kind
	return b
}

func asData(v any, public bool) data.Data {
	if d, ok := v.(data.Data); ok {
		return d
	}
	if public {
		return data.NewAny(v, data.Public())
	}
	return data.NewAny(v)
}

func decodeBaseKind(rec record.Record) (Component, error) {
	return DecodeBase(rec)
}

func decodeSimple(rec record.Record) (Component, error) {
	b, err := decodeLayout(KindSimple, rec)
	if err != nil {
		return nil, err
	}
	return &Simple{Base: *b}, nil
}

func decodeSimpleCard(rec record.Record) (Component, error) {
	b, err := decodeLayout(KindSimpleCard, rec)
	if err != nil {
		return nil, err
	}
	return &SimpleCard{Simple: Simple{Base: *b}}, nil
}

func decodeTwoSidedCard(rec record.Record) (Component, error) {
	b, err := decodeLayout(KindTwoSidedCard, rec)
	if err != nil {
		return nil, err
	}
	return &TwoSidedCard{Base: *b}, nil
}

func decodeLayout(kind Kind, rec record.Record) (*Base, error) {
	b, err := DecodeBase(rec)
	if err != nil {
		return nil, err
	}
	if err = checkLayout(kind, b); err != nil {
		return nil, err
	}
	b.kind = kind
	return b, nil
}
