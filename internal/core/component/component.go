package component

import (
	"fmt"
	"maps"
	"slices"

	"github.com/zeusync/tabletop/internal/core/data"
	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
	"github.com/zeusync/tabletop/internal/core/visibility"
)

// Kind is the `type` discriminator of a Component record.
type Kind string

const (
	KindBase         Kind = "base"
	KindSimple       Kind = "simple"
	KindSimpleCard   Kind = "simple_card"
	KindTwoSidedCard Kind = "two_sided_card"
)

// Field names of the structured kinds.
const (
	FieldContent = "content"
	FieldFront   = "front"
	FieldBack    = "back"
)

// layouts lists the exact field set of each structured kind. Kinds absent
// from the map accept any fields.
var layouts = map[Kind][]string{
	KindSimple:       {FieldContent},
	KindSimpleCard:   {FieldContent},
	KindTwoSidedCard: {FieldBack, FieldFront},
}

// Component is a named bundle of Data fields that represents one game object
// (a card, a board, a token). Its own visibility gates access to the whole
// bundle; each field then applies its own visibility.
type Component interface {
	Kind() Kind
	Name() string
	Position() (string, bool)
	SetPosition(position string)
	ClearPosition()

	IsPublic() bool
	IsPrivate() bool
	MakePublic()
	MakePrivate()
	ShowTo(id player.ID)
	ShowToAll(ids ...player.ID)
	HideFrom(id player.ID) error
	HideFromAll(ids ...player.ID) error
	VisibleBy(v player.Viewer) bool
	Allowed() []player.ID

	Field(name string) (data.Data, error)
	Fields() []string
	Put(name string, d data.Data) error
	OwnBy(ids ...player.ID)

	Render(v player.Viewer) (*Rendered, error)
	Record() record.Record
}

var _ Component = (*Base)(nil)

// Option configures a component at construction.
type Option func(*Base)

// At places the component at position.
func At(position string) Option {
	return func(b *Base) { b.SetPosition(position) }
}

// Private hides the component itself. Components are public unless told otherwise.
func Private() Option {
	return func(b *Base) { b.MakePrivate() }
}

// Public is the default; it exists to make call sites explicit.
func Public() Option {
	return func(b *Base) { b.MakePublic() }
}

// AllowedTo seeds the component allow-list. It only matters once the
// component is private, so it is recorded regardless of option order.
func AllowedTo(ids ...player.ID) Option {
	return func(b *Base) {
		public := b.IsPublic()
		b.MakePrivate()
		b.ShowToAll(ids...)
		if public {
			b.MakePublic()
		}
	}
}

// WithKind sets the discriminator written by Record. It is meant for kinds
// registered outside this package.
func WithKind(kind Kind) Option {
	return func(b *Base) { b.kind = kind }
}

// Base is the open component kind: any set of fields.
type Base struct {
	visibility.Scope
	kind     Kind
	name     string
	position *string
	data     map[string]data.Data
}

// New builds a base component. The fields map is copied.
func New(name string, fields map[string]data.Data, opts ...Option) *Base {
	b := newBase(KindBase, name, fields)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func newBase(kind Kind, name string, fields map[string]data.Data) *Base {
	d := make(map[string]data.Data, len(fields))
	for name, field := range fields {
		if field != nil {
			d[name] = field
		}
	}
	return &Base{
		Scope: visibility.NewScope(true),
		kind:  kind,
		name:  name,
		data:  d,
	}
}

func (b *Base) Kind() Kind   { return b.kind }
func (b *Base) Name() string { return b.name }

func (b *Base) Position() (string, bool) {
	if b.position == nil {
		return "", false
	}
	return *b.position, true
}

func (b *Base) SetPosition(position string) {
	b.position = &position
}

func (b *Base) ClearPosition() {
	b.position = nil
}

// Field returns the data stored under name.
func (b *Base) Field(name string) (data.Data, error) {
	d, ok := b.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in component %q", ErrFieldNotFound, name, b.name)
	}
	return d, nil
}

// Fields returns the field names in ascending order.
func (b *Base) Fields() []string {
	return slices.Sorted(maps.Keys(b.data))
}

// Put stores d under name. Structured kinds only accept their own fields.
func (b *Base) Put(name string, d data.Data) error {
	if layout, fixed := layouts[b.kind]; fixed && !slices.Contains(layout, name) {
		return fmt.Errorf("%w: %s component %q has no field %q", ErrFixedFields, b.kind, b.name, name)
	}
	if d == nil {
		return fmt.Errorf("%w: field %q of component %q", ErrNilData, name, b.name)
	}
	b.data[name] = d
	return nil
}

// OwnBy makes every field private to exactly the given players, e.g. when a
// hand is dealt.
func (b *Base) OwnBy(ids ...player.ID) {
	for _, d := range b.data {
		d.MakePrivate()
		d.ClearAllowed()
		d.ShowToAll(ids...)
	}
}

// Render projects the component for v. The component must be visible to v;
// only the fields visible to v are included.
func (b *Base) Render(v player.Viewer) (*Rendered, error) {
	if !b.VisibleBy(v) {
		return nil, fmt.Errorf("%w: the component %q is not visible by player %d", ErrNotVisible, b.name, v.ID)
	}
	out := &Rendered{
		Name: b.name,
		Data: make(map[string]any, len(b.data)),
	}
	if b.position != nil {
		p := *b.position
		out.Position = &p
	}
	for key, d := range b.data {
		if d.VisibleBy(v) {
			out.Data[key] = d.Content()
		}
	}
	return out, nil
}

func (b *Base) Record() record.Record {
	fields := make(record.Record, len(b.data))
	for key, d := range b.data {
		fields[key] = d.Record()
	}
	var position any
	if b.position != nil {
		position = *b.position
	}
	return record.Record{
		record.KeyType:     string(b.kind),
		record.KeyName:     b.name,
		record.KeyPosition: position,
		record.KeyPublic:   b.IsPublic(),
		record.KeyAllowed:  record.IDsToList(b.Allowed()),
		record.KeyData:     fields,
	}
}

// DecodeBase parses the attributes every component record shares, in order:
// name, data, position, public (default true) and allowed_pid. The returned
// component has kind base.
func DecodeBase(rec record.Record) (*Base, error) {
	name, err := record.RequiredString(rec, record.KeyName)
	if err != nil {
		return nil, err
	}

	raw, ok := rec[record.KeyData]
	if !ok {
		return nil, fmt.Errorf("%w: the component %q has no data", record.ErrType, name)
	}
	fields, err := record.Mapping(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: data of component %q", err, name)
	}
	decoded := make(map[string]data.Data, len(fields))
	for key, value := range fields {
		d, err := data.FromValue(value)
		if err != nil {
			return nil, fmt.Errorf("field %q of component %q: %w", key, name, err)
		}
		decoded[key] = d
	}

	position, err := record.OptionalString(rec, record.KeyPosition)
	if err != nil {
		return nil, err
	}
	public, err := record.OptionalBool(rec, record.KeyPublic, true)
	if err != nil {
		return nil, err
	}
	allowed, err := record.OptionalIDs(rec, record.KeyAllowed)
	if err != nil {
		return nil, err
	}

	b := newBase(KindBase, name, decoded)
	b.Scope = visibility.NewScope(public, allowed...)
	b.position = position
	return b, nil
}

// checkLayout verifies that b carries exactly the fields of kind.
func checkLayout(kind Kind, b *Base) error {
	layout := layouts[kind]
	if len(b.data) != len(layout) {
		return fmt.Errorf("%w: a %s component should have exactly %d data, got %d",
			record.ErrShape, kind, len(layout), len(b.data))
	}
	for key := range b.data {
		if !slices.Contains(layout, key) {
			return fmt.Errorf("%w: a %s component should have data %v, got %q",
				record.ErrShape, kind, layout, key)
		}
	}
	return nil
}
