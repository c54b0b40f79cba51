package data

import (
	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
	"github.com/zeusync/tabletop/internal/core/visibility"
)

// Kind is the `type` discriminator of a Data record.
type Kind string

const (
	KindAny     Kind = "any"
	KindNumeric Kind = "numeric"
	KindString  Kind = "string"
)

// Data is the smallest visibility-controlled unit of game state: one content
// value plus a public flag and an allow-list of players.
//
// Content is owned by its Data entry. Mutations go through SetContent and the
// variant-specific mutators; values handed out by Content must not be
// modified in place by callers.
type Data interface {
	Kind() Kind
	Content() any
	// SetContent replaces the content after checking it against the variant.
	SetContent(v any) error

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
	ClearAllowed()

	Record() record.Record
	Clone() Data
}

// Option adjusts the visibility of a Data at construction.
type Option func(*visibility.Scope)

// Public makes the Data visible to everybody. Data is private unless told otherwise.
func Public() Option {
	return func(s *visibility.Scope) { s.MakePublic() }
}

// Private is the default; it exists to make call sites explicit.
func Private() Option {
	return func(s *visibility.Scope) { s.MakePrivate() }
}

// AllowedTo seeds the allow-list.
func AllowedTo(ids ...player.ID) Option {
	return func(s *visibility.Scope) { s.ShowToAll(ids...) }
}

func newScope(opts []Option) visibility.Scope {
	s := visibility.NewScope(false)
	// allow-list seeding must not be swallowed by a Public option given first
	var public bool
	for _, opt := range opts {
		opt(&s)
		if s.IsPublic() {
			public = true
			s.MakePrivate()
		}
	}
	if public {
		s.MakePublic()
	}
	return s
}

func toRecord(kind Kind, content any, s *visibility.Scope) record.Record {
	return record.Record{
		record.KeyType:    string(kind),
		record.KeyContent: content,
		record.KeyPublic:  s.IsPublic(),
		record.KeyAllowed: record.IDsToList(s.Allowed()),
	}
}

// decodeScope reads `public` (default false) and `allowed_pid`.
func decodeScope(rec record.Record) (visibility.Scope, error) {
	public, err := record.OptionalBool(rec, record.KeyPublic, false)
	if err != nil {
		return visibility.Scope{}, err
	}
	allowed, err := record.OptionalIDs(rec, record.KeyAllowed)
	if err != nil {
		return visibility.Scope{}, err
	}
	return visibility.NewScope(public, allowed...), nil
}
