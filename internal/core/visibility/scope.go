package visibility

import (
	"errors"

	"github.com/zeusync/tabletop/internal/core/player"
)

// ErrPublic is returned when hiding from players something that everybody sees.
var ErrPublic = errors.New("cannot hide from players while public")

// Scope tracks whether something is public and, if not, which players may see it.
// The allow-list is kept while public but has no effect until the scope turns private.
type Scope struct {
	public  bool
	allowed player.Set
}

// NewScope returns a scope with the given default visibility and allow-list.
func NewScope(public bool, allowed ...player.ID) Scope {
	return Scope{public: public, allowed: player.NewSet(allowed...)}
}

func (s *Scope) IsPublic() bool  { return s.public }
func (s *Scope) IsPrivate() bool { return !s.public }

func (s *Scope) MakePublic()  { s.public = true }
func (s *Scope) MakePrivate() { s.public = false }

// ShowTo grants id access. Nothing is recorded while public.
func (s *Scope) ShowTo(id player.ID) {
	s.ShowToAll(id)
}

// ShowToAll grants every id access. Nothing is recorded while public.
func (s *Scope) ShowToAll(ids ...player.ID) {
	if s.public {
		return
	}
	s.ensure()
	s.allowed.Add(ids...)
}

// HideFrom revokes access for id.
func (s *Scope) HideFrom(id player.ID) error {
	return s.HideFromAll(id)
}

// HideFromAll revokes access for every id. It fails with ErrPublic and leaves
// the allow-list untouched when the scope is public.
func (s *Scope) HideFromAll(ids ...player.ID) error {
	if s.public {
		return ErrPublic
	}
	s.ensure()
	s.allowed.Remove(ids...)
	return nil
}

// VisibleBy reports whether v may see the scope. Masters always can.
func (s *Scope) VisibleBy(v player.Viewer) bool {
	return v.Master || s.public || s.allowed.Has(v.ID)
}

// Allowed returns the allow-list in ascending order.
func (s *Scope) Allowed() []player.ID {
	return s.allowed.Sorted()
}

// ClearAllowed empties the allow-list.
func (s *Scope) ClearAllowed() {
	s.allowed = player.NewSet()
}

func (s *Scope) Clone() Scope {
	return Scope{public: s.public, allowed: s.allowed.Clone()}
}

func (s *Scope) ensure() {
	if s.allowed == nil {
		s.allowed = player.NewSet()
	}
}
