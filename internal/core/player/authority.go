package player

// Master is the seat that referees a table unless configured otherwise.
const Master ID = 0

// Authority decides which players bypass every visibility restriction.
// It is supplied by the application that manages player identities.
type Authority interface {
	IsMaster(ID) bool
}

var _ Authority = (*Referee)(nil)

// Referee is an Authority backed by a fixed set of master IDs.
type Referee struct {
	masters Set
}

// NewReferee returns an Authority granting master rights to the given IDs.
// With no IDs it falls back to Master.
func NewReferee(masters ...ID) *Referee {
	if len(masters) == 0 {
		masters = []ID{Master}
	}
	return &Referee{masters: NewSet(masters...)}
}

func (r *Referee) IsMaster(id ID) bool {
	return r.masters.Has(id)
}

// Masters returns the master IDs in ascending order.
func (r *Referee) Masters() []ID {
	return r.masters.Sorted()
}

// Viewer is a requester whose master status has already been resolved.
// Visibility checks take a Viewer so the authority is consulted once per request.
type Viewer struct {
	ID     ID
	Master bool
}

// ViewerOf resolves id against auth. A nil authority grants no master rights.
func ViewerOf(auth Authority, id ID) Viewer {
	return Viewer{ID: id, Master: auth != nil && auth.IsMaster(id)}
}

// As returns a non-master viewer for id.
func As(id ID) Viewer {
	return Viewer{ID: id}
}

// AsMaster returns a master viewer for id.
func AsMaster(id ID) Viewer {
	return Viewer{ID: id, Master: true}
}
