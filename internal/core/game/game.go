package game

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/zeusync/tabletop/internal/core/component"
	"github.com/zeusync/tabletop/internal/core/events/bus"
	"github.com/zeusync/tabletop/internal/core/observability/log"
	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
)

// Game owns the components on the table, keyed by slot name. It is not safe
// for concurrent use; callers apply one move at a time.
type Game struct {
	id         string
	slots      []string
	components map[string]component.Component

	authority player.Authority
	logger    log.Log
	events    bus.EventBus
}

type Option func(*Game)

// WithAuthority sets who referees the table. Defaults to player.NewReferee().
func WithAuthority(auth player.Authority) Option {
	return func(g *Game) { g.authority = auth }
}

func WithLogger(logger log.Log) Option {
	return func(g *Game) { g.logger = logger }
}

func WithBus(events bus.EventBus) Option {
	return func(g *Game) { g.events = events }
}

func New(opts ...Option) *Game {
	g := &Game{
		id:         uuid.NewString(),
		components: make(map[string]component.Component),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.authority == nil {
		g.authority = player.NewReferee()
	}
	if g.logger == nil {
		g.logger = log.NewNop()
	}
	if g.events == nil {
		g.events = bus.New()
	}
	g.logger = g.logger.With(log.String("game_id", g.id))
	return g
}

func (g *Game) ID() string                  { return g.id }
func (g *Game) Authority() player.Authority { return g.authority }
func (g *Game) Events() bus.EventBus        { return g.events }
func (g *Game) Logger() log.Log             { return g.logger }

// Viewer resolves id against the game's authority.
func (g *Game) Viewer(id player.ID) player.Viewer {
	return player.ViewerOf(g.authority, id)
}

// AddComponent stores c under its own name.
func (g *Game) AddComponent(c component.Component) {
	g.AddComponentAs(c.Name(), c)
}

// AddComponentAs stores c under slot, replacing whatever was there. A
// replaced slot keeps its position in Slots.
func (g *Game) AddComponentAs(slot string, c component.Component) {
	if slot == "" {
		slot = c.Name()
	}
	if _, exists := g.components[slot]; !exists {
		g.slots = append(g.slots, slot)
	}
	g.components[slot] = c
	g.logger.Debug("component added",
		log.String("slot", slot),
		log.String("kind", string(c.Kind())))
	g.publish(EventComponentAdded, slot)
}

func (g *Game) AddComponents(cs ...component.Component) {
	for _, c := range cs {
		g.AddComponent(c)
	}
}

// AddNamedComponents stores each component under its map key, in key order.
func (g *Game) AddNamedComponents(cs map[string]component.Component) {
	for _, slot := range sortedKeys(cs) {
		g.AddComponentAs(slot, cs[slot])
	}
}

// Component returns the component in slot.
func (g *Game) Component(slot string) (component.Component, error) {
	c, ok := g.components[slot]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
	}
	return c, nil
}

// Slots returns slot names in insertion order.
func (g *Game) Slots() []string {
	return slices.Clone(g.slots)
}

// Render returns the view of the table for id: every component visible to
// id, each reduced to the fields id may see.
func (g *Game) Render(id player.ID) map[string]*component.Rendered {
	v := g.Viewer(id)
	out := make(map[string]*component.Rendered, len(g.slots))
	for _, slot := range g.slots {
		c := g.components[slot]
		if !c.VisibleBy(v) {
			continue
		}
		r, err := c.Render(v)
		if err != nil {
			// unreachable: visibility was checked above
			continue
		}
		out[slot] = r
	}
	return out
}

// SaveRecord snapshots every component.
func (g *Game) SaveRecord() map[string]record.Record {
	out := make(map[string]record.Record, len(g.slots))
	for _, slot := range g.slots {
		out[slot] = g.components[slot].Record()
	}
	return out
}

// LoadRecord replaces every component from a snapshot. The snapshot must
// hold exactly the current slots. All records are decoded before any slot
// is touched, so on error the game is unchanged.
func (g *Game) LoadRecord(records map[string]record.Record) error {
	if err := g.checkSlots(sortedKeys(records)); err != nil {
		return err
	}
	loaded := make(map[string]component.Component, len(records))
	for _, slot := range g.slots {
		c, err := component.FromRecord(records[slot])
		if err != nil {
			return fmt.Errorf("slot %q: %w", slot, err)
		}
		loaded[slot] = c
	}
	g.components = loaded
	g.logger.Debug("components loaded", log.Int("slots", len(loaded)))
	g.publish(EventGameLoaded, g.Slots())
	return nil
}

// LoadSnapshot is LoadRecord for a decoded document whose values still have
// to be checked to be records.
func (g *Game) LoadSnapshot(doc record.Record) error {
	records := make(map[string]record.Record, len(doc))
	for slot, v := range doc {
		rec, err := record.Mapping(v)
		if err != nil {
			return fmt.Errorf("slot %q: %w", slot, err)
		}
		records[slot] = rec
	}
	return g.LoadRecord(records)
}

// Snapshot encodes SaveRecord in format.
func (g *Game) Snapshot(format record.Format) ([]byte, error) {
	return record.Encode(format, g.SaveRecord())
}

// Restore decodes a snapshot produced by Snapshot and loads it.
func (g *Game) Restore(format record.Format, b []byte) error {
	doc, err := record.Decode(format, b)
	if err != nil {
		return err
	}
	return g.LoadSnapshot(doc)
}

// Fingerprint hashes the full snapshot. It changes whenever any component,
// field or visibility setting changes.
func (g *Game) Fingerprint() (uint64, error) {
	return record.Fingerprint(g.SaveRecord())
}

func (g *Game) checkSlots(names []string) error {
	current := sortedKeys(g.components)
	if !slices.Equal(current, names) {
		return fmt.Errorf("%w: have %v, got %v", ErrSlotMismatch, current, names)
	}
	return nil
}

func (g *Game) publish(eventType string, payload any) {
	if err := g.events.Publish(bus.NewEvent(eventType, g.id, payload)); err != nil {
		g.logger.Warn("event handler failed",
			log.String("event", eventType),
			log.Error(err))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
