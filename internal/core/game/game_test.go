package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/tabletop/internal/core/component"
	"github.com/zeusync/tabletop/internal/core/data"
	"github.com/zeusync/tabletop/internal/core/events/bus"
	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
)

func table() *Game {
	g := New()
	hand := component.NewSimple("hand", "ace")
	hand.OwnBy(1)
	secret := component.New("vault", map[string]data.Data{"gold": data.NewNumeric(10, data.Public())}, component.Private())
	g.AddComponents(
		hand,
		component.New("board", map[string]data.Data{
			"score":  data.NewNumeric(0, data.Public()),
			"secret": data.NewNumeric(1),
		}),
		secret,
	)
	return g
}

func TestGame_AddComponent(t *testing.T) {
	g := New()
	assert.NotEmpty(t, g.ID())

	g.AddComponent(component.NewSimple("a", 1))
	g.AddComponentAs("slot-b", component.NewSimple("b", 2))
	g.AddNamedComponents(map[string]component.Component{
		"d": component.NewSimple("x", 4),
		"c": component.NewSimple("y", 3),
	})
	assert.Equal(t, []string{"a", "slot-b", "c", "d"}, g.Slots())

	// replacing keeps the slot position
	g.AddComponentAs("a", component.NewSimple("z", 5))
	assert.Equal(t, []string{"a", "slot-b", "c", "d"}, g.Slots())
	c, err := g.Component("a")
	require.NoError(t, err)
	assert.Equal(t, "z", c.Name())

	_, err = g.Component("missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestGame_Render(t *testing.T) {
	g := table()

	view := g.Render(2)
	assert.Len(t, view, 2)
	assert.Empty(t, view["hand"].Data)
	assert.Equal(t, map[string]any{"score": int64(0)}, view["board"].Data)
	assert.NotContains(t, view, "vault")

	view = g.Render(1)
	assert.Equal(t, map[string]any{"content": "ace"}, view["hand"].Data)

	view = g.Render(player.Master)
	assert.Len(t, view, 3)
	assert.Equal(t, map[string]any{"gold": int64(10)}, view["vault"].Data)
}

func TestGame_CustomAuthority(t *testing.T) {
	g := New(WithAuthority(player.NewReferee(9)))
	g.AddComponent(component.NewSimple("hand", "ace"))

	assert.Empty(t, g.Render(player.Master)["hand"].Data)
	assert.Equal(t, map[string]any{"content": "ace"}, g.Render(9)["hand"].Data)
}

func TestGame_SaveLoad(t *testing.T) {
	g := table()
	saved := g.SaveRecord()
	assert.Len(t, saved, 3)
	assert.Equal(t, "simple", saved["hand"]["type"])

	other := table()
	hand, err := other.Component("hand")
	require.NoError(t, err)
	require.NoError(t, hand.(*component.Simple).SetContent("two"))

	require.NoError(t, other.LoadRecord(saved))
	hand, err = other.Component("hand")
	require.NoError(t, err)
	assert.Equal(t, "ace", hand.(*component.Simple).Content())
	assert.Equal(t, g.SaveRecord(), other.SaveRecord())
}

func TestGame_LoadMismatchedSlots(t *testing.T) {
	g := table()
	before := g.SaveRecord()

	missing := g.SaveRecord()
	delete(missing, "vault")
	assert.ErrorIs(t, g.LoadRecord(missing), ErrSlotMismatch)

	extra := g.SaveRecord()
	extra["dice"] = component.NewSimple("dice", 6).Record()
	assert.ErrorIs(t, g.LoadRecord(extra), ErrSlotMismatch)

	assert.Equal(t, before, g.SaveRecord())
}

func TestGame_LoadInvalidLeavesGameUnchanged(t *testing.T) {
	g := table()
	before := g.SaveRecord()

	broken := g.SaveRecord()
	broken["hand"] = component.NewSimple("hand", "two").Record()
	broken["vault"] = record.Record{"type": "meeple", "name": "vault", "data": record.Record{}}
	err := g.LoadRecord(broken)
	assert.ErrorIs(t, err, record.ErrUnknownType)

	assert.Equal(t, before, g.SaveRecord())
}

func TestGame_SnapshotRoundTrip(t *testing.T) {
	for _, format := range []record.Format{record.FormatJSON, record.FormatYAML} {
		g := table()
		g.AddComponent(component.New("stats", map[string]data.Data{"avg": data.NewNumeric(2.0, data.Public())}))
		snap, err := g.Snapshot(format)
		require.NoError(t, err)

		other := table()
		other.AddComponent(component.New("stats", map[string]data.Data{"avg": data.NewNumeric(0, data.Public())}))
		board, _ := other.Component("board")
		board.SetPosition("moved")
		require.NoError(t, other.Restore(format, snap))
		assert.Equal(t, g.SaveRecord(), other.SaveRecord(), "format %s", format)

		stats, err := other.Component("stats")
		require.NoError(t, err)
		avg, err := stats.Field("avg")
		require.NoError(t, err)
		assert.Equal(t, 2.0, avg.Content(), "format %s", format)
	}
}

func TestGame_RestoreRejectsGarbage(t *testing.T) {
	g := table()
	assert.Error(t, g.Restore(record.FormatJSON, []byte("[1, 2]")))
	assert.Error(t, g.Restore(record.FormatJSON, []byte(`{"hand": 1, "board": 2, "vault": 3}`)))
}

func TestGame_Fingerprint(t *testing.T) {
	g := table()
	a, err := g.Fingerprint()
	require.NoError(t, err)
	b, err := g.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	board, _ := g.Component("board")
	field, _ := board.Field("secret")
	field.ShowTo(2)
	c, err := g.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGame_Events(t *testing.T) {
	events := bus.New()
	var seen []string
	_, err := events.Subscribe(bus.AnyType, func(e bus.Event) error {
		seen = append(seen, e.Type())
		return nil
	})
	require.NoError(t, err)

	g := New(WithBus(events))
	g.AddComponent(component.NewSimple("a", 1))
	require.NoError(t, g.LoadRecord(g.SaveRecord()))

	assert.Equal(t, []string{EventComponentAdded, EventGameLoaded}, seen)
}
