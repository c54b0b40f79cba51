package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
	"github.com/zeusync/tabletop/internal/core/visibility"
)

func variants() map[string]Data {
	return map[string]Data{
		"any":     NewAny([]any{"x", int64(1)}, AllowedTo(2, 1)),
		"numeric": NewNumeric(3, Public()),
		"real":    NewNumeric(2.5, AllowedTo(4)),
		"string":  NewText("hello", Public(), AllowedTo(5)),
		"nil":     NewAny(nil),
	}
}

func TestData_DefaultsToPrivate(t *testing.T) {
	d := NewAny(1)
	assert.True(t, d.IsPrivate())
	assert.False(t, d.VisibleBy(player.As(1)))
	assert.True(t, d.VisibleBy(player.AsMaster(0)))
}

func TestData_PublicVisibleToEveryone(t *testing.T) {
	for name, d := range variants() {
		d.MakePublic()
		for _, id := range []player.ID{0, 1, 2, 99} {
			assert.True(t, d.VisibleBy(player.As(id)), name)
		}
	}
}

func TestData_PrivateFollowsAllowList(t *testing.T) {
	for name, d := range variants() {
		d.MakePrivate()
		allowed := player.NewSet(d.Allowed()...)
		for _, id := range []player.ID{1, 2, 3, 4, 5} {
			assert.Equal(t, allowed.Has(id), d.VisibleBy(player.As(id)), "%s/%d", name, id)
		}
	}
}

func TestData_ShowThenHide(t *testing.T) {
	d := NewNumeric(0)
	require.NoError(t, d.HideFrom(3))
	assert.Empty(t, d.Allowed())

	d.ShowTo(3)
	assert.True(t, d.VisibleBy(player.As(3)))
	require.NoError(t, d.HideFrom(3))
	assert.False(t, d.VisibleBy(player.As(3)))
}

func TestData_HideFromPublicFails(t *testing.T) {
	d := NewText("x", AllowedTo(1), Public())
	err := d.HideFromAll(1)
	assert.ErrorIs(t, err, visibility.ErrPublic)
	assert.Equal(t, []player.ID{1}, d.Allowed())
}

func TestData_Record(t *testing.T) {
	d := NewNumeric(7, AllowedTo(3, 1))
	assert.Equal(t, record.Record{
		"type":        "numeric",
		"content":     int64(7),
		"public":      false,
		"allowed_pid": []int{1, 3},
	}, d.Record())
}

func TestData_RoundTrip(t *testing.T) {
	for name, d := range variants() {
		got, err := FromRecord(d.Record())
		require.NoError(t, err, name)
		assert.Equal(t, d.Kind(), got.Kind(), name)
		assert.Equal(t, d.Content(), got.Content(), name)
		assert.Equal(t, d.IsPublic(), got.IsPublic(), name)
		assert.Equal(t, d.Allowed(), got.Allowed(), name)
	}
}

func TestFromRecord_Defaults(t *testing.T) {
	d, err := FromRecord(record.Record{"type": "any"})
	require.NoError(t, err)
	assert.Nil(t, d.Content())
	assert.True(t, d.IsPrivate())
	assert.Empty(t, d.Allowed())
}

func TestFromRecord_Rejects(t *testing.T) {
	tests := []struct {
		name string
		rec  record.Record
		err  error
	}{
		{"numeric with string", record.Record{"type": "numeric", "content": "1"}, record.ErrType},
		{"numeric with bool", record.Record{"type": "numeric", "content": true}, record.ErrType},
		{"numeric without content", record.Record{"type": "numeric"}, record.ErrType},
		{"string with number", record.Record{"type": "string", "content": 1}, record.ErrType},
		{"public not bool", record.Record{"type": "any", "public": "true"}, record.ErrType},
		{"allowed not ints", record.Record{"type": "any", "allowed_pid": []any{1, "2"}}, record.ErrType},
		{"allowed null", record.Record{"type": "any", "allowed_pid": nil}, record.ErrType},
		{"missing type", record.Record{"content": 1}, record.ErrType},
		{"unknown type", record.Record{"type": "dice", "content": 1}, record.ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromRecord(tt.rec)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, d)
		})
	}
}

func TestFromRecord_UnknownTypeNamed(t *testing.T) {
	_, err := FromRecord(record.Record{"type": "dice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dice")

	// siblings still decode
	_, err = FromRecord(record.Record{"type": "string", "content": "ok"})
	assert.NoError(t, err)
}

func TestFromValue(t *testing.T) {
	d, err := FromValue(map[any]any{"type": "string", "content": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", d.Content())

	_, err = FromValue("nope")
	assert.ErrorIs(t, err, record.ErrType)
}

func TestRegister(t *testing.T) {
	err := Register(KindAny, decodeAny)
	assert.ErrorIs(t, err, record.ErrAlreadyRegistered)

	require.NoError(t, Register("constant", func(rec record.Record) (Data, error) {
		return NewAny("fixed", Public()), nil
	}))
	assert.Contains(t, Kinds(), Kind("constant"))

	d, err := FromRecord(record.Record{"type": "constant"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", d.Content())
}

func TestClone(t *testing.T) {
	d := NewText("a", AllowedTo(1))
	c := d.Clone()
	c.ShowTo(2)
	require.NoError(t, c.SetContent("b"))

	assert.Equal(t, "a", d.Content())
	assert.Equal(t, []player.ID{1}, d.Allowed())
}

func TestSetContent(t *testing.T) {
	n := NewNumeric(1)
	assert.ErrorIs(t, n.SetContent("x"), record.ErrType)
	assert.Equal(t, int64(1), n.Content())
	require.NoError(t, n.SetContent(2.5))
	assert.Equal(t, 2.5, n.Content())

	s := NewText("")
	assert.ErrorIs(t, s.SetContent(1), record.ErrType)

	a := NewAny(nil)
	require.NoError(t, a.SetContent(struct{}{}))
}
