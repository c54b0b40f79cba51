// Package rps is a two-player rock-paper-scissors table. Each player's hand
// stays private to its owner until both have played, then the round is
// scored on a public board and both hands are cleared.
package rps

import (
	"fmt"

	"github.com/zeusync/tabletop/internal/core/component"
	"github.com/zeusync/tabletop/internal/core/data"
	"github.com/zeusync/tabletop/internal/core/game"
	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
)

// Hand is a move. Each hand beats the next one modulo 3.
type Hand int

const (
	Rock Hand = iota
	Scissors
	Paper
)

func (h Hand) String() string {
	switch h {
	case Rock:
		return "rock"
	case Scissors:
		return "scissors"
	case Paper:
		return "paper"
	default:
		return fmt.Sprintf("hand(%d)", int(h))
	}
}

// Beats reports whether h wins against other.
func (h Hand) Beats(other Hand) bool {
	return (h+1)%3 == other
}

// ParseHand accepts a hand name or its number.
func ParseHand(s string) (Hand, error) {
	for _, h := range []Hand{Rock, Scissors, Paper} {
		if s == h.String() || s == fmt.Sprint(int(h)) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown hand %q", s)
}

// Seats and slots of the table.
const (
	PlayerOne player.ID = 1
	PlayerTwo player.ID = 2

	SlotBoard = "board"
)

// MoveSlot returns the slot holding the hand of id.
func MoveSlot(id player.ID) string {
	return fmt.Sprintf("move%d", id)
}

// ScoreField returns the board field counting the wins of id.
func ScoreField(id player.ID) string {
	return fmt.Sprintf("score%d", id)
}

var _ game.Rules = Rules{}

type Rules struct{}

func (Rules) Setup(g *game.Game) error {
	for _, id := range []player.ID{PlayerOne, PlayerTwo} {
		move := component.NewSimple(MoveSlot(id), nil)
		move.OwnBy(id)
		g.AddComponent(move)
	}
	g.AddComponent(component.New(SlotBoard, map[string]data.Data{
		ScoreField(PlayerOne): data.NewNumeric(0, data.Public()),
		ScoreField(PlayerTwo): data.NewNumeric(0, data.Public()),
	}))
	return nil
}

func (Rules) VerifyMove(g *game.Game, id player.ID, m game.Move) bool {
	if id != PlayerOne && id != PlayerTwo {
		return false
	}
	if _, ok := asHand(m); !ok {
		return false
	}
	move, err := moveOf(g, id)
	if err != nil {
		return false
	}
	return move.Content() == nil
}

func (r Rules) ApplyMove(g *game.Game, id player.ID, m game.Move) error {
	hand, ok := asHand(m)
	if !ok {
		return fmt.Errorf("%w: %v is not a hand", game.ErrIllegalMove, m)
	}
	mine, err := moveOf(g, id)
	if err != nil {
		return err
	}
	theirs, err := moveOf(g, opponent(id))
	if err != nil {
		return err
	}
	if mine.Content() != nil {
		return nil
	}
	if err = mine.SetContent(int64(hand)); err != nil {
		return err
	}
	if theirs.Content() == nil {
		return nil
	}

	other, ok := asHand(theirs.Content())
	if !ok {
		return fmt.Errorf("slot %q holds %v, not a hand", theirs.Name(), theirs.Content())
	}
	switch {
	case hand.Beats(other):
		err = r.score(g, id)
	case other.Beats(hand):
		err = r.score(g, opponent(id))
	}
	if err != nil {
		return err
	}
	if err = mine.SetContent(nil); err != nil {
		return err
	}
	return theirs.SetContent(nil)
}

func (r Rules) MoveCandidates(g *game.Game, id player.ID) []game.Move {
	if !r.VerifyMove(g, id, Rock) {
		return []game.Move{}
	}
	return []game.Move{Rock, Scissors, Paper}
}

// Score returns the number of rounds id has won.
func Score(g *game.Game, id player.ID) (int64, error) {
	d, err := scoreOf(g, id)
	if err != nil {
		return 0, err
	}
	n, ok := d.Int()
	if !ok {
		return 0, fmt.Errorf("score of player %d is not an integer: %v", id, d.Content())
	}
	return n, nil
}

func (Rules) score(g *game.Game, id player.ID) error {
	d, err := scoreOf(g, id)
	if err != nil {
		return err
	}
	return d.Add(1)
}

func scoreOf(g *game.Game, id player.ID) (*data.Numeric, error) {
	board, err := g.Component(SlotBoard)
	if err != nil {
		return nil, err
	}
	field, err := board.Field(ScoreField(id))
	if err != nil {
		return nil, err
	}
	n, ok := field.(*data.Numeric)
	if !ok {
		return nil, fmt.Errorf("board field %q is %s, not numeric", ScoreField(id), field.Kind())
	}
	return n, nil
}

func moveOf(g *game.Game, id player.ID) (*component.Simple, error) {
	c, err := g.Component(MoveSlot(id))
	if err != nil {
		return nil, err
	}
	s, ok := c.(*component.Simple)
	if !ok {
		return nil, fmt.Errorf("slot %q is %s, not simple", MoveSlot(id), c.Kind())
	}
	return s, nil
}

func opponent(id player.ID) player.ID {
	if id == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func asHand(v any) (Hand, bool) {
	if h, ok := v.(Hand); ok {
		return h, h >= Rock && h <= Paper
	}
	n, ok := record.Integer(v)
	if !ok || n < int64(Rock) || n > int64(Paper) {
		return 0, false
	}
	return Hand(n), true
}
