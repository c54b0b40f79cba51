package game

import (
	"fmt"

	"github.com/zeusync/tabletop/internal/core/component"
	"github.com/zeusync/tabletop/internal/core/observability/log"
	"github.com/zeusync/tabletop/internal/core/player"
)

// Move is whatever a concrete game uses to describe a turn.
type Move any

// Rules are the hooks a concrete game implements on top of a Game.
// Rules should look components up by slot on every call, since LoadRecord
// replaces component values.
type Rules interface {
	// Setup places the initial components on g.
	Setup(g *Game) error
	VerifyMove(g *Game, id player.ID, m Move) bool
	ApplyMove(g *Game, id player.ID, m Move) error
	MoveCandidates(g *Game, id player.ID) []Move
}

// MovePlayed is the payload of EventMoveApplied.
type MovePlayed struct {
	Player player.ID
	Move   Move
}

// Match drives a Game with a set of Rules.
type Match struct {
	game    *Game
	rules   Rules
	started bool
}

func NewMatch(g *Game, rules Rules) *Match {
	return &Match{game: g, rules: rules}
}

func (m *Match) Game() *Game { return m.game }

// Start runs the rules' Setup once.
func (m *Match) Start() error {
	if m.started {
		return ErrAlreadyStarted
	}
	if err := m.rules.Setup(m.game); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	m.started = true
	m.game.logger.Info("match started", log.Strings("slots", m.game.Slots()))
	return nil
}

// Play verifies and applies a move for id.
func (m *Match) Play(id player.ID, move Move) error {
	if !m.started {
		return ErrNotStarted
	}
	logger := m.game.logger.With(log.Int("player", int(id)), log.Any("move", move))
	if !m.rules.VerifyMove(m.game, id, move) {
		logger.Warn("move rejected")
		return fmt.Errorf("%w: player %d cannot play %v", ErrIllegalMove, id, move)
	}
	if err := m.rules.ApplyMove(m.game, id, move); err != nil {
		logger.Error("move failed", log.Error(err))
		return err
	}
	logger.Info("move applied")
	m.game.publish(EventMoveApplied, MovePlayed{Player: id, Move: move})
	return nil
}

// Candidates lists the moves id may play now.
func (m *Match) Candidates(id player.ID) []Move {
	if !m.started {
		return nil
	}
	return m.rules.MoveCandidates(m.game, id)
}

func (m *Match) Render(id player.ID) map[string]*component.Rendered {
	return m.game.Render(id)
}
