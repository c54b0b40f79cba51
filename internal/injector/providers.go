package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/tabletop/internal/config"
	"github.com/zeusync/tabletop/internal/core/events/bus"
	"github.com/zeusync/tabletop/internal/core/game"
	"github.com/zeusync/tabletop/internal/core/observability/log"
	"github.com/zeusync/tabletop/internal/core/player"
)

// TableSet wires a Game from a Config.
var TableSet = wire.NewSet(
	ProvideLogger,
	ProvideAuthority,
	ProvideBus,
	ProvideGame,
)

func ProvideLogger(cfg *config.Config) log.Log {
	return log.New(cfg.Level())
}

func ProvideAuthority(cfg *config.Config) player.Authority {
	return player.NewReferee(cfg.MasterIDs()...)
}

func ProvideBus() bus.EventBus {
	return bus.New()
}

func ProvideGame(logger log.Log, auth player.Authority, events bus.EventBus) *game.Game {
	return game.New(
		game.WithLogger(logger),
		game.WithAuthority(auth),
		game.WithBus(events),
	)
}
