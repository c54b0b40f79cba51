//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/tabletop/internal/config"
	"github.com/zeusync/tabletop/internal/core/game"
)

func InitializeGame(cfg *config.Config) *game.Game {
	wire.Build(TableSet)
	return nil
}
