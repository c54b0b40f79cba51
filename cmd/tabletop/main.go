package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zeusync/tabletop/internal/config"
	"github.com/zeusync/tabletop/internal/core/game"
	"github.com/zeusync/tabletop/internal/core/observability/log"
	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
	"github.com/zeusync/tabletop/internal/games/rps"
	"github.com/zeusync/tabletop/internal/injector"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a JSON or YAML config file")
		restorePath = flag.String("restore", "", "resume from a snapshot file")
		savePath    = flag.String("save", "", "write a snapshot after the moves")
		moves       = flag.String("moves", "", "comma separated moves, e.g. 1:rock,2:paper")
		viewer      = flag.Int("player", int(player.Master), "render the table for this player")
	)
	flag.Parse()

	if err := run(*configPath, *restorePath, *savePath, *moves, player.ID(*viewer)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath, restorePath, savePath, moves string, viewer player.ID) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	g := injector.InitializeGame(cfg)
	logger := g.Logger()
	match := game.NewMatch(g, rps.Rules{})
	if err := match.Start(); err != nil {
		return err
	}

	if restorePath != "" {
		if err := restore(g, restorePath); err != nil {
			return fmt.Errorf("restore %s: %w", restorePath, err)
		}
		logger.Info("snapshot restored", log.String("path", restorePath))
	}

	plays, err := parseMoves(moves)
	if err != nil {
		return err
	}
	for _, p := range plays {
		if err = match.Play(p.Player, p.Move); err != nil {
			return err
		}
	}

	for _, id := range []player.ID{rps.PlayerOne, rps.PlayerTwo} {
		score, err := rps.Score(g, id)
		if err != nil {
			return err
		}
		logger.Info("score", log.Int("player", int(id)), log.Int64("wins", score))
	}

	if savePath != "" {
		if err = save(g, savePath, cfg.Format()); err != nil {
			return fmt.Errorf("save %s: %w", savePath, err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(match.Render(viewer))
}

func parseMoves(s string) ([]game.MovePlayed, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []game.MovePlayed
	for _, item := range strings.Split(s, ",") {
		id, hand, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("move %q is not player:hand", item)
		}
		pid, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", item, err)
		}
		h, err := rps.ParseHand(hand)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", item, err)
		}
		out = append(out, game.MovePlayed{Player: player.ID(pid), Move: h})
	}
	return out, nil
}

func restore(g *game.Game, path string) error {
	format, err := record.FormatFromPath(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return g.Restore(format, b)
}

// save writes the snapshot in the format of the file extension, falling back
// to the configured format.
func save(g *game.Game, path string, fallback record.Format) error {
	format, err := record.FormatFromPath(path)
	if err != nil {
		format = fallback
	}
	b, err := g.Snapshot(format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
