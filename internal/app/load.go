package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/cubetally/internal/ctxlog"
	"github.com/vk/cubetally/internal/game"
)

// loadFile folds every record of the file at path into a fresh tally. fn, when
// non-nil, also receives each record.
func (a *App) loadFile(ctx context.Context, path string, fn func(game.Record)) (game.Tally, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading input file...")

	var t game.Tally
	f, err := os.Open(path)
	if err != nil {
		return t, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	err = game.Scan(f, func(rec game.Record) {
		t.Add(rec)
		if fn != nil {
			fn(rec)
		}
	})
	if err != nil {
		return t, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	logger.Debug("Input file loaded.", "games", t.Games(), "valid_games", t.ValidGames())
	return t, nil
}
