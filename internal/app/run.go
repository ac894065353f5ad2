package app

import (
	"context"
	"fmt"

	"github.com/vk/cubetally/internal/archive"
	"github.com/vk/cubetally/internal/ctxlog"
	"github.com/vk/cubetally/internal/fsutil"
	"github.com/vk/cubetally/internal/game"
	"github.com/vk/cubetally/internal/report"
)

// Run executes one pass over the configured input and prints the report.
// Any I/O failure aborts the run before anything is printed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	files, err := fsutil.ResolveInputs(a.config.InputPath, InputExtension)
	if err != nil {
		return fmt.Errorf("failed to resolve input: %w", err)
	}
	if len(files) == 0 {
		a.logger.Warn("No input files found.", "path", a.config.InputPath)
	}

	var collected []game.Record
	collect := a.config.Records || a.config.ArchivePath != ""
	if collect {
		collected = []game.Record{}
	}

	var total game.Tally
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		var fn func(game.Record)
		if collect {
			fn = func(rec game.Record) { collected = append(collected, rec) }
		}
		t, err := a.loadFile(ctxlog.With(ctx, "file", path), path, fn)
		if err != nil {
			return err
		}
		total.Merge(t)
	}
	a.logger.Info("Games processed.", "files", len(files), "games", total.Games(), "valid_games", total.ValidGames())

	if a.config.ArchivePath != "" {
		if err := a.archiveRun(ctx, files, &total, collected); err != nil {
			return err
		}
	}

	var records []game.Record
	if a.config.Records {
		records = collected
	}
	if err := report.Render(ctx, a.outW, a.config.Output, report.New(files, &total, records)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) archiveRun(ctx context.Context, files []string, total *game.Tally, records []game.Record) error {
	store, err := archive.Open(ctx, a.config.ArchivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(ctx, archive.Run{
		Inputs:     files,
		Games:      total.Games(),
		ValidGames: total.ValidGames(),
		Result:     total.Result(),
		Records:    records,
	})
	if err != nil {
		return fmt.Errorf("failed to archive run: %w", err)
	}
	a.logger.Info("Run archived.", "run_id", id, "archive", a.config.ArchivePath)
	return nil
}
