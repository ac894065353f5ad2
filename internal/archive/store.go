// Package archive keeps a history of runs in a SQLite database: the totals
// of each run plus the records it folded.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vk/cubetally/internal/ctxlog"
	"github.com/vk/cubetally/internal/game"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by LoadRun for an unknown run ID.
var ErrNotFound = errors.New("run not found")

// Run is one archived invocation.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Inputs     []string
	Games      int
	ValidGames int
	Result     game.Result
	Records    []game.Record
}

// Store persists runs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func toInt64(name string, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%s %d does not fit in a SQLite integer", name, v)
	}
	return int64(v), nil
}

// Open opens the archive database at path, creating it and its schema when
// missing.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := createSchema(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Archive opened.", "path", path)
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveRun stores run and its records in one transaction and returns the run
// ID. A new ID and creation time are assigned when unset.
func (s *Store) SaveRun(ctx context.Context, run Run) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	sumOfValidIDs, err := toInt64("sum of valid ids", run.Result.SumOfValidIDs)
	if err != nil {
		return "", err
	}
	totalPower, err := toInt64("total power", run.Result.TotalPower)
	if err != nil {
		return "", err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO run (id, created_at, inputs, games, valid_games, sum_of_valid_ids, total_power)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		toMillis(run.CreatedAt),
		strings.Join(run.Inputs, "\n"),
		run.Games,
		run.ValidGames,
		sumOfValidIDs,
		totalPower,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO game_record (run_id, position, game_id, max_red, max_green, max_blue)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range run.Records {
		if _, err := stmt.ExecContext(ctx, run.ID, i, rec.ID, rec.MaxRed, rec.MaxGreen, rec.MaxBlue); err != nil {
			return "", fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit archive tx: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Run archived.", "run_id", run.ID, "records", len(run.Records))
	return run.ID, nil
}

// LoadRun reads back an archived run with its records in original order.
func (s *Store) LoadRun(ctx context.Context, id string) (Run, error) {
	if s == nil || s.sqlDB == nil {
		return Run{}, fmt.Errorf("storage is not configured")
	}

	var (
		run        Run
		createdAt  int64
		inputs     string
		sumOfValid int64
		totalPower int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, created_at, inputs, games, valid_games, sum_of_valid_ids, total_power
		 FROM run WHERE id = ?`, id,
	).Scan(&run.ID, &createdAt, &inputs, &run.Games, &run.ValidGames, &sumOfValid, &totalPower)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("select run: %w", err)
	}
	run.CreatedAt = fromMillis(createdAt)
	if inputs != "" {
		run.Inputs = strings.Split(inputs, "\n")
	}
	run.Result = game.Result{SumOfValidIDs: uint64(sumOfValid), TotalPower: uint64(totalPower)}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT game_id, max_red, max_green, max_blue
		 FROM game_record WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return Run{}, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec game.Record
		if err := rows.Scan(&rec.ID, &rec.MaxRed, &rec.MaxGreen, &rec.MaxBlue); err != nil {
			return Run{}, fmt.Errorf("scan record: %w", err)
		}
		run.Records = append(run.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("iterate records: %w", err)
	}
	return run, nil
}
