package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/bondcalc/internal/domain/models"
	"github.com/guttosm/bondcalc/internal/logger"
	"github.com/guttosm/bondcalc/internal/storage"
)

const (
	fileSuffix       = "_PARCURVE.csv"
	defaultBatchSize = 5000
	maxParallelFiles = 7
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.CurveRepository {
	return storage.NewCurveRepository(db)
}

// now is the clock used to pick the business days to ingest.
var now = time.Now

// Options controls one ProcessDirectory run.
type Options struct {
	Dir      string
	Days     int  // business days to ingest, counting back from today
	Parallel int  // 0 means min(7, NumCPU)
	Force    bool // re-ingest days already present in ingestion_log

	BatchSize      int
	MaxAttempts    int
	BackoffInitial time.Duration
	Calendar       Calendar
}

// FileName returns the expected curve file name for a business day.
func FileName(d time.Time) string {
	return d.Format(dayLayout) + fileSuffix
}

// ProcessDirectory ingests one par-curve file per business day.
//
// Behavior:
//   - Expects exactly one file per business day named "YYYY-MM-DD_PARCURVE.csv".
//   - Fails before touching the database if any expected file is missing.
//   - Skips days already recorded in ingestion_log unless Force is set.
//   - Writes each batch with bounded exponential backoff.
//   - If any file returns error, cancels the rest and returns that error.
func ProcessDirectory(ctx context.Context, db *sql.DB, opts Options) error {
	repo := repoCtor(db)
	log := logger.With("ingestion")

	nDays := opts.Days
	if nDays < 1 {
		nDays = 1
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	dates := opts.Calendar.LastNBusinessDays(nDays, now())

	var files []string
	var missing []string

	for _, d := range dates {
		name := FileName(d)
		full := filepath.Join(opts.Dir, name)
		files = append(files, full)

		if _, err := os.Stat(full); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, name)
			} else {
				return fmt.Errorf("stat failed for %s: %w", full, err)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required files: %s", strings.Join(missing, ", "))
	}

	maxParallel := maxParallelFiles
	if opts.Parallel > 0 {
		if opts.Parallel < maxParallel {
			maxParallel = opts.Parallel
		}
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	log.Info().Int("files", len(files)).Str("dir", opts.Dir).Int("max_parallel", maxParallel).Msg("ingestion start")

	write := func(ctx context.Context, points []models.CurvePoint) error {
		return withRetry(ctx, opts.MaxAttempts, opts.BackoffInitial, func() error {
			return repo.InsertCurveBatch(ctx, points)
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		idx := i
		f := file

		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(f)
			flog := log.With().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Logger()
			flog.Info().Msg("file start")

			d, err := time.Parse(dayLayout, strings.TrimSuffix(base, fileSuffix))
			if err != nil {
				flog.Error().Err(err).Msg("invalid date in filename")
				return fmt.Errorf("file %s: parse date from filename: %w", f, err)
			}

			exists, err := repo.HasIngestionForDate(gctx, d)
			if err != nil {
				flog.Error().Err(err).Msg("check ingestion log failed")
				return fmt.Errorf("file %s: check ingestion log: %w", f, err)
			}
			if exists && !opts.Force {
				flog.Info().Bool("skipped", true).Msg("already ingested")
				return nil
			}

			// Clears both forced re-runs and leftovers of a run that failed mid-file.
			if err := repo.DeleteCurveByDate(gctx, d); err != nil {
				flog.Error().Err(err).Msg("delete existing failed")
				return fmt.Errorf("file %s: delete existing: %w", f, err)
			}

			total, err := parseAndPersistFile(gctx, f, d, write, batch)
			if err != nil {
				flog.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertIngestionLog(gctx, d, base, total); err != nil {
				flog.Error().Err(err).Msg("update ingestion log failed")
				return fmt.Errorf("file %s: upsert ingestion log: %w", f, err)
			}
			flog.Info().Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", opts.Force).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}

// withRetry runs op up to maxAttempts times with exponential backoff starting
// at initial. It stops early when ctx is done.
func withRetry(ctx context.Context, maxAttempts int, initial time.Duration, op func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxAttempts-1)), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err != nil && attempt < maxAttempts {
			logger.With("ingestion").Warn().Err(err).Int("attempt", attempt).Int("max_attempts", maxAttempts).Msg("batch write failed, retrying")
		}
		return err
	}, policy)
}
