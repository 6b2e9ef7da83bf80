package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/bondcalc/internal/domain/models"
)

// expectedHeaders enforces strict column ordering for par-curve files.
// If the header doesn't match EXACTLY (order + count), ingestion must fail.
var expectedHeaders = []string{
	"CurveDate",
	"Tenor",
	"ParYield",
	"Source",
}

// batchWriter persists one batch of curve points.
type batchWriter func(ctx context.Context, points []models.CurvePoint) error

// parseAndPersistFile opens, validates, parses, and persists one curve file in batches.
// It fails on:
//   - header not matching expected order/length
//   - a row whose CurveDate differs from fileDate
//   - duplicate or non-positive tenors
//   - unrecoverable I/O errors
//
// Returns the number of points written.
func parseAndPersistFile(ctx context.Context, path string, fileDate time.Time, write batchWriter, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.Comment = '#'

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	buf := make([]models.CurvePoint, 0, batch)
	seen := make(map[int]struct{})
	lineNumber := 1

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := write(ctx, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		p, err := recordToPoint(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if p.CurveDate.Format(dayLayout) != fileDate.Format(dayLayout) {
			return 0, fmt.Errorf("line %d: curve date %s does not match file date %s",
				lineNumber, p.CurveDate.Format(dayLayout), fileDate.Format(dayLayout))
		}
		if _, dup := seen[p.Tenor]; dup {
			return 0, fmt.Errorf("line %d: duplicate tenor %d", lineNumber, p.Tenor)
		}
		seen[p.Tenor] = struct{}{}

		buf = append(buf, p)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// recordToPoint converts one validated record into a models.CurvePoint.
//
//	0 CurveDate → CurveDate (DATE, "2006-01-02")
//	1 Tenor     → Tenor (years, > 0)
//	2 ParYield  → ParYield (decimal, comma or dot separator)
//	3 Source    → Source (free text, may be empty)
func recordToPoint(rec []string) (models.CurvePoint, error) {
	var p models.CurvePoint

	d, err := time.Parse(dayLayout, strings.TrimSpace(rec[0]))
	if err != nil {
		return p, fmt.Errorf("invalid CurveDate: %v", err)
	}
	p.CurveDate = d

	tenor, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return p, fmt.Errorf("invalid Tenor: %v", err)
	}
	if tenor <= 0 {
		return p, fmt.Errorf("invalid Tenor: must be positive, got %d", tenor)
	}
	p.Tenor = tenor

	s := strings.ReplaceAll(strings.TrimSpace(rec[2]), ",", ".")
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return p, fmt.Errorf("invalid ParYield: %v", err)
	}
	p.ParYield = y

	p.Source = strings.TrimSpace(rec[3])
	return p, nil
}
