package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/bondcalc/internal/domain/models"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

func newMockRepo(t *testing.T) (*curveRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &curveRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestGetCurve_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		rows    *sqlmock.Rows
		wantLen int
	}{
		{
			name: "three tenors",
			rows: sqlmock.NewRows([]string{"curve_date", "tenor", "par_yield", "source"}).
				AddRow(day, 1, 0.015, "treasury").
				AddRow(day, 2, 0.0175, "treasury").
				AddRow(day, 3, 0.01875, "treasury"),
			wantLen: 3,
		},
		{
			name:    "unknown date",
			rows:    sqlmock.NewRows([]string{"curve_date", "tenor", "par_yield", "source"}),
			wantLen: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock.ExpectQuery(`SELECT curve_date, tenor, par_yield, source FROM curve_points WHERE curve_date = \$1 ORDER BY tenor`).
				WithArgs(day).
				WillReturnRows(tc.rows)

			out, err := repo.GetCurve(context.Background(), day)
			if err != nil {
				t.Fatalf("GetCurve: %v", err)
			}
			if len(out) != tc.wantLen {
				t.Fatalf("len=%d want %d", len(out), tc.wantLen)
			}
			if tc.wantLen > 0 && (out[0].Tenor != 1 || out[2].ParYield != 0.01875) {
				t.Fatalf("unexpected points: %+v", out)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestGetCurve_QueryError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`FROM curve_points`).WillReturnError(dummyErr{})
	if _, err := repo.GetCurve(context.Background(), time.Now()); err == nil {
		t.Fatalf("expected query error")
	}
}

func TestGetTenorSeries_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE tenor = \$1 AND curve_date BETWEEN \$2 AND \$3 ORDER BY curve_date`).
		WithArgs(5, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"curve_date", "tenor", "par_yield", "source"}).
			AddRow(start, 5, 0.031, "treasury").
			AddRow(end, 5, 0.033, "treasury"))

	out, err := repo.GetTenorSeries(context.Background(), 5, start, end)
	if err != nil {
		t.Fatalf("GetTenorSeries: %v", err)
	}
	if len(out) != 2 || out[1].ParYield != 0.033 {
		t.Fatalf("unexpected series: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetTenorSeries_ScanError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`FROM curve_points`).
		WillReturnRows(sqlmock.NewRows([]string{"curve_date", "tenor", "par_yield", "source"}).
			AddRow(time.Now(), "not-a-number", 0.03, "x"))

	if _, err := repo.GetTenorSeries(context.Background(), 5, time.Now(), time.Now()); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestListCurveDates_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT DISTINCT curve_date FROM curve_points`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"curve_date"}).AddRow(start).AddRow(end))

	dates, err := repo.ListCurveDates(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ListCurveDates: %v", err)
	}
	if len(dates) != 2 || !dates[1].Equal(end) {
		t.Fatalf("unexpected dates: %v", dates)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIngestionLog_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()
	ctx := context.Background()

	d := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE file_date = $1)")).
		WithArgs(d).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := repo.HasIngestionForDate(ctx, d)
	if err != nil || !ok {
		t.Fatalf("HasIngestionForDate: ok=%v err=%v", ok, err)
	}

	mock.ExpectExec(`INSERT INTO ingestion_log \(file_date, filename, row_count\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(file_date\)`).
		WithArgs(d, "2024-05-10_PARCURVE.csv", 10).WillReturnResult(sqlmock.NewResult(1, 1))
	if err := repo.UpsertIngestionLog(ctx, d, "2024-05-10_PARCURVE.csv", 10); err != nil {
		t.Fatalf("UpsertIngestionLog: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM curve_points WHERE curve_date = $1")).
		WithArgs(d).WillReturnResult(sqlmock.NewResult(0, 3))
	if err := repo.DeleteCurveByDate(ctx, d); err != nil {
		t.Fatalf("DeleteCurveByDate: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasIngestionForDate_Error(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`FROM ingestion_log`).WillReturnError(dummyErr{})
	ok, err := repo.HasIngestionForDate(context.Background(), time.Now())
	if err == nil || ok {
		t.Fatalf("want false,err got ok=%v err=%v", ok, err)
	}
}

func TestNewCurveRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if NewCurveRepository(db) == nil {
		t.Fatalf("expected non-nil repository")
	}
}

func samplePoints() []models.CurvePoint {
	d := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	return []models.CurvePoint{
		{CurveDate: d, Tenor: 1, ParYield: 0.015, Source: "treasury"},
	}
}

func TestInsertCurveBatch_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnResult(sqlmock.NewResult(0, 0))
	// pq.CopyIn is driver specific; sqlmock only sees the prepared COPY statement.
	prep := mock.ExpectPrepare(`COPY "curve_points"`)
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.InsertCurveBatch(context.Background(), samplePoints()); err != nil {
		t.Fatalf("InsertCurveBatch: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertCurveBatch_ErrorOnBegin(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin().WillReturnError(dummyErr{})
	if err := repo.InsertCurveBatch(context.Background(), samplePoints()); err == nil {
		t.Fatalf("expected error on begin")
	}
}

func TestInsertCurveBatch_ErrorOnRowExec(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnError(dummyErr{})
	mock.ExpectRollback()

	if err := repo.InsertCurveBatch(context.Background(), samplePoints()); err == nil {
		t.Fatalf("expected error on row exec")
	}
}

func TestInsertCurveBatch_ErrorOnFinalExec(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(".*").WillReturnError(dummyErr{})
	mock.ExpectRollback()

	if err := repo.InsertCurveBatch(context.Background(), samplePoints()); err == nil {
		t.Fatalf("expected error on final exec")
	}
}

func TestRecordCalculation_SQLMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCalculationRepository(db)

	calc := models.NewCalculation(models.KindYTM, map[string]float64{"coupon_rate": 0.08}, 0.0775, 20)
	mock.ExpectExec(`INSERT INTO calculations`).
		WithArgs(calc.ID, models.KindYTM, string(calc.Input), 0.0775, 20, calc.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.RecordCalculation(context.Background(), calc); err != nil {
		t.Fatalf("RecordCalculation: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordCalculation_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCalculationRepository(db)

	mock.ExpectExec(`INSERT INTO calculations`).WillReturnError(dummyErr{})
	if err := repo.RecordCalculation(context.Background(), models.NewCalculation(models.KindPrice, nil, 95.18, 0)); err == nil {
		t.Fatalf("expected insert error")
	}
}
