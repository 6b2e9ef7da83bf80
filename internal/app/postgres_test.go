package app

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/guttosm/bondcalc/config"
)

var testPostgres = config.Config{Postgres: config.PostgresConfig{User: "u", Password: "p", Host: "h", Port: 5432, DBName: "d", SSLMode: "disable"}}

func TestInitPostgres_OpenError(t *testing.T) {
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		return nil, errors.New("open failed")
	}
	t.Cleanup(func() { sqlOpener = old })

	if _, err := InitPostgres(testPostgres); err == nil {
		t.Fatalf("expected error from InitPostgres when open fails")
	}
}

func TestInitPostgres_PingError(t *testing.T) {
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		if err != nil {
			t.Fatalf("sqlmock new: %v", err)
		}
		mock.ExpectPing().WillReturnError(errors.New("ping failed"))
		mock.ExpectClose()
		return db, nil
	}
	t.Cleanup(func() { sqlOpener = old })

	if _, err := InitPostgres(testPostgres); err == nil {
		t.Fatalf("expected ping error from InitPostgres")
	}
}

func TestInitPostgres_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"built from parts", testPostgres, "postgres://u:p@h:5432/d?sslmode=disable"},
		{"explicit URL wins", config.Config{Postgres: config.PostgresConfig{URL: "postgres://x@y/z"}}, "postgres://x@y/z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			old := sqlOpener
			sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
				got = dataSourceName
				db, _, err := sqlmock.New()
				return db, err
			}
			t.Cleanup(func() { sqlOpener = old })

			db, err := InitPostgres(tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = db.Close()
			if got != tt.want {
				t.Fatalf("dsn = %q, want %q", got, tt.want)
			}
		})
	}
}
