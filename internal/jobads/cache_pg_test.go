package jobads

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGCacheGetHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT result FROM jobad_parse_cache WHERE cache_key = $1`)).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"result"}).AddRow([]byte(`{"jobTitle":"X"}`)))

	cache := &PGCache{DB: db}
	raw, ok, err := cache.Get(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok {
		t.Fatal("Get returned miss, want hit")
	}
	if string(raw) != `{"jobTitle":"X"}` {
		t.Errorf("raw = %s", raw)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPGCacheGetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT result FROM jobad_parse_cache WHERE cache_key = $1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"result"}))

	cache := &PGCache{DB: db}
	_, ok, err := cache.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatal("Get returned hit, want miss")
	}
}

func TestPGCachePut(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO jobad_parse_cache`)).
		WithArgs("abc123", []byte(`{"jobTitle":"X"}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	cache := &PGCache{DB: db}
	if err := cache.Put(context.Background(), "abc123", []byte(`{"jobTitle":"X"}`)); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
