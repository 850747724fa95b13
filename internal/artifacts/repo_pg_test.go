package artifacts

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoListByProfileJoinsNames(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "profile_id", "job_ad_id", "template", "format", "filename", "storage_key",
		"size_bytes", "is_generated", "sort_order", "upload_date", "name", "job_title",
	}).
		AddRow("f1", "p1", "j1", "classic", "pdf", "a.pdf", "resumes/f1.pdf", int64(100), true, 0, now, "Jane Doe", "SRE").
		AddRow("f2", "p1", nil, "modern", "pdf", "b.pdf", "resumes/f2.pdf", int64(200), true, 1, now, "Jane Doe", nil)

	mock.ExpectQuery("SELECT (.+) FROM artifacts a").
		WithArgs("p1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	items, err := repo.ListByProfile(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ListByProfile returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].JobAdTitle == nil || *items[0].JobAdTitle != "SRE" {
		t.Errorf("first jobAdTitle = %v", items[0].JobAdTitle)
	}
	if items[1].JobAdTitle != nil {
		t.Errorf("second jobAdTitle = %v, want nil", *items[1].JobAdTitle)
	}
	if items[1].JobAdID != "" {
		t.Errorf("second jobAdId = %q, want empty", items[1].JobAdID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPGRepoRenameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE artifacts SET filename = $1 WHERE id = $2`)).
		WithArgs("x.pdf", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Rename(context.Background(), "ghost", "x.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoCreateNullableJobAd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO artifacts").
		WithArgs("f1", "p1", nil, "classic", "pdf", "a.pdf", "resumes/f1.pdf", int64(9), true, 0, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Create(context.Background(), Artifact{
		ID:          "f1",
		ProfileID:   "p1",
		Template:    "classic",
		Format:      "pdf",
		Filename:    "a.pdf",
		StorageKey:  "resumes/f1.pdf",
		SizeBytes:   9,
		IsGenerated: true,
		UploadDate:  now,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
