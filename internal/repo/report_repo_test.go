package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/palmveda/palm-backend/internal/domain"
)

// newTestDB opens a fresh in-memory database and migrates the given models.
// The DSN is unique per call to avoid cross-test contamination.
func newTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestNewShareID_LengthAndCharset(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewShareID()
		if len(id) != shareIDLen {
			t.Fatalf("len(%q) = %d, want %d", id, len(id), shareIDLen)
		}
		for _, r := range id {
			if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				t.Fatalf("share id %q contains non-base62 rune %q", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate share id %q within 100 draws", id)
		}
		seen[id] = true
	}
}

func TestCreateReport_PersistsAndAssignsShareID(t *testing.T) {
	db := newTestDB(t, &domain.Report{})
	owner := "u1"

	start := time.Now().UTC().Add(-time.Minute)
	r, err := CreateReport(context.Background(), db, &owner, "CEO", 82, "Highly Suitable", `{"compatibilityScore":82}`)
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if r.ID == "" || r.ShareID == "" {
		t.Fatalf("missing identifiers: %+v", r)
	}
	if r.UserID == nil || *r.UserID != "u1" {
		t.Fatalf("owner not set: %+v", r.UserID)
	}
	if r.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt %v before test start", r.CreatedAt)
	}
}

func TestCreateReport_AnonymousOwner(t *testing.T) {
	db := newTestDB(t, &domain.Report{})

	r, err := CreateReport(context.Background(), db, nil, "Doctor", 40, "Moderately Suitable", "{}")
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if r.UserID != nil {
		t.Fatalf("expected nil owner, got %v", *r.UserID)
	}
}

func TestCreateReport_NoTable(t *testing.T) {
	db := newTestDB(t)
	if _, err := CreateReport(context.Background(), db, nil, "CEO", 1, "Not Recommended", "{}"); err == nil {
		t.Fatal("expected error without table")
	}
}

func TestGetReportByShareID_RoundTripIsByteStable(t *testing.T) {
	db := newTestDB(t, &domain.Report{})
	analysis := `{"compatibilityScore":82,"verdict":"Highly Suitable"}`

	created, err := CreateReport(context.Background(), db, nil, "CEO", 82, "Highly Suitable", analysis)
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}

	first, err := GetReportByShareID(context.Background(), db, created.ShareID)
	if err != nil {
		t.Fatalf("GetReportByShareID: %v", err)
	}
	second, err := GetReportByShareID(context.Background(), db, created.ShareID)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if first.Analysis != analysis || second.Analysis != analysis {
		t.Fatalf("stored analysis mutated: %q / %q", first.Analysis, second.Analysis)
	}
	if first.Verdict != second.Verdict || first.CompatibilityScore != second.CompatibilityScore {
		t.Fatalf("re-fetch differs: %+v vs %+v", first, second)
	}
}

func TestGetReportByShareID_NotFound(t *testing.T) {
	db := newTestDB(t, &domain.Report{})
	if _, err := GetReportByShareID(context.Background(), db, "nope"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListReportsPage_OrderAndScoping(t *testing.T) {
	db := newTestDB(t, &domain.Report{})
	ctx := context.Background()
	u1, u2 := "u1", "u2"

	for i := 0; i < 3; i++ {
		if _, err := CreateReport(ctx, db, &u1, fmt.Sprintf("Role%d", i), 50, "Moderately Suitable", "{}"); err != nil {
			t.Fatalf("seed u1: %v", err)
		}
		time.Sleep(2 * time.Millisecond) // distinct created_at for ordering
	}
	if _, err := CreateReport(ctx, db, &u2, "Other", 10, "Not Recommended", "{}"); err != nil {
		t.Fatalf("seed u2: %v", err)
	}

	total, err := CountReports(ctx, db, u1)
	if err != nil || total != 3 {
		t.Fatalf("CountReports = %d, %v; want 3", total, err)
	}

	page, err := ListReportsPage(ctx, db, u1, 0, 2)
	if err != nil {
		t.Fatalf("ListReportsPage: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page len = %d, want 2", len(page))
	}
	if page[0].CreatedAt.Before(page[1].CreatedAt) {
		t.Fatalf("expected newest first: %v then %v", page[0].CreatedAt, page[1].CreatedAt)
	}
	for _, r := range page {
		if r.UserID == nil || *r.UserID != u1 {
			t.Fatalf("foreign report leaked into listing: %+v", r)
		}
	}
}

func TestReportsStats(t *testing.T) {
	db := newTestDB(t, &domain.Report{})
	ctx := context.Background()
	u := "u1"

	count, maxTS, err := ReportsStats(ctx, db, u)
	if err != nil || count != 0 || maxTS != nil {
		t.Fatalf("empty stats = (%d, %v, %v)", count, maxTS, err)
	}

	if _, err := CreateReport(ctx, db, &u, "CEO", 80, "Highly Suitable", "{}"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	count, maxTS, err = ReportsStats(ctx, db, u)
	if err != nil {
		t.Fatalf("ReportsStats: %v", err)
	}
	if count != 1 || maxTS == nil || maxTS.IsZero() {
		t.Fatalf("stats = (%d, %v)", count, maxTS)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(fmt.Errorf("UNIQUE constraint failed: palm_reports.share_id")) {
		t.Error("sqlite unique text not detected")
	}
	if !isUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Error("gorm.ErrDuplicatedKey not detected")
	}
	if isUniqueViolation(fmt.Errorf("connection reset")) {
		t.Error("unrelated error misclassified")
	}
}
