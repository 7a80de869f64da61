package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/palmveda/palm-backend/internal/ai"
	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/report"
)

// ----- Test DB -----

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Report{}, &domain.Profile{}, &domain.PendingSubmission{}, &domain.EmailOutbox{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// ----- Stub analyzer -----

type stubAnalyzer struct {
	calls int

	gotImage string
	gotRole  string
	gotDesc  string

	out string
	err error
}

func (s *stubAnalyzer) AnalyzePalm(ctx context.Context, imageDataURL, role, roleDescription string) (string, error) {
	s.calls++
	s.gotImage, s.gotRole, s.gotDesc = imageDataURL, role, roleDescription
	return s.out, s.err
}

// ----- Fixtures -----

const testImage = "data:image/png;base64,AAAA"

func fixtureJSON(t *testing.T, score int) string {
	t.Helper()
	line := report.LineReading{Observation: "long and clear", Interpretation: "favors the role"}
	r := report.AnalysisReport{
		CompatibilityScore: score,
		Verdict:            report.VerdictForScore(score),
		PalmLineAnalysis: report.PalmLines{
			HeartLine: line, HeadLine: line, LifeLine: line,
			FateLine: line, SunLine: line, MercuryLine: line,
		},
		PersonalityTraits:     []string{"driven"},
		Strengths:             []string{"focus"},
		Weaknesses:            []string{"impatience"},
		AstrologicalReasoning: "strong fate line",
		BehavioralAnalysis:    report.BehavioralAnalysis{OverallBehavior: "calm"},
		WorkplaceDynamics:     report.WorkplaceDynamics{TeamworkCapability: "strong"},
		CareerGrowth:          report.CareerGrowth{GrowthPotential: "high"},
		WorkCapabilities:      report.WorkCapabilities{ProductivityPeaks: "mornings"},
		JobChangeAnalysis:     report.JobChangeAnalysis{LikelihoodToChange: "low"},
	}
	b, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

// ----- Tests -----

func TestAnalyze_MissingInputs_NeverCallsUpstream(t *testing.T) {
	stub := &stubAnalyzer{}
	svc := &AnalysisService{DB: newServiceDB(t), AI: stub}

	cases := []struct{ image, role string }{
		{"", "CEO"},
		{testImage, ""},
		{"", ""},
		{"   ", "CEO"},
	}
	for _, c := range cases {
		if _, err := svc.Analyze(context.Background(), "", c.image, c.role); !errors.Is(err, ErrMissingInput) {
			t.Errorf("Analyze(%q, %q) err = %v, want ErrMissingInput", c.image, c.role, err)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("upstream called %d times for invalid input", stub.calls)
	}
}

func TestAnalyze_InvalidImage_NeverCallsUpstream(t *testing.T) {
	stub := &stubAnalyzer{}
	svc := &AnalysisService{DB: newServiceDB(t), AI: stub}

	if _, err := svc.Analyze(context.Background(), "", "not-a-data-url", "CEO"); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
	if stub.calls != 0 {
		t.Fatalf("upstream called for invalid image")
	}
}

func TestAnalyze_Success_PersistsAndReturnsShareID(t *testing.T) {
	db := newServiceDB(t)
	stub := &stubAnalyzer{out: "```json\n" + fixtureJSON(t, 82) + "\n```"}
	svc := &AnalysisService{DB: db, AI: stub, AppBaseURL: "https://app.example.com"}

	res, err := svc.Analyze(context.Background(), "u1", testImage, "CEO")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Report.CompatibilityScore != 82 || res.Report.Verdict != report.VerdictHighlySuitable {
		t.Fatalf("unexpected report: score=%d verdict=%q", res.Report.CompatibilityScore, res.Report.Verdict)
	}
	if res.ShareID == "" {
		t.Fatal("expected a share id")
	}
	if stub.gotRole != "CEO" || stub.gotDesc == "" {
		t.Fatalf("upstream args: role=%q desc=%q", stub.gotRole, stub.gotDesc)
	}

	var stored domain.Report
	if err := db.Where("share_id = ?", res.ShareID).First(&stored).Error; err != nil {
		t.Fatalf("stored report missing: %v", err)
	}
	if stored.SelectedRole != "CEO" || stored.CompatibilityScore != 82 || stored.Verdict != report.VerdictHighlySuitable {
		t.Fatalf("stored fields: %+v", stored)
	}
	if stored.UserID == nil || *stored.UserID != "u1" {
		t.Fatalf("owner: %v", stored.UserID)
	}
}

func TestAnalyze_AnonymousSuccess_NoOwnerNoEmail(t *testing.T) {
	db := newServiceDB(t)
	stub := &stubAnalyzer{out: fixtureJSON(t, 55)}
	svc := &AnalysisService{DB: db, AI: stub}

	res, err := svc.Analyze(context.Background(), "", testImage, "Doctor")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.ShareID == "" {
		t.Fatal("anonymous analyses still persist")
	}

	var outbox int64
	if err := db.Model(&domain.EmailOutbox{}).Count(&outbox).Error; err != nil {
		t.Fatalf("count outbox: %v", err)
	}
	if outbox != 0 {
		t.Fatalf("outbox rows = %d for anonymous analysis", outbox)
	}
}

func TestAnalyze_OwnerWithProfile_EnqueuesNotification(t *testing.T) {
	db := newServiceDB(t)
	db.Create(&domain.Profile{UserID: "u1", FullName: "Alex", Email: "alex@example.com"})

	stub := &stubAnalyzer{out: fixtureJSON(t, 90)}
	svc := &AnalysisService{DB: db, AI: stub, AppBaseURL: "https://app.example.com"}

	res, err := svc.Analyze(context.Background(), "u1", testImage, "CTO")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var entry domain.EmailOutbox
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("no outbox row: %v", err)
	}
	if entry.Recipient != "alex@example.com" || entry.ReportShareID != res.ShareID {
		t.Fatalf("outbox entry: %+v", entry)
	}
	if entry.ReportURL != "https://app.example.com/report/"+res.ShareID {
		t.Fatalf("report url: %q", entry.ReportURL)
	}
}

func TestAnalyze_UpstreamErrorsPropagate(t *testing.T) {
	for _, sentinel := range []error{ai.ErrRateLimited, ai.ErrQuotaExhausted, ai.ErrNotConfigured} {
		stub := &stubAnalyzer{err: sentinel}
		svc := &AnalysisService{DB: newServiceDB(t), AI: stub}

		if _, err := svc.Analyze(context.Background(), "", testImage, "CEO"); !errors.Is(err, sentinel) {
			t.Errorf("err = %v, want %v", err, sentinel)
		}
	}
}

func TestAnalyze_ProseOutput_ParseErrorWithRaw(t *testing.T) {
	raw := "The palm is blurry, I cannot help."
	stub := &stubAnalyzer{out: raw}
	svc := &AnalysisService{DB: newServiceDB(t), AI: stub}

	_, err := svc.Analyze(context.Background(), "", testImage, "CEO")
	var pe *report.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %T %v, want *report.ParseError", err, err)
	}
	if pe.Raw != raw {
		t.Fatalf("Raw = %q, want upstream text", pe.Raw)
	}
}

func TestAnalyze_SchemaViolation_Rejected(t *testing.T) {
	// Valid JSON, wrong shape: no palm lines.
	stub := &stubAnalyzer{out: `{"compatibilityScore": 50, "verdict": "Suitable"}`}
	svc := &AnalysisService{DB: newServiceDB(t), AI: stub}

	_, err := svc.Analyze(context.Background(), "", testImage, "CEO")
	var se *report.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %T %v, want *report.SchemaError", err, err)
	}
}

func TestAnalyze_StoreFailure_ResultStillReturned(t *testing.T) {
	// No tables: every insert fails.
	dsn := fmt.Sprintf("file:services_nostore_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	stub := &stubAnalyzer{out: fixtureJSON(t, 70)}
	svc := &AnalysisService{DB: db, AI: stub}

	res, err := svc.Analyze(context.Background(), "u1", testImage, "CEO")
	if err != nil {
		t.Fatalf("Analyze should swallow store errors, got %v", err)
	}
	if res.Report == nil || res.Report.CompatibilityScore != 70 {
		t.Fatalf("missing report: %+v", res)
	}
	if res.ShareID != "" {
		t.Fatalf("share id %q produced despite store failure", res.ShareID)
	}
}
