package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/repository"
	dbbuilder "github.com/godilite/survey-dashboard/pkg/database"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func setupRealDB(tb testing.TB) *repository.SurveyStatsRepository {
	tb.Helper()

	db, err := dbbuilder.New(
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	if err != nil {
		tb.Fatalf("failed to create db pool via builder: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	repo := repository.NewSurveyStatsRepository(db)
	ctx := context.Background()
	if err := repo.Migrate(ctx); err != nil {
		tb.Fatalf("failed to migrate db: %v", err)
	}
	if err := repo.Seed(ctx, dataset.Builtin()); err != nil {
		tb.Fatalf("failed to seed db: %v", err)
	}
	return repo
}

func TestStatsServiceAgainstSQLite(t *testing.T) {
	svc := NewStatsService(setupRealDB(t), dataset.Builtin(), zap.NewNop())
	ctx := context.Background()

	nps, err := svc.GetNetPromoter(ctx)
	if err != nil {
		t.Fatalf("GetNetPromoter: %v", err)
	}
	// The pie chart segments are derived from the same answers.
	for _, seg := range dataset.Builtin().Segments() {
		var got int
		switch seg.Name {
		case "Promotores (9-10)":
			got = nps.Promoters
		case "Neutros (7-8)":
			got = nps.Passives
		case "Detractores (1-6)":
			got = nps.Detractors
		}
		if got != seg.Count {
			t.Errorf("segment %q: got %d, want %d", seg.Name, got, seg.Count)
		}
	}

	table, err := svc.GetCrossTab(ctx, dataset.Scale10QuestionID)
	if err != nil {
		t.Fatalf("GetCrossTab: %v", err)
	}
	if len(table.Rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(table.Rows))
	}
	// The area chart buckets match the 1-10 answers.
	for _, b := range dataset.Builtin().Distribution() {
		var score int
		if _, err := fmt.Sscanf(b.Grade, "Nota %d", &score); err != nil {
			continue
		}
		row := table.Rows[score-1]
		if row.G1 != b.G1 || row.G2 != b.G2 {
			t.Errorf("bucket %q: got %d/%d, want %d/%d", b.Grade, row.G1, row.G2, b.G1, b.G2)
		}
	}
}

func BenchmarkGetQuestionMeans(b *testing.B) {
	logger := zap.NewNop()
	repo := setupRealDB(b)

	svc := NewStatsService(repo, dataset.Builtin(), logger)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = svc.GetQuestionMeans(context.Background())
	}
}
