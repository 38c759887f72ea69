package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuidle/internal/model"
	"github.com/verte-zerg/tuidle/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tuidle.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	s := Load(ctx, st)
	if err := s.RecordResult(true, 2); err != nil {
		t.Fatalf("record: %v", err)
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, target := range []string{"CRANE", "SLATE", "ALLOY"} {
		rec := model.GameRecord{
			ID:        target,
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			EndedAt:   base.Add(time.Duration(i)*time.Hour + time.Minute),
			Target:    target,
			Guesses:   []string{"ADIEU", target},
			Won:       true,
			Attempts:  2,
			Mode:      model.ModeRandom,
		}
		if err := st.RecordGame(rec); err != nil {
			t.Fatalf("record game: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.Aggregate.GamesWon != 1 || report.Aggregate.GuessDistribution[1] != 1 {
		t.Fatalf("unexpected aggregate: %+v", report.Aggregate)
	}
	if len(report.Games) != 2 || report.Games[0].Target != "ALLOY" {
		t.Fatalf("unexpected games: %+v", report.Games)
	}
	if len(report.Openers) != 1 || report.Openers[0].Word != "ADIEU" || report.Openers[0].Games != 2 {
		t.Fatalf("unexpected openers: %+v", report.Openers)
	}

	var buf bytes.Buffer
	if err := RenderReport(&buf, report, 40, base.Add(3*time.Hour)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Statistics", "Guess Distribution", "Favorite Openers", "ALLOY", "won in 2", "ago"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDistributionBars(t *testing.T) {
	agg := Zero().Record(true, 3).Record(true, 3).Record(true, 1)
	lines := DistributionBars(agg, 20)
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	// 20 columns minus "3 ", a space and one digit leaves 16 for the bar.
	if lines[2] != "3 "+strings.Repeat(barChar, 16)+" 2" {
		t.Fatalf("unexpected full bar: %q", lines[2])
	}
	if lines[0] != "1 "+strings.Repeat(barChar, 8)+strings.Repeat(" ", 8)+" 1" {
		t.Fatalf("unexpected half bar: %q", lines[0])
	}
	if !strings.HasPrefix(lines[5], "6 "+barChar+" ") || !strings.HasSuffix(lines[5], " 0") {
		t.Fatalf("unexpected empty bar: %q", lines[5])
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil, time.Now()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No games found.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestOutputWidthFallsBackForBuffers(t *testing.T) {
	if got := OutputWidth(&bytes.Buffer{}); got != terminalWidthBackup {
		t.Fatalf("expected %d, got %d", terminalWidthBackup, got)
	}
}
