package stats

import (
	"context"

	"github.com/verte-zerg/tuidle/internal/model"
)

// Source provides everything a report needs.
type Source interface {
	Backend
	ListGames(ctx context.Context, limit int) ([]model.GameRecord, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Aggregate Aggregate
	Games     []model.GameRecord
	Openers   []OpenerCount
}

// BuildReport loads and prepares data for stats rendering. A bad stats blob
// is reported as the zero aggregate, matching what the game would show.
func BuildReport(ctx context.Context, src Source, cfg model.StatsConfig) (Report, error) {
	agg, err := Read(ctx, src)
	if err != nil {
		agg = Zero()
	}
	games, err := src.ListGames(ctx, cfg.Last)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Aggregate: agg,
		Games:     games,
		Openers:   TopOpeners(games, 5),
	}, nil
}
