package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dexterix/rosterd/internal/adapters/decode"
	"github.com/dexterix/rosterd/internal/domain/resolve"
	"github.com/dexterix/rosterd/internal/domain/roster"
	"github.com/dexterix/rosterd/pkg/logger"
	"github.com/dexterix/rosterd/pkg/metrics"
)

// ScoreReport summarizes one score reconciliation run.
type ScoreReport struct {
	Updated       int      `json:"updated"`
	Errors        []string `json:"errors"`
	Missing       []string `json:"missing"`
	ParseFailures int      `json:"parse_failures"`
}

// ReconcileScores runs the score job: decode rows, resolve each row's
// identifier against a snapshot index of the store, parse the score and
// issue at most one write per row.
//
// The index is built once at job start; concurrent external writes during a
// run are not observed. Unresolvable identifiers land in Missing, unparseable
// scores in ParseFailures, tolerated write failures in Errors (capped).
func (s *Service) ReconcileScores(ctx context.Context, data []byte, kind decode.Kind) (ScoreReport, error) {
	start := time.Now()

	rows, err := decode.Rows(data, kind)
	if err != nil {
		return ScoreReport{}, fmt.Errorf("decoding score sheet: %w", err)
	}
	metrics.RecordRowsDecoded(len(rows))

	teams, err := s.store.List(ctx)
	if err != nil {
		return ScoreReport{}, fmt.Errorf("snapshotting store: %w", err)
	}
	ix := resolve.NewIndex(teams, resolve.WithMinSuffixLen(s.minSuffixLen))
	for _, key := range ix.Collisions() {
		metrics.RecordIndexCollision()
		s.logger.Warn(ctx, "identifier index collision, first registrant wins",
			logger.String("key", key))
	}

	report := ScoreReport{Errors: []string{}, Missing: []string{}}
	norm := roster.NewNormalizer()
	for _, raw := range rows {
		row := norm.NormalizeRow(raw)
		id := row[roster.FieldTeamID]
		if id == "" {
			continue
		}

		team, ok := ix.Resolve(id)
		if !ok {
			report.Missing = append(report.Missing, id)
			metrics.RecordIdentifierMissing()
			continue
		}

		cell, present := row[roster.FieldScore]
		if !present {
			continue // resolved row without a score cell updates nothing
		}
		score, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			report.ParseFailures++
			metrics.RecordScoreParseFailure()
			s.logger.Debug(ctx, "unparseable score",
				logger.String("id", id), logger.String("value", cell))
			continue
		}

		team.Score = score
		if _, err := s.store.Replace(ctx, team); err != nil {
			metrics.RecordStoreWriteFailure()
			report.Errors = appendCapped(report.Errors,
				fmt.Sprintf("error updating %s: %v", id, err), s.errorListCap)
			s.logger.Error(ctx, "score write failed",
				logger.String("id", id), logger.Error(err))
			continue
		}
		report.Updated++
		metrics.RecordScoreUpdated()
	}

	metrics.RecordReconcileDuration(float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "score reconciliation finished",
		logger.Int("rows", len(rows)),
		logger.Int("updated", report.Updated),
		logger.Int("missing", len(report.Missing)),
		logger.Int("parseFailures", report.ParseFailures),
	)
	return report, nil
}
