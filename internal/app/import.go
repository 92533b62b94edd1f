package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dexterix/rosterd/internal/adapters/decode"
	repository "github.com/dexterix/rosterd/internal/adapters/repository"
	"github.com/dexterix/rosterd/internal/domain/model"
	"github.com/dexterix/rosterd/internal/domain/roster"
	"github.com/dexterix/rosterd/pkg/logger"
	"github.com/dexterix/rosterd/pkg/metrics"
)

// ImportReport summarizes one roster import run.
type ImportReport struct {
	Created int          `json:"created"`
	Skipped int          `json:"skipped"`
	Errors  []string     `json:"errors,omitempty"`
	Teams   []model.Team `json:"teams"`
}

// ImportRoster runs the import job: decode rows, normalize headers, group
// into drafts, validate, gate against the store and persist new teams.
//
// Decode failures abort the whole job before any write. Per-draft store
// write failures are recorded in the report and processing continues.
// Re-importing the same file never mutates existing teams.
func (s *Service) ImportRoster(ctx context.Context, data []byte, kind decode.Kind) (ImportReport, error) {
	start := time.Now()

	rows, err := decode.Rows(data, kind)
	if err != nil {
		return ImportReport{}, fmt.Errorf("decoding roster: %w", err)
	}
	metrics.RecordRowsDecoded(len(rows))

	norm := roster.NewNormalizer()
	normalized := make([]roster.NormalizedRow, 0, len(rows))
	for _, raw := range rows {
		normalized = append(normalized, norm.NormalizeRow(raw))
	}
	drafts := roster.Group(normalized)

	report := ImportReport{Teams: []model.Team{}}
	for _, draft := range drafts {
		if !roster.Admit(draft) {
			metrics.RecordDraftRejected()
			s.logger.Debug(ctx, "draft rejected",
				logger.String("key", draft.TeamID),
				logger.String("name", draft.Name),
			)
			continue
		}

		created, err := s.gateAndCreate(ctx, draft)
		switch {
		case err != nil:
			metrics.RecordStoreWriteFailure()
			report.Errors = appendCapped(report.Errors,
				fmt.Sprintf("error creating team %s: %v", draft.TeamID, err), s.errorListCap)
			s.logger.Error(ctx, "team create failed",
				logger.String("key", draft.TeamID), logger.Error(err))
		case created:
			report.Created++
			report.Teams = append(report.Teams, *draft)
			metrics.RecordTeamCreated()
		default:
			report.Skipped++
			metrics.RecordTeamSkipped()
		}
	}

	metrics.UpdateTeamsTotal(s.store.Count(ctx))
	metrics.RecordImportDuration(float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "roster import finished",
		logger.Int("rows", len(rows)),
		logger.Int("created", report.Created),
		logger.Int("skipped", report.Skipped),
	)
	return report, nil
}

// gateAndCreate is the dedup gate. An explicit draft ID is the sole source
// of truth for existence: an ID match skips regardless of any other field.
// Only ID-less drafts fall back to the leader-email heuristic, and those
// get a generated ID before the create.
func (s *Service) gateAndCreate(ctx context.Context, draft *model.Team) (created bool, err error) {
	if draft.ID != "" {
		if _, err := s.store.Get(ctx, draft.ID); err == nil {
			return false, nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return false, err
		}
		// A registration-time team may carry the same code under teamId
		// with a different canonical ID; that still counts as an ID match.
		matches, err := s.store.QueryByField(ctx, repository.FieldTeamID, draft.ID)
		if err != nil {
			return false, err
		}
		if len(matches) > 0 {
			return false, nil
		}
	} else {
		matches, err := s.store.QueryByField(ctx, repository.FieldLeaderEmail, draft.LeaderEmail)
		if err != nil {
			return false, err
		}
		if len(matches) > 0 {
			return false, nil
		}
		draft.ID = uuid.NewString()
	}

	if _, err := s.store.Create(ctx, *draft); err != nil {
		return false, err
	}
	return true, nil
}
