package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/data/aggregates"
	skilllogrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/skilllog"
	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/platform/dbctx"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

// SequenceBuilder persists a user skill's ordered step breakdown. Step
// numbers come from slice position, 1-based; a step with an empty
// intention and no details is accepted (content rules are the caller's).
type SequenceBuilder interface {
	Build(dbc dbctx.Context, userSkillID uuid.UUID, steps []StepInput) ([]*types.SkillSequence, error)
}

type sequenceBuilder struct {
	db           *gorm.DB
	log          *logger.Logger
	sequenceRepo skilllogrepos.SkillSequenceRepo
	detailRepo   skilllogrepos.SequenceDetailRepo
}

func NewSequenceBuilder(
	db *gorm.DB,
	baseLog *logger.Logger,
	sequenceRepo skilllogrepos.SkillSequenceRepo,
	detailRepo skilllogrepos.SequenceDetailRepo,
) SequenceBuilder {
	return &sequenceBuilder{
		db:           db,
		log:          baseLog.With("service", "SequenceBuilder"),
		sequenceRepo: sequenceRepo,
		detailRepo:   detailRepo,
	}
}

func (s *sequenceBuilder) Build(dbc dbctx.Context, userSkillID uuid.UUID, steps []StepInput) ([]*types.SkillSequence, error) {
	const op = "sequence.build"

	if userSkillID == uuid.Nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "user skill id is required", nil)
	}
	if len(steps) == 0 {
		return []*types.SkillSequence{}, nil
	}

	sequences := make([]*types.SkillSequence, 0, len(steps))
	var details []*types.SequenceDetail
	for i, step := range steps {
		seq := &types.SkillSequence{
			ID:          uuid.New(),
			UserSkillID: userSkillID,
			StepNumber:  i + 1,
			Intention:   step.Intention,
		}
		sequences = append(sequences, seq)
		for j, d := range step.Details {
			details = append(details, &types.SequenceDetail{
				ID:         uuid.New(),
				SequenceID: seq.ID,
				Position:   j + 1,
				Detail:     d,
			})
		}
	}

	created, err := s.sequenceRepo.Create(dbc.Ctx, dbc.Tx, sequences)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if _, err := s.detailRepo.Create(dbc.Ctx, dbc.Tx, details); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	for i, seq := range created {
		for _, d := range details {
			if d.SequenceID == seq.ID {
				created[i].Details = append(created[i].Details, d)
			}
		}
	}
	return created, nil
}
