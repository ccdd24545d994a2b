package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/data/aggregates"
	skilllogrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/skilllog"
	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/domain/skilllog"
	"github.com/grapplelog/grapplelog-backend/internal/platform/dbctx"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

// LogSkillResult carries the ids external collaborators need: the resolved
// canonical skill and the freshly created log entry (with its sequences).
type LogSkillResult struct {
	Skill     *types.Skill     `json:"skill"`
	UserSkill *types.UserSkill `json:"user_skill"`
}

// SkillLogger is the single entry point for logging a technique. LogSkill
// runs resolve-category → resolve-skill → insert user skill → build
// sequence inside its own transaction; LogSkillIn runs the same unit
// inside a transaction the caller already holds, so a larger write (a
// competition entry plus the skills used in it) stays one atomic unit.
type SkillLogger interface {
	LogSkill(ctx context.Context, userID uuid.UUID, ref SkillRef, input UserSkillInput) (*LogSkillResult, error)
	LogSkillIn(dbc dbctx.Context, userID uuid.UUID, ref SkillRef, input UserSkillInput) (*LogSkillResult, error)

	ListEntries(ctx context.Context, userID uuid.UUID) ([]*types.UserSkill, error)
}

type skillLogger struct {
	db               *gorm.DB
	log              *logger.Logger
	runner           aggregates.TxRunner
	categoryResolver CategoryResolver
	skillResolver    SkillResolver
	sequenceBuilder  SequenceBuilder
	userSkillRepo    skilllogrepos.UserSkillRepo
}

func NewSkillLogger(
	db *gorm.DB,
	baseLog *logger.Logger,
	runner aggregates.TxRunner,
	categoryResolver CategoryResolver,
	skillResolver SkillResolver,
	sequenceBuilder SequenceBuilder,
	userSkillRepo skilllogrepos.UserSkillRepo,
) SkillLogger {
	return &skillLogger{
		db:               db,
		log:              baseLog.With("service", "SkillLogger"),
		runner:           runner,
		categoryResolver: categoryResolver,
		skillResolver:    skillResolver,
		sequenceBuilder:  sequenceBuilder,
		userSkillRepo:    userSkillRepo,
	}
}

func (s *skillLogger) LogSkill(ctx context.Context, userID uuid.UUID, ref SkillRef, input UserSkillInput) (*LogSkillResult, error) {
	if err := validateLogInput(userID, ref, input); err != nil {
		return nil, err
	}
	var result *LogSkillResult
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		var txErr error
		result, txErr = s.logSkill(dbc, userID, ref, input)
		return txErr
	})
	if err != nil {
		return nil, aggregates.MapError("skilllog.log", err)
	}
	return result, nil
}

func (s *skillLogger) LogSkillIn(dbc dbctx.Context, userID uuid.UUID, ref SkillRef, input UserSkillInput) (*LogSkillResult, error) {
	if err := validateLogInput(userID, ref, input); err != nil {
		return nil, err
	}
	result, err := s.logSkill(dbc, userID, ref, input)
	if err != nil {
		return nil, aggregates.MapError("skilllog.log", err)
	}
	return result, nil
}

// logSkill is the transactional body. Every step runs on the same
// transaction handle; any failure bubbles out and rolls back the unit, so
// no category, skill, user-skill or sequence row survives a partial write.
func (s *skillLogger) logSkill(dbc dbctx.Context, userID uuid.UUID, ref SkillRef, input UserSkillInput) (*LogSkillResult, error) {
	category, err := s.categoryResolver.Resolve(dbc, ref.Category, userID)
	if err != nil {
		return nil, err
	}

	skill, err := s.skillResolver.Resolve(dbc, ref.Name, category.ID, userID)
	if err != nil {
		return nil, err
	}

	userSkill := &types.UserSkill{
		ID:         uuid.New(),
		UserID:     userID,
		SkillID:    skill.ID,
		Note:       input.Note,
		VideoURL:   input.VideoURL,
		Source:     normalizeSource(input.Source),
		IsFavorite: input.IsFavorite,
	}
	if _, err := s.userSkillRepo.Create(dbc.Ctx, dbc.Tx, userSkill); err != nil {
		return nil, err
	}

	sequences, err := s.sequenceBuilder.Build(dbc, userSkill.ID, input.Steps)
	if err != nil {
		return nil, err
	}
	userSkill.Sequences = sequences

	s.log.Info("logged skill",
		"user_id", userID,
		"skill_id", skill.ID,
		"category_id", category.ID,
		"steps", len(sequences),
	)
	return &LogSkillResult{Skill: skill, UserSkill: userSkill}, nil
}

func (s *skillLogger) ListEntries(ctx context.Context, userID uuid.UUID) ([]*types.UserSkill, error) {
	if userID == uuid.Nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, "skilllog.list", "user id is required", nil)
	}
	out, err := s.userSkillRepo.GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, aggregates.MapError("skilllog.list", err)
	}
	return out, nil
}

// validateLogInput rejects malformed input before any write happens.
func validateLogInput(userID uuid.UUID, ref SkillRef, input UserSkillInput) error {
	const op = "skilllog.validate"
	if userID == uuid.Nil {
		return domainagg.NewError(domainagg.CodeValidation, op, "user id is required", nil)
	}
	if strings.TrimSpace(ref.Name) == "" {
		return domainagg.NewError(domainagg.CodeValidation, op, "skill name is required", nil)
	}
	if !ref.Category.Valid() {
		return domainagg.NewError(domainagg.CodeValidation, op, "category reference needs an id or a name", nil)
	}
	if input.Source != "" && !skilllog.ValidSource(input.Source) {
		return domainagg.NewError(domainagg.CodeValidation, op, "source must be TRAINING, COMPETITION or INDEPENDENT", nil)
	}
	return nil
}

func normalizeSource(source string) string {
	if source == "" {
		return skilllog.SourceTraining
	}
	return source
}
