package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
	"github.com/grapplelog/grapplelog-backend/internal/requestdata"
	"github.com/grapplelog/grapplelog-backend/internal/services"
)

type SkillLogHandler struct {
	log         *logger.Logger
	skillLogger services.SkillLogger
}

func NewSkillLogHandler(log *logger.Logger, skillLogger services.SkillLogger) *SkillLogHandler {
	return &SkillLogHandler{
		log:         log.With("handler", "SkillLogHandler"),
		skillLogger: skillLogger,
	}
}

type logSkillStep struct {
	Intention string   `json:"intention"`
	Details   []string `json:"details"`
}

type logSkillRequest struct {
	SkillName    string         `json:"skill_name" binding:"required"`
	CategoryID   *uuid.UUID     `json:"category_id"`
	CategoryName string         `json:"category_name"`
	Note         string         `json:"note"`
	VideoURL     string         `json:"video_url"`
	Source       string         `json:"source"`
	IsFavorite   bool           `json:"is_favorite"`
	Steps        []logSkillStep `json:"steps"`
}

func (h *SkillLogHandler) LogSkill(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req logSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	var categoryRef services.CategoryRef
	if req.CategoryID != nil {
		categoryRef = services.CategoryByID(*req.CategoryID)
	} else {
		categoryRef = services.CategoryByName(req.CategoryName)
	}

	steps := make([]services.StepInput, 0, len(req.Steps))
	for _, s := range req.Steps {
		steps = append(steps, services.StepInput{Intention: s.Intention, Details: s.Details})
	}

	result, err := h.skillLogger.LogSkill(
		c.Request.Context(),
		rd.UserID,
		services.SkillRef{Name: req.SkillName, Category: categoryRef},
		services.UserSkillInput{
			Note:       req.Note,
			VideoURL:   req.VideoURL,
			Source:     req.Source,
			IsFavorite: req.IsFavorite,
			Steps:      steps,
		},
	)
	if err != nil {
		h.log.Error("LogSkill failed", "error", err, "user_id", rd.UserID)
		RespondCoreError(c, err)
		return
	}
	RespondOK(c, result)
}

func (h *SkillLogHandler) ListEntries(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	entries, err := h.skillLogger.ListEntries(c.Request.Context(), rd.UserID)
	if err != nil {
		h.log.Error("ListEntries failed", "error", err, "user_id", rd.UserID)
		RespondCoreError(c, err)
		return
	}
	RespondOK(c, gin.H{"entries": entries})
}
