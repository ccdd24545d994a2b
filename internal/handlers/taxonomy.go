package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grapplelog/grapplelog-backend/internal/platform/dbctx"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
	"github.com/grapplelog/grapplelog-backend/internal/requestdata"
	"github.com/grapplelog/grapplelog-backend/internal/services"
)

type TaxonomyHandler struct {
	log              *logger.Logger
	categoryResolver services.CategoryResolver
	skillResolver    services.SkillResolver
}

func NewTaxonomyHandler(log *logger.Logger, categoryResolver services.CategoryResolver, skillResolver services.SkillResolver) *TaxonomyHandler {
	return &TaxonomyHandler{
		log:              log.With("handler", "TaxonomyHandler"),
		categoryResolver: categoryResolver,
		skillResolver:    skillResolver,
	}
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	categories, err := h.categoryResolver.ListVisible(dbctx.Context{Ctx: c.Request.Context()}, rd.UserID)
	if err != nil {
		h.log.Error("ListCategories failed", "error", err, "user_id", rd.UserID)
		RespondCoreError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func (h *TaxonomyHandler) ListCategorySkills(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	skills, err := h.skillResolver.ListVisible(dbctx.Context{Ctx: c.Request.Context()}, categoryID, rd.UserID)
	if err != nil {
		h.log.Error("ListCategorySkills failed", "error", err, "category_id", categoryID)
		RespondCoreError(c, err)
		return
	}
	RespondOK(c, gin.H{"skills": skills})
}
