package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/model"
	"github.com/ausawards/admin-api/internal/service"
)

// AwardHandler exposes the award admin endpoints. Every route is
// guarded by a dedicated permission at registration time; the nested
// model types carry the wire json tags directly.
type AwardHandler struct {
	Awards *service.AwardService
}

func NewAwardHandler(a *service.AwardService) *AwardHandler { return &AwardHandler{Awards: a} }

type createAwardRequest struct {
	ExternalID      string                      `json:"external_id"`
	Name            string                      `json:"name"`
	IndustryName    string                      `json:"industryName"`
	CommonRule      *string                     `json:"commonRule"`
	AlternateIDs    []model.AwardAlternateID    `json:"alternateIds"`
	OperativeDate   time.Time                   `json:"operativeDate"`
	ExpiredDate     *time.Time                  `json:"expiredDate"`
	Classifications []model.AwardClassification `json:"classifications"`
}

type updateExpiryDateRequest struct {
	ExpiredAt time.Time `json:"expiredAt"`
}

type updateClassificationStatusRequest struct {
	Active bool `json:"active"`
}

type updateClassificationNoteRequest struct {
	Note string `json:"note"`
}

type awardResponse struct {
	ID              string                      `json:"id"`
	ExternalID      string                      `json:"external_id"`
	Name            string                      `json:"name"`
	IndustryName    string                      `json:"industryName"`
	CommonRule      *string                     `json:"commonRule"`
	AlternateIDs    []model.AwardAlternateID    `json:"alternateIds"`
	OperativeDate   time.Time                   `json:"operativeDate"`
	ExpiredDate     *time.Time                  `json:"expiredDate"`
	Classifications []model.AwardClassification `json:"classifications"`
}

func toAwardResponse(a *model.Award) awardResponse {
	return awardResponse{
		ID:              a.ID,
		ExternalID:      a.ExternalID,
		Name:            a.Name,
		IndustryName:    a.IndustryName,
		CommonRule:      a.CommonRule,
		AlternateIDs:    a.AlternateIDs,
		OperativeDate:   a.OperativeDate,
		ExpiredDate:     a.ExpiredDate,
		Classifications: a.Classifications,
	}
}

// Create handles POST /awards.
func (h *AwardHandler) Create(c echo.Context) error {
	var req createAwardRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	award := &model.Award{
		ExternalID:      req.ExternalID,
		Name:            req.Name,
		IndustryName:    req.IndustryName,
		CommonRule:      req.CommonRule,
		AlternateIDs:    req.AlternateIDs,
		OperativeDate:   req.OperativeDate,
		ExpiredDate:     req.ExpiredDate,
		Classifications: req.Classifications,
	}
	if err := h.Awards.CreateAward(ctx, award); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// List handles GET /awards.
func (h *AwardHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	awards, err := h.Awards.ListAwards(ctx)
	if err != nil {
		return err
	}
	out := make([]awardResponse, 0, len(awards))
	for i := range awards {
		out = append(out, toAwardResponse(&awards[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /awards/:id.
func (h *AwardHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	award, err := h.Awards.GetAward(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAwardResponse(award))
}

// AddAlternateID handles POST /awards/:id/alternateIds.
func (h *AwardHandler) AddAlternateID(c echo.Context) error {
	var altID model.AwardAlternateID
	if err := c.Bind(&altID); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Awards.AddAlternateID(ctx, c.Param("id"), altID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// AddClassification handles POST /awards/:id/classifications.
func (h *AwardHandler) AddClassification(c echo.Context) error {
	var classification model.AwardClassification
	if err := c.Bind(&classification); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Awards.AddClassification(ctx, c.Param("id"), classification); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdateExpiryDate handles PUT /awards/:id/expired.
func (h *AwardHandler) UpdateExpiryDate(c echo.Context) error {
	var req updateExpiryDateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Awards.UpdateExpiredDate(ctx, c.Param("id"), &req.ExpiredAt); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// RemoveExpiryDate handles DELETE /awards/:id/expired.
func (h *AwardHandler) RemoveExpiryDate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Awards.UpdateExpiredDate(ctx, c.Param("id"), nil); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdateClassificationStatus handles PUT /awards/:id/classifications/:cid/active.
func (h *AwardHandler) UpdateClassificationStatus(c echo.Context) error {
	var req updateClassificationStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Awards.UpdateClassificationStatus(ctx, c.Param("id"), c.Param("cid"), req.Active); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdateClassificationNote handles PUT /awards/:id/classifications/:cid/note.
func (h *AwardHandler) UpdateClassificationNote(c echo.Context) error {
	var req updateClassificationNoteRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Awards.UpdateClassificationNote(ctx, c.Param("id"), c.Param("cid"), req.Note); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
