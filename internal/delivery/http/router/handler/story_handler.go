package handler

import (
	"log/slog"
	"net/http"

	"leyenda/internal/delivery/http/middleware"
	"leyenda/internal/delivery/http/response"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoryHandler holds dependencies for legend and myth story handlers.
type StoryHandler struct {
	uc       usecase.StoryUsecase
	regionUC usecase.RegionUsecase
	logger   *slog.Logger
}

// NewStoryHandler is the constructor for StoryHandler, injected by Fx.
func NewStoryHandler(uc usecase.StoryUsecase, regionUC usecase.RegionUsecase, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{uc: uc, regionUC: regionUC, logger: logger}
}

// --- Legends ---

type legendRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

func (r legendRequest) toInput() usecase.LegendInput {
	return usecase.LegendInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// CreateLegend handles the admin legend creation request.
func (h *StoryHandler) CreateLegend(c echo.Context) error {
	var req legendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid legend input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	legend, err := h.uc.CreateLegend(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, legend, "Legend created")
}

// GetLegend returns a single legend by id.
func (h *StoryHandler) GetLegend(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	legend, err := h.uc.GetLegend(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, legend, "")
}

// ListLegends returns a page of legends, or a name search when a name query
// is present.
func (h *StoryHandler) ListLegends(c echo.Context) error {
	if name := c.QueryParam("name"); name != "" {
		legends, err := h.uc.SearchLegends(c.Request().Context(), name, pageFromQuery(c))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, legends, "")
	}

	legends, err := h.uc.ListLegends(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, legends, "")
}

// LegendRegions returns the regions associated with a legend.
func (h *StoryHandler) LegendRegions(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	regions, err := h.regionUC.RegionsByLegend(c.Request().Context(), id, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "")
}

// UpdateLegend handles the admin legend update request.
func (h *StoryHandler) UpdateLegend(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	var req legendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid legend input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	legend, err := h.uc.UpdateLegend(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, legend, "Legend updated")
}

// DeleteLegend handles the admin legend deletion request.
func (h *StoryHandler) DeleteLegend(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteLegend(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Legend deleted")
}

// --- Myth stories ---

type mythStoryRequest struct {
	Title    string    `json:"title" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	ImageURL string    `json:"imageUrl" validate:"omitempty,url"`
	RegionID uuid.UUID `json:"regionId" validate:"required"`
}

// CreateMythStory handles an authenticated user's story submission. The
// contributor identity comes from the access token, never from the body.
func (h *StoryHandler) CreateMythStory(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	var req mythStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid myth story input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, err := h.uc.CreateMythStory(c.Request().Context(), usecase.MythStoryInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		RegionID: req.RegionID,
		UserID:   principal.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, story, "Myth story created")
}

// GetMythStory returns a single myth story by id.
func (h *StoryHandler) GetMythStory(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	story, err := h.uc.GetMythStory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, story, "")
}

// ListMythStories returns a page of myth stories.
func (h *StoryHandler) ListMythStories(c echo.Context) error {
	stories, err := h.uc.ListMythStories(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// MyMythStories returns the caller's own story submissions.
func (h *StoryHandler) MyMythStories(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	stories, err := h.uc.MythStoriesByUser(c.Request().Context(), principal.UserID, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// UpdateMythStory lets the author or an admin edit a story.
func (h *StoryHandler) UpdateMythStory(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	var req mythStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid myth story input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, err := h.uc.UpdateMythStory(c.Request().Context(), principal, id, usecase.MythStoryInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		RegionID: req.RegionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, story, "Myth story updated")
}

// DeleteMythStory lets the author or an admin remove a story.
func (h *StoryHandler) DeleteMythStory(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMythStory(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Myth story deleted")
}
