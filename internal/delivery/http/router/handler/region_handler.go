package handler

import (
	"log/slog"
	"net/http"

	"leyenda/internal/delivery/http/response"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegionHandler holds dependencies for region catalog handlers.
type RegionHandler struct {
	uc      usecase.RegionUsecase
	storyUC usecase.StoryUsecase
	logger  *slog.Logger
}

// NewRegionHandler is the constructor for RegionHandler, injected by Fx.
func NewRegionHandler(uc usecase.RegionUsecase, storyUC usecase.StoryUsecase, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{uc: uc, storyUC: storyUC, logger: logger}
}

type regionRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64    `json:"longitude" validate:"min=-180,max=180"`
	LegendID    *uuid.UUID `json:"legendId"`
}

func (r regionRequest) toInput() usecase.RegionInput {
	return usecase.RegionInput{
		Name:        r.Name,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		LegendID:    r.LegendID,
	}
}

// Create handles the admin region creation request.
func (h *RegionHandler) Create(c echo.Context) error {
	var req regionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	region, err := h.uc.CreateRegion(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, region, "Region created")
}

// Get returns a single region by id.
func (h *RegionHandler) Get(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	region, err := h.uc.GetRegion(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, region, "")
}

// List returns a page of regions. With a name query it becomes a search.
func (h *RegionHandler) List(c echo.Context) error {
	if name := c.QueryParam("name"); name != "" {
		regions, err := h.uc.SearchRegions(c.Request().Context(), name, pageFromQuery(c))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, regions, "")
	}

	regions, err := h.uc.ListRegions(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "")
}

// Nearby returns regions within a radius of a coordinate, closest first.
func (h *RegionHandler) Nearby(c echo.Context) error {
	input, err := nearbyFromQuery(c)
	if err != nil {
		return err
	}

	regions, err := h.uc.NearbyRegions(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "")
}

// MythStories returns the myth stories attached to a region.
func (h *RegionHandler) MythStories(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	stories, err := h.storyUC.MythStoriesByRegion(c.Request().Context(), id, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// Update handles the admin region update request.
func (h *RegionHandler) Update(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	var req regionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	region, err := h.uc.UpdateRegion(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, region, "Region updated")
}

// Delete handles the admin region deletion request.
func (h *RegionHandler) Delete(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRegion(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Region deleted")
}
