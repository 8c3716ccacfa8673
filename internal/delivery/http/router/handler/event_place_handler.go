package handler

import (
	"log/slog"
	"net/http"

	"leyenda/internal/delivery/http/response"
	"leyenda/internal/domain/entity"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventPlaceHandler holds dependencies for event place catalog handlers.
type EventPlaceHandler struct {
	uc     usecase.EventPlaceUsecase
	logger *slog.Logger
}

// NewEventPlaceHandler is the constructor for EventPlaceHandler, injected by Fx.
func NewEventPlaceHandler(uc usecase.EventPlaceUsecase, logger *slog.Logger) *EventPlaceHandler {
	return &EventPlaceHandler{uc: uc, logger: logger}
}

type eventPlaceRequest struct {
	Name         string     `json:"name" validate:"required,max=150"`
	Description  string     `json:"description" validate:"required,min=10"`
	Latitude     float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64    `json:"longitude" validate:"min=-180,max=180"`
	Type         string     `json:"type" validate:"required,oneof=festival ruta evento atractivo"`
	RegionID     uuid.UUID  `json:"regionId" validate:"required"`
	LegendID     uuid.UUID  `json:"legendId" validate:"required"`
	HotelID      *uuid.UUID `json:"hotelId"`
	RestaurantID *uuid.UUID `json:"restaurantId"`
}

func (r eventPlaceRequest) toInput() usecase.EventPlaceInput {
	return usecase.EventPlaceInput{
		Name:         r.Name,
		Description:  r.Description,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Type:         entity.EventPlaceType(r.Type),
		RegionID:     r.RegionID,
		LegendID:     r.LegendID,
		HotelID:      r.HotelID,
		RestaurantID: r.RestaurantID,
	}
}

// Create handles the admin event place creation request.
func (h *EventPlaceHandler) Create(c echo.Context) error {
	var req eventPlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event place input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	place, err := h.uc.CreateEventPlace(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, place, "Event place created")
}

// Get returns a single event place by id.
func (h *EventPlaceHandler) Get(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	place, err := h.uc.GetEventPlace(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, place, "")
}

// List returns a page of event places. With a type query it filters by kind.
func (h *EventPlaceHandler) List(c echo.Context) error {
	if placeType := c.QueryParam("type"); placeType != "" {
		places, err := h.uc.EventPlacesByType(c.Request().Context(), entity.EventPlaceType(placeType), pageFromQuery(c))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, places, "")
	}

	places, err := h.uc.ListEventPlaces(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, places, "")
}

// Nearby returns event places within a radius of a coordinate, closest first.
func (h *EventPlaceHandler) Nearby(c echo.Context) error {
	input, err := nearbyFromQuery(c)
	if err != nil {
		return err
	}

	places, err := h.uc.NearbyEventPlaces(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, places, "")
}

// ByRegion returns the event places anchored to a region.
func (h *EventPlaceHandler) ByRegion(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	places, err := h.uc.EventPlacesByRegion(c.Request().Context(), id, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, places, "")
}

// Update handles the admin event place update request.
func (h *EventPlaceHandler) Update(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	var req eventPlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event place input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	place, err := h.uc.UpdateEventPlace(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, place, "Event place updated")
}

// Delete handles the admin event place deletion request.
func (h *EventPlaceHandler) Delete(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEventPlace(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event place deleted")
}
