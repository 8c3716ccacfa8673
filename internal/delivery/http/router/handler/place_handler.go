package handler

import (
	"log/slog"
	"net/http"

	"leyenda/internal/delivery/http/response"
	"leyenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceHandler holds dependencies for hotel and restaurant catalog handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{uc: uc, logger: logger}
}

type hotelRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Rating    int     `json:"rating" validate:"min=0,max=5"`
	Website   string  `json:"website"`
	Phone     string  `json:"phone"`
}

func (r hotelRequest) toInput() usecase.HotelInput {
	return usecase.HotelInput{
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Rating:    r.Rating,
		Website:   r.Website,
		Phone:     r.Phone,
	}
}

type restaurantRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Rating    int     `json:"rating" validate:"min=0,max=5"`
	Category  string  `json:"category"`
	Website   string  `json:"website"`
}

func (r restaurantRequest) toInput() usecase.RestaurantInput {
	return usecase.RestaurantInput{
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Rating:    r.Rating,
		Category:  r.Category,
		Website:   r.Website,
	}
}

// --- Hotels ---

// CreateHotel handles the admin hotel creation request.
func (h *PlaceHandler) CreateHotel(c echo.Context) error {
	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hotel input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hotel, err := h.uc.CreateHotel(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, hotel, "Hotel created")
}

// GetHotel returns a single hotel by id.
func (h *PlaceHandler) GetHotel(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	hotel, err := h.uc.GetHotel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hotel, "")
}

// ListHotels returns a page of hotels, or a name search when a name query
// is present.
func (h *PlaceHandler) ListHotels(c echo.Context) error {
	if name := c.QueryParam("name"); name != "" {
		hotels, err := h.uc.SearchHotels(c.Request().Context(), name, pageFromQuery(c))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, hotels, "")
	}

	hotels, err := h.uc.ListHotels(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hotels, "")
}

// NearbyHotels returns hotels within a radius of a coordinate, closest first.
func (h *PlaceHandler) NearbyHotels(c echo.Context) error {
	input, err := nearbyFromQuery(c)
	if err != nil {
		return err
	}

	hotels, err := h.uc.NearbyHotels(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hotels, "")
}

// UpdateHotel handles the admin hotel update request.
func (h *PlaceHandler) UpdateHotel(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hotel input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hotel, err := h.uc.UpdateHotel(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hotel, "Hotel updated")
}

// DeleteHotel handles the admin hotel deletion request.
func (h *PlaceHandler) DeleteHotel(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteHotel(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Hotel deleted")
}

// --- Restaurants ---

// CreateRestaurant handles the admin restaurant creation request.
func (h *PlaceHandler) CreateRestaurant(c echo.Context) error {
	var req restaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant, err := h.uc.CreateRestaurant(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant created")
}

// GetRestaurant returns a single restaurant by id.
func (h *PlaceHandler) GetRestaurant(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	restaurant, err := h.uc.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "")
}

// ListRestaurants returns a page of restaurants, or a name search when a
// name query is present.
func (h *PlaceHandler) ListRestaurants(c echo.Context) error {
	if name := c.QueryParam("name"); name != "" {
		restaurants, err := h.uc.SearchRestaurants(c.Request().Context(), name, pageFromQuery(c))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, restaurants, "")
	}

	restaurants, err := h.uc.ListRestaurants(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "")
}

// NearbyRestaurants returns restaurants within a radius of a coordinate,
// closest first.
func (h *PlaceHandler) NearbyRestaurants(c echo.Context) error {
	input, err := nearbyFromQuery(c)
	if err != nil {
		return err
	}

	restaurants, err := h.uc.NearbyRestaurants(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "")
}

// UpdateRestaurant handles the admin restaurant update request.
func (h *PlaceHandler) UpdateRestaurant(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	var req restaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant, err := h.uc.UpdateRestaurant(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated")
}

// DeleteRestaurant handles the admin restaurant deletion request.
func (h *PlaceHandler) DeleteRestaurant(c echo.Context) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRestaurant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant deleted")
}
