package handler

import (
	"strconv"

	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pageFromQuery reads the offset/limit window from query parameters.
// Missing or malformed values fall back to zero; the usecase layer clamps.
func pageFromQuery(c echo.Context) usecase.PageInput {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.PageInput{Offset: offset, Limit: limit}
}

// idFromPath parses the named path parameter as a UUID.
func idFromPath(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " parameter")
	}

	return id, nil
}

// nearbyFromQuery reads a center-plus-radius query. Latitude and longitude
// are required; the radius is optional and clamped by the usecase layer.
func nearbyFromQuery(c echo.Context) (usecase.NearbyInput, error) {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return usecase.NearbyInput{}, domainerrors.ErrValidationFailed.WrapMessage("lat must be a number in -90..90")
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return usecase.NearbyInput{}, domainerrors.ErrValidationFailed.WrapMessage("lon must be a number in -180..180")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radiusKm"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm < 0 {
			return usecase.NearbyInput{}, domainerrors.ErrValidationFailed.WrapMessage("radiusKm must be a non-negative number")
		}
	}

	return usecase.NearbyInput{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radiusKm,
		Page:      pageFromQuery(c),
	}, nil
}
