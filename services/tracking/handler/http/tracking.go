package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/ranger"
	"github.com/twigalabs/rangertrack/internal/utils"
	"github.com/twigalabs/rangertrack/services/tracking"
)

// TrackingHandler handles HTTP requests for fleet tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

// Login validates upstream credentials and issues a session token
func (h *TrackingHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "username and password are required")
	}

	token, expiresAt, err := h.trackingUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ranger.ErrUnauthorized) {
			return utils.UnauthorizedResponse(c, "invalid credentials")
		}
		logger.Error("Login against upstream failed", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "upstream authentication unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", map[string]interface{}{
		"token":      token,
		"expires_at": expiresAt,
	})
}

// ListUnits returns the active fleet, optionally filtered by provider
func (h *TrackingHandler) ListUnits(c echo.Context) error {
	units, err := h.trackingUC.ListUnits(c.Request().Context(), c.QueryParam("provider"))
	if err != nil {
		logger.Error("Failed to list units", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to fetch fleet")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Units retrieved", map[string]interface{}{
		"count": len(units),
		"units": units,
	})
}

// GetUnitHealth returns the health summary for one unit
func (h *TrackingHandler) GetUnitHealth(c echo.Context) error {
	sourceID := c.Param("id")
	if sourceID == "" {
		return utils.BadRequestResponse(c, "unit id is required")
	}

	health, err := h.trackingUC.GetUnitHealth(c.Request().Context(), sourceID)
	if err != nil {
		if errors.Is(err, tracking.ErrUnitNotFound) {
			return utils.NotFoundResponse(c, "unit not found")
		}
		logger.Error("Failed to get unit health",
			logger.String("source_id", sourceID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to compute unit health")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Unit health retrieved", health)
}

// GetUnitTrack returns the assembled polyline for one unit over a window
func (h *TrackingHandler) GetUnitTrack(c echo.Context) error {
	sourceID := c.Param("id")
	if sourceID == "" {
		return utils.BadRequestResponse(c, "unit id is required")
	}

	since, until, err := parseWindow(c, 30)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	track, err := h.trackingUC.GetUnitTrack(c.Request().Context(), sourceID, since, until)
	if err != nil {
		if errors.Is(err, tracking.ErrNoLocation) {
			return utils.NotFoundResponse(c, "not enough fixes to form a track")
		}
		logger.Error("Failed to assemble unit track",
			logger.String("source_id", sourceID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to assemble track")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Track retrieved", track)
}

// GetLatestLocations returns the last known location of every unit
func (h *TrackingHandler) GetLatestLocations(c echo.Context) error {
	locations, err := h.trackingUC.GetLatestLocations(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get latest locations", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to read locations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Latest locations retrieved", map[string]interface{}{
		"count":     len(locations),
		"locations": locations,
	})
}

// GetNearbyUnits returns units within a radius of a point
func (h *TrackingHandler) GetNearbyUnits(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required and must be a number")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lon is required and must be a number")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm < 0 {
			return utils.BadRequestResponse(c, "radius must be a non-negative number")
		}
	}

	units, err := h.trackingUC.GetNearbyUnits(c.Request().Context(), lat, lon, radiusKm)
	if err != nil {
		logger.Error("Failed to query nearby units", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to query nearby units")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby units retrieved", map[string]interface{}{
		"count": len(units),
		"units": units,
	})
}

// RefreshFleet triggers a full fleet refresh pass
func (h *TrackingHandler) RefreshFleet(c echo.Context) error {
	summary, err := h.trackingUC.RefreshFleet(c.Request().Context(), c.QueryParam("provider"))
	if err != nil {
		logger.Error("Fleet refresh failed", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "fleet refresh failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fleet refreshed", summary)
}

// GetPatrols returns patrols in a window with their reconstructed tracks
func (h *TrackingHandler) GetPatrols(c echo.Context) error {
	since, until, err := parseWindow(c, 30)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	patrols, err := h.trackingUC.GetPatrols(c.Request().Context(), since, until, c.QueryParam("status"))
	if err != nil {
		logger.Error("Failed to fetch patrols", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to fetch patrols")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Patrols retrieved", map[string]interface{}{
		"count":   len(patrols),
		"patrols": patrols,
	})
}

// parseWindow reads the since/until query params, defaulting to the last
// defaultDays days ending now
func parseWindow(c echo.Context, defaultDays int) (time.Time, time.Time, error) {
	until := time.Now()
	since := until.AddDate(0, 0, -defaultDays)

	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("since must be an RFC3339 timestamp")
		}
		since = parsed
	}
	if raw := c.QueryParam("until"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("until must be an RFC3339 timestamp")
		}
		until = parsed
	}
	if until.Before(since) {
		return time.Time{}, time.Time{}, errors.New("until must not be before since")
	}
	return since, until, nil
}
