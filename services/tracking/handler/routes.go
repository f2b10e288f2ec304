package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/twigalabs/rangertrack/internal/pkg/middleware"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	natspkg "github.com/twigalabs/rangertrack/internal/pkg/nats"
	"github.com/twigalabs/rangertrack/services/tracking"
	httpHandler "github.com/twigalabs/rangertrack/services/tracking/handler/http"
)

// Handler combines the HTTP, WebSocket and NATS handlers of the tracking
// service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingWS   *WebSocketHandler
	trackingNATS *NATSHandler
	cfg          *models.Config
}

// NewHandler creates the combined handler
func NewHandler(trackingUC tracking.TrackingUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		trackingWS:   NewWebSocketHandler(cfg, natsClient),
		trackingNATS: NewNATSHandler(trackingUC, natsClient),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/login", h.trackingHTTP.Login)

	// The live feed authenticates its own token (browser clients cannot set
	// headers on WebSocket dials)
	e.GET("/ws/live", h.trackingWS.HandleLive)

	api := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.GET("/units", h.trackingHTTP.ListUnits)
	api.GET("/units/:id/health", h.trackingHTTP.GetUnitHealth)
	api.GET("/units/:id/track", h.trackingHTTP.GetUnitTrack)
	api.GET("/locations/latest", h.trackingHTTP.GetLatestLocations)
	api.GET("/locations/nearby", h.trackingHTTP.GetNearbyUnits)
	api.POST("/fleet/refresh", h.trackingHTTP.RefreshFleet)
	api.GET("/patrols", h.trackingHTTP.GetPatrols)
}

// InitConsumers starts the NATS ingest consumer and the live-feed
// subscriptions
func (h *Handler) InitConsumers() error {
	if err := h.trackingNATS.InitConsumers(); err != nil {
		return err
	}
	return h.trackingWS.InitFeeds()
}

// Stop tears down consumers and live-feed clients
func (h *Handler) Stop() {
	h.trackingNATS.Stop()
	h.trackingWS.StopFeeds()
}
