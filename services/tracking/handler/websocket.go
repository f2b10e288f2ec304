package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/twigalabs/rangertrack/internal/pkg/constants"
	"github.com/twigalabs/rangertrack/internal/pkg/jwt"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/metrics"
	natspkg "github.com/twigalabs/rangertrack/internal/pkg/nats"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/internal/utils"
)

// WebSocketHandler pushes fleet events to connected live-feed clients
type WebSocketHandler struct {
	cfg        *models.Config
	natsClient *natspkg.Client
	upgrader   websocket.Upgrader

	mu        sync.RWMutex
	clients   map[*models.WebSocketClient]struct{}
	consumers []*natspkg.Consumer
}

// NewWebSocketHandler creates a new live-feed handler
func NewWebSocketHandler(cfg *models.Config, natsClient *natspkg.Client) *WebSocketHandler {
	return &WebSocketHandler{
		cfg:        cfg,
		natsClient: natsClient,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*models.WebSocketClient]struct{}),
	}
}

// InitFeeds subscribes to the fleet subjects that drive the live feed
func (h *WebSocketHandler) InitFeeds() error {
	feeds := map[string]string{
		constants.SubjectLocationUpdated: constants.EventLocationUpdate,
		constants.SubjectBatteryCritical: constants.EventBatteryCritical,
		constants.SubjectFleetRefreshed:  constants.EventFleetRefreshed,
	}

	for subject, event := range feeds {
		event := event
		consumer, err := natspkg.NewConsumerWithClient(h.natsClient, subject, "", func(msg []byte) error {
			h.broadcast(models.WSMessage{Event: event, Data: json.RawMessage(msg)})
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}
	return nil
}

// HandleLive upgrades an authenticated request to a live-feed connection.
// The token comes from the Authorization header or, for browser WebSocket
// clients that cannot set headers, the token query param.
func (h *WebSocketHandler) HandleLive(c echo.Context) error {
	username, err := h.authenticate(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "invalid or missing token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", logger.Err(err))
		return err
	}

	client := &models.WebSocketClient{Username: username, Conn: conn}
	h.register(client)
	defer h.unregister(client)

	logger.Info("Live feed client connected", logger.String("username", username))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Live feed client read error", logger.Err(err))
			}
			return nil
		}

		switch msg.Event {
		case constants.EventPing:
			h.send(client, models.WSMessage{Event: constants.EventPong})
		default:
			h.send(client, models.WSMessage{
				Event: constants.EventError,
				Data:  map[string]string{"code": constants.ErrorInvalidFormat},
			})
		}
	}
}

func (h *WebSocketHandler) authenticate(c echo.Context) (string, error) {
	token := c.QueryParam("token")
	if token == "" {
		header := c.Request().Header.Get("Authorization")
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if token == "" {
		return "", fmt.Errorf("no token provided")
	}

	claims, err := jwt.ValidateToken(token, h.cfg.JWT.Secret)
	if err != nil {
		return "", err
	}
	username, ok := (*claims)["username"].(string)
	if !ok || username == "" {
		return "", fmt.Errorf("token carries no username")
	}
	return username, nil
}

func (h *WebSocketHandler) register(client *models.WebSocketClient) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	metrics.WebSocketConnectionsGauge.WithLabelValues(natsServiceName).Inc()
}

func (h *WebSocketHandler) unregister(client *models.WebSocketClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		metrics.WebSocketConnectionsGauge.WithLabelValues(natsServiceName).Dec()
	}
	h.mu.Unlock()
	client.Conn.Close()
}

func (h *WebSocketHandler) send(client *models.WebSocketClient, msg models.WSMessage) {
	if err := client.Conn.WriteJSON(msg); err != nil {
		logger.Debug("Failed to write to live feed client",
			logger.String("username", client.Username),
			logger.Err(err))
	}
}

func (h *WebSocketHandler) broadcast(msg models.WSMessage) {
	h.mu.RLock()
	clients := make([]*models.WebSocketClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.send(client, msg)
	}
}

// StopFeeds unsubscribes the feed consumers and closes all clients
func (h *WebSocketHandler) StopFeeds() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil

	h.mu.Lock()
	for client := range h.clients {
		client.Conn.Close()
		delete(h.clients, client)
		metrics.WebSocketConnectionsGauge.WithLabelValues(natsServiceName).Dec()
	}
	h.mu.Unlock()
}
