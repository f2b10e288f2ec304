package models

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WebSocketClient represents a connected live-feed client
type WebSocketClient struct {
	Username string
	Conn     *websocket.Conn
}

// WebSocketClaims are the JWT claims carried by a session token
type WebSocketClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// WSMessage is the envelope for live-feed messages
type WSMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}
