package gmo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSClient handles the private WebSocket connection to GMO Coin and message routing.
// The private WS endpoint requires an access token issued by POST /v1/ws-auth;
// the token is re-issued on every (re)connect.
type WSClient struct {
	url     string // private WS base URL, token gets appended
	rest    *RESTClient
	conn    *websocket.Conn
	handler func([]byte)
	logger  *zap.Logger
}

func NewWSClient(url string, rest *RESTClient, logger *zap.Logger) *WSClient {
	return &WSClient{
		url:    url,
		rest:   rest,
		logger: logger,
	}
}

// SetMessageHandler sets the function to handle incoming messages.
func (c *WSClient) SetMessageHandler(h func([]byte)) {
	c.handler = h
}

// Connect issues a WS access token, establishes the connection and subscribes
// to the executionEvents channel. It does not start the listener.
func (c *WSClient) Connect(ctx context.Context) error {
	token, err := c.rest.CreateWSToken(ctx)
	if err != nil {
		return fmt.Errorf("create ws token: %w", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(c.url+"/"+token, nil)
	if err != nil {
		c.logger.Error("Failed to connect to WebSocket", zap.String("url", c.url), zap.Error(err))
		return err
	}
	c.conn = conn
	c.logger.Info("WebSocket connected", zap.String("url", c.url))

	subMsg := map[string]interface{}{
		"command": "subscribe",
		"channel": "executionEvents",
	}

	if err := conn.WriteJSON(subMsg); err != nil {
		c.logger.Error("Failed to send subscription", zap.Error(err))
		return err
	}

	return nil
}

// Listen reads messages until the connection breaks, then reconnects with a
// fresh token and keeps going.
func (c *WSClient) Listen() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.logger.Error("WebSocket read error", zap.Error(err))

			// Retry reconnecting indefinitely
			for {
				time.Sleep(3 * time.Second)
				if err := c.reconnectAndResubscribe(); err != nil {
					c.logger.Warn("Retrying reconnect...")
					continue
				}
				c.logger.Info("Reconnected successfully")
				break
			}
			continue // Start listening again with the new connection
		}

		if c.handler != nil {
			c.handler(msg)
		}
	}
}

func (c *WSClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *WSClient) reconnectAndResubscribe() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := c.rest.CreateWSToken(ctx)
	if err != nil {
		return err
	}

	newConn, _, err := websocket.DefaultDialer.Dial(c.url+"/"+token, nil)
	if err != nil {
		return err
	}

	// Close the old connection if it exists
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn = newConn

	subMsg := map[string]interface{}{
		"command": "subscribe",
		"channel": "executionEvents",
	}

	if err := c.conn.WriteJSON(subMsg); err != nil {
		return fmt.Errorf("websocket subscribe failed: %w", err)
	}

	return nil
}

// CreateWSToken issues an access token for the private WebSocket API.
func (c *RESTClient) CreateWSToken(ctx context.Context) (string, error) {
	path := "/v1/ws-auth"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.privateURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	signRequest(req, c.apiKey, c.apiSecret, http.MethodPost, path, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gmo error: %s", body)
	}

	var rawResp Response
	if err := json.NewDecoder(resp.Body).Decode(&rawResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if rawResp.Status != 0 {
		return "", fmt.Errorf("gmo error: status=%d", rawResp.Status)
	}

	var token string
	if err := json.Unmarshal(rawResp.Data, &token); err != nil {
		return "", fmt.Errorf("decode result: %w", err)
	}
	return token, nil
}
