package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captured struct {
	mu      sync.Mutex
	updates []transport.Update
}

func (c *captured) Submit(_ context.Context, u transport.Update) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, u)
}

func newTestServer(secret string) (*Server, *captured) {
	gin.SetMode(gin.TestMode)
	sink := &captured{}
	cfg := config.ServerConfig{Port: "0", ReadTimeout: time.Second, WriteTimeout: time.Second}
	return New(cfg, secret, sink, zap.NewNop()), sink
}

func post(s *Server, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, WebhookPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

const callbackUpdate = `{"update_id":5,"callback_query":{"id":"cb-9","chat_instance":"x",
	"from":{"id":31,"is_bot":false,"first_name":"Dilshod"},"data":"place_order"}}`

func TestWebhookSubmitsDecodedUpdate(t *testing.T) {
	s, sink := newTestServer("")

	rec := post(s, callbackUpdate, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, sink.updates, 1)
	assert.Equal(t, int64(31), sink.updates[0].ChatID)
	assert.Equal(t, transport.ButtonPress{CallbackID: "cb-9", Data: "place_order"}, sink.updates[0].Event)
}

func TestWebhookAcknowledgesGarbage(t *testing.T) {
	s, sink := newTestServer("")

	assert.Equal(t, http.StatusOK, post(s, "{not json", nil).Code)
	assert.Equal(t, http.StatusOK, post(s, `{"update_id":6,"channel_post":{"message_id":1,"date":0,"chat":{"id":-100,"type":"channel"}}}`, nil).Code)
	assert.Empty(t, sink.updates)
}

func TestWebhookSecret(t *testing.T) {
	s, sink := newTestServer("s3cret")

	assert.Equal(t, http.StatusUnauthorized, post(s, callbackUpdate, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, post(s, callbackUpdate, map[string]string{secretHeader: "wrong"}).Code)
	assert.Empty(t, sink.updates)

	assert.Equal(t, http.StatusOK, post(s, callbackUpdate, map[string]string{secretHeader: "s3cret"}).Code)
	assert.Len(t, sink.updates, 1)
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer("")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
