package api

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/service/pubsub"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

type WebSocketHandlerTestSuite struct {
	suite.Suite
	handler *WebSocketHandler
}

func (s *WebSocketHandlerTestSuite) SetupTest() {
	// No subscriptions are registered, so the pub/sub never reaches Redis.
	s.handler = NewWebSocketHandler(logger.NewNop(), pubsub.NewRedisPubSub(nil, logger.NewNop()))
}

func TestWebSocketHandler(t *testing.T) {
	suite.Run(t, new(WebSocketHandlerTestSuite))
}

func (s *WebSocketHandlerTestSuite) addClient(tenantID string, buffer int) *Client {
	client := &Client{tenantID: tenantID, send: make(chan []byte, buffer)}
	s.handler.clients[client] = true
	s.handler.tenantClients[tenantID]++
	return client
}

func (s *WebSocketHandlerTestSuite) TestBroadcastEvictsSlowClient() {
	// Arrange
	fast := s.addClient("tenant1", 1)
	slow := s.addClient("tenant1", 0) // full immediately

	// Act
	s.handler.handlePubSubMessage(&dto.SubmissionEvent{ID: "sub1", TenantID: "tenant1"})

	// Assert
	s.True(s.handler.clients[fast])
	s.Len(fast.send, 1)
	s.NotContains(s.handler.clients, slow)
	s.Equal(1, s.handler.tenantClients["tenant1"])
}

func (s *WebSocketHandlerTestSuite) TestBroadcastSkipsOtherTenants() {
	// Arrange
	other := s.addClient("tenant2", 0)

	// Act
	s.handler.handlePubSubMessage(&dto.SubmissionEvent{ID: "sub1", TenantID: "tenant1"})

	// Assert
	s.True(s.handler.clients[other])
	s.Equal(1, s.handler.tenantClients["tenant2"])
}

func (s *WebSocketHandlerTestSuite) TestEvictingLastClientDropsTenant() {
	// Arrange
	s.addClient("tenant1", 0)

	// Act
	s.handler.handlePubSubMessage(&dto.SubmissionEvent{ID: "sub1", TenantID: "tenant1"})

	// Assert
	s.Empty(s.handler.clients)
	s.NotContains(s.handler.tenantClients, "tenant1")
}

// Each tenant subscription delivers on its own goroutine, so two tenants'
// broadcasts can evict concurrently. Run under -race.
func (s *WebSocketHandlerTestSuite) TestConcurrentBroadcastsEvictSafely() {
	// Arrange
	s.addClient("tenant1", 0)
	s.addClient("tenant2", 0)

	// Act
	var wg sync.WaitGroup
	for _, tenantID := range []string{"tenant1", "tenant2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			s.handler.handlePubSubMessage(&dto.SubmissionEvent{ID: "sub1", TenantID: id})
		}(tenantID)
	}
	wg.Wait()

	// Assert
	s.Empty(s.handler.clients)
	s.Empty(s.handler.tenantClients)
}
