package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"teammate-chat/contract"
	"teammate-chat/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMonitoringServer_Serves_Registry_Stats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	registry.EXPECT().Stats().Return(contract.RegistryStats{Topics: 2, Subscriptions: 5})

	server := NewMonitoringServer(slog.Default(), registry)
	recorder := httptest.NewRecorder()

	// When the endpoint is hit
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/monitoring", nil))

	// Then the snapshot reflects the registry
	req.Equal(http.StatusOK, recorder.Code)
	req.Equal("application/json", recorder.Header().Get("Content-Type"))
	var snapshot Snapshot
	req.NoError(json.NewDecoder(recorder.Body).Decode(&snapshot))
	req.Equal(2, snapshot.Topics)
	req.Equal(5, snapshot.Subscriptions)
	req.Positive(snapshot.Goroutines)
}
