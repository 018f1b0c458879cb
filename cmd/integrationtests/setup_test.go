package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"dkp-auctioneer/internal/audit"
	auction "dkp-auctioneer/internal/auctionService"
	"dkp-auctioneer/internal/auth"
	"dkp-auctioneer/internal/ledger"
	"dkp-auctioneer/internal/registry"
	"dkp-auctioneer/internal/scheduler"
	"dkp-auctioneer/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const adminActor = "admin-1"

// TestEnv bundles a fully wired stack backed by a throwaway data dir
type TestEnv struct {
	Router  *gin.Engine
	Service *auction.AuctionService
	Timers  *scheduler.Scheduler
}

// SetupTestEnv wires the real ledger, audit log, registry, and scheduler
// against a temp directory, the same way the server binary does.
func SetupTestEnv(t *testing.T, rules registry.Rules) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	ledgerStore, err := ledger.NewFileStore(dataDir)
	require.NoError(t, err)
	auditLog, err := audit.NewFileLog(dataDir, nil)
	require.NoError(t, err)

	reg := registry.New(rules, nil)

	var service *auction.AuctionService
	timers := scheduler.New(func(auctionID int) { service.HandleExpiry(auctionID) }, nil)
	t.Cleanup(timers.Stop)

	service, err = auction.NewAuctionService(auction.Deps{
		Ledger:   ledgerStore,
		Audit:    auditLog,
		Registry: reg,
		Timers:   timers,
	})
	require.NoError(t, err)

	router := server.SetupRouter(service, auth.NewStatic([]string{adminActor}), 10)
	return &TestEnv{Router: router, Service: service, Timers: timers}
}

// ExecuteRequest executes an HTTP request as the given actor and parses
// the JSON envelope.
func ExecuteRequest(t *testing.T, env *TestEnv, method, url, actor string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reqBody = raw
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set("X-Actor-ID", actor)
	}
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// dataObject extracts the data payload as an object
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", resp["data"])
	return data
}

// dataArray extracts the data payload as an array
func dataArray(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "expected data array, got %v", resp["data"])
	return data
}

// longAuctionRules keeps deadlines far away so tests control closing
func longAuctionRules() registry.Rules {
	return registry.Rules{
		MinIncrement:   100,
		BidCooldown:    0,
		SnipeThreshold: 5 * time.Minute,
		SnipeExtension: 5 * time.Minute,
	}
}
