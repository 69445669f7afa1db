package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	auction "waste-auction/internal/auctionService"
	"waste-auction/internal/repository"
	"waste-auction/internal/server"
	handler "waste-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// stepClock is a mutable clock shared by every service under test, so a test
// can move the auction window forward without sleeping.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock(start time.Time) *stepClock {
	return &stepClock{now: start.UTC()}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SetupTestRouter wires the full stack over the in-memory ledger and returns
// the router together with the clock that drives it.
func SetupTestRouter() (*gin.Engine, *stepClock) {
	gin.SetMode(gin.TestMode)

	clk := newStepClock(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))
	ledger := repository.NewMemoryLedger()
	sink := auction.LogSink{}

	lifecycle := auction.NewLifecycleService(ledger, sink, clk)
	bids := auction.NewBidService(ledger, sink, clk)
	winners := auction.NewWinnerService(ledger, sink, clk)
	gatePass := auction.NewGatePassService(ledger, auction.NoopBlobStore{}, clk)
	sweeper := auction.NewSweeper(ledger, sink, clk, time.Minute)

	auctionHandler := handler.NewAuctionHandler(lifecycle, bids, winners, gatePass, sweeper)
	return server.SetupRouter(auctionHandler, nil), clk
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope, returning its data payload.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody, headers)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if data, ok := resp["data"].(map[string]any); ok && w.Code < 400 {
			return data, w
		}
	}
	return resp, w
}
