package gmo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(handler http.Handler) (*RESTClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewRESTClient(server.URL, server.URL, "test-key", "test-secret", 5*time.Second)
	return client, server
}

// go test -v --run TestGetLatestExecutions
func TestGetLatestExecutions(t *testing.T) {
	var gotPath, gotQuery string
	var gotHeaders http.Header

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHeaders = r.Header.Clone()
		w.Write([]byte(`{
			"status": 0,
			"data": {
				"pagination": {"currentPage": 1, "count": 30},
				"list": [
					{"executionId": 72123, "orderId": 123456789, "symbol": "BTC", "side": "BUY",
					 "settleType": "OPEN", "size": "0.7361", "price": "877404", "lossGain": "0",
					 "fee": "323", "timestamp": "2019-03-19T02:15:06.081Z"}
				]
			},
			"responsetime": "2019-03-19T02:15:06.081Z"
		}`))
	}))
	defer server.Close()

	latest, err := client.GetLatestExecutions(context.Background(), "BTC", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/latestExecutions" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if !strings.Contains(gotQuery, "symbol=BTC") {
		t.Errorf("expected symbol in query, got %s", gotQuery)
	}

	// Private endpoints carry the signed auth headers
	for _, h := range []string{"Api-Key", "Api-Timestamp", "Api-Sign"} {
		if gotHeaders.Get(h) == "" {
			t.Errorf("missing auth header %s", h)
		}
	}
	if gotHeaders.Get("Api-Key") != "test-key" {
		t.Errorf("unexpected API key header: %s", gotHeaders.Get("Api-Key"))
	}

	if len(latest.List) != 1 {
		t.Fatalf("expected 1 execution, got %d", len(latest.List))
	}
	e := latest.List[0]
	if e.ExecutionID != 72123 || e.Side != "BUY" || e.Size != "0.7361" {
		t.Errorf("unexpected execution: %+v", e)
	}
	if latest.Pagination.Count != 30 {
		t.Errorf("unexpected pagination: %+v", latest.Pagination)
	}
}

// go test -v --run TestGetExecutionsByOrder
func TestGetExecutionsByOrder(t *testing.T) {
	var gotQuery string

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"status": 0, "data": {"list": []}, "responsetime": "2019-03-19T02:15:06.081Z"}`))
	}))
	defer server.Close()

	execs, err := client.GetExecutions(context.Background(), "123456789", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotQuery, "orderId=123456789") {
		t.Errorf("expected orderId in query, got %s", gotQuery)
	}
	if len(execs) != 0 {
		t.Errorf("expected no executions, got %d", len(execs))
	}
}

// go test -v --run TestGetAssets
func TestGetAssets(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": 0,
			"data": [
				{"amount": "0.35641193", "available": "0.35641193", "conversionRate": "3000000", "symbol": "BTC"},
				{"amount": "250000", "available": "250000", "conversionRate": "1", "symbol": "JPY"}
			],
			"responsetime": "2019-03-19T02:15:06.081Z"
		}`))
	}))
	defer server.Close()

	assets, err := client.GetAssets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[0].Symbol != "BTC" || assets[0].Amount != "0.35641193" {
		t.Errorf("unexpected asset: %+v", assets[0])
	}
}

// go test -v --run TestVenueReportedError
func TestVenueReportedError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": 1,
			"messages": [{"message_code": "ERR-5106", "message_string": "Invalid request parameter."}],
			"responsetime": "2019-03-19T02:15:06.081Z"
		}`))
	}))
	defer server.Close()

	_, err := client.GetLatestExecutions(context.Background(), "BTC", 0, 0)
	if err == nil {
		t.Fatal("expected venue error, got nil")
	}
	if !strings.Contains(err.Error(), "ERR-5106") {
		t.Errorf("expected message code in error, got %v", err)
	}
}

// go test -v --run TestHTTPErrorStatus
func TestHTTPErrorStatus(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := client.GetAssets(context.Background())
	if err == nil {
		t.Fatal("expected error for HTTP 503, got nil")
	}
}

// go test -v --run TestStatusEndpoint
func TestStatusEndpoint(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Api-Key") != "" {
			t.Error("public endpoint must not carry auth headers")
		}
		w.Write([]byte(`{"status": 0, "data": {"status": "OPEN"}, "responsetime": "2019-03-19T02:15:06.081Z"}`))
	}))
	defer server.Close()

	status, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != StatusOpen {
		t.Errorf("unexpected status: %s", status.Status)
	}
}
