// integration_test.go exercises the HTTP surface end to end against the
// seeded in-memory stores.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"nectar-house-api/config"
	routes "nectar-house-api/internal/app/http"
	"nectar-house-api/internal/app/http/middleware"
	"nectar-house-api/store"

	"github.com/gin-gonic/gin"
)

var testServerURL string

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.LoadEnv()
	store.Init()

	r := gin.New()
	r.Use(middleware.Recovery())
	routes.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	testServerURL = srv.URL

	code := m.Run()
	srv.Close()
	os.Exit(code)
}

func doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, testServerURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func data(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	d, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", env)
	}
	return d
}

func TestHealthCheck(t *testing.T) {
	code, out := doJSON(t, http.MethodGet, "/api/health", nil)
	if code != http.StatusOK || out["status"] != "OK" {
		t.Fatalf("health = %d %v", code, out)
	}
	if out["service"] != "Nectar House API" {
		t.Errorf("service = %v", out["service"])
	}
}

func TestArtifactCRUDOverHTTP(t *testing.T) {
	code, out := doJSON(t, http.MethodPost, "/api/artifacts", map[string]any{
		"title":          "Mixtec Gold Ring",
		"description":    "Cast gold ring",
		"culture":        "Mixtec",
		"estimatedValue": 9000,
	})
	if code != http.StatusCreated {
		t.Fatalf("create = %d %v", code, out)
	}
	created := data(t, out)
	id := created["id"].(string)
	if created["currentValue"].(float64) != 9000 {
		t.Errorf("currentValue = %v, want 9000", created["currentValue"])
	}

	code, out = doJSON(t, http.MethodPut, "/api/artifacts/"+id, map[string]any{"currentValue": 12000})
	if code != http.StatusOK {
		t.Fatalf("update = %d %v", code, out)
	}
	updated := data(t, out)
	if updated["currentValue"].(float64) != 12000 || updated["title"] != "Mixtec Gold Ring" {
		t.Errorf("merge update wrong: %v", updated)
	}
	if updated["estimatedValue"].(float64) != 9000 {
		t.Errorf("estimatedValue must be independent of currentValue: %v", updated)
	}

	code, _ = doJSON(t, http.MethodDelete, "/api/artifacts/"+id, nil)
	if code != http.StatusOK {
		t.Fatalf("delete = %d", code)
	}
	code, out = doJSON(t, http.MethodGet, "/api/artifacts/"+id, nil)
	if code != http.StatusNotFound || out["success"] != false {
		t.Fatalf("get after delete = %d %v", code, out)
	}
	if code, _ = doJSON(t, http.MethodDelete, "/api/artifacts/"+id, nil); code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", code)
	}
}

func TestArtifactCreateValidation(t *testing.T) {
	code, out := doJSON(t, http.MethodPost, "/api/artifacts", map[string]any{
		"title":   "No value",
		"culture": "Maya",
	})
	if code != http.StatusBadRequest || out["success"] != false {
		t.Fatalf("create without required fields = %d %v", code, out)
	}
}

func TestArtifactFilterQuery(t *testing.T) {
	doJSON(t, http.MethodPost, "/api/artifacts", map[string]any{
		"title":          "Zapotec Urn of the Temple",
		"description":    "Funerary urn",
		"culture":        "Zapotec",
		"estimatedValue": 4000,
	})

	code, out := doJSON(t, http.MethodGet, "/api/artifacts?culture=ZAPOTEC&search=temple", nil)
	if code != http.StatusOK {
		t.Fatalf("list = %d", code)
	}
	if out["count"].(float64) != 1 {
		t.Fatalf("count = %v, want 1 (case-insensitive AND filters)", out["count"])
	}
}

func TestTokenizationEndToEnd(t *testing.T) {
	_, out := doJSON(t, http.MethodPost, "/api/artifacts", map[string]any{
		"title":          "Vase",
		"description":    "d",
		"culture":        "Maya",
		"estimatedValue": 1000,
	})
	artifactID := data(t, out)["id"].(string)

	code, out := doJSON(t, http.MethodPost, "/api/tokenization/mint", map[string]any{
		"artifactId":    artifactID,
		"walletAddress": "w1",
	})
	if code != http.StatusOK {
		t.Fatalf("mint = %d %v", code, out)
	}
	if data(t, out)["status"] != "minted" {
		t.Fatalf("mint status = %v", data(t, out)["status"])
	}

	code, out = doJSON(t, http.MethodPost, "/api/tokenization/fractionalize", map[string]any{
		"artifactId":    artifactID,
		"totalShares":   100,
		"pricePerShare": 10,
	})
	if code != http.StatusOK {
		t.Fatalf("fractionalize = %d %v", code, out)
	}

	code, out = doJSON(t, http.MethodPost, "/api/tokenization/purchase-shares", map[string]any{
		"artifactId":    artifactID,
		"shares":        30,
		"walletAddress": "w2_e2e",
	})
	if code != http.StatusOK {
		t.Fatalf("purchase = %d %v", code, out)
	}
	if data(t, out)["totalCost"].(float64) != 300 {
		t.Errorf("totalCost = %v, want 300", data(t, out)["totalCost"])
	}

	_, out = doJSON(t, http.MethodGet, "/api/tokenization/holdings/w2_e2e", nil)
	d := data(t, out)
	holdings := d["holdings"].([]any)
	if len(holdings) != 1 || d["totalValue"].(float64) != 300 {
		t.Fatalf("holdings = %v", d)
	}

	_, out = doJSON(t, http.MethodGet, "/api/tokenization/status/"+artifactID, nil)
	frac := data(t, out)["fractionalOwnership"].(map[string]any)
	if frac["availableShares"].(float64) != 70 {
		t.Errorf("availableShares = %v, want 70", frac["availableShares"])
	}

	code, _ = doJSON(t, http.MethodGet, "/api/tokenization/status/art_never_minted", nil)
	if code != http.StatusNotFound {
		t.Errorf("status of unminted artifact = %d, want 404", code)
	}
}

func TestAuctionBidFlowOverHTTP(t *testing.T) {
	code, out := doJSON(t, http.MethodPost, "/api/auctions", map[string]any{
		"artifactId":   "art_001",
		"title":        "Integration Auction",
		"startPrice":   1000,
		"reservePrice": 5000,
		"endTime":      time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	})
	if code != http.StatusCreated {
		t.Fatalf("create auction = %d %v", code, out)
	}
	auctionID := data(t, out)["id"].(string)

	// one unit under the minimum increment
	code, out = doJSON(t, http.MethodPost, fmt.Sprintf("/api/auctions/%s/bid", auctionID), map[string]any{
		"bidAmount":    1099,
		"bidderWallet": "w_int_1",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("low bid = %d %v", code, out)
	}

	// missing wallet
	code, _ = doJSON(t, http.MethodPost, fmt.Sprintf("/api/auctions/%s/bid", auctionID), map[string]any{
		"bidAmount": 1100,
	})
	if code != http.StatusBadRequest {
		t.Fatalf("bid without wallet = %d", code)
	}

	// exactly currentPrice + increment
	code, out = doJSON(t, http.MethodPost, fmt.Sprintf("/api/auctions/%s/bid", auctionID), map[string]any{
		"bidAmount":    1100,
		"bidderWallet": "w_int_1",
		"bidderName":   "Maria",
	})
	if code != http.StatusOK {
		t.Fatalf("valid bid = %d %v", code, out)
	}
	auction := data(t, out)["auction"].(map[string]any)
	if auction["bidCount"].(float64) != 1 || auction["currentPrice"].(float64) != 1100 {
		t.Errorf("auction after bid = %v", auction)
	}

	_, out = doJSON(t, http.MethodGet, fmt.Sprintf("/api/auctions/%s/bids", auctionID), nil)
	if out["count"].(float64) != 1 {
		t.Errorf("bids count = %v, want 1", out["count"])
	}

	code, out = doJSON(t, http.MethodPost, fmt.Sprintf("/api/auctions/%s/end", auctionID), nil)
	if code != http.StatusOK {
		t.Fatalf("end = %d %v", code, out)
	}
	winner := data(t, out)["winner"].(map[string]any)
	if winner["bidAmount"].(float64) != 1100 || winner["bidderWallet"] != "w_int_1" {
		t.Errorf("winner = %v", winner)
	}

	code, out = doJSON(t, http.MethodPost, fmt.Sprintf("/api/auctions/%s/end", auctionID), nil)
	if code != http.StatusBadRequest {
		t.Fatalf("second end = %d %v, want 400", code, out)
	}
}

func TestBidOnExpiredSeedAuction(t *testing.T) {
	// auction_001 is seeded active but its window closed in 2024
	code, out := doJSON(t, http.MethodPost, "/api/auctions/auction_001/bid", map[string]any{
		"bidAmount":    999999,
		"bidderWallet": "w_late",
	})
	if code != http.StatusBadRequest || out["error"] != "Auction is not active" {
		t.Fatalf("expired bid = %d %v", code, out)
	}
}

func TestAuctionCancelOverHTTP(t *testing.T) {
	_, out := doJSON(t, http.MethodPost, "/api/auctions", map[string]any{
		"artifactId":   "art_002",
		"title":        "Cancelled Auction",
		"startPrice":   500,
		"reservePrice": 900,
		"endTime":      time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	})
	auctionID := data(t, out)["id"].(string)

	code, out := doJSON(t, http.MethodPost, fmt.Sprintf("/api/auctions/%s/cancel", auctionID), nil)
	if code != http.StatusOK || data(t, out)["status"] != "cancelled" {
		t.Fatalf("cancel = %d %v", code, out)
	}

	code, _ = doJSON(t, http.MethodPost, fmt.Sprintf("/api/auctions/%s/bid", auctionID), map[string]any{
		"bidAmount":    5000,
		"bidderWallet": "w1",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("bid on cancelled = %d, want 400", code)
	}
}

func TestUserProfileFlow(t *testing.T) {
	wallet := "0xintegration_wallet"

	code, out := doJSON(t, http.MethodPost, "/api/users/profile", map[string]any{
		"walletAddress": wallet,
		"username":      "integration_user",
		"bio":           "first bio",
	})
	if code != http.StatusCreated {
		t.Fatalf("create profile = %d %v", code, out)
	}

	code, out = doJSON(t, http.MethodPost, "/api/users/profile", map[string]any{
		"walletAddress": wallet,
		"bio":           "second bio",
	})
	if code != http.StatusOK {
		t.Fatalf("update profile = %d %v", code, out)
	}
	u := data(t, out)
	if u["username"] != "integration_user" || u["bio"] != "second bio" {
		t.Errorf("upsert merge wrong: %v", u)
	}

	code, _ = doJSON(t, http.MethodGet, "/api/users/portfolio/"+wallet, nil)
	if code != http.StatusOK {
		t.Errorf("portfolio = %d", code)
	}
	code, _ = doJSON(t, http.MethodGet, "/api/users/portfolio/0xnobody", nil)
	if code != http.StatusNotFound {
		t.Errorf("portfolio for unknown wallet = %d, want 404", code)
	}

	code, _ = doJSON(t, http.MethodPost, "/api/users/kyc", map[string]any{"walletAddress": wallet})
	if code != http.StatusBadRequest {
		t.Errorf("kyc without payload = %d, want 400", code)
	}
	code, out = doJSON(t, http.MethodPost, "/api/users/kyc", map[string]any{
		"walletAddress": wallet,
		"kycData":       map[string]any{"document": "passport"},
	})
	if code != http.StatusOK {
		t.Fatalf("kyc = %d %v", code, out)
	}

	_, out = doJSON(t, http.MethodGet, "/api/users/leaderboard?limit=1", nil)
	d := data(t, out)
	entries := d["leaderboard"].([]any)
	if len(entries) != 1 {
		t.Fatalf("leaderboard limit ignored: %v", entries)
	}
	top := entries[0].(map[string]any)
	if top["username"] != "art_collector_2024" {
		t.Errorf("default totalSpent ranking should put the seeded collector first: %v", top)
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	code, out := doJSON(t, http.MethodGet, "/api/nope", nil)
	if code != http.StatusNotFound || out["error"] != "Route not found" {
		t.Fatalf("unknown route = %d %v", code, out)
	}
}
