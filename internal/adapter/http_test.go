// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomwalk/hrm-client/internal/config"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/models"
)

// newTestAdapter creates an httpBackendAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	backendCfg := config.ClientBackend{
		BaseURL:       serverURL,
		UserDetailURL: serverURL + "/get_user_detail",
	}

	a, err := NewHTTPBackendAdapter(backendCfg, log)
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func TestNewHTTPBackendAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ClientBackend{BaseURL: "   "}, logger.NewClientLogger("test"))
	require.Error(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "EMP_0042", creds["username"])
		assert.Equal(t, "secret", creds["password"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Key: "opaque-session-key"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), "EMP_0042", "secret")

	require.NoError(t, err)
	assert.Equal(t, "opaque-session-key", token.Key)
	assert.Equal(t, "opaque-session-key", a.Token(), "token must be stored for subsequent requests")
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "EMP_0042", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "EMP_0042", "secret")

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing_Reachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// any status counts as reachable
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Ping(context.Background()))
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed server: connection refused

	a := newTestAdapter(t, srv.URL)
	err := a.Ping(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnreachable)
}

// ── GetUserDetail ────────────────────────────────────────────────────────────

func TestGetUserDetail_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_user_detail", r.URL.Path)
		assert.Equal(t, "0042", r.URL.Query().Get("user_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UserDetail{Username: "EMP_0042"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	detail, err := a.GetUserDetail(context.Background(), "0042")

	require.NoError(t, err)
	assert.Equal(t, "EMP_0042", detail.Username)
}

func TestGetUserDetail_NotConfigured(t *testing.T) {
	a, err := NewHTTPBackendAdapter(config.ClientBackend{BaseURL: "https://example.com"}, logger.NewClientLogger("test"))
	require.NoError(t, err)

	_, err = a.GetUserDetail(context.Background(), "0042")
	require.Error(t, err)
}

// ── Profile / CompanyInfo ────────────────────────────────────────────────────

func TestGetProfile_SendsTokenHeader(t *testing.T) {
	want := models.Profile{
		EmpData:   models.Employee{Name: "Priya Nair", EmpID: "EMP_0042", DepartmentName: "Stores"},
		UserGroup: models.UserGroup{IsManager: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		assert.Equal(t, "Token opaque-session-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque-session-key")

	got, err := a.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetCompanyInfo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/company-info", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CompanyInfo{Name: "Atomwalk", DBName: "PY_atomwalk"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	info, err := a.GetCompanyInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "PY_atomwalk", info.DBName)
}

// ── Activities ───────────────────────────────────────────────────────────────

func TestGetActivities_ICView(t *testing.T) {
	want := models.ActivitySummary{
		Activities:   []models.Activity{{ActivityID: "ACT-1", Name: "Inward QC"}},
		PendingCount: 3,
		OverDueCount: 1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities", r.URL.Path)
		assert.Equal(t, "USER_ACTIVITY", r.URL.Query().Get("call_mode"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetActivities(context.Background(), "USER_ACTIVITY")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetManagerActivities_ManagerView(t *testing.T) {
	want := models.ManagerActivitySummary{
		Activities:   []models.Activity{{ActivityID: "ACT-9", AssignedUser: "EMP_0007"}},
		OverDueCount: 2,
		DueToday:     1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MANAGER_VIEW", r.URL.Query().Get("call_mode"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetManagerActivities(context.Background(), "MANAGER_VIEW")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetActivityInventory_Success(t *testing.T) {
	want := []models.InventoryLine{{
		ItemNumber:   "ITM-100",
		ItemName:     "Bearing 6204",
		AllocatedQty: "10",
	}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity-qc", r.URL.Path)
		assert.Equal(t, "ACT-1", r.URL.Query().Get("activity_id"))
		assert.Equal(t, "INV_IN", r.URL.Query().Get("call_mode"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetActivityInventory(context.Background(), "ACT-1", "INV_IN")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProcessActivityInventory_EnvelopesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity-inventory", r.URL.Path)

		var body map[string]models.ActivityInventoryUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		update, ok := body["activity_data"]
		require.True(t, ok, "payload must be wrapped in activity_data")
		assert.Equal(t, "ACT-1", update.ActivityID)
		assert.Equal(t, "INV_IN", update.CallMode)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ProcessActivityInventory(context.Background(), models.ActivityInventoryUpdate{
		ActivityID: "ACT-1",
		CallMode:   "INV_IN",
		ItemList:   []models.ItemQuantityEntry{{ItemNumber: "ITM-100", CurrQuantity: "2"}},
	})

	require.NoError(t, err)
}

// ── Item inspect ─────────────────────────────────────────────────────────────

func TestGetItemQuantity_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item-inspect", r.URL.Path)

		var body map[string]models.InspectItemData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		item := body["item_data"]
		assert.Equal(t, models.CallModeGetQty, item.CallMode)
		assert.Equal(t, "ITM-100", item.ItemNumber)
		assert.Equal(t, "B-77", item.BatchNumber)
		assert.Equal(t, "", item.BinLocationID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ItemQuantity{CurrentQty: 42.5, LastScanDate: "04-Jul-2026"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	qty, err := a.GetItemQuantity(context.Background(), "ITM-100", "B-77", "")

	require.NoError(t, err)
	assert.Equal(t, 42.5, qty.CurrentQty)
	assert.Equal(t, "04-Jul-2026", qty.LastScanDate)
}

func TestSubmitInspection_BadRequestDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"batch number is required"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.SubmitInspection(context.Background(), models.InspectItemData{
		CallMode:   models.CallModeBatchInspect,
		ItemNumber: "ITM-100",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "batch number is required")
}

func TestRegisterSerialIntake_ForcesCallMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]models.SerialIntake
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		intake := body["item_data"]
		assert.Equal(t, models.CallModeItemNew, intake.CallMode)
		assert.Equal(t, []string{"SRL-1", "SRL-2"}, intake.SerialNumbers)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.RegisterSerialIntake(context.Background(), models.SerialIntake{
		ItemID:         "17",
		InQuantity:     "2",
		MfgBatchNumber: "B-77",
		SerialNumbers:  []string{"SRL-1", "SRL-2"},
	})

	require.NoError(t, err)
}

// ── Full backend round trip ──────────────────────────────────────────────────

// TestAdapter_FullSession drives login, master data and intake submission
// against a routed fake backend to check that the token captured at login is
// attached to every later call.
func TestAdapter_FullSession(t *testing.T) {
	const sessionKey = "fake-session-key"

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Token "+sessionKey {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
				return
			}
			next(w, r)
		}
	}

	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Key: sessionKey})
	})
	r.Get("/inventory-items", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.InventoryItem{{ID: 17, Name: "Bearing 6204"}})
	}))
	r.Get("/bin-number", authed(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "17", r.URL.Query().Get("item_id"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.BinLocation{{ID: "BIN-A1", Name: "Rack A1"}})
	}))
	r.Post("/item-inspect", authed(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]models.InspectItemData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch body["item_data"].CallMode {
		case models.CallModeGetQty:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.ItemQuantity{CurrentQty: 5})
		case models.CallModeBatchInspect:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))

	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	// unauthenticated calls are rejected
	_, err := a.GetInventoryItems(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Login(ctx, "EMP_0042", "secret")
	require.NoError(t, err)

	items, err := a.GetInventoryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	bins, err := a.GetBinNumbers(ctx, "17")
	require.NoError(t, err)
	require.Len(t, bins, 1)

	qty, err := a.GetItemQuantity(ctx, "ITM-100", "B-77", bins[0].ID)
	require.NoError(t, err)
	assert.Equal(t, float64(5), qty.CurrentQty)

	err = a.SubmitInspection(ctx, models.InspectItemData{
		CallMode:    models.CallModeBatchInspect,
		ItemNumber:  "ITM-100",
		BatchNumber: "B-77",
		ScanQty:     "5",
	})
	require.NoError(t, err)
}

// ── Error mapper ─────────────────────────────────────────────────────────────

func TestMapHTTPError_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrConflict},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"internal error", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetProfile(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
