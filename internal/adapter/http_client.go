// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/atomwalk/hrm-client/internal/config"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/models"
)

// itemDataEnvelope wraps the body of every item-inspect call. The backend
// multiplexes quantity lookups, inspections and serial registrations through
// the same endpoint and distinguishes them by call_mode inside item_data.
type itemDataEnvelope struct {
	ItemData any `json:"item_data"`
}

// activityDataEnvelope wraps the body of activity-inventory commits.
type activityDataEnvelope struct {
	ActivityData models.ActivityInventoryUpdate `json:"activity_data"`
}

type httpBackendAdapter struct {
	client        *resty.Client
	userDetailURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// backendCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if backendCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(backendCfg config.ClientBackend, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(backendCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(backendCfg.RequestTimeout)

	return &httpBackendAdapter{
		client:        client,
		userDetailURL: strings.TrimSpace(backendCfg.UserDetailURL),
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BackendAdapter]. It returns the session token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [BackendAdapter]. Any HTTP response, whatever the status,
// counts as reachable; only a transport-level failure (DNS, connect,
// timeout) produces [ErrServerUnreachable].
func (h *httpBackendAdapter) Ping(ctx context.Context) error {
	_, err := h.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	return nil
}

// Login implements [BackendAdapter]. It POSTs the credentials to
// POST /login. Only HTTP 200 is a successful login; the returned key is
// stored via SetToken. Returns the session token on success.
func (h *httpBackendAdapter) Login(ctx context.Context, username, password string) (models.Token, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&loginResp).
		Post("/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	if loginResp.Key == "" {
		return models.Token{}, fmt.Errorf("login response missing key")
	}

	h.SetToken(loginResp.Key)
	return models.Token{Key: loginResp.Key}, nil
}

// GetUserDetail implements [BackendAdapter]. It resolves a bare employee ID
// to a username via the public user-detail endpoint, which lives outside the
// authenticated API root and is addressed absolutely.
func (h *httpBackendAdapter) GetUserDetail(ctx context.Context, userID string) (models.UserDetail, error) {
	if h.userDetailURL == "" {
		return models.UserDetail{}, fmt.Errorf("user detail url is not configured")
	}

	var detail models.UserDetail

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&detail).
		Get(h.userDetailURL)
	if err != nil {
		return models.UserDetail{}, fmt.Errorf("user detail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDetail{}, err
	}

	return detail, nil
}

// GetProfile implements [BackendAdapter]. It GETs /profile and decodes the
// employee profile of the logged-in user. Requires a valid session token.
func (h *httpBackendAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// GetCompanyInfo implements [BackendAdapter]. It GETs /company-info and
// decodes the company display metadata. Requires a valid session token.
func (h *httpBackendAdapter) GetCompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	var info models.CompanyInfo

	resp, err := h.authedRequest(ctx).
		SetResult(&info).
		Get("/company-info")
	if err != nil {
		return models.CompanyInfo{}, fmt.Errorf("company info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CompanyInfo{}, err
	}

	return info, nil
}

// GetActivities implements [BackendAdapter]. It GETs /activities with the
// given call_mode and decodes the individual-contributor summary (a_list
// plus headline counters). Requires a valid session token.
func (h *httpBackendAdapter) GetActivities(ctx context.Context, callMode string) (models.ActivitySummary, error) {
	var summary models.ActivitySummary

	resp, err := h.authedRequest(ctx).
		SetQueryParam("call_mode", callMode).
		SetResult(&summary).
		Get("/activities")
	if err != nil {
		return models.ActivitySummary{}, fmt.Errorf("activities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivitySummary{}, err
	}

	return summary, nil
}

// GetManagerActivities implements [BackendAdapter]. Same endpoint as
// GetActivities but decoded into the manager view (activity_list plus
// over_due/due_today counters), which the backend selects by call_mode.
func (h *httpBackendAdapter) GetManagerActivities(ctx context.Context, callMode string) (models.ManagerActivitySummary, error) {
	var summary models.ManagerActivitySummary

	resp, err := h.authedRequest(ctx).
		SetQueryParam("call_mode", callMode).
		SetResult(&summary).
		Get("/activities")
	if err != nil {
		return models.ManagerActivitySummary{}, fmt.Errorf("manager activities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ManagerActivitySummary{}, err
	}

	return summary, nil
}

// GetActivityQC implements [BackendAdapter]. It GETs /activity-qc for the
// given activity and call mode and decodes the QC line items.
func (h *httpBackendAdapter) GetActivityQC(ctx context.Context, activityID, callMode string) ([]models.QCLine, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"activity_id": activityID,
			"call_mode":   callMode,
		}).
		Get("/activity-qc")
	if err != nil {
		return nil, fmt.Errorf("activity qc request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lines []models.QCLine
	if err = json.Unmarshal(resp.Body(), &lines); err != nil {
		return nil, fmt.Errorf("decode activity qc response: %w", err)
	}

	return lines, nil
}

// GetActivityInventory implements [BackendAdapter]. It GETs /activity-qc
// with an inventory call mode (INV_IN / INV_OUT) and decodes the
// consumption/production line items.
func (h *httpBackendAdapter) GetActivityInventory(ctx context.Context, activityID, callMode string) ([]models.InventoryLine, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"activity_id": activityID,
			"call_mode":   callMode,
		}).
		Get("/activity-qc")
	if err != nil {
		return nil, fmt.Errorf("activity inventory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lines []models.InventoryLine
	if err = json.Unmarshal(resp.Body(), &lines); err != nil {
		return nil, fmt.Errorf("decode activity inventory response: %w", err)
	}

	return lines, nil
}

// ProcessActivityInventory implements [BackendAdapter]. It POSTs the update
// wrapped in an activity_data envelope to POST /activity-inventory.
func (h *httpBackendAdapter) ProcessActivityInventory(ctx context.Context, update models.ActivityInventoryUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(activityDataEnvelope{ActivityData: update}).
		Post("/activity-inventory")
	if err != nil {
		return fmt.Errorf("activity inventory commit request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetInventoryItems implements [BackendAdapter]. It GETs the inventory
// master-data list from /inventory-items.
func (h *httpBackendAdapter) GetInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	resp, err := h.authedRequest(ctx).Get("/inventory-items")
	if err != nil {
		return nil, fmt.Errorf("inventory items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.InventoryItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode inventory items response: %w", err)
	}

	return items, nil
}

// GetBinNumbers implements [BackendAdapter]. It GETs /bin-number with the
// item_id parameter and decodes the available bin locations.
func (h *httpBackendAdapter) GetBinNumbers(ctx context.Context, itemID string) ([]models.BinLocation, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("item_id", itemID).
		Get("/bin-number")
	if err != nil {
		return nil, fmt.Errorf("bin number request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var bins []models.BinLocation
	if err = json.Unmarshal(resp.Body(), &bins); err != nil {
		return nil, fmt.Errorf("decode bin number response: %w", err)
	}

	return bins, nil
}

// GetItemQuantity implements [BackendAdapter]. It POSTs a GET_QTY
// item-inspect call for the item+batch+bin tuple and decodes the current
// quantity and last scan date. binLocationID may be empty.
func (h *httpBackendAdapter) GetItemQuantity(ctx context.Context, itemNumber, batchNumber, binLocationID string) (models.ItemQuantity, error) {
	var qty models.ItemQuantity

	body := itemDataEnvelope{ItemData: models.InspectItemData{
		CallMode:      models.CallModeGetQty,
		ItemNumber:    itemNumber,
		BatchNumber:   batchNumber,
		BinLocationID: binLocationID,
	}}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&qty).
		Post("/item-inspect")
	if err != nil {
		return models.ItemQuantity{}, fmt.Errorf("item quantity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemQuantity{}, err
	}

	return qty, nil
}

// SubmitInspection implements [BackendAdapter]. It POSTs the inspection
// record wrapped in an item_data envelope to POST /item-inspect. The caller
// is responsible for setting item.CallMode.
func (h *httpBackendAdapter) SubmitInspection(ctx context.Context, item models.InspectItemData) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(itemDataEnvelope{ItemData: item}).
		Post("/item-inspect")
	if err != nil {
		return fmt.Errorf("submit inspection request: %w", err)
	}

	return mapHTTPError(resp)
}

// RegisterSerialIntake implements [BackendAdapter]. It POSTs the new-stock
// registration (call_mode ITEM_NEW) wrapped in an item_data envelope to
// POST /item-inspect.
func (h *httpBackendAdapter) RegisterSerialIntake(ctx context.Context, intake models.SerialIntake) error {
	intake.CallMode = models.CallModeItemNew

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(itemDataEnvelope{ItemData: intake}).
		Post("/item-inspect")
	if err != nil {
		return fmt.Errorf("register serial intake request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest prepares a request carrying the Atomwalk `Token` auth
// scheme. The header is omitted when no token is set so that the backend
// answers 401 rather than 400.
func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Token "+token)
	}
	return req
}
