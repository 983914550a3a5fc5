package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/mock"
	"github.com/atomwalk/hrm-client/internal/validators"
	"github.com/atomwalk/hrm-client/models"
)

var intakeNow = time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC)

// newTestIntake is a helper creating an intakeWorkflow with mocked deps, the
// real validator and a fixed clock.
func newTestIntake(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*intakeWorkflow,
	*mock.MockBackendAdapter,
	*mock.MockScanner,
	*mock.MockProfileService,
) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockScanner := mock.NewMockScanner(ctrl)
	mockProfiles := mock.NewMockProfileService(ctrl)

	w := NewIntakeWorkflow(mockAdapter, mockScanner, mockProfiles, validators.NewIntakeValidator(), logger.Nop()).(*intakeWorkflow)
	w.now = func() time.Time { return intakeNow }

	return w, mockAdapter, mockScanner, mockProfiles
}

// ── Scan acquisition ─────────────────────────────────────────────────────────

func TestIntake_OpenScanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _, _ := newTestIntake(t, ctrl)

	assert.Equal(t, IntakeIdle, w.State())
	assert.Equal(t, IntakeScanning, w.OpenScanner())
	assert.NotEmpty(t, w.SessionID())

	// opening twice mid-session is a no-op
	first := w.SessionID()
	assert.Equal(t, IntakeScanning, w.OpenScanner())
	assert.Equal(t, first, w.SessionID())
}

func TestIntake_ScanOnce_PermissionDeniedReturnsToIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockScanner, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	w.OpenScanner()

	mockScanner.EXPECT().Acquire(ctx).Return("", ErrScanPermissionDenied)

	state, err := w.ScanOnce(ctx)

	assert.ErrorIs(t, err, ErrScanPermissionDenied)
	assert.Equal(t, IntakeIdle, state)
}

func TestIntake_HandleScan_IncompletePayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	w.OpenScanner()

	state, err := w.HandleScan(ctx, "ITM-100")

	assert.ErrorIs(t, err, ErrScanIncomplete)
	assert.Equal(t, IntakeScanIncomplete, state)

	// re-scan re-opens the scanner with a fresh session
	assert.Equal(t, IntakeScanning, w.Rescan())
}

func TestIntake_HandleScan_FreshTupleOpensForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, mockScanner, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	w.OpenScanner()

	mockScanner.EXPECT().Acquire(ctx).Return("ITM-100,B-77,BIN-A1", nil)
	mockAdapter.EXPECT().GetItemQuantity(ctx, "ITM-100", "B-77", "BIN-A1").
		Return(models.ItemQuantity{CurrentQty: 42.5, LastScanDate: "01-Jan-2026"}, nil)

	state, err := w.ScanOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, IntakeFormReady, state)

	form := w.Form()
	assert.Equal(t, "ITM-100", form.Record.ItemNumber)
	assert.Equal(t, "B-77", form.Record.BatchNumber)
	assert.Equal(t, "BIN-A1", form.Record.BinLocationID)
	assert.Equal(t, "42.5", form.Record.ScanQuantity, "quantity is prefilled from the lookup")
	assert.Equal(t, 42.5, form.CurrentQty)
}

func TestIntake_HandleScan_RecentTupleAsksConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	w.OpenScanner()

	// scanned yesterday relative to the fixed clock
	mockAdapter.EXPECT().GetItemQuantity(ctx, "ITM-100", "B-77", "").
		Return(models.ItemQuantity{CurrentQty: 5, LastScanDate: "14-Jul-2026"}, nil)

	state, err := w.HandleScan(ctx, "ITM-100,B-77")

	require.NoError(t, err)
	assert.Equal(t, IntakeConfirmRescan, state)
	assert.Equal(t, "14-Jul-2026", w.Form().Record.ScanDate,
		"the confirm screen shows when the tuple was last scanned")

	assert.Equal(t, IntakeFormReady, w.ConfirmRescan())
}

func TestIntake_CancelRescanDiscards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	w.OpenScanner()

	mockAdapter.EXPECT().GetItemQuantity(ctx, "ITM-100", "B-77", "").
		Return(models.ItemQuantity{CurrentQty: 5, LastScanDate: "14-Jul-2026"}, nil)

	_, err := w.HandleScan(ctx, "ITM-100,B-77")
	require.NoError(t, err)

	assert.Equal(t, IntakeIdle, w.CancelRescan())
	assert.Empty(t, w.Form().Record.ItemNumber, "cancel discards the scan")
}

func TestIntake_HandleScan_LookupFailureReturnsToIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	w.OpenScanner()

	mockAdapter.EXPECT().GetItemQuantity(ctx, "ITM-100", "B-77", "").
		Return(models.ItemQuantity{}, errors.New("502"))

	state, err := w.HandleScan(ctx, "ITM-100,B-77")

	require.Error(t, err)
	assert.Equal(t, IntakeIdle, state)
}

// ── Form and submit ──────────────────────────────────────────────────────────

func openForm(t *testing.T, w *intakeWorkflow, mockAdapter *mock.MockBackendAdapter, ctx context.Context) {
	t.Helper()
	w.OpenScanner()
	mockAdapter.EXPECT().GetItemQuantity(ctx, "ITM-100", "B-77", "").
		Return(models.ItemQuantity{CurrentQty: 5, LastScanDate: ""}, nil)
	_, err := w.HandleScan(ctx, "ITM-100,B-77")
	require.NoError(t, err)
	require.Equal(t, IntakeFormReady, w.State())
}

func TestIntake_SetQuantitySanitizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	openForm(t, w, mockAdapter, ctx)

	w.SetQuantity("ab12.3.4")
	assert.Equal(t, "12.34", w.Form().Record.ScanQuantity)
}

func TestIntake_Submit_ValidationFailureStaysLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	openForm(t, w, mockAdapter, ctx)

	// no backend expectation: invalid forms never reach the adapter
	w.SetQuantity("0")

	state, err := w.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, IntakeFormReady, state)
	assert.Contains(t, w.Form().FieldErrors, validators.FieldScanQuantity)
}

func TestIntake_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, mockProfiles := newTestIntake(t, ctrl)
	ctx := context.Background()
	openForm(t, w, mockAdapter, ctx)

	w.SetQuantity("7")
	w.SetRemarks("inward check ok")

	mockProfiles.EXPECT().CachedProfileName(ctx).Return("Priya Nair")
	mockAdapter.EXPECT().SubmitInspection(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.InspectItemData) error {
			assert.Equal(t, models.CallModeBatchInspect, item.CallMode)
			assert.Equal(t, "ITM-100", item.ItemNumber)
			assert.Equal(t, "B-77", item.BatchNumber)
			assert.Equal(t, "7", item.ScanQty)
			assert.Equal(t, "15-Jul-2026", item.ScanDate)
			assert.Equal(t, "Priya Nair", item.ScanBy)
			assert.Equal(t, "inward check ok", item.Remarks)
			return nil
		},
	)

	state, err := w.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, IntakeSubmitted, state)

	// the loop re-opens scanning for the next item
	assert.Equal(t, IntakeScanning, w.Acknowledge())
	assert.Empty(t, w.Form().Record.ItemNumber)
}

func TestIntake_Submit_BlankRemarksGetsSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, mockProfiles := newTestIntake(t, ctrl)
	ctx := context.Background()
	openForm(t, w, mockAdapter, ctx)

	w.SetQuantity("7")
	w.SetRemarks("")

	mockProfiles.EXPECT().CachedProfileName(ctx).Return("Priya Nair")
	mockAdapter.EXPECT().SubmitInspection(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.InspectItemData) error {
			assert.Equal(t, "No remarks", item.Remarks)
			return nil
		},
	)

	state, err := w.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, IntakeSubmitted, state)
}

func TestIntake_Submit_BackendFailurePreservesInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, mockProfiles := newTestIntake(t, ctrl)
	ctx := context.Background()
	openForm(t, w, mockAdapter, ctx)

	w.SetQuantity("7")
	w.SetRemarks("inward check ok")

	mockProfiles.EXPECT().CachedProfileName(ctx).Return("Priya Nair")
	mockAdapter.EXPECT().SubmitInspection(ctx, gomock.Any()).Return(errors.New("bad gateway"))

	state, err := w.Submit(ctx)

	require.Error(t, err)
	assert.Equal(t, IntakeFormReady, state)

	form := w.Form()
	assert.Equal(t, "ITM-100", form.Record.ItemNumber)
	assert.Equal(t, "7", form.Record.ScanQuantity)
	assert.Equal(t, "inward check ok", form.Record.Remarks, "inputs survive a failed submit")
}

func TestIntake_SingleRequestInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockAdapter, _, _ := newTestIntake(t, ctrl)
	ctx := context.Background()
	w.OpenScanner()

	// simulate a lookup arriving while another is pending
	mockAdapter.EXPECT().GetItemQuantity(ctx, "ITM-100", "B-77", "").DoAndReturn(
		func(ctx context.Context, _, _, _ string) (models.ItemQuantity, error) {
			assert.ErrorIs(t, w.acquireFlight(), ErrRequestInFlight)
			return models.ItemQuantity{CurrentQty: 1}, nil
		},
	)

	_, err := w.HandleScan(ctx, "ITM-100,B-77")
	require.NoError(t, err)
}
