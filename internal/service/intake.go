// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atomwalk/hrm-client/internal/adapter"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/validators"
	"github.com/atomwalk/hrm-client/models"
)

// defaultRemarks is sent when the operator leaves the remarks field blank;
// the backend treats remarks as a required column.
const defaultRemarks = "No remarks"

// IntakeState is the explicit state of the inventory intake workflow.
type IntakeState int

const (
	// IntakeIdle is the rest state; no scan session is open.
	IntakeIdle IntakeState = iota
	// IntakeScanning awaits one decode from the scanner.
	IntakeScanning
	// IntakeQuantityLookup has a GET_QTY call in flight.
	IntakeQuantityLookup
	// IntakeScanIncomplete holds a decode missing item or batch number.
	IntakeScanIncomplete
	// IntakeConfirmRescan asks whether to proceed with a recently scanned
	// tuple.
	IntakeConfirmRescan
	// IntakeFormReady exposes the editable quantity/remarks form.
	IntakeFormReady
	// IntakeSubmitting has the BATCH_INSPECT call in flight.
	IntakeSubmitting
	// IntakeSubmitted shows the confirmation before the loop re-opens.
	IntakeSubmitted
)

func (s IntakeState) String() string {
	switch s {
	case IntakeIdle:
		return "IDLE"
	case IntakeScanning:
		return "SCANNING"
	case IntakeQuantityLookup:
		return "QUANTITY_LOOKUP"
	case IntakeScanIncomplete:
		return "SCAN_INCOMPLETE"
	case IntakeConfirmRescan:
		return "CONFIRM_RESCAN"
	case IntakeFormReady:
		return "FORM_READY"
	case IntakeSubmitting:
		return "SUBMITTING"
	case IntakeSubmitted:
		return "SUBMITTED"
	default:
		return fmt.Sprintf("IntakeState(%d)", int(s))
	}
}

// IntakeForm is a snapshot of the editable workflow state handed to the UI.
type IntakeForm struct {
	Record      models.ScanRecord
	CurrentQty  float64
	FieldErrors map[string]string
}

// IntakeWorkflow drives one scan-lookup-confirm-submit loop. A workflow
// instance owns its form state exclusively; backend calls are strictly
// sequential within one instance.
type IntakeWorkflow interface {
	// State returns the current workflow state.
	State() IntakeState

	// SessionID returns the ID of the current scan session, regenerated
	// each time the scanner opens.
	SessionID() string

	// OpenScanner starts a scan session from IntakeIdle or
	// IntakeSubmitted.
	OpenScanner() IntakeState

	// ScanOnce acquires one decode from the scanner and feeds it through
	// HandleScan. [ErrScanPermissionDenied] returns the workflow to Idle.
	ScanOnce(ctx context.Context) (IntakeState, error)

	// HandleScan parses raw and, when complete, performs the quantity
	// lookup. Incomplete payloads land in IntakeScanIncomplete; a recently
	// scanned tuple lands in IntakeConfirmRescan; otherwise the form opens
	// with the quantity prefilled from the lookup.
	HandleScan(ctx context.Context, raw string) (IntakeState, error)

	// ConfirmRescan proceeds from IntakeConfirmRescan to IntakeFormReady.
	ConfirmRescan() IntakeState

	// CancelRescan discards the scan and returns to IntakeIdle.
	CancelRescan() IntakeState

	// Rescan re-opens the scanner from IntakeScanIncomplete.
	Rescan() IntakeState

	// Cancel discards all workflow state and returns to IntakeIdle.
	Cancel() IntakeState

	// SetQuantity stores the sanitised quantity string on the form.
	SetQuantity(raw string)

	// SetRemarks stores free-text remarks on the form.
	SetRemarks(remarks string)

	// Form returns a snapshot of the current form.
	Form() IntakeForm

	// Submit validates the form and, when valid, persists the record via
	// the backend. Validation failures stay in IntakeFormReady with
	// field-level errors and never reach the backend. Backend failure also
	// stays in IntakeFormReady with all inputs preserved.
	Submit(ctx context.Context) (IntakeState, error)

	// Acknowledge leaves IntakeSubmitted, resets the record and re-opens
	// the scanner for the next item.
	Acknowledge() IntakeState
}

type intakeWorkflow struct {
	adapter   adapter.BackendAdapter
	scanner   Scanner
	profiles  ProfileService
	validator validators.Validator

	state       IntakeState
	sessionID   string
	record      models.ScanRecord
	currentQty  float64
	fieldErrors map[string]string

	mu       sync.Mutex
	inFlight bool

	now func() time.Time

	logger *logger.Logger
}

// NewIntakeWorkflow constructs a workflow instance bound to one scanner and
// one UI surface.
func NewIntakeWorkflow(backendAdapter adapter.BackendAdapter, scanner Scanner, profiles ProfileService, validator validators.Validator, logger *logger.Logger) IntakeWorkflow {
	return &intakeWorkflow{
		adapter:   backendAdapter,
		scanner:   scanner,
		profiles:  profiles,
		validator: validator,
		state:     IntakeIdle,
		now:       time.Now,
		logger:    logger,
	}
}

func (w *intakeWorkflow) State() IntakeState { return w.state }

func (w *intakeWorkflow) SessionID() string { return w.sessionID }

func (w *intakeWorkflow) OpenScanner() IntakeState {
	if w.state != IntakeIdle && w.state != IntakeSubmitted {
		return w.state
	}

	w.reset()
	w.sessionID = uuid.NewString()
	w.state = IntakeScanning
	w.logger.Debug().Str("scan_session", w.sessionID).Msg("scanner opened")
	return w.state
}

func (w *intakeWorkflow) ScanOnce(ctx context.Context) (IntakeState, error) {
	if w.state != IntakeScanning {
		return w.state, fmt.Errorf("scan in state %s", w.state)
	}

	raw, err := w.scanner.Acquire(ctx)
	if err != nil {
		if errors.Is(err, ErrScanPermissionDenied) {
			w.state = IntakeIdle
			w.logger.Warn().Msg("scanner unavailable")
		}
		return w.state, err
	}

	return w.HandleScan(ctx, raw)
}

func (w *intakeWorkflow) HandleScan(ctx context.Context, raw string) (IntakeState, error) {
	if w.state != IntakeScanning {
		return w.state, fmt.Errorf("scan handled in state %s", w.state)
	}

	payload := ParseScanPayload(raw)
	w.record.ItemNumber = payload.ItemNumber
	w.record.BatchNumber = payload.BatchNumber
	w.record.BinLocationID = payload.BinLocationID

	if !payload.Complete() {
		w.state = IntakeScanIncomplete
		return w.state, ErrScanIncomplete
	}

	if err := w.acquireFlight(); err != nil {
		return w.state, err
	}
	w.state = IntakeQuantityLookup

	qty, err := w.adapter.GetItemQuantity(ctx, payload.ItemNumber, payload.BatchNumber, payload.BinLocationID)
	w.releaseFlight()
	if err != nil {
		// lookup failure discards the scan
		w.reset()
		w.state = IntakeIdle
		return w.state, fmt.Errorf("quantity lookup: %w", err)
	}

	w.currentQty = qty.CurrentQty
	w.record.ScanQuantity = strconv.FormatFloat(qty.CurrentQty, 'f', -1, 64)
	w.record.ScanDate = qty.LastScanDate

	if lastScanWithin(qty.LastScanDate, w.now()) {
		w.state = IntakeConfirmRescan
	} else {
		w.state = IntakeFormReady
	}

	return w.state, nil
}

func (w *intakeWorkflow) ConfirmRescan() IntakeState {
	if w.state == IntakeConfirmRescan {
		w.state = IntakeFormReady
	}
	return w.state
}

func (w *intakeWorkflow) CancelRescan() IntakeState {
	if w.state == IntakeConfirmRescan {
		w.reset()
		w.state = IntakeIdle
	}
	return w.state
}

func (w *intakeWorkflow) Rescan() IntakeState {
	if w.state == IntakeScanIncomplete {
		w.reset()
		w.sessionID = uuid.NewString()
		w.state = IntakeScanning
	}
	return w.state
}

func (w *intakeWorkflow) Cancel() IntakeState {
	switch w.state {
	case IntakeSubmitting:
		// a submit in flight cannot be abandoned mid-call
		return w.state
	default:
		w.reset()
		w.state = IntakeIdle
	}
	return w.state
}

func (w *intakeWorkflow) SetQuantity(raw string) {
	w.record.ScanQuantity = SanitizeQuantity(raw)
}

func (w *intakeWorkflow) SetRemarks(remarks string) {
	w.record.Remarks = remarks
}

func (w *intakeWorkflow) Form() IntakeForm {
	errs := make(map[string]string, len(w.fieldErrors))
	for k, v := range w.fieldErrors {
		errs[k] = v
	}
	return IntakeForm{Record: w.record, CurrentQty: w.currentQty, FieldErrors: errs}
}

func (w *intakeWorkflow) Submit(ctx context.Context) (IntakeState, error) {
	if w.state != IntakeFormReady {
		return w.state, fmt.Errorf("submit in state %s", w.state)
	}

	if errs := w.validateForm(ctx); len(errs) > 0 {
		w.fieldErrors = errs
		return w.state, nil
	}
	w.fieldErrors = nil

	if err := w.acquireFlight(); err != nil {
		return w.state, err
	}
	w.state = IntakeSubmitting

	remarks := w.record.Remarks
	if remarks == "" {
		remarks = defaultRemarks
	}

	item := models.InspectItemData{
		CallMode:      models.CallModeBatchInspect,
		ItemNumber:    w.record.ItemNumber,
		BatchNumber:   w.record.BatchNumber,
		BinLocationID: w.record.BinLocationID,
		ScanQty:       w.record.ScanQuantity,
		ScanDate:      w.now().Format(scanDateLayout),
		ScanBy:        w.profiles.CachedProfileName(ctx),
		Remarks:       remarks,
	}

	err := w.adapter.SubmitInspection(ctx, item)
	w.releaseFlight()
	if err != nil {
		// inputs are preserved for retry
		w.state = IntakeFormReady
		return w.state, fmt.Errorf("submit inspection: %w", err)
	}

	w.state = IntakeSubmitted
	w.logger.Info().
		Str("item_number", item.ItemNumber).
		Str("batch_number", item.BatchNumber).
		Str("scan_qty", item.ScanQty).
		Msg("intake submitted")
	return w.state, nil
}

func (w *intakeWorkflow) Acknowledge() IntakeState {
	if w.state == IntakeSubmitted {
		return w.OpenScanner()
	}
	return w.state
}

func (w *intakeWorkflow) validateForm(ctx context.Context) map[string]string {
	errs := make(map[string]string)

	fields := []string{validators.FieldItemNumber, validators.FieldBatchNumber, validators.FieldScanQuantity}
	for _, field := range fields {
		if err := w.validator.Validate(ctx, w.record, field); err != nil {
			errs[field] = err.Error()
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (w *intakeWorkflow) acquireFlight() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return ErrRequestInFlight
	}
	w.inFlight = true
	return nil
}

func (w *intakeWorkflow) releaseFlight() {
	w.mu.Lock()
	w.inFlight = false
	w.mu.Unlock()
}

func (w *intakeWorkflow) reset() {
	w.record = models.ScanRecord{}
	w.currentQty = 0
	w.fieldErrors = nil
	w.sessionID = ""
}
