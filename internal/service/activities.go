package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomwalk/hrm-client/internal/adapter"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/validators"
	"github.com/atomwalk/hrm-client/models"
)

// Call modes understood by the activities endpoints.
const (
	CallModeUserActivity = "USER_ACTIVITY"
	CallModeManagerView  = "MANAGER_VIEW"
	CallModeQCData       = "QC_DATA"
	CallModeInventoryIn  = "INV_IN"
	CallModeInventoryOut = "INV_OUT"
)

type activityService struct {
	adapter   adapter.BackendAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewActivityService constructs the [ActivityService] backed by the backend
// activities and master-data endpoints.
func NewActivityService(backendAdapter adapter.BackendAdapter, validator validators.Validator, logger *logger.Logger) ActivityService {
	return &activityService{adapter: backendAdapter, validator: validator, logger: logger}
}

func (a *activityService) GetSummary(ctx context.Context, callMode string) (models.ActivitySummary, error) {
	summary, err := a.adapter.GetActivities(ctx, callMode)
	if err != nil {
		return models.ActivitySummary{}, fmt.Errorf("fetch activity summary: %w", err)
	}
	return summary, nil
}

func (a *activityService) GetManagerSummary(ctx context.Context, callMode string) (models.ManagerActivitySummary, error) {
	summary, err := a.adapter.GetManagerActivities(ctx, callMode)
	if err != nil {
		return models.ManagerActivitySummary{}, fmt.Errorf("fetch manager summary: %w", err)
	}
	return summary, nil
}

func (a *activityService) GetQCLines(ctx context.Context, activityID, callMode string) ([]models.QCLine, error) {
	lines, err := a.adapter.GetActivityQC(ctx, activityID, callMode)
	if err != nil {
		return nil, fmt.Errorf("fetch qc lines: %w", err)
	}
	return lines, nil
}

func (a *activityService) GetInventoryLines(ctx context.Context, activityID, callMode string) ([]models.InventoryLine, error) {
	lines, err := a.adapter.GetActivityInventory(ctx, activityID, callMode)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory lines: %w", err)
	}
	return lines, nil
}

func (a *activityService) CommitInventory(ctx context.Context, update models.ActivityInventoryUpdate) error {
	if update.CallMode == CallModeInventoryIn {
		if err := a.checkAllocations(ctx, update); err != nil {
			return err
		}
	}

	if err := a.adapter.ProcessActivityInventory(ctx, update); err != nil {
		return fmt.Errorf("commit activity inventory: %w", err)
	}

	a.logger.Info().
		Str("activity_id", update.ActivityID).
		Str("call_mode", update.CallMode).
		Int("items", len(update.ItemList)).
		Msg("activity inventory committed")
	return nil
}

func (a *activityService) ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := a.adapter.GetInventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory items: %w", err)
	}
	return items, nil
}

func (a *activityService) ListBinLocations(ctx context.Context, itemID string) ([]models.BinLocation, error) {
	bins, err := a.adapter.GetBinNumbers(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("fetch bin locations: %w", err)
	}
	return bins, nil
}

func (a *activityService) RegisterSerialIntake(ctx context.Context, intake models.SerialIntake) error {
	if err := a.validator.Validate(ctx, intake); err != nil {
		return fmt.Errorf("validate serial intake: %w", err)
	}

	if err := a.adapter.RegisterSerialIntake(ctx, intake); err != nil {
		return fmt.Errorf("register serial intake: %w", err)
	}

	a.logger.Info().
		Str("item_id", intake.ItemID).
		Int("serials", len(intake.SerialNumbers)).
		Msg("serial intake registered")
	return nil
}

// checkAllocations guards INV_IN commits: for every line being consumed,
// already-consumed plus the committed quantity must not exceed the allocated
// quantity. The check runs client-side before any backend call so a bad
// entry never leaves the device.
func (a *activityService) checkAllocations(ctx context.Context, update models.ActivityInventoryUpdate) error {
	lines, err := a.adapter.GetActivityInventory(ctx, update.ActivityID, update.CallMode)
	if err != nil {
		return fmt.Errorf("fetch allocations: %w", err)
	}

	byItem := make(map[string]models.InventoryLine, len(lines))
	for _, line := range lines {
		byItem[line.ItemNumber] = line
	}

	for _, entry := range update.ItemList {
		line, ok := byItem[entry.ItemNumber]
		if !ok {
			return fmt.Errorf("%w: item %s is not allocated to activity %s",
				ErrConsumptionExceedsAllocation, entry.ItemNumber, update.ActivityID)
		}

		allocated := parseQty(line.AllocatedQty)
		consumed := parseQty(line.AlreadyConsumedQty)
		current := parseQty(entry.CurrQuantity)

		if consumed+current > allocated {
			return fmt.Errorf("%w: item %s consumed %s + %s exceeds allocation %s",
				ErrConsumptionExceedsAllocation,
				entry.ItemNumber, line.AlreadyConsumedQty, entry.CurrQuantity, line.AllocatedQty)
		}
	}

	return nil
}

// parseQty parses backend decimal-string quantities, treating blanks and
// garbage as zero the way the activity screens do.
func parseQty(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
