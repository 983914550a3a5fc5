package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/atomwalk/hrm-client/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping); the intake form uses them to attach
// inline errors to individual inputs.
const (
	// FieldItemNumber targets the scanned item identifier.
	FieldItemNumber = "item_number"

	// FieldBatchNumber targets the scanned manufacturing batch number.
	FieldBatchNumber = "batch_number"

	// FieldScanQuantity targets the decimal-string intake quantity.
	FieldScanQuantity = "scan_qty"

	// FieldItemID targets the master-data item of a serial intake.
	FieldItemID = "item_id"

	// FieldSerialNumbers targets the scanned serial number list.
	FieldSerialNumbers = "item_srl_num_list"

	// FieldInQuantity targets the declared quantity of a serial intake.
	FieldInQuantity = "in_quantity"
)

type IntakeValidator struct {
}

func NewIntakeValidator() Validator {
	return &IntakeValidator{}
}

func (v *IntakeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ScanRecord:
		return v.validateScanRecord(ctx, value, fields...)
	case *models.ScanRecord:
		return v.validateScanRecord(ctx, *value, fields...)

	case models.SerialIntake:
		return v.validateSerialIntake(ctx, value, fields...)
	case *models.SerialIntake:
		return v.validateSerialIntake(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *IntakeValidator) validateScanRecord(_ context.Context, record models.ScanRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemNumber, FieldBatchNumber, FieldScanQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldItemNumber:
			if strings.TrimSpace(record.ItemNumber) == "" {
				return ErrItemRequired
			}
		case FieldBatchNumber:
			if strings.TrimSpace(record.BatchNumber) == "" {
				return ErrBatchRequired
			}
		case FieldScanQuantity:
			if err := validateQuantity(record.ScanQuantity); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IntakeValidator) validateSerialIntake(_ context.Context, intake models.SerialIntake, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldInQuantity, FieldSerialNumbers}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if strings.TrimSpace(intake.ItemID) == "" {
				return ErrItemIDRequired
			}
		case FieldInQuantity:
			if err := validateQuantity(intake.InQuantity); err != nil {
				return err
			}
			// the unit count must match the declared quantity
			if qty, err := strconv.ParseFloat(intake.InQuantity, 64); err == nil {
				if float64(len(intake.SerialNumbers)) != qty {
					return ErrSerialCountQty
				}
			}
		case FieldSerialNumbers:
			if len(intake.SerialNumbers) == 0 {
				return ErrNoSerialNumbers
			}
			for _, srl := range intake.SerialNumbers {
				if strings.TrimSpace(srl) == "" {
					return ErrEmptySerialNumber
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateQuantity(qty string) error {
	qty = strings.TrimSpace(qty)
	if qty == "" {
		return ErrQuantityRequired
	}

	value, err := strconv.ParseFloat(qty, 64)
	if err != nil {
		return ErrQuantityNotNumeric
	}
	if value <= 0 {
		return ErrQuantityNotPositive
	}

	return nil
}
