package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomwalk/hrm-client/models"
)

func TestIntakeValidator_ScanRecord(t *testing.T) {
	v := NewIntakeValidator()
	ctx := context.Background()

	valid := models.ScanRecord{
		ItemNumber:   "ITM-100",
		BatchNumber:  "B-77",
		ScanQuantity: "12.5",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.ScanRecord)
		fields  []string
		wantErr error
	}{
		{name: "valid record", mutate: func(r *models.ScanRecord) {}, wantErr: nil},
		{
			name:    "missing item",
			mutate:  func(r *models.ScanRecord) { r.ItemNumber = "  " },
			wantErr: ErrItemRequired,
		},
		{
			name:    "missing batch",
			mutate:  func(r *models.ScanRecord) { r.BatchNumber = "" },
			wantErr: ErrBatchRequired,
		},
		{
			name:    "empty quantity",
			mutate:  func(r *models.ScanRecord) { r.ScanQuantity = "" },
			wantErr: ErrQuantityRequired,
		},
		{
			name:    "non numeric quantity",
			mutate:  func(r *models.ScanRecord) { r.ScanQuantity = "12.3.4" },
			wantErr: ErrQuantityNotNumeric,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *models.ScanRecord) { r.ScanQuantity = "0" },
			wantErr: ErrQuantityNotPositive,
		},
		{
			name:    "field scoping skips other failures",
			mutate:  func(r *models.ScanRecord) { r.ItemNumber = "" },
			fields:  []string{FieldScanQuantity},
			wantErr: nil,
		},
		{
			name:    "unknown field",
			mutate:  func(r *models.ScanRecord) {},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			err := v.Validate(ctx, record, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIntakeValidator_SerialIntake(t *testing.T) {
	v := NewIntakeValidator()
	ctx := context.Background()

	valid := models.SerialIntake{
		ItemID:         "17",
		InQuantity:     "2",
		MfgBatchNumber: "B-77",
		SerialNumbers:  []string{"SRL-1", "SRL-2"},
	}

	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid), "pointer form must validate too")

	missingItem := valid
	missingItem.ItemID = ""
	assert.ErrorIs(t, v.Validate(ctx, missingItem), ErrItemIDRequired)

	noSerials := valid
	noSerials.SerialNumbers = nil
	assert.ErrorIs(t, v.Validate(ctx, noSerials, FieldSerialNumbers), ErrNoSerialNumbers)

	blankSerial := valid
	blankSerial.SerialNumbers = []string{"SRL-1", "   "}
	assert.ErrorIs(t, v.Validate(ctx, blankSerial, FieldSerialNumbers), ErrEmptySerialNumber)

	countMismatch := valid
	countMismatch.InQuantity = "3"
	assert.ErrorIs(t, v.Validate(ctx, countMismatch), ErrSerialCountQty)
}

func TestIntakeValidator_UnsupportedType(t *testing.T) {
	v := NewIntakeValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
