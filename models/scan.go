// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package models

// ScanPayload is the result of parsing a barcode/QR payload. ItemNumber and
// BatchNumber are required for the intake workflow to proceed; BinLocationID
// is optional. Extra keeps any additional key:value pairs found in the
// structured wire format.
type ScanPayload struct {
	ItemNumber    string
	BatchNumber   string
	BinLocationID string
	Extra         map[string]string
}

// Complete reports whether both required fields were present in the scan.
func (p ScanPayload) Complete() bool {
	return p.ItemNumber != "" && p.BatchNumber != ""
}

// ScanRecord is the transient per-scan-session record assembled by the
// intake workflow. It is created on a successful decode, filled from the
// quantity lookup and the form, and discarded on submit or cancel; it is
// never persisted locally.
type ScanRecord struct {
	ItemNumber    string
	BatchNumber   string
	BinLocationID string
	ScanQuantity  string
	ScanDate      string
	ScannedBy     string
	Remarks       string
}
