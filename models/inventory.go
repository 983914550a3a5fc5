// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package models

// Call modes multiplexed through the item-inspect endpoint.
const (
	CallModeGetQty       = "GET_QTY"
	CallModeBatchInspect = "BATCH_INSPECT"
	CallModeItemNew      = "ITEM_NEW"
)

// InventoryItem is a master-data item returned by the inventory-items
// endpoint.
type InventoryItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BinLocation is a storage bin returned by the bin-number lookup.
type BinLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemQuantity is the backend's answer to a GET_QTY inspection call: the
// current on-hand quantity and the date of the last scan for the
// item+batch+bin tuple. LastScanDate uses the backend's day-MonthAbbr-year
// format (e.g. "04-Jul-2026") and may be empty when the tuple was never
// scanned.
type ItemQuantity struct {
	CurrentQty   float64 `json:"current_qty"`
	LastScanDate string  `json:"last_scan_date"`
}

// InspectItemData is the item_data body of an item-inspect call. The same
// shape serves both the quantity lookup (call_mode GET_QTY) and the intake
// submission (call_mode BATCH_INSPECT); unused fields are omitted.
type InspectItemData struct {
	CallMode      string `json:"call_mode"`
	ItemNumber    string `json:"item_number"`
	BatchNumber   string `json:"batch_number"`
	BinLocationID string `json:"bin_location_id"`
	ScanQty       string `json:"scan_qty,omitempty"`
	ScanDate      string `json:"scan_date,omitempty"`
	ScanBy        string `json:"scan_by,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}

// SerialIntake registers new stock together with the scanned serial numbers
// of the individual units (call_mode ITEM_NEW).
type SerialIntake struct {
	ItemID         string   `json:"item_id"`
	InQuantity     string   `json:"in_quantity"`
	MfgBatchNumber string   `json:"mfg_batch_number"`
	SerialNumbers  []string `json:"item_srl_num_list"`
	CallMode       string   `json:"call_mode"`
}
