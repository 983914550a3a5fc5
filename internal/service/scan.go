// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package service

import (
	"strings"
	"time"

	"github.com/atomwalk/hrm-client/models"
)

// scanDateLayout is the backend's date format for scan timestamps, e.g.
// "04-Jul-2026".
const scanDateLayout = "02-Jan-2006"

// rescanWindow is the period after a scan during which a new scan of the
// same item+batch+bin tuple requires explicit confirmation.
const rescanWindow = 30 * 24 * time.Hour

// ParseScanPayload decodes a raw scanned payload into a [models.ScanPayload].
// Three wire shapes are recognised, in precedence order:
//
//  1. key:value pairs separated by ";" (requires both separators present),
//     e.g. "item_number:ITM-100;batch_number:B-77;bin_location_id:BIN-A1"
//  2. comma-separated positional values: item, batch, bin
//  3. anything else is a bare item number
//
// Unknown keys of the key:value form are preserved in Extra. The payload is
// returned even when incomplete; callers use [models.ScanPayload.Complete]
// to decide whether a re-scan is needed.
func ParseScanPayload(raw string) models.ScanPayload {
	raw = strings.TrimSpace(raw)
	payload := models.ScanPayload{}

	switch {
	case strings.Contains(raw, ";") && strings.Contains(raw, ":"):
		for _, pair := range strings.Split(raw, ";") {
			key, value, found := strings.Cut(pair, ":")
			if !found {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "" || value == "" {
				continue
			}

			switch key {
			case "item_number":
				payload.ItemNumber = value
			case "batch_number":
				payload.BatchNumber = value
			case "bin_location_id":
				payload.BinLocationID = value
			default:
				if payload.Extra == nil {
					payload.Extra = make(map[string]string)
				}
				payload.Extra[key] = value
			}
		}

	case strings.Contains(raw, ","):
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) >= 1 {
			payload.ItemNumber = parts[0]
		}
		if len(parts) >= 2 {
			payload.BatchNumber = parts[1]
		}
		if len(parts) >= 3 {
			payload.BinLocationID = parts[2]
		}

	default:
		payload.ItemNumber = raw
	}

	return payload
}

// SanitizeQuantity normalises free-text quantity input into a decimal
// string: every character that is not a digit or a dot is stripped, and only
// the first dot is kept ("12.3.4" becomes "12.34", "ab12.5" becomes "12.5").
// Quantities stay strings end to end to avoid float rounding in transit.
func SanitizeQuantity(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}

	return b.String()
}

// lastScanWithin reports whether lastScanDate falls inside the rescan
// confirmation window ending at now. An empty or unparsable date means the
// tuple was never scanned and is never treated as recent.
func lastScanWithin(lastScanDate string, now time.Time) bool {
	lastScanDate = strings.TrimSpace(lastScanDate)
	if lastScanDate == "" {
		return false
	}

	scanned, err := time.Parse(scanDateLayout, lastScanDate)
	if err != nil {
		return false
	}

	elapsed := now.Sub(scanned)
	return elapsed >= 0 && elapsed < rescanWindow
}
