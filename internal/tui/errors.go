// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package tui

import (
	"errors"
	"strings"

	"github.com/atomwalk/hrm-client/internal/adapter"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrServerUnreachable) {
		return "No network, or the server is unreachable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network, or the server is unreachable"
	}

	return err.Error()
}
