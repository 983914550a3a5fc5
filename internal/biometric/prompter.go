// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

// Package biometric bridges the unlock gate to the host's fingerprint
// stack. Verification is delegated to an external command (fprintd-verify
// on Linux desktops); fingerprint unlock is offered only when that command
// resolves on PATH.
package biometric

import (
	"context"
	"errors"
	"os/exec"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/service"
)

const defaultVerifyCommand = "fprintd-verify"

// ExecPrompter implements [service.BiometricPrompter] by running an external
// verification command. Exit code zero means the finger matched; any other
// exit code is a failed or cancelled verification.
type ExecPrompter struct {
	command string

	logger *logger.Logger
}

var _ service.BiometricPrompter = (*ExecPrompter)(nil)

// NewExecPrompter creates an [ExecPrompter] for command, falling back to
// fprintd-verify when command is empty.
func NewExecPrompter(command string, logger *logger.Logger) *ExecPrompter {
	if command == "" {
		command = defaultVerifyCommand
	}
	return &ExecPrompter{command: command, logger: logger}
}

func (p *ExecPrompter) Available() bool {
	_, err := exec.LookPath(p.command)
	return err == nil
}

func (p *ExecPrompter) Prompt(ctx context.Context, reason string) (bool, error) {
	p.logger.Debug().Str("command", p.command).Str("reason", reason).Msg("fingerprint verification started")

	err := exec.CommandContext(ctx, p.command).Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}
