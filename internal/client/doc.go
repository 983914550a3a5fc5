// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services, and the background
// activity refresh into a single process lifecycle: unlock gate, main loop,
// and back to the gate on logout.
package client
