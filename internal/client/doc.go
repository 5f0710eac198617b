// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

// Package client implements the interactive journal application runtime.
//
// It wires the terminal UI, client services, and background synchronization
// into a single process lifecycle.
package client
