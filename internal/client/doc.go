// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the linkup command line client.
//
// Commands are built with cobra on top of [adapter.ServerAdapter]. The
// bearer token obtained by register or login is kept in a file so later
// invocations stay authenticated until logout.
package client
