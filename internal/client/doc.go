// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the case tracker.
//
// The commands form a cobra tree: health, signup, watch and version at the
// top, cases and files with their own subcommands. Persistent flags on the
// root (--server, --user, --password) are the top layer of the client
// configuration, which is resolved before any command reaches the server.
// Commands that need a session log in with the configured credentials first
// and log out when done.
// Results are written to the output as indented JSON.
package client
