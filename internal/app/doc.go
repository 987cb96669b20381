// Package app provides the orchestration layer for missionctl.
//
// # Overview
//
// This package wires configuration, logging, preferences, the API clients
// and the UI together. It is the composition root: every dependency is
// created here and handed down.
//
// # Startup
//
//  1. Load ~/.config/missionctl/config.toml and apply command-line overrides
//  2. Open the zap log file (the TUI owns the terminal)
//  3. Load the saved theme from the preferences file
//  4. Build the launch, news and chat clients (Services)
//  5. Start the TUI and block until the user quits or the context is cancelled
//
// # Components
//
//   - app.go: Setup, NewServices and Run
//   - status.go: Probe and WriteStatus for the "status" command
//
// # Error Handling
//
// Only configuration, logging and preference setup errors are fatal. Every
// network failure is absorbed by the components: the countdown falls back to
// a simulated target, the news panel shows an offline notice and chat answers
// from its local rules. A remote chat backend that cannot be configured
// degrades to offline replies with a warning in the log.
package app
