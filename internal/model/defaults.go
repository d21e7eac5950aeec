// Package model holds defaults shared by the binary and the internal
// packages.
package model

import "time"

// Shared defaults used by the CLI, the dashboard and the control API.
const (
	DefaultSkin         = "default"
	DefaultAPIAddr      = "127.0.0.1:3900"
	DefaultLoginTimeout = 10 * time.Second
	DefaultLogLevel     = "info"
	DefaultHospital     = "default_hospital"
	DefaultDataSource   = "default"
)
