// Package runner hosts a ga.Engine the way an interactive front end would:
// it owns the node layout, clamps every user-facing knob into range, runs a
// fixed batch of generations per tick until a budget or context ends the run,
// and exposes read-only snapshots for display.
//
// Unlike the library packages below it, runner logs (log/slog) and tags each
// run with a UUID.
package runner
