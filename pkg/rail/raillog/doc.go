// Package raillog is the terminal observer of the railway: it renders a
// rail.Result, including aggregate failures with nested causes, as an
// ordered, indented sequence of structured slog records.
//
// LogResult emits one info record for a success (with an optional callback
// receiving the unwrapped value), one warn record per error-tree node for a
// failure, and one error record for a cancel. An Indents object correlates
// repeated records for the same tag so related diagnostics group visually.
//
// The bridge only requires a *slog.Logger; NewLogger builds one in the
// house style (tint console handler, optional rotating JSON file) but any
// slog backend works.
package raillog
