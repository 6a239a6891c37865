// Package logging builds the zerolog loggers used across pagelist and carries
// them, together with a per-command trace ID, through context.Context.
//
// Loggers are built once per command from a Config:
//   - Format "json" writes one JSON object per event, "console" writes
//     zerolog's human-readable console format
//   - Output "file" appends to Config.File, falling back to stderr when the
//     file cannot be opened
//
// Events logged with .Ctx(ctx) get a trace_id field when the context carries one.
package logging
