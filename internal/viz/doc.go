// Package viz renders a live dot field in the terminal.
//
// The view is a Bubble Tea program:
//
//   - [Model]: owns the field, steps it once per tick and draws it
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [Theme]: color schemes; "classic" matches the SVG palette
//
// The logical canvas is fitted into the terminal with the same
// aspect-preserving viewport the SVG frame uses, so resizing the terminal
// rescales the picture without touching the simulation.
//
// # Keys
//
//	q, Esc, Ctrl+C - quit
//
// Hosts change grid shape or canvas size by sending a [ConfigureMsg]; the
// field is regenerated and ticks from the previous generation are dropped.
package viz
