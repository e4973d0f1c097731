// Package field implements the bouncing dot field.
//
// A [Field] owns a rectangular grid of [Dot] values inside a fixed logical
// canvas. [Field.Reset] regenerates the whole set; [Field.Step] advances one
// animation frame:
//
//  1. every dot moves by its velocity,
//  2. dots touching an edge reflect (velocity sign flips, position is pinned
//     to radius or size-radius),
//  3. every unordered pair closer than the proximity threshold becomes a
//     [Connection] and both ends are flagged as having neighbors.
//
// Connections are rebuilt from scratch every frame. The pair scan is
// quadratic in dot count, which is fine for the tens of dots a grid holds.
//
// # Thread Safety
//
// Field is NOT safe for concurrent use. Drive it from a single goroutine, or
// through [loop.Animator] which serializes frame callbacks.
package field
