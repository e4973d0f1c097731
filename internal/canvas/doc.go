// Package canvas provides the drawing surface that hosts the dot field.
//
// A [Frame] maps a fixed logical coordinate space onto whatever display area
// it is given, preserving the logical aspect ratio and centering overflow
// ("xMidYMid meet"). Content is any [Drawable]; it paints [Primitive] values
// onto a [Surface] which the frame can then serialize as SVG or hand to a
// rasterizer together with a [Viewport].
//
// # Example
//
//	frame := canvas.New(1000, 1000, "#111111")
//	_ = frame.WriteSVG(os.Stdout, dots)
//
// A background of [Transparent] paints nothing beneath the content.
package canvas
