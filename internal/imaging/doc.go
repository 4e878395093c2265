// Package imaging renders Shut the Box analyses onto photos and camera frames.
//
// It is the drawing side of the system: the game packages produce a board, its
// legal moves and three lines of text, and this package paints them. Annotate
// strokes every kept box and die, blends that layer over the source image,
// downscales the result uniformly when it exceeds the layout's limits, and
// paints the report lines stacked bottom-up from the lower-left corner.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X increases rightward
//   - Y increases downward
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Detection bounds are expected in source image coordinates; they are drawn
// before any downscale, so they never need rescaling by the caller.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Annotate never modifies its input
// and can run concurrently on different frames.
//
// # Color Representation
//
// Colors are configured as hex strings "#RRGGBB" (or "#RGB") and parsed with
// go-colorful into opaque color.NRGBA values.
package imaging
