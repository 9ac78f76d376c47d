// Package widgets holds the pure rendering primitives. Every primitive clips
// its output against the dimensions it is given: text truncates on display
// width (double-width glyphs included), blocks truncate or pad to height.
// Nothing here mutates state or addresses the terminal directly.
package widgets
