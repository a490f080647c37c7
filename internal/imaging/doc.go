// Package imaging normalizes uploaded image bytes into a canonical drawable
// form and provides the in-memory encoders used when persisting results.
//
// Normalization produces an *image.NRGBA with (0,0) at the top-left corner
// that downstream stages can rely on unconditionally:
//
//   - Any EXIF orientation is applied to the pixel buffer, so detection box
//     coordinates computed against the visual width/height land correctly.
//   - Transparency is composited over an opaque white background; no alpha
//     channel survives normalization.
//
// # Error Handling
//
// Unreadable, corrupt, or unsupported input is reported as *DecodeError.
// Normalization has no side effects and never mutates the caller's bytes.
package imaging
