// Package capture acquires the image file the analysis pipeline reads.
//
// Sources are interchangeable: File wraps an existing path, Upload persists an
// HTTP or chat upload to a temp file, and the webcam subpackage grabs a frame
// from a camera. Each Acquire returns a cleanup func; for uploads it deletes
// the temp file, for the others it does nothing.
package capture
