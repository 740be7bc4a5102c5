// Package ocr provides Optical Character Recognition (OCR) functionality using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) to read the
// symbol printed on a photographed periodic-table cell. Callers depend on the
// Extractor interface so the engine can be replaced with a stub in tests.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// A non-standard traineddata location can be set with Tesseract.TessdataPrefix.
//
// # Pipeline
//
// Extract loads the image, converts it to grayscale and adjusts contrast (see
// package imaging), runs Tesseract in sparse-text mode and joins all word
// fragments with single spaces. Fragment order is Tesseract's detection order.
//
// # Error Handling
//
// Extract returns errors wrapping one of:
//   - ErrImageNotFound: the path does not exist
//   - ErrImageDecode: the file is not a valid image
//   - ErrEngine: Tesseract initialization or recognition failed
//
// An image with no recognizable text is not an error; Extract returns the
// NoTextDetected sentinel string.
package ocr
