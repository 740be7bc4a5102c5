// Package server implements the HTTP front end for element lookups.
//
// # Routes
//
//   - GET  /         upload page (embedded static HTML)
//   - GET  /healthz  liveness probe, answers "ok"
//   - POST /analyze  multipart form with an "image" file field
//
// # Analyze responses
//
// The response status reflects transport problems only. Analysis outcomes are
// all 200 with a JSON body:
//
//	{"element": "Iron (FE)", "details": "..."}                            found
//	{"error": "No element symbol detected in the image"}                 no text
//	{"error": "Element symbol 'ZZ' not found in our database"}           unknown
//	{"error": "Error processing image: <cause>"}                         OCR or model failure
//
// A request without an image field gets 400 {"error": "No image provided"}.
// Failures to store the upload and handler panics get 500
// {"error": "Server error: <cause>"}. An upload larger than the configured limit
// gets 413.
//
// # Uploads
//
// Each upload is written to a uniquely named temp file that is removed before
// the response is finished, on every path including panics.
//
// # Usage
//
//	srv := server.New(analyzer, server.Options{Addr: ":5000"})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
