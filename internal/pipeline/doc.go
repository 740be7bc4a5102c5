// Package pipeline connects text extraction, the element table and the
// knowledge responder into one analysis.
//
// Per request the flow is strictly linear:
//
//	Extracting -> {NoText | Extracted} -> Normalizing -> {NotFound | Found} -> Querying -> {QueryFailed | Done}
//
// Analyze returns an error only when extraction fails. Every other terminal
// state is a Result with the matching Kind; delivery shells render it with
// Result.Message (command line) or their own wording (HTTP, Telegram).
package pipeline
