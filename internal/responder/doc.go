// Package responder asks a hosted generative-language model for text.
//
// Gemini implements Responder on top of github.com/google/generative-ai-go.
// The API key is passed in at construction; a missing key surfaces from Ask as
// ErrMissingCredential rather than failing at startup. Remote failures are
// wrapped in ErrCommunication.
package responder
