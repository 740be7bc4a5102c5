// Package config loads element-lens settings.
//
// Sources, lowest priority first:
//   - built-in defaults (Default)
//   - a TOML file: --config, else element-lens.toml in the working directory
//   - a .env file in the working directory (never overrides real variables)
//   - environment variables
//
// Recognized environment variables:
//
//	GOOGLE_API_KEY / GEMINI_API_KEY   Gemini credential
//	GEMINI_MODEL                      model name (default gemini-2.5-flash)
//	OCR_LANGUAGE, TESSDATA_PREFIX     Tesseract language and data dir
//	OCR_FOCUS_CROP                    crop to the text area before OCR (bool)
//	CAMERA_DEVICE, CAPTURE_PATH       webcam index and output file
//	ADDR or PORT                      HTTP listen address
//	MAX_UPLOAD_BYTES                  upload size limit
//	TELEGRAM_BOT_TOKEN                bot credential
//	TELEGRAM_POLL_TIMEOUT             long-poll seconds
//	LOG_LEVEL, LOG_FORMAT             debug|info|warn|error, auto|text|json
//
// A missing Gemini key is not a load error: it is reported when
// the model is first asked, so the table listing and OCR paths still work.
package config
