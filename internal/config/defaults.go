package config

const (
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultOCRLanguage    = "eng"
	defaultCapturePath    = "captured_image.jpg"
	defaultAddr           = ":5000"
	defaultMaxUploadBytes = 10 << 20
	defaultPollTimeout    = 30
)

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Gemini: Gemini{
			Model: defaultGeminiModel,
		},
		OCR: OCR{
			Language: defaultOCRLanguage,
		},
		Server: Server{
			Addr:           defaultAddr,
			MaxUploadBytes: defaultMaxUploadBytes,
		},
		Capture: Capture{
			Path: defaultCapturePath,
		},
		Telegram: Telegram{
			PollTimeout: defaultPollTimeout,
		},
		Logging: Logging{
			Level:  "info",
			Format: "auto",
		},
	}
}
