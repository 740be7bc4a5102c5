package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is looked up in the working directory when no config path is given.
const DefaultFileName = "element-lens.toml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Gemini holds the hosted model settings.
type Gemini struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// OCR holds the Tesseract settings.
type OCR struct {
	Language       string `toml:"language"`
	TessdataPrefix string `toml:"tessdata_prefix"`

	// FocusCrop crops photos to their text-like area before recognition.
	FocusCrop bool `toml:"focus_crop"`
}

// Server holds the HTTP shell settings.
type Server struct {
	Addr           string `toml:"addr"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
}

// Capture holds the webcam settings.
type Capture struct {
	Device int    `toml:"device"`
	Path   string `toml:"path"`
}

// Telegram holds the bot shell settings.
type Telegram struct {
	Token       string `toml:"token"`
	PollTimeout int    `toml:"poll_timeout"`
}

// Logging holds log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full process configuration.
type Config struct {
	Gemini   Gemini   `toml:"gemini"`
	OCR      OCR      `toml:"ocr"`
	Server   Server   `toml:"server"`
	Capture  Capture  `toml:"capture"`
	Telegram Telegram `toml:"telegram"`
	Logging  Logging  `toml:"logging"`
}

// LoadOptions selects the files Load reads.
type LoadOptions struct {
	// ConfigPath is an explicit TOML file. It must exist when set. Empty means
	// DefaultFileName in the working directory, if present.
	ConfigPath string

	// EnvFile is the dotenv file. Empty means ".env" in the working directory.
	// A missing dotenv file is ignored.
	EnvFile string
}

// Load builds the configuration from, in increasing priority: defaults, the
// TOML file, the dotenv file and the process environment.
//
// A missing Gemini API key is not an error here; the responder reports it when
// a model call is attempted.
func Load(opts LoadOptions) (*Config, string, error) {
	cfg := Default()

	path, err := resolveConfigPath(opts.ConfigPath)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, "", err
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("load %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, path, nil
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return path, nil
	}
	if info, err := os.Stat(DefaultFileName); err == nil && !info.IsDir() {
		return DefaultFileName, nil
	}
	return "", nil
}

func (c *Config) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	setString(&c.Gemini.Model, "GEMINI_MODEL")
	setString(&c.OCR.Language, "OCR_LANGUAGE")
	setString(&c.OCR.TessdataPrefix, "TESSDATA_PREFIX")
	setString(&c.Capture.Path, "CAPTURE_PATH")
	setString(&c.Telegram.Token, "TELEGRAM_BOT_TOKEN")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	if v := firstEnv("ADDR"); v != "" {
		c.Server.Addr = v
	} else if p := firstEnv("PORT"); p != "" {
		c.Server.Addr = ":" + p
	}

	if v := firstEnv("CAMERA_DEVICE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CAMERA_DEVICE=%q is not an integer", ErrInvalid, v)
		}
		c.Capture.Device = n
	}
	if v := firstEnv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: MAX_UPLOAD_BYTES=%q is not an integer", ErrInvalid, v)
		}
		c.Server.MaxUploadBytes = n
	}
	if v := firstEnv("OCR_FOCUS_CROP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: OCR_FOCUS_CROP=%q is not a boolean", ErrInvalid, v)
		}
		c.OCR.FocusCrop = b
	}
	if v := firstEnv("TELEGRAM_POLL_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TELEGRAM_POLL_TIMEOUT=%q is not an integer", ErrInvalid, v)
		}
		c.Telegram.PollTimeout = n
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func setString(dst *string, key string) {
	if v := firstEnv(key); v != "" {
		*dst = v
	}
}

func (c *Config) normalize() {
	c.Gemini.APIKey = strings.TrimSpace(c.Gemini.APIKey)
	c.Gemini.Model = strings.TrimSpace(c.Gemini.Model)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Gemini.Model == "" {
		c.Gemini.Model = defaultGeminiModel
	}
	if strings.TrimSpace(c.OCR.Language) == "" {
		c.OCR.Language = defaultOCRLanguage
	}
	if strings.TrimSpace(c.Capture.Path) == "" {
		c.Capture.Path = defaultCapturePath
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q (want debug, info, warn or error)", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want auto, text or json)", ErrInvalid, c.Logging.Format)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: server.max_upload_bytes must be positive", ErrInvalid)
	}
	if c.Capture.Device < 0 {
		return fmt.Errorf("%w: capture.device must not be negative", ErrInvalid)
	}
	if c.Telegram.PollTimeout < 0 {
		return fmt.Errorf("%w: telegram.poll_timeout must not be negative", ErrInvalid)
	}
	return nil
}

// HasCredential reports whether a Gemini API key is configured.
func (c *Config) HasCredential() bool {
	return c.Gemini.APIKey != ""
}
