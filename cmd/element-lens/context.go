package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ironsheep/element-lens/internal/config"
	"github.com/ironsheep/element-lens/internal/logging"
	"github.com/ironsheep/element-lens/internal/ocr"
	"github.com/ironsheep/element-lens/internal/pipeline"
	"github.com/ironsheep/element-lens/internal/responder"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureConfig loads configuration and builds the logger once per process.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, err := config.Load(config.LoadOptions{ConfigPath: path})
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Writer: os.Stderr,
		})
		if err != nil {
			c.configErr = err
			return
		}
		if !cfg.HasCredential() {
			logger.Warn("no Gemini API key configured; element details will be unavailable")
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.Discard()
	}
	return c.logger
}

// newAnalyzer wires the Tesseract extractor and Gemini responder.
func (c *commandContext) newAnalyzer() (*pipeline.Analyzer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	extractor := ocr.NewTesseract(cfg.OCR.Language, cfg.OCR.TessdataPrefix)
	extractor.Prepare.Focus = cfg.OCR.FocusCrop
	resp := responder.NewGemini(cfg.Gemini.APIKey, cfg.Gemini.Model)
	return pipeline.New(extractor, nil, resp, c.log()), nil
}
