package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ironsheep/element-lens/internal/capture"
	"github.com/ironsheep/element-lens/internal/pipeline"
)

// MaxMessageRunes is Telegram's limit on a text message.
const MaxMessageRunes = 4096

const (
	usageText = "Send me a photo of a chemical element symbol (for example \"Fe\") " +
		"and I will tell you about the element.\nCommands: /start, /help"
	hintText       = "Please send a photo of an element symbol."
	unknownCommand = "Unknown command. Try /help."
	workingText    = "Looking at your photo..."
)

// Analyzer runs the element pipeline on an image file.
type Analyzer interface {
	Analyze(ctx context.Context, imagePath string) (pipeline.Result, error)
}

// API is the part of *tgbotapi.BotAPI the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

// Options configures a Bot.
type Options struct {
	// PollTimeout is the long-poll timeout in seconds. Zero means 30.
	PollTimeout int

	// TempDir receives downloaded photos. Empty means os.TempDir.
	TempDir string

	Logger *slog.Logger
}

// Bot answers photo messages with element details.
type Bot struct {
	api      API
	token    string
	analyzer Analyzer
	opts     Options
	logger   *slog.Logger

	fetch func(ctx context.Context, url string) (io.ReadCloser, error)
}

// New creates a bot. token is needed to build file download links.
func New(api API, token string, a Analyzer, opts Options) *Bot {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 30
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	return &Bot{
		api:      api,
		token:    token,
		analyzer: a,
		opts:     opts,
		logger:   logger,
		fetch: func(ctx context.Context, url string) (io.ReadCloser, error) {
			return download(ctx, client, url)
		},
	}
}

// Run polls for updates until ctx is cancelled. Transient polling errors are
// retried with a delay.
func (b *Bot) Run(ctx context.Context) error {
	offset := 0
	const (
		baseDelay = 1 * time.Second
		maxDelay  = 15 * time.Second
	)

	b.logger.Info("telegram polling started", "timeout", b.opts.PollTimeout)
	for {
		if err := ctx.Err(); err != nil {
			b.logger.Info("telegram polling stopped")
			return nil
		}

		u := tgbotapi.NewUpdate(offset)
		u.Timeout = b.opts.PollTimeout

		updates, err := b.api.GetUpdates(u)
		if err != nil {
			d := min(max(retryDelay(err), baseDelay), maxDelay)
			b.logger.Warn("polling error", "error", err, "retry_in", d)
			if !sleep(ctx, d) {
				return nil
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

// HandleUpdate processes a single update synchronously.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil {
		return
	}
	cid := msg.Chat.ID

	switch {
	case msg.IsCommand():
		b.handleCommand(msg)
	case len(msg.Photo) > 0:
		b.handleImage(ctx, msg, largestPhoto(msg.Photo).FileID, ".jpg")
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/"):
		b.handleImage(ctx, msg, msg.Document.FileID, documentSuffix(msg.Document))
	default:
		b.reply(cid, msg.MessageID, hintText)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.reply(msg.Chat.ID, 0, usageText)
	default:
		b.reply(msg.Chat.ID, msg.MessageID, unknownCommand)
	}
}

func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID, suffix string) {
	cid := msg.Chat.ID
	log := b.logger.With("chat_id", cid, "message_id", msg.MessageID)

	b.reply(cid, 0, workingText)

	path, cleanup, err := b.saveFile(ctx, fileID, suffix)
	if err != nil {
		log.Error("download photo", "error", err)
		b.reply(cid, msg.MessageID, fmt.Sprintf("Could not download the photo: %v", err))
		return
	}
	defer cleanup()

	res, err := b.analyzer.Analyze(ctx, path)
	if err != nil {
		log.Warn("analysis failed", "error", err)
	} else {
		log.Info("analysis finished", "kind", res.Kind.String(), "symbol", res.Symbol)
	}
	b.reply(cid, msg.MessageID, FormatReply(res, err))
}

// saveFile downloads a Telegram file into a temp file.
func (b *Bot) saveFile(ctx context.Context, fileID, suffix string) (string, func(), error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", func() {}, fmt.Errorf("get file: %w", err)
	}
	body, err := b.fetch(ctx, file.Link(b.token))
	if err != nil {
		return "", func() {}, err
	}
	defer body.Close()

	return capture.SaveUpload(b.opts.TempDir, body, suffix)
}

func (b *Bot) reply(chatID int64, replyTo int, text string) {
	m := tgbotapi.NewMessage(chatID, Truncate(text, MaxMessageRunes))
	m.ReplyToMessageID = replyTo
	if _, err := b.api.Send(m); err != nil {
		b.logger.Warn("send message", "chat_id", chatID, "error", err)
	}
}

// FormatReply renders an analysis outcome as chat text.
func FormatReply(res pipeline.Result, err error) string {
	if err != nil {
		return fmt.Sprintf("Error processing image: %v", err)
	}
	if res.Kind == pipeline.KindDone {
		return res.Element() + "\n\n" + res.Details
	}
	return res.Message()
}

// Truncate shortens s to at most n runes, ending with an ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

func largestPhoto(sizes []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	best := sizes[0]
	for _, p := range sizes[1:] {
		if p.Width*p.Height > best.Width*best.Height {
			best = p
		}
	}
	return best
}

func documentSuffix(doc *tgbotapi.Document) string {
	switch doc.MimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/bmp":
		return ".bmp"
	case "image/tiff":
		return ".tiff"
	default:
		return ".jpg"
	}
}

func download(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

var reRetryAfter = regexp.MustCompile(`(?i)retry after\s+(\d+)`)

func retryDelay(err error) time.Duration {
	if err == nil {
		return 0
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "too many requests") {
		if m := reRetryAfter.FindStringSubmatch(s); len(m) == 2 {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				return time.Duration(n) * time.Second
			}
		}
		return 3 * time.Second
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return 2 * time.Second
	}
	return 1 * time.Second
}

// sleep waits for d or ctx, reporting false when ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
