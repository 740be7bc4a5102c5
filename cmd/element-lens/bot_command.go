package main

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/ironsheep/element-lens/internal/telegram"
)

var errNoBotToken = errors.New("TELEGRAM_BOT_TOKEN is not set")

func newBotCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot (long polling)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Telegram.Token == "" {
				return errNoBotToken
			}
			api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
			if err != nil {
				return fmt.Errorf("telegram login: %w", err)
			}
			ctx.log().Info("telegram bot authorized", "username", api.Self.UserName)

			a, err := ctx.newAnalyzer()
			if err != nil {
				return err
			}
			bot := telegram.New(api, cfg.Telegram.Token, a, telegram.Options{
				PollTimeout: cfg.Telegram.PollTimeout,
				Logger:      ctx.log(),
			})
			return bot.Run(cmd.Context())
		},
	}
}
