package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/element-lens/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload page and the /analyze endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			a, err := ctx.newAnalyzer()
			if err != nil {
				return err
			}
			srv := server.New(a, server.Options{
				Addr:           addr,
				MaxUploadBytes: cfg.Server.MaxUploadBytes,
				Logger:         ctx.log(),
			})
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
