package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/element-lens/internal/capture"
	"github.com/ironsheep/element-lens/internal/capture/webcam"
	"github.com/ironsheep/element-lens/internal/pipeline"
)

type analyzer interface {
	Analyze(ctx context.Context, imagePath string) (pipeline.Result, error)
}

// attachCaptureRun makes the root command capture from the webcam.
func attachCaptureRun(cmd *cobra.Command, ctx *commandContext) {
	var device int
	var output string

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("device") {
			device = cfg.Capture.Device
		}
		if output == "" {
			output = cfg.Capture.Path
		}

		a, err := ctx.newAnalyzer()
		if err != nil {
			return err
		}
		cam := webcam.New(device, output, ctx.log())
		runSource(cmd.Context(), cam, a, cmd.OutOrStdout())
		return nil
	}

	cmd.Flags().IntVar(&device, "device", 0, "Webcam device index")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Where to save the captured frame")
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <image>",
		Short: "Identify the element symbol in an existing image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newAnalyzer()
			if err != nil {
				return err
			}
			runSource(cmd.Context(), capture.File(args[0]), a, cmd.OutOrStdout())
			return nil
		},
	}
}

// runSource acquires an image, analyzes it and prints the outcome. Failures
// are reported on out as "Error: ..." rather than returned.
func runSource(ctx context.Context, src capture.Source, a analyzer, out io.Writer) {
	path, cleanup, err := src.Acquire(ctx)
	defer cleanup()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	res, err := a.Analyze(ctx, path)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(out, res.Message())
}
