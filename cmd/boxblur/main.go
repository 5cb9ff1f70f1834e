// Command boxblur applies a 3x3 box blur to one or more images.
//
// Usage:
//
//	boxblur [flags] INPUT1 OUTPUT1 [INPUT2 OUTPUT2 ...]
//
// Every input is loaded before any image is blurred, and every image is
// blurred before any output is written. Outputs are always PNG, whatever
// their extension. The first failure aborts the whole batch and exits 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/boxblur"
	"github.com/gogpu/boxblur/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	if errors.Is(err, pipeline.ErrUsage) {
		fmt.Fprintln(stderr, cmd.UsageString())
	}
	fmt.Fprintf(stderr, "boxblur: %v\n", err)
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose   bool
		maxPixels int64
	)

	cmd := &cobra.Command{
		Use:   "boxblur INPUT1 OUTPUT1 [INPUT2 OUTPUT2 ...]",
		Short: "Apply a 3x3 box blur to images and save them as PNG",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return pipeline.ErrUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				prevLogger := boxblur.Logger()
				boxblur.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
				defer boxblur.SetLogger(prevLogger)
			}

			prevLimit := boxblur.SetPixelLimit(maxPixels)
			defer boxblur.SetPixelLimit(prevLimit)

			pairs, err := pipeline.ParsePairs(args)
			if err != nil {
				return err
			}

			sum, err := pipeline.New().Run(pairs)
			if err != nil {
				return err
			}

			if verbose {
				p := message.NewPrinter(language.English)
				p.Fprintf(stdout, "blurred %d images (%d pixels)\n", sum.Images, sum.Pixels)
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", pipeline.ErrUsage, err)
	})

	flags := cmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	flags.Int64Var(&maxPixels, "max-pixels", boxblur.DefaultPixelLimit, "maximum pixels per image")

	return cmd
}
