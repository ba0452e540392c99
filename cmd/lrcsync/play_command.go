package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"lrcsync/internal/logging"
	"lrcsync/internal/lyrics"
	"lrcsync/internal/playback"
	"lrcsync/internal/scroll"
	"lrcsync/internal/syncsession"
)

// playTailMs keeps playback running briefly after the last line starts.
const playTailMs = 3000

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var trackID string
	var from int64
	var until int64
	var speed float64

	cmd := &cobra.Command{
		Use:   "play [FILE]",
		Short: "Play lyrics against a simulated clock",
		Long: "Play lyrics against a simulated clock, printing each line as auto-scroll reaches it.\n\n" +
			"While playing, type s and Enter to simulate a manual scroll (auto-scroll pauses\n" +
			"until the recovery interval passes), or q and Enter to stop.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if speed <= 0 {
				return fmt.Errorf("--speed must be positive, got %v", speed)
			}
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			doc, err := loadDocument(cmd.Context(), ctx, path, trackID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if doc.Empty() {
				fmt.Fprintln(out, "No timed lines found")
				return nil
			}

			cfg := ctx.configValue()
			logger := ctx.loggerValue()
			session, err := syncsession.New(doc,
				syncsession.WithConfig(cfg.ScrollConfig()),
				syncsession.WithLogger(logger),
				syncsession.WithOffset(cfg.Sync.HonorOffset),
			)
			if err != nil {
				return err
			}

			colorize := shouldColorize(out)
			session.Subscribe(func(effect scroll.Effect) {
				if line, ok := session.Document().Line(effect.Index); ok {
					fmt.Fprintln(out, renderActiveLine(line, colorize))
				}
			})

			clock := playback.NewSimulated(nil)
			clock.SetSpeed(speed)
			clock.Seek(from)

			end := until
			if end <= 0 {
				end = playbackEnd(doc)
			}
			driver, err := playback.NewDriver(session, clock, playback.DriverOptions{
				TickInterval: cfg.TickInterval(),
				EndMs:        end,
				Logger:       logger,
			})
			if err != nil {
				return err
			}

			if title := describeDocument(doc); title != "" {
				fmt.Fprintln(out, title)
			}

			runCtx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go readControls(runCtx, cmd.InOrStdin(), driver, cancel, logger)

			clock.Start()
			err = driver.Run(runCtx)
			if errors.Is(err, context.Canceled) && cmd.Context().Err() == nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&trackID, "track", "", "Library track ID instead of a file")
	cmd.Flags().Int64Var(&from, "from", 0, "Start position in milliseconds")
	cmd.Flags().Int64Var(&until, "until", 0, "Stop position in milliseconds (default: shortly after the last line)")
	cmd.Flags().Float64Var(&speed, "speed", 1, "Playback speed multiplier")
	return cmd
}

func playbackEnd(doc *lyrics.Document) int64 {
	last, ok := doc.Line(doc.Len() - 1)
	if !ok {
		return 0
	}
	return last.TimestampMs + playTailMs
}

func describeDocument(doc *lyrics.Document) string {
	meta := doc.Metadata()
	switch {
	case meta.Title != "" && meta.Artist != "":
		return fmt.Sprintf("%s - %s (%d lines)", meta.Artist, meta.Title, doc.Len())
	case meta.Title != "":
		return fmt.Sprintf("%s (%d lines)", meta.Title, doc.Len())
	default:
		return ""
	}
}

// readControls turns stdin lines into driver input until ctx ends or input
// closes.
func readControls(ctx context.Context, in io.Reader, driver *playback.Driver, quit context.CancelFunc, logger *slog.Logger) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "s", "scroll":
			if !driver.ManualScroll(0) {
				return
			}
		case "q", "quit":
			quit()
			return
		case "":
		default:
			logger.Debug("unknown playback control", logging.String("input", scanner.Text()))
		}
	}
}
