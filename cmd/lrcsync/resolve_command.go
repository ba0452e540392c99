package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lrcsync/internal/lyrics"
)

type resolveOutput struct {
	PositionMs int64        `json:"position_ms"`
	Index      int          `json:"index"`
	Line       *lyrics.Line `json:"line,omitempty"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var at int64
	var trackID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve [FILE]",
		Short: "Show the active line at a playback position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			doc, err := loadDocument(cmd.Context(), ctx, path, trackID)
			if err != nil {
				return err
			}

			position := at
			if ctx.configValue().Sync.HonorOffset {
				position += doc.Metadata().OffsetMs
			}
			index, ok := lyrics.Resolve(doc, position)
			result := resolveOutput{PositionMs: at, Index: index}
			if ok {
				line, _ := doc.Line(index)
				result.Line = &line
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			if result.Line == nil {
				fmt.Fprintf(out, "%s: none\n", formatTimestamp(at))
				return nil
			}
			fmt.Fprintf(out, "%s: line %d %s\n", formatTimestamp(at), index, renderActiveLine(*result.Line, false))
			return nil
		},
	}

	cmd.Flags().Int64Var(&at, "at", 0, "Playback position in milliseconds")
	cmd.Flags().StringVar(&trackID, "track", "", "Library track ID instead of a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
