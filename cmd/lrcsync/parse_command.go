package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"lrcsync/internal/lyrics"
)

type parseOutput struct {
	Metadata lyrics.Metadata `json:"metadata"`
	Lines    []lyrics.Line   `json:"lines"`
	Skipped  int             `json:"skipped_records"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var width int

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a lyrics file and list its timed lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd.Context(), ctx, args[0], "")
			if err != nil {
				return err
			}

			if jsonOutput {
				lines := doc.Lines()
				if lines == nil {
					lines = []lyrics.Line{}
				}
				return writeJSON(cmd, parseOutput{
					Metadata: doc.Metadata(),
					Lines:    lines,
					Skipped:  doc.Skipped(),
				})
			}

			out := cmd.OutOrStdout()
			for _, field := range metadataFields(doc.Metadata()) {
				fmt.Fprintf(out, "%-8s %s\n", field[0]+":", field[1])
			}
			if doc.Empty() {
				fmt.Fprintln(out, "No timed lines found")
				return nil
			}

			rows := make([][]string, 0, doc.Len())
			for i, line := range doc.Lines() {
				rows = append(rows, []string{
					strconv.Itoa(i),
					formatTimestamp(line.TimestampMs),
					truncateCell(line.Text, width),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Time", "Text"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d lines, %d skipped records\n", doc.Len(), doc.Skipped())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&width, "width", 60, "Truncate line text to this many columns (0 disables)")
	return cmd
}

func metadataFields(meta lyrics.Metadata) [][2]string {
	var fields [][2]string
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, [2]string{label, value})
		}
	}
	add("Title", meta.Title)
	add("Artist", meta.Artist)
	add("Album", meta.Album)
	add("Author", meta.Author)
	add("Length", meta.Length)
	if meta.OffsetMs != 0 {
		add("Offset", fmt.Sprintf("%dms", meta.OffsetMs))
	}
	keys := make([]string, 0, len(meta.Extra))
	for key := range meta.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		add(key, meta.Extra[key])
	}
	return fields
}
