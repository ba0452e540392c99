package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lrcsync/internal/config"
	"lrcsync/internal/library"
	"lrcsync/internal/logging"
	"lrcsync/internal/lyricsource"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the lyrics library",
	}

	libraryCmd.AddCommand(newLibraryAddCommand(ctx))
	libraryCmd.AddCommand(newLibraryListCommand(ctx))
	libraryCmd.AddCommand(newLibraryShowCommand(ctx))
	libraryCmd.AddCommand(newLibraryRemoveCommand(ctx))
	libraryCmd.AddCommand(newLibraryImportCommand(ctx))

	return libraryCmd
}

func newLibraryAddCommand(ctx *commandContext) *cobra.Command {
	var title, artist, album, audioPath, lrcPath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a track to the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			track := library.Track{Title: title, Artist: artist, Album: album}

			if p := strings.TrimSpace(lrcPath); p != "" {
				expanded, err := config.ExpandPath(p)
				if err != nil {
					return fmt.Errorf("resolve lrc path: %w", err)
				}
				data, err := os.ReadFile(expanded)
				if err != nil {
					return fmt.Errorf("read lrc: %w", err)
				}
				track.LRC = string(data)
			}

			if p := strings.TrimSpace(audioPath); p != "" {
				expanded, err := config.ExpandPath(p)
				if err != nil {
					return fmt.Errorf("resolve audio path: %w", err)
				}
				track.AudioPath = expanded
				if info, err := lyricsource.ReadAudioInfo(expanded); err == nil {
					track.Title = firstSet(track.Title, info.Title)
					track.Artist = firstSet(track.Artist, info.Artist)
					track.Album = firstSet(track.Album, info.Album)
				} else {
					ctx.loggerValue().Debug("audio tags unavailable", logging.String("path", expanded), logging.Error(err))
				}
				if track.LRC == "" {
					raw, err := audioSource(cfg).Lyrics(cmd.Context(), expanded)
					switch {
					case err == nil:
						track.LRC = raw
					case !errors.Is(err, lyricsource.ErrNotFound):
						return err
					}
				}
			}

			return ctx.withLibrary(func(store *library.Store) error {
				added, err := store.Add(cmd.Context(), track)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s - %s (%d lines) as %s\n", added.Artist, added.Title, added.LineCount, added.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Track title (default: LRC [ti:] tag or audio tags)")
	cmd.Flags().StringVar(&artist, "artist", "", "Track artist (default: LRC [ar:] tag or audio tags)")
	cmd.Flags().StringVar(&album, "album", "", "Album name")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Audio file for tags and embedded lyrics")
	cmd.Flags().StringVar(&lrcPath, "lrc", "", "LRC file with synchronized lyrics")
	return cmd
}

func newLibraryListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				tracks, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					if tracks == nil {
						tracks = []*library.Track{}
					}
					return writeJSON(cmd, tracks)
				}
				out := cmd.OutOrStdout()
				if len(tracks) == 0 {
					fmt.Fprintln(out, "Library is empty")
					return nil
				}
				rows := make([][]string, 0, len(tracks))
				for _, track := range tracks {
					rows = append(rows, []string{
						track.ID,
						truncateCell(track.Artist, 24),
						truncateCell(track.Title, 32),
						strconv.Itoa(track.LineCount),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Artist", "Title", "Lines"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newLibraryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a library track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				track, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, track)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:       %s\n", track.ID)
				fmt.Fprintf(out, "Title:    %s\n", track.Title)
				fmt.Fprintf(out, "Artist:   %s\n", track.Artist)
				if track.Album != "" {
					fmt.Fprintf(out, "Album:    %s\n", track.Album)
				}
				if track.AudioPath != "" {
					fmt.Fprintf(out, "Audio:    %s\n", track.AudioPath)
				}
				fmt.Fprintf(out, "Lines:    %d\n", track.LineCount)
				fmt.Fprintf(out, "Updated:  %s\n", track.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newLibraryRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID...",
		Short: "Remove tracks from the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				out := cmd.OutOrStdout()
				for _, id := range args {
					removed, err := store.Remove(cmd.Context(), id)
					if err != nil {
						return err
					}
					if removed {
						fmt.Fprintf(out, "Removed %s\n", id)
					} else {
						fmt.Fprintf(out, "Track %s not found\n", id)
					}
				}
				return nil
			})
		},
	}
}

func newLibraryImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-dir [DIR]",
		Short: "Import every .lrc file in a directory (default: the lyrics directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			dir := cfg.Paths.LyricsDir
			if len(args) > 0 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve directory: %w", err)
				}
				dir = expanded
			}

			logger := logging.NewComponentLogger(ctx.loggerValue(), "library")
			return library.WithImportLock(cmd.Context(), cfg.Paths.DataDir, func() error {
				return ctx.withLibrary(func(store *library.Store) error {
					result, err := store.ImportDir(cmd.Context(), dir)
					if result != nil {
						out := cmd.OutOrStdout()
						for _, track := range result.Added {
							fmt.Fprintf(out, "Imported %s - %s (%d lines)\n", track.Artist, track.Title, track.LineCount)
						}
						for _, path := range result.Skipped {
							fmt.Fprintf(out, "Skipped %s: no timed lines\n", path)
						}
						logger.Info("library import complete",
							logging.String("dir", dir),
							logging.Int("added", len(result.Added)),
							logging.Int("skipped", len(result.Skipped)),
						)
					}
					return err
				})
			})
		},
	}
}

func firstSet(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
