package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"notecal/internal/calendar"
	"notecal/internal/notes"
)

func addAdd(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "add DATE TEXT...",
		Short: "Add a note to a date",
		Example: `
notecal add 2024-03-15 dentist at 10
notecal add today call mom
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0], o.now())
			if err != nil {
				return err
			}
			_, store, err := o.open()
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			added, err := store.Add(day, text)
			if err != nil {
				return err
			}
			if !added {
				return errors.New("note text is empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added to %s: %s\n", formatDay(day), text)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addList(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:     "list [DATE|MONTH]",
		Aliases: []string{"ls", "l"},
		Short:   "List notes, optionally for one date (yyyy-MM-dd) or month (yyyy-MM)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := o.open()
			if err != nil {
				return err
			}
			matches := store.All()
			if len(args) == 1 {
				matches, err = filterMatches(matches, args[0], o)
				if err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "No events found.")
				return nil
			}
			printMatches(out, matches)
			fmt.Fprintf(out, "\n%d event(s)\n", len(matches))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func filterMatches(all []notes.Match, arg string, o *rootOptions) ([]notes.Match, error) {
	if m, err := calendar.ParseMonth(arg); err == nil {
		var out []notes.Match
		for _, match := range all {
			if m.Contains(match.Date) {
				out = append(out, match)
			}
		}
		return out, nil
	}

	day, err := parseDay(arg, o.now())
	if err != nil {
		return nil, err
	}
	var out []notes.Match
	for _, match := range all {
		if calendar.SameDay(match.Date, day) {
			out = append(out, match)
		}
	}
	return out, nil
}

func addRemove(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:     "rm DATE INDEX",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove the note at INDEX (as shown by list) from a date",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0], o.now())
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[1])
			}
			_, store, err := o.open()
			if err != nil {
				return err
			}
			list := store.Notes(day)
			removed, err := store.Remove(day, index)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no note %d on %s", index, notes.Key(day))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed from %s: %s\n", formatDay(day), list[index])
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addMonth(topLevel *cobra.Command, o *rootOptions) {
	var trim bool
	cmd := &cobra.Command{
		Use:   "month [MONTH]",
		Short: "Print a month grid (yyyy-MM, default current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := o.now()
			m := calendar.MonthOf(now)
			if len(args) == 1 {
				var err error
				if m, err = startMonth(args[0], now); err != nil {
					return err
				}
			}
			cfg, store, err := o.open()
			if err != nil {
				return err
			}
			printGrid(cmd.OutOrStdout(), calendar.Generate(m, now), store, trim || cfg.TrimRows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&trim, "trim", false, "Drop trailing blank weeks")
	topLevel.AddCommand(cmd)
}

func addSearch(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:     "search QUERY...",
		Aliases: []string{"find"},
		Short:   "Fuzzy search all notes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := o.open()
			if err != nil {
				return err
			}
			matches := store.Search(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "No events found.")
				return nil
			}
			printMatches(out, matches)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command, o *rootOptions) {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all notes to stdout as json or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := o.open()
			if err != nil {
				return err
			}
			return store.Export(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "import DIR",
		Short: "Import dated markdown notes (frontmatter date or yyyy-MM-dd filename)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := notes.ScanMarkdown(args[0])
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}
			_, store, err := o.open()
			if err != nil {
				return err
			}
			added, err := store.Import(entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d note(s)\n", added, len(entries))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addVersion(topLevel *cobra.Command) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notecal %s\n", Version)
		},
	})
}
