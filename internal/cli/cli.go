package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"notecal/internal/calendar"
	"notecal/internal/config"
	"notecal/internal/logs"
	"notecal/internal/notes"
	"notecal/internal/tui"
	"notecal/internal/tui/month"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	flags     config.CLIFlags
	ephemeral bool
	now       func() time.Time
}

// New builds the notecal command tree. Running it without a subcommand
// launches the interactive calendar.
func New() *cobra.Command {
	return newRoot(&rootOptions{now: time.Now})
}

func newRoot(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notecal",
		Short: "Month calendar with per-day notes",
		Long: `notecal - month calendar with per-day notes

Running notecal without arguments launches the interactive calendar.
Notes are stored as a single JSON document in the data directory.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := o.open()
			if err != nil {
				return err
			}
			start, err := startMonth(cfg.StartView, o.now())
			if err != nil {
				return err
			}
			return tui.Run(store, month.Options{Start: start, TrimRows: cfg.TrimRows, Now: o.now})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.flags.ConfigFile, "config", "", "Config file (default ~/.config/notecal/config.yaml)")
	pf.StringVarP(&o.flags.DataDir, "data-dir", "d", "", "Directory holding the note store")
	pf.StringVarP(&o.flags.StorageKey, "key", "k", "", "Storage key the notes are kept under")
	pf.StringVar(&o.flags.StartView, "month", "", "Month to open on: today or yyyy-MM")
	pf.BoolVar(&o.ephemeral, "ephemeral", false, "Keep notes in memory only")

	addAdd(cmd, o)
	addList(cmd, o)
	addRemove(cmd, o)
	addMonth(cmd, o)
	addSearch(cmd, o)
	addExport(cmd, o)
	addImport(cmd, o)
	addVersion(cmd)
	return cmd
}

// open loads configuration, initializes logging and opens the note store.
func (o *rootOptions) open() (*config.Config, *notes.Store, error) {
	cfg, err := config.Load(o.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := logs.Initialize(cfg.DataDir); err != nil {
		logs.Logger.Printf("Warning: could not initialize logger: %v", err)
	}

	var storage notes.Storage
	if o.ephemeral {
		storage = notes.NewMemoryStorage()
	} else {
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		if err := config.EnsureConfigFile(cfg.ConfigFile); err != nil {
			logs.Logger.Printf("Warning: could not create config file: %v", err)
		}
		storage = notes.NewDiskStorage(cfg.DataDir)
	}

	store, err := notes.Open(storage, cfg.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open notes: %w", err)
	}
	return cfg, store, nil
}

// parseDay accepts yyyy-MM-dd or one of today, tomorrow, yesterday.
func parseDay(s string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	return notes.ParseDate(s)
}

// startMonth resolves the configured start view.
func startMonth(view string, now time.Time) (calendar.Month, error) {
	if view == "" || view == "today" {
		return calendar.MonthOf(now), nil
	}
	return calendar.ParseMonth(view)
}
