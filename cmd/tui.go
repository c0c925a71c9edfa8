package cmd

import (
	"fmt"
	"os"

	"github.com/matheuskafuri/campusnews/internal/config"
	"github.com/matheuskafuri/campusnews/internal/content"
	"github.com/matheuskafuri/campusnews/internal/logging"
	"github.com/matheuskafuri/campusnews/internal/prefs"
	"github.com/matheuskafuri/campusnews/internal/store"
	"github.com/matheuskafuri/campusnews/internal/tui"
)

// runApp launches the TUI. An empty section uses the configured default.
func runApp(section string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logging.Init(config.LogDir(), cfg.Level()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer logging.Close()

	lib, err := content.LoadLibrary(contentPath(cfg))
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	storage, closeStorage := openStorage()
	defer closeStorage()

	root := tui.NewStyleRoot()
	mgr := prefs.New(storage, root)
	mgr.Load()

	if section == "" {
		section = cfg.Section()
	}
	logging.Info("starting", "section", section, "news", len(lib.News), "events", len(lib.Events))

	return tui.Run(tui.RunOpts{
		Cfg:         cfg,
		Library:     lib,
		Prefs:       mgr,
		Root:        root,
		ContentPath: contentPath(cfg),
		Section:     section,
	})
}

func contentPath(cfg *config.Config) string {
	if flagContent != "" {
		return flagContent
	}
	return cfg.ContentFile
}

func storePath() string {
	if flagStore != "" {
		return flagStore
	}
	return config.StorePath()
}

// openStorage returns the durable preference store, or an in-memory one when
// --no-store is set or the database cannot be opened.
func openStorage() (prefs.Storage, func()) {
	if flagNoStore {
		return prefs.NewMemoryStorage(), func() {}
	}
	db, err := store.Open(storePath())
	if err != nil {
		logging.Warn("preference store unavailable, using memory", "path", storePath(), "err", err)
		return prefs.NewMemoryStorage(), func() {}
	}
	if err := db.SetLastOpened(); err != nil {
		logging.Warn("recording last opened", "err", err)
	}
	return db, func() { db.Close() }
}
