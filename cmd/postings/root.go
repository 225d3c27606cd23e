package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/postings/internal/catalog"
	"github.com/amishk599/postings/internal/config"
	"github.com/amishk599/postings/internal/listing"
	"github.com/amishk599/postings/internal/model"
	"github.com/amishk599/postings/internal/store"
)

const defaultConfigPath = "postings.yaml"

var (
	cfgPath   string
	debug     bool
	ephemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "postings",
	Short: "Browse job postings and track what you applied to",
	Long:  "Postings lists job postings with search, date-range filtering and sorting, and remembers which ones you applied to.",
	// Default to `browse` so that `postings` with no args opens the TUI.
	RunE:         runBrowse,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: POSTINGS_CONFIG env var or ./postings.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep applied jobs in memory only for this run")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > POSTINGS_CONFIG env var (.env honoured) > "./postings.yaml".
// A missing default file falls back to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	if path == "" {
		if env := os.Getenv("POSTINGS_CONFIG"); env != "" {
			path = env
		} else {
			if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
				return config.Default(), nil
			}
			path = defaultConfigPath
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// openRepository returns the configured applied-set backend and a close func.
func openRepository(cfg *config.Config, logger *slog.Logger) (model.AppliedRepository, func() error, error) {
	nop := func() error { return nil }

	storageType := cfg.Storage.Type
	if ephemeral {
		storageType = config.StorageMemory
	}

	switch storageType {
	case config.StorageMemory:
		logger.Debug("using in-memory storage, applied jobs will not be saved")
		return store.NewMemoryStore(), nop, nil
	case config.StorageFile:
		logger.Debug("using file storage", "path", cfg.Storage.Path)
		return store.NewFileStore(cfg.Storage.Path), nop, nil
	default:
		s, err := store.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using sqlite storage", "path", cfg.Storage.Path)
		return s, s.Close, nil
	}
}

func loadJobs(cfg *config.Config) ([]model.Job, error) {
	if cfg.Catalog == "" {
		return catalog.Seed(), nil
	}
	return catalog.LoadFile(cfg.Catalog)
}

// setupBoard loads config, catalog and storage and returns the board with a
// cleanup func. Failures are logged to logger and exit the process; the board
// itself logs to boardLogger.
func setupBoard(logger, boardLogger *slog.Logger) (*config.Config, *listing.Board, func()) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	jobs, err := loadJobs(cfg)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	repo, closeRepo, err := openRepository(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.Storage.Type, "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}

	board := listing.NewBoard(jobs, repo, boardLogger)
	return cfg, board, func() {
		if err := closeRepo(); err != nil {
			logger.Warn("closing store", "error", err)
		}
	}
}

func listingCriteria(cfg *config.Config) listing.Criteria {
	return listing.Criteria{Sort: cfg.Display.DefaultSort, Locale: cfg.Display.Locale}
}

func jobNotFound(err error) (int, bool) {
	var nf *model.JobNotFoundError
	if errors.As(err, &nf) {
		return nf.ID, true
	}
	return 0, false
}

func knownJob(board *listing.Board, id int) bool {
	for _, j := range board.Jobs() {
		if j.ID == id {
			return true
		}
	}
	return false
}

func describeJob(board *listing.Board, id int) string {
	for _, j := range board.Jobs() {
		if j.ID == id {
			return fmt.Sprintf("%d %s", j.ID, j.Title)
		}
	}
	return fmt.Sprint(id)
}
