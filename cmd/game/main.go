package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/ironknight/internal/application/game"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
	"github.com/younwookim/ironknight/internal/infrastructure/logger"
	"github.com/younwookim/ironknight/internal/infrastructure/save"
	"github.com/younwookim/ironknight/internal/infrastructure/watch"
)

// options are the command line flags
type options struct {
	configDir string
	savePath  string
	store     string
	record    string
	replay    string
	watch     bool
	seed      int64
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet("ironknight", flag.ContinueOnError)
	fset.SetOutput(out)
	fset.StringVar(&opts.configDir, "config", "", "Load config from this directory instead of the embedded defaults")
	fset.StringVar(&opts.savePath, "save", "", "Save file (file store) or directory (badger store)")
	fset.StringVar(&opts.store, "store", "", "Save backend: file or badger (default from game.yaml)")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replay, "replay", "", "Replay a recording headlessly and print the outcome")
	fset.BoolVar(&opts.watch, "watch", false, "Reload level maps when files under -config change")
	fset.Int64Var(&opts.seed, "seed", 0, "RNG seed for the first run (0 = time based)")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if opts.watch && opts.configDir == "" {
		return options{}, errors.New("-watch requires -config")
	}
	return opts, nil
}

// newLoader reads config from dir, or from the embedded defaults when empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// openStore opens the save backend. The returned close func is never nil.
func openStore(opts options, cfg config.SaveConfig) (save.Store, func() error, error) {
	backend := opts.store
	if backend == "" {
		backend = cfg.Backend
	}
	path := opts.savePath
	if path == "" {
		path = cfg.Path
	}
	noop := func() error { return nil }

	switch backend {
	case "", "file":
		return save.NewFileStore(path), noop, nil
	case "badger":
		dir := opts.savePath
		if dir == "" {
			dir = filepath.Join(filepath.Dir(path), "badger")
		}
		store, err := save.OpenBadgerStore(dir)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown save backend %q", backend)
	}
}

func main() {
	logger.Init()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid flags")
	}

	if err := run(opts, logger.Log); err != nil {
		logger.Log.WithError(err).Fatal("game exited with error")
	}
}

func run(opts options, log *logrus.Logger) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}
	content, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.replay != "" {
		_, err := runReplay(opts.replay, content, log)
		return err
	}

	store, closeStore, err := openStore(opts, content.Game.Save)
	if err != nil {
		return fmt.Errorf("failed to open save store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("failed to close save store")
		}
	}()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a := newApp(content, store, log, seed, opts.record)

	if opts.watch {
		w, err := watch.NewWatcher(opts.configDir, filepath.Join(opts.configDir, "levels"))
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		defer func() { _ = w.Close() }()
		go a.watchLevels(w, loader)
		log.WithField("dir", opts.configDir).Info("watching config for changes")
	}

	display := content.Game.Display
	ebiten.SetWindowSize(int(float64(display.ScreenWidth)*display.Scale), int(float64(display.ScreenHeight)*display.Scale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TPS)

	g := game.New(a.menu(), display.ScreenWidth, display.ScreenHeight)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	log.Info("game closed")
	return nil
}
