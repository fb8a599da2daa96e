package main

import (
	"math/rand"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/ironknight/internal/application/scene"
	"github.com/younwookim/ironknight/internal/application/scene/menu"
	"github.com/younwookim/ironknight/internal/application/scene/playing"
	"github.com/younwookim/ironknight/internal/application/system"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
	"github.com/younwookim/ironknight/internal/infrastructure/logger"
	"github.com/younwookim/ironknight/internal/infrastructure/save"
	"github.com/younwookim/ironknight/internal/infrastructure/watch"
)

// app wires menu and runs together. It implements menu.Launcher.
type app struct {
	content    atomic.Pointer[config.Content]
	store      save.Store
	log        logrus.FieldLogger
	seed       int64
	recordPath string
	reloads    chan system.LevelSource
}

func newApp(content *config.Content, store save.Store, log logrus.FieldLogger, seed int64, recordPath string) *app {
	a := &app{
		store:      store,
		log:        log,
		seed:       seed,
		recordPath: recordPath,
		reloads:    make(chan system.LevelSource, 1),
	}
	a.content.Store(content)
	return a
}

// menu builds the main menu scene
func (a *app) menu() scene.Scene {
	display := a.content.Load().Game.Display
	return menu.New(a, menu.KeyboardInput{}, display.Title, display.ScreenWidth, display.ScreenHeight)
}

// nextSeed returns the seed of the next run. Runs are seeded one after
// another from the starting seed.
func (a *app) nextSeed() int64 {
	seed := a.seed
	a.seed++
	return seed
}

// Start implements menu.Launcher
func (a *app) Start(continueGame bool) (scene.Scene, error) {
	content := a.content.Load()
	seed := a.nextSeed()
	runID := logger.NewRunID()
	log := logger.ForRun(a.log, runID)

	var rec *playing.Recorder
	if a.recordPath != "" {
		var stored *save.State
		if st, err := a.store.Load(); err == nil {
			stored = &st
		}
		rec = playing.NewRecorder(runID, seed, continueGame, stored)
	}

	session := system.NewSession(content.Game, content, a.store, rand.New(rand.NewSource(seed)), log)
	start := session.NewGame
	if continueGame {
		start = session.Continue
	}
	if err := start(); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"seed":     seed,
		"continue": continueGame,
		"level":    session.Level(),
	}).Info("run started")

	display := content.Game.Display
	return playing.New(session, playing.NewKeyboardInput(), display.ScreenWidth, display.ScreenHeight, playing.Options{
		Recorder:   rec,
		RecordPath: a.recordPath,
		Back:       a.menu,
		Reloads:    a.reloads,
		Log:        log,
	}), nil
}

// watchLevels reloads the content on every edit and hands it to the
// running level. It returns when the watcher closes.
func (a *app) watchLevels(w *watch.Watcher, loader *config.Loader) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			a.reload(loader, name)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			a.log.WithError(err).Warn("config watch error")
		}
	}
}

// reload loads the content again and queues it, replacing any pending reload
func (a *app) reload(loader *config.Loader, changed string) {
	content, err := loader.LoadAll()
	if err != nil {
		a.log.WithError(err).WithField("file", changed).Error("failed to reload config")
		return
	}
	a.content.Store(content)

	select {
	case <-a.reloads:
	default:
	}
	a.reloads <- content
	a.log.WithField("file", changed).Info("config reloaded")
}
