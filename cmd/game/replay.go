package main

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/ironknight/internal/application/replay"
	"github.com/younwookim/ironknight/internal/application/system"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
)

// runReplay plays a recording without a window and logs where it ended
func runReplay(path string, content *config.Content, log logrus.FieldLogger) (*system.Session, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"file":   path,
		"run_id": data.RunID,
		"seed":   data.Seed,
		"frames": len(data.Frames),
	}).Info("replaying")

	s, err := replay.Run(*data, content.Game, content, log)
	if err != nil {
		return nil, err
	}

	hud := s.HUD()
	log.WithFields(logrus.Fields{
		"state": s.State().String(),
		"level": hud.Level,
		"money": hud.Money,
		"score": hud.Score,
		"ticks": s.Ticks(),
	}).Info("replay finished")
	return s, nil
}
