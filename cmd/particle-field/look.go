package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/animator"
	"github.com/lixenwraith/particle-field/config"
)

// lookOf extracts the live-tunable settings of cfg
func lookOf(cfg config.Config) (animator.Look, error) {
	opts, err := cfg.FieldOptions()
	if err != nil {
		return animator.Look{}, err
	}
	return animator.Look{
		Style:          opts.Style(),
		Backdrop:       cfg.Blobs.Enabled,
		BackdropAlpha:  cfg.Blobs.Alpha,
		BackdropRadius: cfg.Blobs.RadiusScale,
	}, nil
}

// looks converts reloaded configs into restyles until ctx ends or reloads stop
// The newest pending look replaces an undelivered one
func looks(ctx context.Context, reloads <-chan config.Config, log *zap.Logger) <-chan animator.Look {
	out := make(chan animator.Look, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-reloads:
				if !ok {
					return
				}
				l, err := lookOf(cfg)
				if err != nil {
					log.Warn("config reload ignored", zap.Error(err))
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- l
			}
		}
	}()
	return out
}
