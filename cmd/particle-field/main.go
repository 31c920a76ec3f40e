package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/animator"
	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/config"
	"github.com/lixenwraith/particle-field/event"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/logging"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/status"
	"github.com/lixenwraith/particle-field/terminal"
)

// flagValues holds raw CLI flags; only flags the user set override the config
type flagValues struct {
	configPath string
	fps        int
	seed       uint64
	sound      bool
	stats      bool
	debug      bool
	logFile    string
	noBlobs    bool
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "particle-field",
		Short: "Animated particle field for the terminal",
		Long: `particle-field fills the terminal with drifting particles joined by
proximity lines over slow gradient blobs. Move the mouse to push particles
away; press q, Esc or Ctrl-C to quit.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, fv.configPath, flagOverlay(cmd, fv))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&fv.configPath, "config", "c", "", "TOML config file, watched for live changes")
	flags.IntVar(&fv.fps, "fps", parameter.RefreshRate, "Frames per second")
	flags.Uint64Var(&fv.seed, "seed", 0, "Random seed (0 = time based)")
	flags.BoolVar(&fv.sound, "sound", false, "Play the ambient hum")
	flags.BoolVar(&fv.stats, "stats", false, "Show the metrics overlay")
	flags.BoolVar(&fv.debug, "debug", false, "Write a debug log")
	flags.StringVar(&fv.logFile, "log-file", config.DefaultLogFile, "Debug log path")
	flags.BoolVar(&fv.noBlobs, "no-blobs", false, "Disable the gradient backdrop")
	return cmd
}

// resolveConfig layers explicitly set flags over the loaded config and validates the result
func resolveConfig(cmd *cobra.Command, fv flagValues) (config.Config, error) {
	cfg, err := config.Resolve(fv.configPath)
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(cmd, &cfg, fv)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// flagOverlay reapplies the explicitly set flags to configs reloaded while running
func flagOverlay(cmd *cobra.Command, fv flagValues) func(*config.Config) {
	return func(cfg *config.Config) { applyFlags(cmd, cfg, fv) }
}

// applyFlags overlays explicitly set flags onto cfg
func applyFlags(cmd *cobra.Command, cfg *config.Config, fv flagValues) {
	changed := cmd.Flags().Changed
	if changed("fps") {
		cfg.RefreshRate = fv.fps
	}
	if changed("seed") {
		cfg.Seed = fv.seed
	}
	if changed("sound") {
		cfg.Sound = fv.sound
	}
	if changed("stats") {
		cfg.Stats = fv.stats
	}
	if changed("debug") {
		cfg.Debug = fv.debug
	}
	if changed("log-file") {
		cfg.LogFile = fv.logFile
	}
	if changed("no-blobs") {
		cfg.Blobs.Enabled = !fv.noBlobs
	}
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPARTICLE-FIELD CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, configPath string, overlay func(*config.Config)) error {
	log, closeLog, err := logging.New(cfg.Debug, cfg.LogPath())
	if err != nil {
		return err
	}
	defer closeLog()

	fieldOpts, err := cfg.FieldOptions()
	if err != nil {
		return err
	}
	bufOpts, err := cfg.BufferOptions()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	var stats *status.Registry
	if cfg.Stats {
		stats = status.NewRegistry()
	}

	f := field.New(fieldOpts, newRand(cfg.Seed))
	canvas := terminal.NewCanvas(screen, bufOpts, stats)
	router := event.NewRouter()
	pump := terminal.NewPump(screen, cfg.Cell.Width, cfg.Cell.Height)
	ticker := terminal.NewTicker(cfg.FrameInterval())

	opts := []animator.Option{
		animator.WithBackdrop(cfg.BlobLayer()),
		animator.WithLogger(log),
	}
	if stats != nil {
		opts = append(opts, animator.WithStats(stats))
	}

	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Start(); err != nil {
			log.Warn("audio unavailable, continuing silently", zap.Error(err))
		} else {
			defer player.Stop()
			opts = append(opts, animator.WithLevelSink(player.Hum()))
		}
	}

	if configPath != "" {
		w, err := config.NewWatcher(ctx, configPath, parameter.ConfigReloadDebounce, log, config.WithOverlay(overlay))
		if err != nil {
			log.Warn("config watch disabled", zap.Error(err))
		} else {
			opts = append(opts, animator.WithRestyle(looks(ctx, w.C(), log)))
		}
	}

	anim := animator.New(f, canvas, router, ticker, pump.Events(), opts...)
	defer pump.Stop()
	defer anim.Teardown()

	quit := router.Subscribe(event.EventKey, func(ev event.Event) {
		if isQuitKey(ev) {
			cancel()
		}
	})
	defer router.Unsubscribe(quit)

	width, height := canvas.Extent()
	if err := anim.Mount(width, height); err != nil {
		return err
	}
	pump.Start()

	log.Info("particle field running",
		zap.Int("particles", f.Len()),
		zap.Duration("frame_interval", cfg.FrameInterval()))

	if err := anim.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func isQuitKey(ev event.Event) bool {
	switch ev.Key {
	case event.KeyEscape, event.KeyCtrlC:
		return true
	case event.KeyRune:
		return ev.Rune == 'q' || ev.Rune == 'Q'
	}
	return false
}
