package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/galaxy"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	headless := flag.Bool("headless", false, "Run without a window or GPU")
	frames := flag.Int("frames", 0, "Exit after this many frames (0 = run until closed)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := galaxy.NewDefaultLogger("galaxy", *debug)

	cfg := galaxy.DefaultConfig()
	if *configPath != "" {
		loaded, err := galaxy.LoadConfig(*configPath)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	params, err := cfg.Parameters()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	builder := galaxy.NewAppBuilder().
		UseModule(
			galaxy.LoggingModule{Prefix: "galaxy", Debug: *debug},
			galaxy.TimeModule{},
			galaxy.ParametersModule{Params: &params},
		)
	if *headless {
		builder.UseModule(galaxy.HeadlessModule{
			Frames: *frames,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		})
	} else {
		builder.UseModule(galaxy.RendererModule{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Title:  cfg.Window.Title,
		})
		if *frames > 0 {
			builder.UseModule(galaxy.FrameLimitModule{Frames: *frames})
		}
	}
	builder.UseModule(
		galaxy.GalaxyModule{Seed: cfg.Seed},
		galaxy.BreathModule{Config: cfg.BreathConfig()},
		galaxy.InputModule{},
	)

	builder.Build().Run()
}
