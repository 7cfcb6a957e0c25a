package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/app"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.InitLogger("fitness-tracker", logger.LevelInfo)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp(os.Stderr)
		stop()
		os.Exit(1)
	}

	log = logger.InitLogger(cfg.ServiceName, cfg.Log.Level)
	if cfg.Log.Level == logger.LevelDebug {
		config.PrintConfig(os.Stderr, cfg)
	}

	// Creating application
	application, err := app.NewApplication(ctx, *cfg, log, os.Stdout)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		stop()
		os.Exit(1)
	}

	// Running the application
	if err = application.Run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
