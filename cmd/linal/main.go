package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zeusync/linal/internal/log"
	"github.com/zeusync/linal/internal/scene"
)

func main() {
	var (
		path  = flag.String("scene", "scene.yaml", "path to the scene file (.yaml or .json)")
		debug = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := zapcore.InfoLevel
	if *debug {
		level = zapcore.DebugLevel
	}
	logger, err := log.New(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error initializing logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, logger, *path); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var cfg *scene.Config
	switch filepath.Ext(path) {
	case ".json":
		cfg, err = scene.LoadJSON(f)
	default:
		cfg, err = scene.LoadYAML(f)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	res, err := scene.Run(ctx, logger, cfg)
	if err != nil {
		return err
	}

	logger.Info("scene transformed",
		zap.String("run_id", res.RunID),
		zap.Int("points", len(res.Points)),
		zap.Float64("centroid_x", res.Centroid.X),
		zap.Float64("centroid_y", res.Centroid.Y),
	)
	for _, p := range res.Points {
		fmt.Printf("%v %v\n", p.X, p.Y)
	}
	return nil
}
