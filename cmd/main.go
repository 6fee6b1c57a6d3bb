package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"flvdump/pkg/dump"
)

var (
	flvPath     string
	configPath  string
	previewSize int
)

func init() {
	flag.StringVar(&flvPath, "f", "", "flv path")
	flag.StringVar(&configPath, "c", "", "config file path (optional)")
	flag.IntVar(&previewSize, "preview", 0, "payload bytes shown per tag (0 uses the default)")
}

func main() {
	flag.Parse()

	logger, _ := zap.NewProduction()
	if flvPath == "" {
		logger.Error("valid flv path required")
		os.Exit(1)
	}

	opts := []dump.Option{
		dump.WithInputPath(flvPath),
	}
	if configPath != "" {
		opts = append(opts, dump.WithConfigPath(configPath))
	}
	if previewSize > 0 {
		opts = append(opts, dump.WithPayloadPreview(previewSize))
	}

	d, err := dump.New(opts...)
	if err != nil {
		logger.Error("create dumper instance", zap.Error(err))
		os.Exit(1)
	}

	if err := d.Run(); err != nil {
		logger.Error("dump flv file", zap.Error(err))
		os.Exit(1)
	}
}
