// Copyright 2026 RetailNext, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/alecthomas/kingpin/v2"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/download"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/hashes"
	"github.com/retailnext/pinbatch/metrics"
	"github.com/retailnext/pinbatch/unpin"
	"github.com/retailnext/pinbatch/upload"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

func setupLogger() func() {
	var zapConfig zap.Config
	if term.IsTerminal(int(os.Stdin.Fd())) {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	if *logLevel != "" {
		level, err := zapcore.ParseLevel(*logLevel)
		if err != nil {
			kingpin.Fatalf("invalid log level %q", *logLevel)
		}
		zapConfig.Level = zap.NewAtomicLevelAt(level)
	}
	logger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	return func() {
		_ = logger.Sync()
	}
}

func setupInterruptContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		select {
		case sig := <-c:
			zap.S().Infow("shutting_down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	onExit := func() {
		signal.Stop(c)
		cancel()
	}
	return ctx, onExit
}

func setupProfile() func() {
	if pprofFile == nil || *pprofFile == "" {
		return func() {
		}
	}
	f, err := os.Create(*pprofFile)
	if err != nil {
		panic(err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		panic(err)
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			panic(err)
		}
	}
}

var (
	pprofFile = kingpin.Flag("pprof.cpu.file", "Enable cpu profiling to this file.").String()

	metricsListenAddress = kingpin.Flag("web.listen-address", "Address on which to expose metrics.").String()
	metricsPath          = kingpin.Flag("web.telemetry-path", "Path under which to expose metrics.").Default("/metrics").String()

	logLevel   = kingpin.Flag("log-level", "Log level.").Envar("LOG_LEVEL").String()
	configFile = kingpin.Flag("config", "Optional yaml configuration file.").String()

	outputDir = kingpin.Flag("output-dir", "Directory for output artifacts.").String()
	cacheFile = kingpin.Flag("cache-file", "Location of the digest cache file.").String()
	apiURL    = kingpin.Flag("api-url", "Pinata API base URL.").String()
	apiKey    = kingpin.Flag("pinata-api-key", "Pinata API key.").Envar("PINATA_API_KEY").String()
	apiSecret = kingpin.Flag("pinata-api-secret", "Pinata API secret.").Envar("PINATA_API_SECRET").String()
)

func parseOptions() (string, *config.Config) {
	kingpin.UsageTemplate(kingpin.CompactUsageTemplate)
	cmd := kingpin.Parse()

	var raw config.Raw
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			kingpin.Fatalf("cannot load config file %s: %s", *configFile, err)
		}
		raw = loaded
	}

	cfg := config.Resolve(config.Config{
		OutputDir:       *outputDir,
		CacheFile:       *cacheFile,
		PinataAPIURL:    *apiURL,
		PinataAPIKey:    *apiKey,
		PinataAPISecret: *apiSecret,
	}, raw)

	return cmd, cfg
}

func main() {
	cmd, cfg := parseOptions()

	sync := setupLogger()
	defer sync()
	lgr := zap.S()

	ctx, onExit := setupInterruptContext()
	defer onExit()

	stopProfile := setupProfile()
	defer stopProfile()

	metrics.SetupPrometheus(metricsListenAddress, metricsPath)

	switch cmd {
	case "hash":
		err := hashes.DoHash(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			lgr.Fatalw("hash_error", "err", err, "code", faults.CodeOf(err))
		}
	case "cid":
		err := hashes.DoCID(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			lgr.Fatalw("cid_error", "err", err, "code", faults.CodeOf(err))
		}
	case "upload files":
		err := upload.DoFiles(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
		var failures upload.Failures
		if errors.As(err, &failures) {
			lgr.Errorw("upload_incomplete", "failed", len(failures))
			sync()
			os.Exit(2)
		}
		if err != nil {
			lgr.Fatalw("upload_error", "err", err, "code", faults.CodeOf(err))
		}
	case "upload folder":
		err := upload.DoFolder(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			lgr.Fatalw("upload_error", "err", err, "code", faults.CodeOf(err))
		}
	case "upload run":
		err := upload.DoRun(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			lgr.Fatalw("upload_error", "err", err, "code", faults.CodeOf(err))
		}
	case "download":
		err := download.DoDownload(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			lgr.Fatalw("download_error", "err", err, "code", faults.CodeOf(err))
		}
	case "unpin":
		err := unpin.DoUnpin(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			lgr.Fatalw("unpin_error", "err", err, "code", faults.CodeOf(err))
		}
	default:
		lgr.Fatalw("unhandled_command", "cmd", cmd)
	}
}
