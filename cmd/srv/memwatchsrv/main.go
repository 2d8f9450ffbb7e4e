package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/core-tools/hsu-memwatch/pkg/control"
	"github.com/core-tools/hsu-memwatch/pkg/logging"
	"github.com/core-tools/hsu-memwatch/pkg/watchdog"

	flags "github.com/jessevdk/go-flags"
)

type flagOptions struct {
	Config   string `long:"config" description:"path to the watchdog configuration file"`
	LogLevel string `long:"log-level" description:"override the configured log level"`
}

func logPrefix(module string) string {
	return fmt.Sprintf("module: %s , ", module)
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v", err)
		os.Exit(1)
	}

	if opts.Config == "" {
		fmt.Println("Configuration file is required")
		os.Exit(1)
	}

	config, err := watchdog.LoadConfigFromFile(opts.Config)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if opts.LogLevel != "" {
		config.Logging.Level = opts.LogLevel
	}
	if err := watchdog.ValidateConfig(config); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	zapAdapter, err := logging.NewZapAdapter(config.Logging)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer zapAdapter.Sync()

	memwatchLogger := logging.NewLogger(
		logPrefix("hsu-memwatch"), logging.LogFuncs{
			LogLevelf: zapAdapter.LogLevelf,
		})

	memwatchLogger.Infof("opts: %+v", opts)

	memwatchLogger.Infof("Starting...")

	supervisor, err := control.NewSupervisorGateway(control.SupervisorGatewayOptions{
		URL:            config.Supervisor.URL,
		RequestTimeout: config.Supervisor.RequestTimeout,
	}, memwatchLogger)
	if err != nil {
		memwatchLogger.Errorf("Failed to create supervisor gateway: %v", err)
		os.Exit(1)
	}

	reporter := watchdog.NewLogReporter(memwatchLogger)
	memwatch := watchdog.NewWatchdog(config.WatchdogOptions(), supervisor, reporter, memwatchLogger)
	runner := watchdog.NewRunner(config.Supervisor.TickInterval, memwatch, memwatchLogger)

	if err := runner.Start(context.Background()); err != nil {
		memwatchLogger.Errorf("Failed to start watchdog runner: %v", err)
		os.Exit(1)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	sig := <-signals

	memwatchLogger.Infof("Received signal %v, shutting down...", sig)
	runner.Stop()
}
