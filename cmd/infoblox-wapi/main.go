package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/oneops/infoblox-wapi/internal/config"
	"github.com/oneops/infoblox-wapi/internal/models"
	"github.com/oneops/infoblox-wapi/internal/shoutrrr"
	"github.com/oneops/infoblox-wapi/pkg/wapi"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	var err error
	select {
	case <-ctx.Done():
		logger.Warn("Caught OS signal, shutting down")
		err = <-errorCh
	case err = <-errorCh:
	}
	stop()

	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	wapiLogger := logger.New(log.SetComponent("wapi"))
	client, err := wapi.New(config.Client.ToWAPISettings(wapiLogger))
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	defer client.CloseIdleConnections()

	command, err := parseCommand(args[1:])
	if err != nil {
		return err
	}

	results, notification, err := command.run(ctx, client)
	if err != nil {
		shoutrrrClient.Notify("command failed: " + err.Error())
		return err
	}

	err = printResults(results)
	if err != nil {
		return err
	}

	if notification != "" {
		shoutrrrClient.Notify(notification)
	}
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "oneops",
		Repository: "infoblox-wapi",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}
