package main

import (
	"os"
	"strings"

	"github.com/atlantiscfg/atlantiscfg/device"
	"github.com/atlantiscfg/atlantiscfg/device/atlantis"
	"github.com/atlantiscfg/atlantiscfg/internal/cmd"
	"github.com/atlantiscfg/atlantiscfg/internal/configpaths"
	"github.com/atlantiscfg/atlantiscfg/internal/log"
	"github.com/atlantiscfg/atlantiscfg/internal/util"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	if util.IsRunFromGUI() {
		util.HideConsoleWindow()
	}

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("atlantiscfg"),
		kong.Description("Configuration tool for Atlantis-family USB gaming mice"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var rawLogger log.RawHID
	if cli.Log.RawFile != "" {
		f, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.Log.RawFile, "error", err)
			rawLogger = log.NewRaw(nil)
		} else {
			rawLogger = log.NewRaw(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		rawLogger = log.NewRaw(os.Stdout)
	} else {
		rawLogger = log.NewRaw(nil)
	}

	opener := cmd.MouseOpener(func() (*atlantis.Mouse, error) {
		dev, product, err := device.Discover(cli.Force)
		if err != nil {
			return nil, err
		}
		transport := atlantis.NewTransport(dev)
		transport.SetRawLogger(rawLogger)
		return atlantis.NewMouse(transport, product), nil
	})

	ctx.Bind(logger)
	ctx.Bind(opener)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("ATLANTISCFG_CONFIG"); v != "" {
		return v
	}
	return ""
}
