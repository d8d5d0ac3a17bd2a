// Package config defines the root command-line interface.
package config

import (
	"os"
	"strings"

	"github.com/Alia5/i3ctransfer/internal/cmd"
	"github.com/Alia5/i3ctransfer/internal/configpaths"
	"github.com/Alia5/i3ctransfer/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

// Version is reported by --version.
var Version = "0.1"

// CLI is the root kong grammar.
type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (JSON, YAML or TOML)" type:"path" env:"I3CTRANSFER_CONFIG"`
	Log        log.Config       `embed:"" prefix:"log."`
	Version    kong.VersionFlag `short:"v" help:"Output the version number and exit"`

	Transfer cmd.Transfer      `cmd:"" default:"withargs" help:"Run private read/write transfers against an I3C device"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// NewParser builds the kong parser for cli. Configuration is loaded from
// JSON/YAML/TOML candidates in priority order, userConfig first; flags and
// environment override config values.
func NewParser(cli *CLI, userConfig string, options ...kong.Option) (*kong.Kong, error) {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userConfig)

	opts := []kong.Option{
		kong.Name("i3ctransfer"),
		kong.Description("Issue private read/write transfers to an I3C device"),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}
	return kong.New(cli, append(opts, options...)...)
}

// FindUserConfig returns the --config value from raw args, falling back to
// I3CTRANSFER_CONFIG. It runs before kong so the file can feed the parser.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("I3CTRANSFER_CONFIG")
}
