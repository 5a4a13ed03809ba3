/**
 * Configuration assembly.
 *
 * SPEC_FULL.md's CLI surface: --interface (space-separated string),
 * --db-path, --list, --reset, --verbose, --metrics-addr, parsed with
 * github.com/spf13/pflag. FW_INTERFACE and FW_DB_PATH override the flag
 * defaults from the environment, per spec.md §6.
 */

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Config is the fully resolved set of knobs the supervisor needs.
type Config struct {
	Interfaces  []string
	DBPath      string
	List        bool
	Reset       bool
	Verbose     bool
	MetricsAddr string
}

// Parse builds a Config from args (typically os.Args[1:]). After flag
// parsing, FW_INTERFACE is used when --interface yielded no interface and
// FW_DB_PATH when --db-path was not given, so an explicit flag still wins
// over the environment.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("fieldwatcher", pflag.ContinueOnError)

	ifaceArg := fs.String("interface", "", "interface(s) to capture on, space-separated")
	dbPath := fs.String("db-path", defaultDBPath, "path to the inventory SQLite database")
	list := fs.Bool("list", false, "print the inventory and exit")
	reset := fs.Bool("reset", false, "drop and re-create the inventory, then exit")
	verbose := fs.Bool("verbose", false, "enable per-record DEBUG logging")
	metricsAddr := fs.String("metrics-addr", defaultMetricsAddr, "address to serve /metrics on, empty disables it")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	ifaces := strings.Fields(*ifaceArg)
	if env := os.Getenv("FW_INTERFACE"); env != "" && len(ifaces) == 0 {
		ifaces = strings.Fields(env)
	}
	if env := os.Getenv("FW_DB_PATH"); env != "" && !fs.Changed("db-path") {
		*dbPath = env
	}

	cfg := &Config{
		Interfaces:  ifaces,
		DBPath:      *dbPath,
		List:        *list,
		Reset:       *reset,
		Verbose:     *verbose,
		MetricsAddr: *metricsAddr,
	}

	if !cfg.List && !cfg.Reset && len(cfg.Interfaces) == 0 {
		return nil, fmt.Errorf("config: at least one --interface is required (or set FW_INTERFACE)")
	}

	return cfg, nil
}
