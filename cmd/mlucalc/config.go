package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EnvPrefix is prepended to every environment variable the command reads.
const EnvPrefix = "MLUCALC_"

type config struct {
	Bits     uint
	Limb     uint
	LogLevel string
	Dump     bool
}

func defaultConfig() config {
	return config{Bits: 256, Limb: 64, LogLevel: "info"}
}

// parseConfig reads flags from args and fills anything not set on the command
// line from the environment. Flags win over the environment, which wins over
// the defaults. Usage and flag errors are written to errOut.
func parseConfig(args []string, errOut io.Writer) (cfg config, rest []string, err error) {
	cfg = defaultConfig()

	fs := flag.NewFlagSet("mlucalc", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, usage)
		fmt.Fprintln(errOut)
		fs.PrintDefaults()
	}
	fs.UintVar(&cfg.Bits, "bits", cfg.Bits, "Capacity of the integers in bits (128, 256, 512)")
	fs.UintVar(&cfg.Limb, "limb", cfg.Limb, "Limb width in bits (8, 16, 32, 64, 128)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "Dump the result's limbs")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	applyEnvOverrides(&cfg, fs)

	if _, ok := calculators[shape{cfg.Bits, cfg.Limb}]; !ok {
		return cfg, nil, fmt.Errorf("unsupported shape: %d bits of %d-bit limbs", cfg.Bits, cfg.Limb)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

// isHelpError reports whether err came from -h or -help.
func isHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// envOverride maps an environment key (without EnvPrefix) to the flag it
// stands in for.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*config, string)
}

var envOverrides = []envOverride{
	{"BITS", "bits", func(c *config, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 0); err == nil {
			c.Bits = uint(parsed)
		}
	}},
	{"LIMB", "limb", func(c *config, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 0); err == nil {
			c.Limb = uint(parsed)
		}
	}},
	{"LOG_LEVEL", "log-level", func(c *config, v string) {
		c.LogLevel = v
	}},
	{"DUMP", "dump", func(c *config, v string) {
		c.Dump = parseBoolEnv(v, c.Dump)
	}},
}

// parseBoolEnv accepts "true", "1", "yes" as true and "false", "0", "no" as
// false, case-insensitively. Anything else returns defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func applyEnvOverrides(cfg *config, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
