package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// explicitFlags returns the names of the flags given on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// envOverride maps an environment key (without the BIGMOD_ prefix) to the
// flag names it shadows and the setter applying its value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides lists every supported environment variable. Unparsable
// values are ignored and leave the default in place.
var envOverrides = []envOverride{
	{"BASE", []string{"base"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Base = parsed
		}
	}},
	{"SIZE", []string{"size"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}},
	{"EXP", []string{"exp"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Exp = parsed
		}
	}},

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"A", []string{"a"}, func(c *AppConfig, v string) { c.A = v }},
	{"B", []string{"b"}, func(c *AppConfig, v string) { c.B = v }},
	{"M", []string{"m"}, func(c *AppConfig, v string) { c.Modulus = v }},
	{"OPS", []string{"ops"}, func(c *AppConfig, v string) { c.Ops = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},

	{"DIGITS", []string{"digits"}, func(c *AppConfig, v string) {
		c.Digits = parseBoolEnv(v, c.Digits)
	}},
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"DETAILS", []string{"d", "details"}, func(c *AppConfig, v string) {
		c.Details = parseBoolEnv(v, c.Details)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"JSON", []string{"json"}, func(c *AppConfig, v string) {
		c.JSONOutput = parseBoolEnv(v, c.JSONOutput)
	}},
	{"METRICS", []string{"metrics"}, func(c *AppConfig, v string) {
		c.Metrics = parseBoolEnv(v, c.Metrics)
	}},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// case-insensitively. Any other value returns defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies BIGMOD_* values to every setting whose flag, or
// one of its aliases, was not given on the command line.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	explicit := explicitFlags(fs)
next:
	for _, o := range envOverrides {
		for _, name := range o.flags {
			if explicit[name] {
				continue next
			}
		}
		if val, ok := os.LookupEnv(EnvPrefix + o.envKey); ok && val != "" {
			o.apply(config, val)
		}
	}
}
