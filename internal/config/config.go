// ===== internal/config/config.go =====
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/ini.v1"
)

// Config holds all application configuration
type Config struct {
	// Registry settings
	RegistryFile string
	RegistryURL  string

	// Time source settings
	NTPServer  string
	NTPTimeout int

	// Server mode settings
	HTTPListen string

	// Output settings
	Compress bool
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		RegistryFile: "/var/cache/ulagen/oui.txt",
		RegistryURL:  "https://standards-oui.ieee.org/oui/oui.txt",
		NTPServer:    "",
		NTPTimeout:   5,
		HTTPListen:   "127.0.0.1:8068",
		Compress:     false,
	}
}

// LoadFromFile loads configuration from INI file
func (c *Config) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		return err
	}

	section := cfg.Section("")
	c.RegistryFile = section.Key("registryfile").MustString(c.RegistryFile)
	c.RegistryURL = section.Key("registryurl").MustString(c.RegistryURL)
	c.NTPServer = section.Key("ntpserver").MustString(c.NTPServer)
	c.NTPTimeout = section.Key("ntptimeout").MustInt(c.NTPTimeout)
	c.HTTPListen = section.Key("httplisten").MustString(c.HTTPListen)
	c.Compress = section.Key("compress").MustBool(c.Compress)

	return nil
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("REGISTRYFILE"); v != "" {
		c.RegistryFile = v
	}
	if v := os.Getenv("REGISTRYURL"); v != "" {
		c.RegistryURL = v
	}
	if v := os.Getenv("NTPSERVER"); v != "" {
		c.NTPServer = v
	}
	if v := os.Getenv("NTPTIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.NTPTimeout = n
		}
	}
	if v := os.Getenv("HTTPLISTEN"); v != "" {
		c.HTTPListen = v
	}
	if v := os.Getenv("COMPRESS"); v != "" {
		c.Compress, _ = strconv.ParseBool(v)
	}
}

// New creates a new configuration instance. A missing config file keeps
// the defaults; a file that exists but does not parse is a hard failure.
func New(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configFile); err != nil {
		log.Printf("Skipping config file %s: %s", configFile, err)
	} else if err := cfg.LoadFromFile(configFile); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
	}

	// Override with environment variables
	cfg.LoadFromEnv()

	return cfg, nil
}
