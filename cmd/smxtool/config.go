package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bsm/smx"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the smxtool configuration file
// (~/.config/smxtool/config.yaml). Empty fields leave the flag defaults alone.
type Config struct {
	ByteOrder   string `yaml:"byte_order"`
	Compression string `yaml:"compression"`
	LogLevel    string `yaml:"log_level"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "smxtool", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't exist.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// pick returns the value of the named flag if it was set explicitly,
// otherwise the first non-empty fallback, otherwise the flag's default.
func pick(c *cli.Command, name, value string, fallbacks ...string) string {
	if c.IsSet(name) {
		return value
	}
	for _, v := range fallbacks {
		if v != "" {
			return v
		}
	}
	return value
}

// writerFlags are shared by all commands that write containers.
func writerFlags(byteOrder, compression *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "byte-order",
			Usage:       "byte order of the output (little, big)",
			Value:       "little",
			Destination: byteOrder,
		},
		&cli.StringFlag{
			Name:        "compression",
			Aliases:     []string{"z"},
			Usage:       "payload compression (none, fast, default, best, uber or 0-10)",
			Value:       "none",
			Destination: compression,
		},
	}
}

func parseWriterOptions(byteOrder, compression string) (*smx.WriterOptions, error) {
	endian, err := smx.ParseEndianness(byteOrder)
	if err != nil {
		return nil, err
	}
	level, err := smx.ParseCompressionLevel(compression)
	if err != nil {
		return nil, err
	}
	return &smx.WriterOptions{ByteOrder: endian, Compression: level}, nil
}
