package config

import (
	"fmt"
	"os"

	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/model"
	"github.com/sefallone/Plan-eco/internal/normalize"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a planeco run.
type Config struct {
	DSN        string
	FilePath   string // empty selects the built-in projection table
	Sheet      string `yaml:"sheet"`
	LogFormat  string // "text" or "json"
	Year       int    // 0 means the most recent year in the dataset
	Lang       string // "es" or "en", number formatting in reports
	OutDir     string
	Format     string // export format: "parquet" or "xlsx"
	Addr       string
	Activate   bool
	Force      bool
	MonthNames map[string]int      `yaml:"month_names"`    // merged over normalize.DefaultMonthTable
	Aliases    map[string][]string `yaml:"column_aliases"` // canonical column -> extra headers
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Sheet      string              `yaml:"sheet"`
	MonthNames map[string]int      `yaml:"month_names"`
	Aliases    map[string][]string `yaml:"column_aliases"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// A sheet given on the command line takes precedence over the file.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.Sheet == "" {
		c.Sheet = yc.Sheet
	}
	c.MonthNames = yc.MonthNames
	c.Aliases = yc.Aliases
	if err := c.validateAliases(); err != nil {
		return err
	}
	_, err = c.Months()
	return err
}

// validateAliases checks that every alias key is a known input column.
func (c *Config) validateAliases() error {
	for col := range c.Aliases {
		if _, ok := model.FieldByColumn(col); !ok {
			return fmt.Errorf("unknown column %q in column_aliases", col)
		}
	}
	return nil
}

// Months returns the month-name table: the defaults plus month_names.
func (c *Config) Months() (normalize.MonthTable, error) {
	return normalize.DefaultMonthTable().Merge(c.MonthNames)
}

// LoaderOptions builds the loader options from the config.
func (c *Config) LoaderOptions() (loader.Options, error) {
	months, err := c.Months()
	if err != nil {
		return loader.Options{}, err
	}
	return loader.Options{Months: months, Aliases: c.Aliases}, nil
}

// Validate checks the input file when one is given.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return nil
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or PLANECO_DB_URL is required")
	}
	return nil
}

// ValidateExport checks the export flags.
func (c *Config) ValidateExport() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutDir == "" {
		return fmt.Errorf("--out is required")
	}
	switch c.Format {
	case "parquet", "xlsx":
		return nil
	}
	return fmt.Errorf("unknown export format %q (want parquet or xlsx)", c.Format)
}
