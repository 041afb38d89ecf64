package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"name-pump/internal/dialect"
	"name-pump/internal/generator"
	"name-pump/internal/sink"
	"name-pump/internal/syllable"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/viper"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// DialectConfig registers an extra dialect file. Script may be empty, in
// which case it is detected from the file contents.
type DialectConfig struct {
	Name   string `mapstructure:"name"`
	Path   string `mapstructure:"path"`
	Script string `mapstructure:"script"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// resolveDBConfig picks the connection: --dsn first, then the active
// databases entry, then database.dsn from config or env.
func resolveDBConfig() (*DBConfig, error) {
	cliDSN := RootCmd.PersistentFlags().Changed("dsn")
	if !cliDSN {
		if active, err := GetActiveDBConfig(); err == nil {
			if active.Driver == "" {
				active.Driver = sink.DetectDriver(active.DSN)
			}
			return active, nil
		}
	}

	connStr := viper.GetString("database.dsn")
	if connStr == "" {
		return nil, fmt.Errorf("database.dsn is required (via flag, config or an active databases entry)")
	}
	drv := viper.GetString("database.driver")
	if drv == "" {
		drv = sink.DetectDriver(connStr)
	}
	return &DBConfig{Name: "CLI", Driver: drv, DSN: connStr, Active: true}, nil
}

// connectDB opens and pings the configured database and sets DB and DriverName.
func connectDB() (*DBConfig, error) {
	config, err := resolveDBConfig()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	DB = db
	DriverName = config.Driver
	return config, nil
}

// loadDialects returns the bundled dialects followed by the ones found in
// dialect.dir and those listed under dialects. A later entry replaces an
// earlier one with the same name.
func loadDialects() ([]dialect.Dialect, error) {
	all := dialect.All()

	if dir := viper.GetString("dialect.dir"); dir != "" {
		found, err := dialect.Dir(dir)
		if err != nil {
			return nil, err
		}
		all = mergeDialects(all, found...)
	}

	var configs []DialectConfig
	if err := viper.UnmarshalKey("dialects", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse dialects config: %w", err)
	}
	for _, c := range configs {
		d, err := configuredDialect(c)
		if err != nil {
			return nil, err
		}
		all = mergeDialects(all, d)
	}
	return all, nil
}

func configuredDialect(c DialectConfig) (dialect.Dialect, error) {
	if c.Path == "" {
		return dialect.Dialect{}, fmt.Errorf("dialect %q has no path", c.Name)
	}

	var d dialect.Dialect
	if c.Script == "" {
		var err error
		if d, err = dialect.Open(c.Path); err != nil {
			return dialect.Dialect{}, err
		}
	} else {
		script, err := dialect.ParseScript(c.Script)
		if err != nil {
			return dialect.Dialect{}, err
		}
		d = dialect.FromFile(c.Path, script)
	}
	if c.Name != "" {
		d.Name = strings.ToLower(c.Name)
	}
	return d, nil
}

func mergeDialects(base []dialect.Dialect, extra ...dialect.Dialect) []dialect.Dialect {
	for _, d := range extra {
		replaced := false
		for i := range base {
			if base[i].Name == d.Name {
				base[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			base = append(base, d)
		}
	}
	return base
}

func findDialect(all []dialect.Dialect, name string) (dialect.Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, d := range all {
		if d.Name == key {
			return d, nil
		}
	}
	return dialect.Dialect{}, fmt.Errorf("%w: %q", dialect.ErrUnknownDialect, name)
}

// newFaker seeds the random source from random.seed. A zero seed is replaced
// by the clock and printed so the run can be repeated.
func newFaker() *gofakeit.Faker {
	s := viper.GetInt64("random.seed")
	if s == 0 {
		s = time.Now().UnixNano()
		fmt.Fprintf(os.Stderr, "Seed: %d\n", s)
	}
	return gofakeit.New(s)
}

// generatorOptions reads compose.rule and compose.max_attempts.
func generatorOptions() ([]generator.Option, error) {
	rule, err := syllable.RuleByName(viper.GetString("compose.rule"))
	if err != nil {
		return nil, err
	}
	return []generator.Option{
		generator.WithRule(rule),
		generator.WithMaxAttempts(viper.GetInt("compose.max_attempts")),
	}, nil
}
