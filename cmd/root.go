package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dsn        string
	driver     string
	seed       int64
	DB         *sql.DB
	cfgFile    string
	DriverName string // "mysql", "postgres", "sqlserver" or "oracle"
)

var RootCmd = &cobra.Command{
	Use:   "name-pump",
	Short: "A syllable-based fictional name generator",
	Long: `
  _   _    _    __  __ _____   ____  _   _ __  __ ____
 | \ | |  / \  |  \/  | ____| |  _ \| | | |  \/  |  _ \
 |  \| | / _ \ | |\/| |  _|   | |_) | | | | |\/| | |_) |
 | |\  |/ ___ \| |  | | |___  |  __/| |_| | |  | |  __/
 |_| \_/_/   \_\_|  |_|_____| |_|    \___/|_|  |_|_|

NAME PUMP 🦅 - Fantasy Name Composer & Pumper
`,
	SilenceUsage: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./name-pump.yaml)")
	RootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one and prints it)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
	RootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Database driver (mysql, postgres, sqlserver, oracle)")

	viper.BindPFlag("random.seed", RootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))

	viper.SetDefault("dialect.default", "fantasy")
	viper.SetDefault("compose.count", 10)
	viper.SetDefault("compose.syllables", 0)
	viper.SetDefault("compose.rule", "flags")
	viper.SetDefault("compose.max_attempts", 64)
	viper.SetDefault("sink.table", "names")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("name-pump")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NAME_PUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
