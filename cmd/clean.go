package cmd

import (
	"fmt"
	"log"

	"name-pump/internal/sink"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cleanTable string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every stored name from the names table",
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("sink.table", cmd.Flags().Lookup("table"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := connectDB()
		if err != nil {
			return err
		}
		defer DB.Close()

		fmt.Printf("🦅 Connected to %s (%s)\n", config.Name, config.Driver)

		d := sink.GetDialect(DriverName)
		log.Printf("Using Dialect: %s\n", DriverName)

		targetTable := viper.GetString("sink.table")
		if err := sink.Clean(DB, d, targetTable); err != nil {
			return err
		}

		log.Printf("Table %s Cleaned Successfully!", targetTable)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(&cleanTable, "table", "", "Table to clean (overrides config)")
}
