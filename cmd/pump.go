package cmd

import (
	"fmt"
	"log"
	"time"

	"name-pump/internal/sink"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const sampleSize = 5

var (
	pumpCount int
	table     string
	clean     bool
	dryRun    bool
)

var pumpCmd = &cobra.Command{
	Use:   "pump",
	Short: "Insert unique composed names into a database table",
	PreRun: func(cmd *cobra.Command, args []string) {
		bindNameFlags(cmd)
		viper.BindPFlag("sink.table", cmd.Flags().Lookup("table"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := loadDialects()
		if err != nil {
			return err
		}
		picked, err := selectDialects(all, viper.GetString("dialect.default"), dialectFile, flip, cyrillic)
		if err != nil {
			return err
		}
		opts, err := generatorOptions()
		if err != nil {
			return err
		}

		faker := newFaker()
		n, err := newNamer(faker.Rand, picked, viper.GetInt("compose.syllables"), opts...)
		if err != nil {
			return err
		}
		n.uuid = faker.UUID

		// Fetch count and table from Viper (Flag > Config > Default)
		targetCount := viper.GetInt("sink.count")
		if targetCount <= 0 {
			return fmt.Errorf("count must be positive, got %d", targetCount)
		}
		targetTable := viper.GetString("sink.table")
		if err := sink.ValidateTable(targetTable); err != nil {
			return err
		}

		// Dry Run
		if dryRun {
			drv := viper.GetString("database.driver")
			if config, err := resolveDBConfig(); err == nil {
				drv = config.Driver
			}
			d := sink.GetDialect(drv)

			log.Println("[SIMULATION] Dry-Run Mode Active: No data will be written.")
			fmt.Printf("🔍 Table DDL (%s):\n%s\n\n", drv, d.CreateTableQuery(targetTable))
			fmt.Printf("🔍 Sample rows:\n")
			for i := 0; i < sampleSize; i++ {
				row, err := n.Row()
				if err != nil {
					return err
				}
				fmt.Printf("[%02d] %-10s %-20s (%d syllables)\n", i+1, row.Dialect, row.Name, row.Syllables)
			}
			return nil
		}

		config, err := connectDB()
		if err != nil {
			return err
		}
		defer DB.Close()

		fmt.Printf("🦅 Connected to %s (%s)\n", config.Name, config.Driver)

		d := sink.GetDialect(DriverName)
		log.Printf("Using Dialect: %s\n", DriverName)

		if err := sink.EnsureTable(DB, d, targetTable); err != nil {
			return err
		}

		// Clean if requested
		if clean {
			if err := sink.Clean(DB, d, targetTable); err != nil {
				return err
			}
			log.Printf("Cleaned %s", targetTable)
		}

		log.Printf("Starting pump with count=%d into %s...", targetCount, targetTable)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(targetCount).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Pumping: "
		})

		result, err := sink.Pump(DB, d, targetTable, targetCount, n.Row, func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		result = sink.Verify(DB, d, result)
		elapsed := time.Since(start)

		// Final Report
		fmt.Println("\n📊 Summary Report:")
		icon := "✓"
		statusDisplay := result.Status
		if statusDisplay == "VERIFIED_OK" {
			statusDisplay = "OK (Verified)"
		} else {
			icon = "!"
		}
		fmt.Printf("[%s] %-20s : %d rows (Target: %d, Attempts: %d) - %s\n",
			icon, result.TableName, result.Actual, result.Target, result.Attempts, statusDisplay)
		if result.ErrorMsg != "" {
			fmt.Printf("    └ Error: %s\n", result.ErrorMsg)
		}

		names, err := sink.Sample(DB, d, targetTable, sampleSize)
		if err != nil {
			log.Printf("Warning: %v", err)
		} else if len(names) > 0 {
			fmt.Println("--------------------------------------------------")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
		}
		log.Printf("Pump Done! Time Elapsed: %s", elapsed)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(pumpCmd)

	// CLI Flags
	addNameFlags(pumpCmd)
	pumpCmd.Flags().IntVar(&pumpCount, "count", 0, "Number of names to insert (overrides config)")
	pumpCmd.Flags().StringVar(&table, "table", "", "Target table (overrides config)")
	pumpCmd.Flags().BoolVar(&clean, "clean", false, "Truncate the table before pumping")
	pumpCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the DDL and sample rows without touching the database")

	viper.BindPFlag("sink.count", pumpCmd.Flags().Lookup("count"))
	viper.SetDefault("sink.count", 100)
}
