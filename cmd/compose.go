package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const splitSeparator = "·"

var (
	dialectName string
	dialectFile string
	flip        bool
	cyrillic    bool
	syllables   int
	count       int
	split       bool
	rule        string
	progress    bool
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Print randomly composed names",
	PreRun: func(cmd *cobra.Command, args []string) {
		bindNameFlags(cmd)
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

		// Fetch count from Viper (Flag > Config > Default)
		target := viper.GetInt("compose.count")
		if target <= 0 {
			return fmt.Errorf("count must be positive, got %d", target)
		}

		sep := ""
		if split {
			sep = splitSeparator
		}

		var bar *uiprogress.Bar
		if progress {
			uiprogress.Start()
			bar = uiprogress.AddBar(target).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Composing: "
			})
		}

		start := time.Now()
		names := make([]string, 0, target)
		for i := 0; i < target; i++ {
			c, err := n.Next()
			if err != nil {
				if bar != nil {
					uiprogress.Stop()
				}
				return err
			}
			names = append(names, c.Render(sep))
			if bar != nil {
				bar.Incr()
			}
		}
		if bar != nil {
			uiprogress.Stop()
			log.Printf("Composed %d names in %s", target, time.Since(start))
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(composeCmd)

	// CLI Flags
	addNameFlags(composeCmd)
	composeCmd.Flags().IntVarP(&count, "count", "n", 10, "Number of names to print")
	composeCmd.Flags().BoolVar(&split, "split", false, "Separate syllables with "+splitSeparator)
	composeCmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar")

	viper.BindPFlag("compose.count", composeCmd.Flags().Lookup("count"))
}

// addNameFlags registers the flags shared by every command that composes names.
func addNameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "", "Dialect to compose from (overrides config)")
	cmd.Flags().StringVar(&dialectFile, "dialect-file", "", "Compose from an external dialect file")
	cmd.Flags().BoolVar(&flip, "flip", false, "Pick a random dialect for every name")
	cmd.Flags().BoolVar(&cyrillic, "cyrillic", false, "With --flip, pick among Cyrillic dialects")
	cmd.Flags().IntVarP(&syllables, "syllables", "s", 0, "Syllables per name (0 draws from the weighted table)")
	cmd.Flags().StringVar(&rule, "rule", "", "Compatibility rule: flags, no-echo or strict")
}

// bindNameFlags binds the running command's shared flags to viper. Viper
// keeps one flag per key, so binding happens when the command runs.
func bindNameFlags(cmd *cobra.Command) {
	viper.BindPFlag("dialect.default", cmd.Flags().Lookup("dialect"))
	viper.BindPFlag("compose.syllables", cmd.Flags().Lookup("syllables"))
	viper.BindPFlag("compose.rule", cmd.Flags().Lookup("rule"))
}
