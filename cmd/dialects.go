package cmd

import (
	"fmt"

	"name-pump/internal/dialect"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List the available dialects and their pool sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := loadDialects()
		if err != nil {
			return err
		}

		// Loading draws nothing, so any fixed seed will do.
		rnd := gofakeit.New(1).Rand

		fmt.Printf("%-14s %-9s %8s %8s %8s  %s\n", "DIALECT", "SCRIPT", "PREFIX", "MIDDLE", "SUFFIX", "SOURCE")
		for _, d := range all {
			g, err := dialect.New(d, rnd)
			if err != nil {
				fmt.Printf("%-14s %-9s  ! %v\n", d.Name, d.Script, err)
				continue
			}
			fmt.Printf("%-14s %-9s %8d %8d %8d  %s\n",
				d.Name, d.Script, len(g.Prefixes()), len(g.Middles()), len(g.Suffixes()), describe(d))
		}
		return nil
	},
}

func describe(d dialect.Dialect) string {
	switch {
	case d.External():
		return d.Path
	case d.Experimental:
		return "bundled (experimental)"
	default:
		return "bundled"
	}
}

func init() {
	RootCmd.AddCommand(dialectsCmd)
}
