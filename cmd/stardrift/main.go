// Command stardrift runs the Stardrift simulation core headless: the
// tick engine, the save store and (optionally) the read-only status
// API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "stardrift",
		Short: "Stardrift idle simulation core",
		Long: `Stardrift runs the space idle game simulation headless.

Configuration comes from STARDRIFT_* environment variables, an optional
config.yaml, and defaults. Examples:

  stardrift run
  stardrift run --config configs/local.yaml
  stardrift content --file content.yaml`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	root.AddCommand(newRunCommand())
	root.AddCommand(newContentCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
