package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/stardrift/internal/content"
)

func newContentCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Validate and summarize a content file",
		Long: `Validate a content file and print a summary of its tables.
With no --file, summarizes the embedded default universe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := content.Default()
			source := "embedded default"
			if file != "" {
				var err error
				reg, err = content.Load(file)
				if err != nil {
					return err
				}
				source = file
			}

			fmt.Printf("Content: %s\n\n", source)
			fmt.Printf("Sectors (%d):\n", len(reg.Sectors()))
			for _, s := range reg.Sectors() {
				fmt.Printf("  %-8s warp %d  %d materials  %s\n", s.ID, s.ReqWarp, len(s.Materials), s.Name)
			}
			fmt.Printf("\nRecipes (%d):\n", len(reg.Recipes()))
			for _, r := range reg.Recipes() {
				fmt.Printf("  %-14s %4.0fs  module %d  sells %3.0f\n", r.ID, r.TimeSeconds, r.ReqModule, r.SellPrice)
			}
			fmt.Printf("\nUpgrades (%d):\n", len(reg.Upgrades()))
			for _, u := range reg.Upgrades() {
				fmt.Printf("  %-9s %-6s +%-3d  %s\n", u.ID, u.Category, u.Effect, u.Name)
			}
			fmt.Printf("\nSalvage materials: %d, buildings: %d\n",
				len(reg.SalvageMaterials()), len(reg.Buildings()))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Content file to validate")
	return cmd
}
