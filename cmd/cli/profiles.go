// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rexi/internal/config"
	"rexi/internal/engine"
	"rexi/internal/logger"
)

var (
	okColor      = color.New(color.FgGreen)
	missingColor = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	idColor      = color.New(color.FgCyan)
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List pattern profiles and whether their engines are installed",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init(false)
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Warn("config load failed, using defaults", "err", err)
			cfg = config.Config{}
		}

		registry := engine.NewRegistry(cfg.EngineOptions())
		for _, p := range registry.Profiles() {
			eng, _ := registry.Engine(p.ID)
			status := okColor.Sprint("available")
			if eng == nil || !eng.Available() {
				status = missingColor.Sprint("engine missing")
			}
			marker := " "
			if p.ID == registry.DefaultID() {
				marker = "*"
			}
			fmt.Printf("%s %-8s %-12s %-15s %s\n",
				marker, idColor.Sprint(p.ID), p.Name, status, p.Description)
		}

		if awk := engine.DetectAwk(); awk != "" {
			fmt.Printf("\nAWK interpreter: %s\n", awk)
		}
	},
}
