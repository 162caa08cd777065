// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"rexi/internal/config"
	"rexi/internal/engine"
	"rexi/internal/logger"
)

// checkSamples are small known-good evaluations, one per profile, used to
// prove each engine actually works end to end rather than merely being on
// PATH.
var checkSamples = map[string]engine.Request{
	engine.ProfileGoRegex: {Pattern: `\d+`, Input: "abc123def456"},
	engine.ProfilePCRE:    {Pattern: `(?<=c)\d+`, Input: "abc123"},
	engine.ProfileGrep:    {Pattern: `[0-9]+`, Input: "abc123"},
	engine.ProfileSed:     {Pattern: `s/cat/dog/`, Input: "the cat\n"},
	engine.ProfileAwk:     {Pattern: `{print $2}`, Input: "one two three\n"},
	engine.ProfileJq:      {Pattern: `.name`, Input: `{"name":"rexi"}`},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every engine with a sample evaluation",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(false)
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Warn("config load failed, using defaults", "err", err)
			cfg = config.Config{}
		}

		registry := engine.NewRegistry(cfg.EngineOptions())
		failures := 0

		for _, p := range registry.Profiles() {
			eng, ok := registry.Engine(p.ID)
			if !ok {
				continue
			}
			req, ok := checkSamples[p.ID]
			if !ok {
				continue
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = fmt.Sprintf(" checking %s...", p.ID)
			s.Start()
			res, evalErr := eng.Evaluate(context.Background(), req)
			s.Stop()

			switch {
			case evalErr == nil && !res.Empty():
				fmt.Printf("%s %s: sample evaluation succeeded\n",
					okColor.Sprint("ok  "), idColor.Sprint(p.ID))
			case evalErr == nil:
				failures++
				fmt.Printf("%s %s: sample evaluation returned nothing\n",
					failColor.Sprint("fail"), idColor.Sprint(p.ID))
			default:
				failures++
				fmt.Printf("%s %s: %v\n",
					failColor.Sprint("fail"), idColor.Sprint(p.ID), evalErr)
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d engine(s) failed the check", failures)
		}
		fmt.Println(okColor.Sprint("all engines passed"))
		return nil
	},
}
