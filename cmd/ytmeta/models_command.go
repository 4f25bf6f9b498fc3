package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytmeta/internal/services/whisper"
)

func newModelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List whisper model sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			defaultModel, err := whisper.ParseModel(cfg.Transcription.Model)
			if err != nil {
				return err
			}

			models := whisper.Models()
			rows := make([][]string, 0, len(models))
			for _, info := range models {
				marker := ""
				if info.Model == defaultModel {
					marker = "*"
				}
				rows = append(rows, []string{info.Model.String(), info.Parameters, info.VRAM, marker})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Model", "Parameters", "VRAM", "Default"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignCenter},
				"* default from configuration; override with --model",
			))
			return nil
		},
	}
}
