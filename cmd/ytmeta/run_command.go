package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytmeta/internal/language"
	"ytmeta/internal/logging"
	"ytmeta/internal/pipeline"
	"ytmeta/internal/services/whisper"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var output string
	var model string
	var lang string
	var keepAudio bool

	cmd := &cobra.Command{
		Use:   "ytmeta <url>",
		Short: "Extract video metadata and a speech transcript as JSON",
		Long: "Fetches metadata with yt-dlp, downloads the audio track, transcribes it with\n" +
			"whisper and prints one JSON record with url, metadata, transcript and\n" +
			"processing keys. Logs go to stderr; the record goes to stdout or --output.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			params := pipeline.Params{
				Output:    strings.TrimSpace(output),
				KeepAudio: keepAudio,
			}

			modelValue := cfg.Transcription.Model
			if cmd.Flags().Changed("model") {
				modelValue = model
			}
			params.Model, err = whisper.ParseModel(modelValue)
			if err != nil {
				return err
			}

			params.Language = cfg.Transcription.Language
			if cmd.Flags().Changed("language") {
				if err := language.Validate(lang); err != nil {
					return fmt.Errorf("--language: %w", err)
				}
				params.Language = strings.TrimSpace(lang)
			}

			if err := cfg.EnsureScratchDir(); err != nil {
				return err
			}

			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}

			url := strings.TrimSpace(args[0])
			runner := pipeline.NewRunner(cfg, logger, ctx.runner)
			result, err := runner.Run(cmd.Context(), params, url)
			if err != nil {
				return err
			}

			if err := pipeline.Emit(result, params.Output, cmd.OutOrStdout()); err != nil {
				return err
			}
			if params.Output != "" {
				logger.Info("Results saved", logging.String("output_file", params.Output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the JSON record to this file instead of stdout")
	cmd.Flags().StringVar(&model, "model", string(whisper.DefaultModel), "Whisper model size ("+strings.Join(whisper.ModelNames(), ", ")+")")
	cmd.Flags().StringVar(&lang, "language", "hi", "Language hint for transcription (empty for auto-detect)")
	cmd.Flags().BoolVar(&keepAudio, "keep-audio", false, "Keep the downloaded audio in the configured keep directory")
	return cmd
}
