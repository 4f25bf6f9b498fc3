package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"ytmeta/internal/config"
	"ytmeta/internal/language"
	"ytmeta/internal/logging"
	"ytmeta/internal/preflight"
	"ytmeta/internal/services"
	"ytmeta/internal/services/whisper"
	"ytmeta/internal/services/ytdlp"
)

// Stage names, in execution order.
const (
	StageFetch      = "fetch"
	StageDownload   = "download"
	StageTranscribe = "transcribe"
	StageAssemble   = "assemble"
	StageRetain     = "retain"
)

// MetadataFetcher extracts video metadata without downloading media.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, url string) (ytdlp.Metadata, error)
}

// AudioDownloader extracts audio for a URL into a directory.
type AudioDownloader interface {
	DownloadAudio(ctx context.Context, url, dir string) (string, error)
}

// Transcriber converts an audio file into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, model whisper.Model, language string) (whisper.Transcript, error)
}

// Runner executes the URL-to-record pipeline.
type Runner struct {
	fetcher     MetadataFetcher
	downloader  AudioDownloader
	transcriber Transcriber

	scratchParent string
	keepDir       string
	logger        *slog.Logger
}

// NewRunner wires the yt-dlp and whisper clients from cfg. A nil runner
// executes the real binaries.
func NewRunner(cfg *config.Config, logger *slog.Logger, runner services.CommandRunner) *Runner {
	if runner == nil {
		runner = services.ExecRunner{}
	}
	ytdlpClient := ytdlp.NewClient(cfg.YtDlpConfig())
	ytdlpClient.WithCommandRunner(runner)
	whisperService := whisper.NewService(cfg.WhisperConfig())
	whisperService.WithCommandRunner(runner)

	return &Runner{
		fetcher:       ytdlpClient,
		downloader:    ytdlpClient,
		transcriber:   whisperService,
		scratchParent: cfg.ScratchParent(),
		keepDir:       cfg.Paths.KeepDir,
		logger:        logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run processes url and returns the assembled record. The scratch directory
// is removed on every exit path; with KeepAudio the audio file is moved to
// the keep directory first.
func (r *Runner) Run(ctx context.Context, params Params, url string) (Result, error) {
	if params.Model == "" {
		params.Model = whisper.DefaultModel
	}
	ctx = services.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, r.logger)

	if params.KeepAudio {
		if err := r.prepareKeepDir(); err != nil {
			return Result{}, err
		}
	}

	scratch, err := os.MkdirTemp(r.scratchParent, "ytmeta-")
	if err != nil {
		return Result{}, fmt.Errorf("create scratch directory: %w", err)
	}
	logger.Debug("scratch directory created", logging.String("scratch_dir", scratch))
	defer r.release(logger, scratch)

	var meta ytdlp.Metadata
	err = r.runStage(ctx, StageFetch, func(ctx context.Context, logger *slog.Logger) error {
		logger.Info("Extracting video metadata", logging.String("url", url))
		var fetchErr error
		meta, fetchErr = r.fetcher.FetchMetadata(ctx, url)
		if fetchErr != nil {
			return fetchErr
		}
		logger.Info("Metadata extracted", logging.String("title", meta.DisplayTitle()))
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	var audioPath string
	err = r.runStage(ctx, StageDownload, func(ctx context.Context, logger *slog.Logger) error {
		logger.Info("Downloading audio")
		var downloadErr error
		audioPath, downloadErr = r.downloader.DownloadAudio(ctx, url, scratch)
		if downloadErr != nil {
			return downloadErr
		}
		attrs := []logging.Attr{logging.String("audio_file", audioPath)}
		if info, statErr := os.Stat(audioPath); statErr == nil {
			attrs = append(attrs, logging.Int64("size_bytes", info.Size()))
		}
		logger.Info("Audio downloaded", logging.Args(attrs...)...)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	var transcript whisper.Transcript
	err = r.runStage(ctx, StageTranscribe, func(ctx context.Context, logger *slog.Logger) error {
		logger.Info("Transcribing audio",
			logging.String("model", params.Model.String()),
			logging.String("language", language.DisplayName(params.Language)),
		)
		var transcribeErr error
		transcript, transcribeErr = r.transcriber.Transcribe(ctx, audioPath, params.Model, params.Language)
		if transcribeErr != nil {
			return transcribeErr
		}
		logger.Info("Transcription complete",
			logging.Int("segments", len(transcript.Segments)),
			logging.String("detected_language", transcript.Language),
		)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	var result Result
	_ = r.runStage(ctx, StageAssemble, func(context.Context, *slog.Logger) error {
		result = Assemble(url, meta, transcript, params)
		return nil
	})

	if params.KeepAudio {
		err = r.runStage(ctx, StageRetain, func(ctx context.Context, logger *slog.Logger) error {
			kept, retainErr := retainAudio(ctx, audioPath, r.keepDir)
			if retainErr != nil {
				return retainErr
			}
			logger.Info("Audio kept", logging.String("audio_file", kept))
			return nil
		})
		if err != nil {
			return Result{}, err
		}
	}

	return result, nil
}

func (r *Runner) prepareKeepDir() error {
	if strings.TrimSpace(r.keepDir) == "" {
		return fmt.Errorf("keep audio: keep directory not configured")
	}
	if err := os.MkdirAll(r.keepDir, 0o755); err != nil {
		return fmt.Errorf("keep audio: create %s: %w", r.keepDir, err)
	}
	if check := preflight.CheckDirectoryAccess("Keep directory", r.keepDir); !check.Passed {
		return fmt.Errorf("keep audio: %s", check.Detail)
	}
	return nil
}

// runStage executes fn with stage-scoped context and logger, wrapping any
// failure with the stage name.
func (r *Runner) runStage(ctx context.Context, name string, fn func(context.Context, *slog.Logger) error) error {
	stageCtx := services.WithStage(ctx, name)
	stageLogger := logging.WithContext(stageCtx, r.logger)
	started := time.Now()

	stageLogger.Debug("stage started", logging.String(logging.FieldEventType, "stage_start"))
	if err := fn(stageCtx, stageLogger); err != nil {
		stageLogger.Debug("stage failed",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.Duration("stage_duration", time.Since(started)),
			logging.Error(err),
		)
		return fmt.Errorf("%s stage: %w", name, err)
	}
	stageLogger.Debug("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Duration("stage_duration", time.Since(started)),
	)
	return nil
}

func (r *Runner) release(logger *slog.Logger, scratch string) {
	if err := os.RemoveAll(scratch); err != nil {
		logging.WarnWithContext(logger, "scratch cleanup failed", "scratch_cleanup_failed",
			logging.String("scratch_dir", scratch),
			logging.Error(err),
			logging.String(logging.FieldImpact, "temporary audio left on disk"),
			logging.String(logging.FieldErrorHint, "remove the directory manually"),
		)
		return
	}
	logger.Debug("scratch directory removed", logging.String("scratch_dir", scratch))
}
