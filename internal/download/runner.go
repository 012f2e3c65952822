package download

import (
	"context"
	"fmt"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"
)

// YTDLPRunner runs downloads through the yt-dlp executable
type YTDLPRunner struct {
	executable string
	log        zerolog.Logger
}

// NewYTDLPRunner creates a runner. An empty executable resolves yt-dlp from PATH
// or from a previous Install.
func NewYTDLPRunner(executable string, log zerolog.Logger) *YTDLPRunner {
	return &YTDLPRunner{
		executable: executable,
		log:        log.With().Str("component", "ytdlp").Logger(),
	}
}

// Download blocks until yt-dlp exits
func (r *YTDLPRunner) Download(ctx context.Context, opts Options, url string) error {
	dl := r.command(opts)

	r.log.Info().
		Str("url", url).
		Str("format", opts.Format).
		Str("output", opts.OutputTemplate).
		Msg("starting yt-dlp")

	if _, err := dl.Run(ctx, url); err != nil {
		r.log.Error().Err(err).Str("url", url).Msg("yt-dlp failed")
		return err
	}

	r.log.Info().Str("url", url).Msg("yt-dlp finished")
	return nil
}

// command maps the option set onto a yt-dlp invocation
func (r *YTDLPRunner) command(opts Options) *ytdlp.Command {
	dl := ytdlp.New().
		Format(opts.Format).
		Output(opts.OutputTemplate)

	if r.executable != "" {
		dl = dl.SetExecutable(r.executable)
	}

	if pp, ok := opts.ExtractAudio(); ok {
		dl = dl.ExtractAudio().AudioFormat(pp.PreferredCodec)
		if pp.PreferredQuality != "" {
			dl = dl.AudioQuality(pp.PreferredQuality)
		}
	}

	return dl
}

// InstallYTDLP downloads a yt-dlp release into the library's cache when one is
// not already available and returns the resolved executable path.
func InstallYTDLP(ctx context.Context) (string, error) {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	return resolved.Executable, nil
}
