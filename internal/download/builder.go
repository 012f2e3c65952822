package download

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/yoinktube/internal/format"
	"github.com/ytget/yoinktube/internal/model"
)

// Output and post-processing constants
const (
	// OutputTemplate is expanded by yt-dlp with the media title and the real extension
	OutputTemplate = "%(title)s.%(ext)s"

	// DefaultAudioContainer is the audio stream extension paired with any video container
	DefaultAudioContainer = "m4a"

	// PostProcessorExtractAudio is yt-dlp's audio extraction post-processor key
	PostProcessorExtractAudio = "FFmpegExtractAudio"

	// ExtractAudioCodec is the codec audio-only downloads are converted to
	ExtractAudioCodec = "mp3"

	// DefaultExtractQuality is the conversion bitrate used when no bound is chosen
	DefaultExtractQuality = "320"
)

// Field names reported in validation errors
const (
	FieldURL          = "url"
	FieldOutputDir    = "output directory"
	FieldContainer    = "format"
	FieldAudioBitrate = "audio bitrate"
)

// PostProcessor is a directive run by yt-dlp after retrieval
type PostProcessor struct {
	Key              string
	PreferredCodec   string
	PreferredQuality string
}

// Options is the option set handed to the external downloader
type Options struct {
	Format         string
	OutputTemplate string
	PostProcessors []PostProcessor
}

// ExtractAudio returns the audio extraction directive, if any
func (o Options) ExtractAudio() (PostProcessor, bool) {
	for _, pp := range o.PostProcessors {
		if pp.Key == PostProcessorExtractAudio {
			return pp, true
		}
	}
	return PostProcessor{}, false
}

// Build derives the downloader options from a request. It has no side effects.
func Build(req model.DownloadRequest) (Options, error) {
	if strings.TrimSpace(req.URL) == "" {
		return Options{}, missingField(FieldURL)
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		return Options{}, missingField(FieldOutputDir)
	}

	opts := Options{
		OutputTemplate: filepath.Join(req.OutputDir, OutputTemplate),
	}

	if req.AudioOnly {
		selector, quality, err := audioSelector(req.AudioBitrate)
		if err != nil {
			return Options{}, err
		}
		opts.Format = selector.String()
		opts.PostProcessors = []PostProcessor{{
			Key:              PostProcessorExtractAudio,
			PreferredCodec:   ExtractAudioCodec,
			PreferredQuality: quality,
		}}
		return opts, nil
	}

	if !req.Container.IsValid() {
		return Options{}, unsupportedValue(FieldContainer, string(req.Container))
	}
	opts.Format = videoSelector(req.Container, req.Quality).String()
	return opts, nil
}

// videoSelector pairs the best video stream in the requested container, bounded
// by the quality tier, with the best audio stream in the default audio container.
// The plain best progressive stream is the fallback.
func videoSelector(container model.Container, quality model.VideoQuality) format.Selector {
	video := format.NewStream(format.BestVideo, format.Ext(string(container)))
	if height := quality.MaxHeight(); height > 0 {
		video = video.Where(format.MaxHeight(height))
	}
	audio := format.NewStream(format.BestAudio, format.Ext(DefaultAudioContainer))

	return format.Alternatives(
		format.Merge(video, audio),
		format.Merge(format.NewStream(format.Best)),
	)
}

// audioSelector returns the audio stream selector and the extraction quality
func audioSelector(bitrate model.AudioBitrate) (format.Selector, string, error) {
	if bitrate.IsHighest() {
		selector := format.Alternatives(
			format.Merge(format.NewStream(format.BestAudio)),
			format.Merge(format.NewStream(format.Best)),
		)
		return selector, DefaultExtractQuality, nil
	}

	kbps, ok := bitrate.Kbps()
	if !ok {
		return nil, "", unsupportedValue(FieldAudioBitrate, string(bitrate))
	}
	selector := format.Alternatives(
		format.Merge(format.NewStream(format.BestAudio, format.MaxAudioBitrate(kbps))),
	)
	return selector, strconv.Itoa(kbps), nil
}
