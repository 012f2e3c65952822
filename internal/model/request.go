package model

import (
	"strconv"
	"strings"
)

// HighestQuality is the label shared by the video quality and audio bitrate
// choices that leave the stream unconstrained.
const HighestQuality = "Highest Quality"

// Container is the video container requested for the video stream
type Container string

const (
	ContainerMP4  Container = "mp4"
	ContainerWebM Container = "webm"
)

// VideoQuality is the upper bound on the video stream height
type VideoQuality string

const (
	QualityHighest VideoQuality = HighestQuality
	Quality480p    VideoQuality = "480p"
	Quality720p    VideoQuality = "720p"
	Quality1080p   VideoQuality = "1080p"
)

// AudioBitrate is the upper bound on the audio stream bitrate in kbps
type AudioBitrate string

const (
	BitrateHighest AudioBitrate = HighestQuality
	Bitrate64      AudioBitrate = "64"
	Bitrate128     AudioBitrate = "128"
	Bitrate192     AudioBitrate = "192"
	Bitrate256     AudioBitrate = "256"
	Bitrate320     AudioBitrate = "320"
)

// Containers returns the selectable containers in display order
func Containers() []Container {
	return []Container{ContainerMP4, ContainerWebM}
}

// VideoQualities returns the selectable quality tiers in display order
func VideoQualities() []VideoQuality {
	return []VideoQuality{QualityHighest, Quality480p, Quality720p, Quality1080p}
}

// AudioBitrates returns the selectable bitrates in display order
func AudioBitrates() []AudioBitrate {
	return []AudioBitrate{BitrateHighest, Bitrate64, Bitrate128, Bitrate192, Bitrate256, Bitrate320}
}

// IsValid reports whether c is one of the supported containers
func (c Container) IsValid() bool {
	return c == ContainerMP4 || c == ContainerWebM
}

// MaxHeight returns the pixel height bound of the tier, or 0 when unbounded.
// Unknown tiers are treated as unbounded.
func (q VideoQuality) MaxHeight() int {
	if q == QualityHighest {
		return 0
	}
	height, err := strconv.Atoi(strings.TrimSuffix(string(q), "p"))
	if err != nil || height <= 0 {
		return 0
	}
	return height
}

// IsHighest reports whether the bitrate choice is unconstrained
func (b AudioBitrate) IsHighest() bool {
	return b == BitrateHighest
}

// Kbps returns the numeric bound. ok is false for Highest or malformed values.
func (b AudioBitrate) Kbps() (kbps int, ok bool) {
	if b.IsHighest() {
		return 0, false
	}
	kbps, err := strconv.Atoi(string(b))
	if err != nil || kbps <= 0 {
		return 0, false
	}
	return kbps, true
}

// DownloadRequest is the user's selection for a single download invocation
type DownloadRequest struct {
	URL          string
	OutputDir    string
	AudioOnly    bool
	Container    Container    // video path only
	Quality      VideoQuality // video path only
	AudioBitrate AudioBitrate // audio path only
}

// Preferences returns the persisted subset of the request
func (r DownloadRequest) Preferences() Preferences {
	return Preferences{
		OutputDir:    r.OutputDir,
		Format:       r.Container,
		Quality:      r.Quality,
		AudioBitrate: r.AudioBitrate,
		AudioOnly:    r.AudioOnly,
	}
}

// Preferences is the record of user choices kept between sessions
type Preferences struct {
	OutputDir    string
	Format       Container
	Quality      VideoQuality
	AudioBitrate AudioBitrate
	AudioOnly    bool
}

// DefaultPreferences returns the record used on first run
func DefaultPreferences() Preferences {
	return Preferences{
		OutputDir:    "",
		Format:       ContainerMP4,
		Quality:      QualityHighest,
		AudioBitrate: BitrateHighest,
		AudioOnly:    false,
	}
}

// Request combines the preferences with a URL
func (p Preferences) Request(url string) DownloadRequest {
	return DownloadRequest{
		URL:          url,
		OutputDir:    p.OutputDir,
		AudioOnly:    p.AudioOnly,
		Container:    p.Format,
		Quality:      p.Quality,
		AudioBitrate: p.AudioBitrate,
	}
}
