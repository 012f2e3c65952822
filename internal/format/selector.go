package format

import (
	"strconv"
	"strings"
)

// StreamKind names the stream role a selector term picks
type StreamKind string

const (
	BestVideo StreamKind = "bestvideo"
	BestAudio StreamKind = "bestaudio"
	Best      StreamKind = "best"
)

// Op is a filter comparison operator
type Op string

const (
	OpEq Op = "="
	OpLe Op = "<="
)

// Field names understood by yt-dlp filters
const (
	FieldExt    = "ext"
	FieldHeight = "height"
	FieldABR    = "abr"
)

// Filter is a single predicate rendered as [field op value]
type Filter struct {
	Field string
	Op    Op
	Value string
}

// String renders the predicate in bracket form
func (f Filter) String() string {
	return "[" + f.Field + string(f.Op) + f.Value + "]"
}

// Ext constrains the stream's file extension
func Ext(ext string) Filter {
	return Filter{Field: FieldExt, Op: OpEq, Value: ext}
}

// MaxHeight constrains the stream's height in pixels
func MaxHeight(height int) Filter {
	return Filter{Field: FieldHeight, Op: OpLe, Value: strconv.Itoa(height)}
}

// MaxAudioBitrate constrains the stream's average audio bitrate in kbps
func MaxAudioBitrate(kbps int) Filter {
	return Filter{Field: FieldABR, Op: OpLe, Value: strconv.Itoa(kbps)}
}

// Stream is a stream role narrowed by filters, applied in order
type Stream struct {
	Kind    StreamKind
	Filters []Filter
}

// NewStream creates a stream term of the given kind
func NewStream(kind StreamKind, filters ...Filter) Stream {
	return Stream{Kind: kind, Filters: filters}
}

// Where returns a copy of the stream with extra filters appended
func (s Stream) Where(filters ...Filter) Stream {
	out := Stream{Kind: s.Kind, Filters: make([]Filter, 0, len(s.Filters)+len(filters))}
	out.Filters = append(out.Filters, s.Filters...)
	out.Filters = append(out.Filters, filters...)
	return out
}

// String renders the stream term
func (s Stream) String() string {
	var b strings.Builder
	b.WriteString(string(s.Kind))
	for _, f := range s.Filters {
		b.WriteString(f.String())
	}
	return b.String()
}

// Choice is a set of streams downloaded together and merged
type Choice []Stream

// Merge groups streams into one choice
func Merge(streams ...Stream) Choice {
	return Choice(streams)
}

// String renders the streams joined with "+"
func (c Choice) String() string {
	parts := make([]string, 0, len(c))
	for _, s := range c {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "+")
}

// Selector is an ordered list of fallbacks; yt-dlp takes the first that matches
type Selector []Choice

// Alternatives builds a selector from fallbacks in priority order
func Alternatives(choices ...Choice) Selector {
	return Selector(choices)
}

// String renders the selector with fallbacks joined by "/"
func (s Selector) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s {
		if len(c) == 0 {
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "/")
}

// IsEmpty reports whether the selector renders to nothing
func (s Selector) IsEmpty() bool {
	return s.String() == ""
}
