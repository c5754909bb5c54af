package sapling

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DefaultSampleRate is used to decode media when no audio context exists yet.
const DefaultSampleRate = 44100

// bytesPerFrame is the size of one decoded sample frame: 16-bit stereo.
const bytesPerFrame = 4

// Stream is decoded 16-bit little-endian stereo PCM.
type Stream interface {
	io.ReadSeeker
	// Length returns the total stream size in bytes.
	Length() int64
}

// Decoder turns an encoded audio file into a Stream at the given sample rate.
type Decoder func(src io.Reader, sampleRate int) (Stream, error)

var decoders = map[string]Decoder{
	".wav": func(src io.Reader, rate int) (Stream, error) { return wav.DecodeWithSampleRate(rate, src) },
	".mp3": func(src io.Reader, rate int) (Stream, error) { return mp3.DecodeWithSampleRate(rate, src) },
	".ogg": func(src io.Reader, rate int) (Stream, error) { return vorbis.DecodeWithSampleRate(rate, src) },
}

// RegisterDecoder makes d the decoder for files with the given extension
// (including the dot, e.g. ".flac").
func RegisterDecoder(ext string, d Decoder) {
	decoders[strings.ToLower(ext)] = d
}

// DecoderFor returns the decoder registered for path's extension.
func DecoderFor(path string) (Decoder, bool) {
	d, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return d, ok
}

// MediaSource is a decoded audio resource.
//
// A static source holds the whole decoded PCM in memory and can feed any
// number of players. A streaming source decodes from the open file as it
// plays and feeds a single player; Close releases the file.
type MediaSource struct {
	Filename   string
	Streaming  bool
	SampleRate int

	data   []byte
	stream Stream
	file   *os.File
}

// Length returns the decoded size in bytes.
func (s *MediaSource) Length() int64 {
	if s.Streaming {
		return s.stream.Length()
	}
	return int64(len(s.data))
}

// Duration returns the playing time of the source.
func (s *MediaSource) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	frames := s.Length() / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(s.SampleRate)
}

// Reader returns a reader over the decoded PCM. Static sources return a
// fresh reader on every call; streaming sources always return the stream.
func (s *MediaSource) Reader() io.ReadSeeker {
	if s.Streaming {
		return s.stream
	}
	return bytes.NewReader(s.data)
}

// NewPlayer creates an audio player for the source. The context sample rate
// must match the rate the source was decoded at.
func (s *MediaSource) NewPlayer(ctx *audio.Context) (*audio.Player, error) {
	if ctx.SampleRate() != s.SampleRate {
		return nil, fmt.Errorf("sapling: %s decoded at %d Hz, context runs at %d Hz",
			s.Filename, s.SampleRate, ctx.SampleRate())
	}
	return ctx.NewPlayer(s.Reader())
}

// Close releases the file held by a streaming source.
func (s *MediaSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// LoadMedia decodes an audio file. A nil decoder selects one by extension
// and a non-positive sampleRate means DefaultSampleRate.
func LoadMedia(filename string, streaming bool, decoder Decoder, sampleRate int) (*MediaSource, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if decoder == nil {
		d, ok := DecoderFor(filename)
		if !ok {
			return nil, fmt.Errorf("%w: no audio decoder for %s", ErrDecode, filename)
		}
		decoder = d
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("sapling: open media %s: %w", filename, err)
	}

	stream, err := decoder(f, sampleRate)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: media %s: %w", ErrDecode, filename, err)
	}

	src := &MediaSource{Filename: filename, Streaming: streaming, SampleRate: sampleRate}
	if streaming {
		src.stream = stream
		src.file = f
		return src, nil
	}

	defer f.Close()
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: media %s: %w", ErrDecode, filename, err)
	}
	src.data = data
	debugf("media %s decoded (%d bytes)", filename, len(data))
	return src, nil
}

// MediaFileHandle lazily loads an audio file as a *MediaSource.
type MediaFileHandle struct {
	*Handle[*MediaSource]
	Filename string
	// Streaming decodes while playing instead of up front.
	Streaming bool
	// Decoder overrides the extension-based decoder choice.
	Decoder Decoder
}

// NewMediaFileHandle creates a handle for the audio file at filename.
func NewMediaFileHandle(filename string, streaming bool, decoder Decoder) *MediaFileHandle {
	h := &MediaFileHandle{Filename: filename, Streaming: streaming, Decoder: decoder}
	h.Handle = NewHandle(h.load)
	return h
}

func (h *MediaFileHandle) load() (*MediaSource, error) {
	rate := DefaultSampleRate
	if ctx := audio.CurrentContext(); ctx != nil {
		rate = ctx.SampleRate()
	}
	return LoadMedia(h.Filename, h.Streaming, h.Decoder, rate)
}
