package sapling

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// SpritesheetMetadata describes how a spritesheet image splits into frames.
// Every field is optional; see ParseSpritesheet for the defaults.
//
// The JSON layout follows the array export of common sprite editors:
//
//	{
//	  "frames": [
//	    {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "duration": 100},
//	    {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}, "duration": 100}
//	  ],
//	  "meta": {"image": "hero.png", "origin": {"x": 8, "y": 0}}
//	}
type SpritesheetMetadata struct {
	Frames []FrameDescriptor `json:"frames" yaml:"frames"`
	Meta   SpritesheetMeta   `json:"meta" yaml:"meta"`
}

// SpritesheetMeta holds sheet-wide metadata.
type SpritesheetMeta struct {
	// Image is the source image path, relative to the metadata file.
	// Required by LoadSpritesheet, ignored by ParseSpritesheet.
	Image string `json:"image" yaml:"image"`
	// Origin is the anchor given to every produced image. Defaults to (0, 0).
	Origin *Vec2 `json:"origin" yaml:"origin"`
}

// FrameDescriptor is one entry of SpritesheetMetadata.Frames.
type FrameDescriptor struct {
	Frame FrameRect `json:"frame" yaml:"frame"`
	// Duration in milliseconds. Defaults to DefaultFrameDuration.
	Duration *int `json:"duration" yaml:"duration"`
}

// FrameRect is a frame rectangle in the source image's bottom-left-origin
// coordinates. Omitted X/Y default to 0, omitted W/H to the full image size.
type FrameRect struct {
	X *int `json:"x" yaml:"x"`
	Y *int `json:"y" yaml:"y"`
	W *int `json:"w" yaml:"w"`
	H *int `json:"h" yaml:"h"`
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// ParseSpritesheet converts src into the image or animation described by meta.
//
//   - No frames: src itself is returned with its anchor set to the origin.
//   - One frame: the frame's region is returned as an Image.
//   - More frames: an *Animation with one frame per descriptor, in order.
//
// Every produced image is anchored at meta.Meta.Origin.
func ParseSpritesheet(src Image, meta SpritesheetMetadata) (Source, error) {
	var origin Vec2
	if meta.Meta.Origin != nil {
		origin = *meta.Meta.Origin
	}

	if len(meta.Frames) == 0 {
		src.SetAnchor(origin)
		return src, nil
	}

	frames := make([]AnimationFrame, 0, len(meta.Frames))
	for i, fd := range meta.Frames {
		x := intOr(fd.Frame.X, 0)
		y := intOr(fd.Frame.Y, 0)
		w := intOr(fd.Frame.W, src.Width())
		h := intOr(fd.Frame.H, src.Height())
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("%w: frame %d has size %dx%d", ErrMalformedMetadata, i, w, h)
		}
		duration := intOr(fd.Duration, DefaultFrameDuration)
		if duration < 0 {
			return nil, fmt.Errorf("%w: frame %d has negative duration %d", ErrMalformedMetadata, i, duration)
		}

		region, err := src.Region(x, y, w, h)
		if err != nil {
			return nil, fmt.Errorf("sapling: spritesheet frame %d: %w", i, err)
		}
		region.SetAnchor(origin)
		frames = append(frames, AnimationFrame{Image: region, Duration: duration})
	}

	if len(frames) == 1 {
		return frames[0].Image, nil
	}
	return NewAnimation(frames...), nil
}

// ParseSpritesheetJSON decodes JSON metadata and calls ParseSpritesheet.
func ParseSpritesheetJSON(src Image, data []byte) (Source, error) {
	meta, err := decodeMetadata(data, false)
	if err != nil {
		return nil, err
	}
	return ParseSpritesheet(src, meta)
}

// decodeMetadata requires a mapping at the top level. Null and empty
// documents decode into the zero value without error.
func decodeMetadata(data []byte, isYAML bool) (SpritesheetMetadata, error) {
	var meta SpritesheetMetadata
	var err error
	if isYAML {
		var top map[any]any
		if err = yaml.Unmarshal(data, &top); err == nil && top == nil {
			err = errNotMapping
		}
		if err == nil {
			err = yaml.Unmarshal(data, &meta)
		}
	} else {
		var top map[string]json.RawMessage
		if err = json.Unmarshal(data, &top); err == nil && top == nil {
			err = errNotMapping
		}
		if err == nil {
			err = json.Unmarshal(data, &meta)
		}
	}
	if err != nil {
		return SpritesheetMetadata{}, fmt.Errorf("%w: %w", ErrMalformedMetadata, err)
	}
	return meta, nil
}

var errNotMapping = errors.New("document is not a mapping")

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadSpritesheet reads a metadata file, loads the image named by its
// meta.image field (relative to the metadata file) and parses it.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
//
// The image is decoded directly rather than through the image cache, so
// anchors set on the result never leak into other users of the same file.
func LoadSpritesheet(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sapling: read spritesheet %s: %w", path, err)
	}
	meta, err := decodeMetadata(data, isYAMLPath(path))
	if err != nil {
		return nil, fmt.Errorf("sapling: spritesheet %s: %w", path, err)
	}
	if meta.Meta.Image == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingImage, path)
	}

	imagePath := filepath.FromSlash(meta.Meta.Image)
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(path), imagePath)
	}
	img, err := decodeImageFile(imagePath)
	if err != nil {
		return nil, err
	}

	debugf("spritesheet %s: %d frame(s) from %s", path, len(meta.Frames), imagePath)
	return ParseSpritesheet(NewTexture(img), meta)
}

// SpritesheetFileHandle lazily loads a spritesheet metadata file with
// LoadSpritesheet.
type SpritesheetFileHandle struct {
	*Handle[Source]
	Filename string
}

// NewSpritesheetFileHandle creates a handle for the metadata file at filename.
func NewSpritesheetFileHandle(filename string) *SpritesheetFileHandle {
	h := &SpritesheetFileHandle{Filename: filename}
	h.Handle = NewHandle(h.load)
	return h
}

func (h *SpritesheetFileHandle) load() (Source, error) {
	return LoadSpritesheet(h.Filename)
}
