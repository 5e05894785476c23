// Package atlas maps sprite identifiers to UV windows within a packed
// texture atlas, so one bound texture serves many sprites and animation
// frames.
package atlas

import (
	"encoding/json"
	"fmt"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// Sprite describes one animation strip inside an atlas texture: the UV
// rectangle of its first frame and how many frames follow it in a row.
type Sprite struct {
	// UVTopLeft is the normalized top-left corner of frame 0.
	UVTopLeft math.Vec2
	// UVSize is the normalized size of one frame.
	UVSize math.Vec2
	// Frames is the frame count; animations are laid out row-wise.
	Frames int
}

// UVWindow returns the window rectangle (x, y, width, height) for the
// given frame, wrapping past the last frame so callers can feed a
// monotonically increasing frame counter.
func (s Sprite) UVWindow(frame int) math.Vec4 {
	left := s.UVTopLeft.X + s.UVSize.X*float32(frame%s.Frames)
	return math.Vec4{X: left, Y: s.UVTopLeft.Y, Z: s.UVSize.X, W: s.UVSize.Y}
}

// Atlas maps (image, tag) identifiers to sprites.
type Atlas struct {
	sprites map[spriteKey]Sprite
}

type spriteKey struct {
	image string
	tag   string
}

// New creates an empty Atlas.
func New() *Atlas {
	return &Atlas{sprites: make(map[spriteKey]Sprite)}
}

// Add registers a sprite under an image name and optional tag.
func (a *Atlas) Add(image, tag string, sprite Sprite) {
	a.sprites[spriteKey{image: image, tag: tag}] = sprite
}

// Sprite looks up a sprite by image name and optional tag.
func (a *Atlas) Sprite(image, tag string) (Sprite, bool) {
	s, ok := a.sprites[spriteKey{image: image, tag: tag}]
	return s, ok
}

// Aseprite JSON export structure (array mode). Animations are marked by
// frame tags and laid out in row fashion.
type asepriteDoc struct {
	Frames []struct {
		Frame asepriteRect `json:"frame"`
	} `json:"frames"`
	Meta struct {
		Image string `json:"image"`
		Size  struct {
			W int `json:"w"`
			H int `json:"h"`
		} `json:"size"`
		FrameTags []asepriteTag `json:"frameTags"`
	} `json:"meta"`
}

type asepriteRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type asepriteTag struct {
	Name string `json:"name"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

// AddAseprite registers every tagged animation from an Aseprite JSON
// export. Untagged documents become a single unnamed sprite covering all
// frames.
func (a *Atlas) AddAseprite(doc []byte) error {
	var parsed asepriteDoc
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("parsing aseprite doc: %w", err)
	}

	if len(parsed.Frames) == 0 {
		return fmt.Errorf("aseprite doc has no frames")
	}
	if parsed.Meta.Size.W == 0 || parsed.Meta.Size.H == 0 {
		return fmt.Errorf("aseprite doc has no atlas size")
	}

	tags := parsed.Meta.FrameTags
	if len(tags) == 0 {
		tags = []asepriteTag{{From: 0, To: len(parsed.Frames) - 1}}
	}

	atlasW := float64(parsed.Meta.Size.W)
	atlasH := float64(parsed.Meta.Size.H)

	for _, tag := range tags {
		if tag.From < 0 || tag.To >= len(parsed.Frames) || tag.To < tag.From {
			return fmt.Errorf("tag %q frame range [%d,%d] out of bounds", tag.Name, tag.From, tag.To)
		}

		first := parsed.Frames[tag.From].Frame
		a.Add(parsed.Meta.Image, tag.Name, Sprite{
			UVTopLeft: math.Vec2{
				X: float32(float64(first.X) / atlasW),
				Y: float32(float64(first.Y) / atlasH),
			},
			UVSize: math.Vec2{
				X: float32(float64(first.W) / atlasW),
				Y: float32(float64(first.H) / atlasH),
			},
			Frames: tag.To + 1 - tag.From,
		})
	}

	return nil
}
