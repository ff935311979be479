package bvh

import (
	"encoding/json"
	"io"
)

type jsonClip struct {
	FrameCount int         `json:"frameCount"`
	FrameTime  float64     `json:"frameTime"`
	Roots      []*jsonNode `json:"roots"`
}

type jsonNode struct {
	Name     string      `json:"name"`
	Kind     string      `json:"kind"`
	Offset   [3]float64  `json:"offset"`
	Channels []Channel   `json:"channels,omitempty"`
	Frames   [][]float64 `json:"frames,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// MarshalJSON encodes the clip without frame data. The tree holds parent
// back-pointers, so encoding goes through flat DTOs instead of the nodes
// themselves.
func (c *Clip) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toJSON(false))
}

func (c *Clip) toJSON(withFrames bool) *jsonClip {
	jc := &jsonClip{
		FrameCount: c.FrameCount,
		FrameTime:  c.FrameTime,
	}
	for _, root := range c.Roots {
		jc.Roots = append(jc.Roots, root.toJSON(withFrames))
	}
	return jc
}

func (n *Node) toJSON(withFrames bool) *jsonNode {
	jn := &jsonNode{
		Name:     n.Name,
		Kind:     n.Kind.String(),
		Offset:   n.Offset,
		Channels: n.Channels,
	}
	if withFrames {
		jn.Frames = n.Frames
	}
	for _, child := range n.Children {
		jn.Children = append(jn.Children, child.toJSON(withFrames))
	}
	return jn
}

// JSONEncoder writes a clip as indented JSON.
type JSONEncoder struct {
	w          io.Writer
	withFrames bool
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// WithFrames makes Encode include per-frame channel values. Off by
// default: frame data dwarfs the hierarchy for real captures.
func (e *JSONEncoder) WithFrames(include bool) *JSONEncoder {
	e.withFrames = include
	return e
}

func (e *JSONEncoder) Encode(clip *Clip) error {
	text, err := json.MarshalIndent(clip.toJSON(e.withFrames), "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}
