// Package scene materializes a parsed BVH clip into a host scene graph.
//
// The package does not know any particular 3D host. The caller supplies a
// Builder that creates one transform object per skeleton node; Build walks
// the forest, creates the objects parent-first, and keys every frame's
// channel values onto them.
package scene

import (
	"fmt"

	"github.com/dhamidi/bvh"
)

// Attr names one animatable transform attribute on a scene object.
type Attr string

const (
	TranslateX Attr = "translateX"
	TranslateY Attr = "translateY"
	TranslateZ Attr = "translateZ"
	RotateX    Attr = "rotateX"
	RotateY    Attr = "rotateY"
	RotateZ    Attr = "rotateZ"
)

var attrForChannel = map[bvh.Channel]Attr{
	bvh.Xposition: TranslateX,
	bvh.Yposition: TranslateY,
	bvh.Zposition: TranslateZ,
	bvh.Xrotation: RotateX,
	bvh.Yrotation: RotateY,
	bvh.Zrotation: RotateZ,
}

// Object is a transform node created by the host for one skeleton joint.
type Object interface {
	// SetKey records one channel value at the given time in seconds.
	SetKey(time float64, attr Attr, value float64) error
}

// Builder creates scene objects. parent is nil for root joints; offset is
// the static translation from the parent joint.
type Builder interface {
	Create(name string, parent Object, offset [3]float64) (Object, error)
}

// Build creates one object per node in the clip and keys all frame data
// onto the channel-bearing ones. Objects are created parent-first so the
// builder can attach them as it goes; keys are written frame by frame in
// the clip's traversal order.
func Build(clip *bvh.Clip, b Builder) error {
	objects := make(map[*bvh.Node]Object)
	for _, root := range clip.Roots {
		if err := create(root, nil, b, objects); err != nil {
			return err
		}
	}

	order := clip.Nodes()
	for frame := 0; frame < clip.FrameCount; frame++ {
		time := float64(frame) * clip.FrameTime
		for _, node := range order {
			if len(node.Channels) == 0 {
				continue
			}
			obj := objects[node]
			for i, ch := range node.Channels {
				attr, ok := attrForChannel[ch]
				if !ok {
					return fmt.Errorf("joint %s: no transform attribute for channel %s", node.Name, ch)
				}
				if err := obj.SetKey(time, attr, node.Frames[frame][i]); err != nil {
					return fmt.Errorf("key %s.%s at frame %d: %w", node.Name, attr, frame, err)
				}
			}
		}
	}
	return nil
}

func create(node *bvh.Node, parent Object, b Builder, objects map[*bvh.Node]Object) error {
	obj, err := b.Create(node.Name, parent, node.Offset)
	if err != nil {
		return fmt.Errorf("create joint %s: %w", node.Name, err)
	}
	objects[node] = obj
	for _, child := range node.Children {
		if err := create(child, obj, b, objects); err != nil {
			return err
		}
	}
	return nil
}
