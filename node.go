package bvh

import "fmt"

type NodeKind int

const (
	KindRoot NodeKind = iota
	KindJoint
	KindEndSite
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindJoint:
		return "joint"
	case KindEndSite:
		return "endsite"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Channel is one animatable scalar degree of freedom on a joint.
type Channel string

const (
	Xposition Channel = "Xposition"
	Yposition Channel = "Yposition"
	Zposition Channel = "Zposition"
	Xrotation Channel = "Xrotation"
	Yrotation Channel = "Yrotation"
	Zrotation Channel = "Zrotation"
)

var validChannels = map[string]Channel{
	"Xposition": Xposition,
	"Yposition": Yposition,
	"Zposition": Zposition,
	"Xrotation": Xrotation,
	"Yrotation": Yrotation,
	"Zrotation": Zrotation,
}

func (c Channel) IsPosition() bool {
	return c == Xposition || c == Yposition || c == Zposition
}

func (c Channel) IsRotation() bool {
	return c == Xrotation || c == Yrotation || c == Zrotation
}

// Node is one joint of a skeletal hierarchy, or an End Site leaf marking
// the terminal point of a bone chain. Children are kept in declaration
// order; that order decides which motion values belong to which node, so
// it is never reordered.
type Node struct {
	Name     string
	Kind     NodeKind
	Offset   [3]float64
	Channels []Channel
	Parent   *Node
	Children []*Node

	// Frames holds one value vector per motion frame. Each vector has
	// exactly len(Channels) entries; End Sites have none.
	Frames [][]float64
}

func (n *Node) IsEndSite() bool {
	return n.Kind == KindEndSite
}

// Walk visits n and its descendants in pre-order, children in declaration
// order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Clip is the result of parsing one BVH file: the skeleton forest plus the
// motion header values.
type Clip struct {
	Roots      []*Node
	FrameCount int
	FrameTime  float64
}

// Nodes flattens the forest in pre-order, root by root. This is the order
// the motion section assigns values in.
func (c *Clip) Nodes() []*Node {
	var order []*Node
	for _, root := range c.Roots {
		root.Walk(func(n *Node) {
			order = append(order, n)
		})
	}
	return order
}

// TotalChannels is the number of values each motion frame carries.
func (c *Clip) TotalChannels() int {
	total := 0
	for _, n := range c.Nodes() {
		total += len(n.Channels)
	}
	return total
}

// Duration is the clip length in seconds.
func (c *Clip) Duration() float64 {
	return float64(c.FrameCount) * c.FrameTime
}
