package bvh

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONEncoder(t *testing.T) {
	clip := parse(t, skeletonInput)

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(clip); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got jsonClip
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.FrameCount != 1 {
		t.Errorf("frameCount = %d, want 1", got.FrameCount)
	}
	if len(got.Roots) != 1 {
		t.Fatalf("len(roots) = %d, want 1", len(got.Roots))
	}
	root := got.Roots[0]
	if root.Name != "Hips" || root.Kind != "root" {
		t.Errorf("root = %s/%s, want Hips/root", root.Name, root.Kind)
	}
	if len(root.Children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(root.Children))
	}
	if root.Children[0].Children[0].Kind != "endsite" {
		t.Errorf("grandchild kind = %q, want endsite", root.Children[0].Children[0].Kind)
	}
	if len(root.Frames) != 0 {
		t.Errorf("frames included without WithFrames: %v", root.Frames)
	}

	buf.Reset()
	if err := NewJSONEncoder(&buf).WithFrames(true).Encode(clip); err != nil {
		t.Fatalf("Encode with frames: %v", err)
	}
	if !strings.Contains(buf.String(), `"frames"`) {
		t.Error("WithFrames output is missing frame data")
	}
}

func TestClipMarshalJSON(t *testing.T) {
	clip := parse(t, minimalInput)

	data, err := json.Marshal(clip)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, want := range []string{`"frameCount":2`, `"frameTime":0.033333`, `"Hips"`, `"Xposition"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %s: %s", want, data)
		}
	}
	if strings.Contains(string(data), `"frames"`) {
		t.Error("MarshalJSON should omit frame data")
	}
}
