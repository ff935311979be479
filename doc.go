// Package bvh parses Biovision Hierarchy (BVH) motion-capture files.
//
// A BVH file pairs a skeletal hierarchy with time-sampled motion data:
//
//	HIERARCHY
//	ROOT Hips
//	{
//	    OFFSET 0.0 0.0 0.0
//	    CHANNELS 3 Xposition Yposition Zposition
//	    JOINT Chest
//	    {
//	        OFFSET 0.0 5.21 0.0
//	        CHANNELS 3 Zrotation Xrotation Yrotation
//	        End Site
//	        {
//	            OFFSET 0.0 1.0 0.0
//	        }
//	    }
//	}
//	MOTION
//	Frames: 2
//	Frame Time: 0.033333
//	1.0 2.0 3.0 0.0 0.0 0.0
//	4.0 5.0 6.0 0.0 0.0 0.0
//
// Parsing runs in two phases. The hierarchy phase builds an immutable
// forest of Node trees (a file may hold several ROOT skeletons). The
// motion phase then streams each frame's values onto the channel-bearing
// nodes, visiting them in pre-order matching the declaration order of the
// hierarchy. That order is computed once from the tree shape and reused
// identically for every frame: it decides which value belongs to which
// joint, so getting it wrong silently corrupts the whole capture.
//
// Any structural or numeric failure aborts the parse with a *ParseError
// carrying the error kind and the source position; no partial clip is
// returned. There is no auto-repair: silently wrong motion data is worse
// than a hard failure.
//
//	clip, err := bvh.ParseFile("walk.bvh")
//	if err != nil {
//	    return err
//	}
//	for _, root := range clip.Roots {
//	    root.Walk(func(n *bvh.Node) { ... })
//	}
package bvh
