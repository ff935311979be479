package main

import (
	"fmt"

	"github.com/dhamidi/bvh"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print a summary of a BVH file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := bvh.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse bvh file: %w", err)
			}

			joints, endSites := 0, 0
			for _, node := range clip.Nodes() {
				if node.IsEndSite() {
					endSites++
				} else {
					joints++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "roots:      %d\n", len(clip.Roots))
			fmt.Fprintf(out, "joints:     %d\n", joints)
			fmt.Fprintf(out, "end sites:  %d\n", endSites)
			fmt.Fprintf(out, "channels:   %d\n", clip.TotalChannels())
			fmt.Fprintf(out, "frames:     %d\n", clip.FrameCount)
			fmt.Fprintf(out, "frame time: %gs\n", clip.FrameTime)
			fmt.Fprintf(out, "duration:   %gs\n", clip.Duration())
			return nil
		},
	}
}
