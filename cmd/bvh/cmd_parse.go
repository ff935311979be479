package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dhamidi/bvh"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var withFrames bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a BVH file and dump the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			clip, err := bvh.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse bvh file: %w", err)
			}
			log.Infof("parsed %d roots, %d frames in %s", len(clip.Roots), clip.FrameCount, time.Since(started))

			enc := bvh.NewJSONEncoder(os.Stdout).WithFrames(withFrames)
			if err := enc.Encode(clip); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withFrames, "frames", false, "include per-frame channel values in the output")

	return cmd
}
