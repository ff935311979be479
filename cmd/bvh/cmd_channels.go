package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/bvh"
	"github.com/spf13/cobra"
)

func newChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels <file>",
		Short: "List channel-bearing joints in per-frame consumption order",
		Long: `List every joint that consumes motion data, in the exact order
the values of one frame are assigned to joints.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := bvh.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse bvh file: %w", err)
			}

			out := cmd.OutOrStdout()
			column := 0
			for _, node := range clip.Nodes() {
				if len(node.Channels) == 0 {
					continue
				}
				names := make([]string, len(node.Channels))
				for i, ch := range node.Channels {
					names[i] = string(ch)
				}
				fmt.Fprintf(out, "%4d  %-24s %s\n", column, node.Name, strings.Join(names, " "))
				column += len(node.Channels)
			}
			return nil
		},
	}
}
