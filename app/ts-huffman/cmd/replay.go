/*
Copyright 2024 Huawei Cloud Computing Technologies Co., Ltd.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"github.com/openGemini/huffstep/app/ts-huffman/huffmancli"
	"github.com/spf13/cobra"
)

func newReplayCommand(rFlags *CommandLineConfig) *cobra.Command {
	var steps int

	replayCmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay the merges one frame at a time",
		Long:  `Replay the construction frame by frame: the queue with the next pair highlighted, the subtree built so far, then the codes`,
		Example: `
$ ts-huffman replay --steps 3

$ ts-huffman replay --text "mississippi" --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rFlags.buildTree()
			if err != nil {
				return err
			}
			r, err := huffmancli.NewRenderer(cmd.OutOrStdout(), rFlags.conf.Huffman.Format)
			if err != nil {
				return err
			}
			return r.Replay(tree, steps)
		},
	}
	replayCmd.Flags().IntVar(&steps, "steps", -1, "Number of advances to replay, all of them when negative.")
	return replayCmd
}
