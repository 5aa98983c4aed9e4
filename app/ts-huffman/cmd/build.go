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

func newBuildCommand(rFlags *CommandLineConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the tree and print every merge",
		Long:  `Build the Huffman tree of the input text and print the frequencies, every merge step, the tree and the codes`,
		Example: `
$ ts-huffman build --text "huffman animation example"

$ ts-huffman build --text "abracadabra" --ignore "" --tie-break newest --format json`,
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
			return r.Build(tree)
		},
	}
}
