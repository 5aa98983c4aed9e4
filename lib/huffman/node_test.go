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

package huffman_test

import (
	"testing"

	"github.com/openGemini/huffstep/lib/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Walk(t *testing.T) {
	tree, err := huffman.Build(textbook())
	require.NoError(t, err)

	var labels []string
	var depths []int
	tree.Root.Walk(func(n *huffman.Node[rune], depth int) bool {
		labels = append(labels, n.String())
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []string{"100", "102:45", "55", "25", "99:12", "100:13", "30", "14", "97:5", "98:9", "101:16"}, labels)
	assert.Equal(t, []int{0, 1, 1, 2, 3, 3, 2, 3, 4, 4, 3}, depths)
	assert.Equal(t, 4, tree.Root.Height())

	var visited int
	tree.Root.Walk(func(n *huffman.Node[rune], depth int) bool {
		visited++
		return depth < 1
	})
	assert.Equal(t, 3, visited)
}

func TestNode_Accessors(t *testing.T) {
	tree, err := huffman.Build(huffman.Frequencies[string]{"x": 2, "y": 3})
	require.NoError(t, err)

	root := tree.Root
	assert.False(t, root.IsLeaf())
	_, ok := root.Symbol()
	assert.False(t, ok)
	assert.Equal(t, "5", root.String())

	left, right := root.Left(), root.Right()
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Equal(t, "x:2", left.String())
	assert.Equal(t, "y:3", right.String())
	assert.Nil(t, left.Left())
	assert.Nil(t, left.Right())

	leaves, internals := root.Count()
	assert.Equal(t, 2, leaves)
	assert.Equal(t, 1, internals)
}
