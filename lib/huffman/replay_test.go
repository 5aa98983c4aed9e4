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

	"github.com/openGemini/huffstep/lib/errno"
	"github.com/openGemini/huffstep/lib/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	tree, err := huffman.Build(textbook())
	require.NoError(t, err)

	r := huffman.NewReplay(tree)
	assert.Equal(t, huffman.StateMerging, r.State())
	assert.Equal(t, 5, r.Total())

	frame := r.Frame()
	assert.Equal(t, 0, frame.Step)
	assert.Nil(t, frame.Tree)
	assert.Nil(t, frame.Merged)
	assert.Nil(t, frame.Codes)
	assert.Equal(t, tree.Snapshots[0], frame.Queue)
	assert.Equal(t, []int{tree.Steps[0].Left.ID(), tree.Steps[0].Right.ID()}, frame.Processing)

	for i := 1; i <= 5; i++ {
		require.True(t, r.Next())
		frame = r.Frame()
		assert.Equal(t, i, frame.Step)
		assert.Equal(t, tree.Snapshots[i], frame.Queue)
		assert.Same(t, tree.Steps[i-1].Node, frame.Tree)
		assert.Equal(t, &tree.Steps[i-1], frame.Merged)
		if i < 5 {
			assert.Equal(t, huffman.StateMerging, frame.State)
			assert.Equal(t, []int{tree.Steps[i].Left.ID(), tree.Steps[i].Right.ID()}, frame.Processing)
		}
	}

	assert.Equal(t, huffman.StateComplete, r.State())
	frame = r.Frame()
	assert.Empty(t, frame.Processing)
	assert.Same(t, tree.Root, frame.Tree)
	assert.Nil(t, frame.Codes)

	require.NoError(t, r.Advance())
	assert.Equal(t, huffman.StateCodesShown, r.State())
	assert.Equal(t, tree.Codes, r.Frame().Codes)

	err = r.Advance()
	assert.True(t, errno.Equal(err, errno.ReplayFinished))
	assert.False(t, r.Next())
	assert.Equal(t, 5, r.Step())

	r.Reset()
	assert.Equal(t, huffman.StateMerging, r.State())
	assert.Equal(t, 0, r.Step())
}

func TestReplay_SingleSymbol(t *testing.T) {
	tree, err := huffman.Build(huffman.Frequencies[rune]{'a': 5})
	require.NoError(t, err)

	r := huffman.NewReplay(tree)
	assert.Equal(t, huffman.StateComplete, r.State())

	frame := r.Frame()
	assert.Same(t, tree.Root, frame.Tree)
	assert.Empty(t, frame.Processing)
	assert.Equal(t, 0, frame.Total)

	assert.True(t, r.Next())
	assert.Equal(t, huffman.Codes[rune]{'a': "0"}, r.Frame().Codes)
	assert.False(t, r.Next())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "merging", huffman.StateMerging.String())
	assert.Equal(t, "complete", huffman.StateComplete.String())
	assert.Equal(t, "codes-shown", huffman.StateCodesShown.String())
	assert.Equal(t, "unknown", huffman.State(9).String())
}
