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

package huffmancli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/openGemini/huffstep/app/ts-huffman/huffmancli"
	"github.com/openGemini/huffstep/lib/errno"
	"github.com/openGemini/huffstep/lib/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, text string) *huffman.Tree[rune] {
	tree, err := huffman.Build(huffman.CountRunes(text, " "))
	require.NoError(t, err)
	return tree
}

func TestNewRenderer(t *testing.T) {
	_, err := huffmancli.NewRenderer(&bytes.Buffer{}, "xml")
	assert.True(t, errno.Equal(err, errno.InvalidOutputFormat))

	for _, format := range []string{huffmancli.FormatText, huffmancli.FormatJSON} {
		r, err := huffmancli.NewRenderer(&bytes.Buffer{}, format)
		require.NoError(t, err)
		assert.NotNil(t, r)
	}
}

func TestRenderer_BuildText(t *testing.T) {
	var buf bytes.Buffer
	r, err := huffmancli.NewRenderer(&buf, huffmancli.FormatText)
	require.NoError(t, err)

	tree := buildTree(t, "aab")
	require.NoError(t, r.Build(tree))

	out := buf.String()
	assert.Contains(t, out, "Priority queue: ['b':1] ['a':2]")
	assert.Contains(t, out, "Step 1/1: 'b':1 + 'a':2 -> 3 | queue: [3]")
	assert.Contains(t, out, "0 'b':1")
	assert.Contains(t, out, "1 'a':2")
	assert.Contains(t, out, "total: 3, bits: 3, average: 1.000 bits/symbol, tie-break: insertion")
	assert.Contains(t, out, "'a'")
}

func TestRenderer_BuildJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := huffmancli.NewRenderer(&buf, huffmancli.FormatJSON)
	require.NoError(t, err)

	tree := buildTree(t, "huffman animation example")
	require.NoError(t, r.Build(tree))

	var report huffmancli.RunReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "insertion", report.TieBreak)
	assert.Equal(t, uint64(23), report.Total)
	assert.Len(t, report.Steps, 12)
	assert.Len(t, report.Snapshots, 13)
	assert.Len(t, report.Codes, 13)
	assert.Equal(t, uint64(4), report.Frequencies["a"])
	assert.Equal(t, tree.Codes['a'], report.Codes["a"])
	assert.Equal(t, tree.Codes.WeightedLength(tree.Frequencies), report.Bits)
	assert.Len(t, report.Fingerprint, 16)

	last := report.Steps[len(report.Steps)-1]
	assert.Equal(t, 12, last.Index)
	assert.Equal(t, uint64(23), last.Node.Freq)
	assert.False(t, last.Node.Leaf)
	assert.Empty(t, last.Node.Symbol)
}

func TestRenderer_Replay(t *testing.T) {
	tree := buildTree(t, "abbccc")

	var buf bytes.Buffer
	r, err := huffmancli.NewRenderer(&buf, huffmancli.FormatText)
	require.NoError(t, err)
	require.NoError(t, r.Replay(tree, -1))

	out := buf.String()
	assert.Contains(t, out, "Step 1/2: merging nodes")
	assert.Contains(t, out, "Priority queue: *['a':1]* *['b':2]* ['c':3]")
	assert.Contains(t, out, "Step 2/2: merging nodes")
	assert.Contains(t, out, "Priority queue: *['c':3]* *[3]*")
	assert.Contains(t, out, "Tree complete! Advance to show the codes.")
	assert.Contains(t, out, "Huffman codes:")
	assert.Equal(t, 1, strings.Count(out, "Huffman codes:"))

	buf.Reset()
	require.NoError(t, r.Replay(tree, 0))
	assert.Contains(t, buf.String(), "Step 1/2: merging nodes")
	assert.NotContains(t, buf.String(), "Step 2/2")
}

func TestRenderer_ReplayJSON(t *testing.T) {
	tree := buildTree(t, "abbccc")

	var buf bytes.Buffer
	r, err := huffmancli.NewRenderer(&buf, huffmancli.FormatJSON)
	require.NoError(t, err)
	require.NoError(t, r.Replay(tree, -1))

	var frames []huffmancli.FrameReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &frames))
	require.Len(t, frames, 4)

	assert.Equal(t, "merging", frames[0].State)
	assert.Equal(t, []int{0, 1}, frames[0].Processing)
	assert.Nil(t, frames[0].Merged)
	assert.Equal(t, "merging", frames[1].State)
	assert.Equal(t, 1, frames[1].Merged.Index)
	assert.Equal(t, "complete", frames[2].State)
	assert.Empty(t, frames[2].Codes)
	assert.Equal(t, "codes-shown", frames[3].State)
	assert.Equal(t, tree.Codes['c'], frames[3].Codes["c"])
}

func TestRenderer_Codes(t *testing.T) {
	tree := buildTree(t, "aaaa")

	var buf bytes.Buffer
	r, err := huffmancli.NewRenderer(&buf, huffmancli.FormatText)
	require.NoError(t, err)
	require.NoError(t, r.Codes(tree))
	assert.Contains(t, buf.String(), "'a'")
	assert.Contains(t, buf.String(), "total: 4, bits: 4")

	buf.Reset()
	r, err = huffmancli.NewRenderer(&buf, huffmancli.FormatJSON)
	require.NoError(t, err)
	require.NoError(t, r.Codes(tree))

	var codes map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &codes))
	assert.Equal(t, map[string]string{"a": "0"}, codes)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderer_WriteError(t *testing.T) {
	r, err := huffmancli.NewRenderer(failWriter{}, huffmancli.FormatJSON)
	require.NoError(t, err)

	err = r.Codes(buildTree(t, "ab"))
	assert.True(t, errno.Equal(err, errno.RenderFailed))
}
