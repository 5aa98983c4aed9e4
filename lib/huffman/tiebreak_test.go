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

func TestParseTieBreak(t *testing.T) {
	for _, policy := range huffman.TieBreaks() {
		parsed, err := huffman.ParseTieBreak(policy.String())
		require.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}

	_, err := huffman.ParseTieBreak("leaf-first")
	assert.True(t, errno.Equal(err, errno.InvalidTieBreak))
	assert.Equal(t, "unknown", huffman.TieBreak(42).String())
}

func TestFingerprint(t *testing.T) {
	build := func(freqs huffman.Frequencies[rune], policy huffman.TieBreak) *huffman.Tree[rune] {
		tree, err := huffman.Build(freqs, huffman.WithTieBreak(policy))
		require.NoError(t, err)
		return tree
	}

	// no ties in the textbook counts, every policy builds the same tree
	exp := build(textbook(), huffman.TieBreakInsertion).Fingerprint()
	for _, policy := range huffman.TieBreaks() {
		assert.Equal(t, exp, build(textbook(), policy).Fingerprint(), policy.String())
	}

	ties := huffman.Frequencies[rune]{'a': 1, 'b': 1, 'c': 1, 'd': 1}
	assert.Equal(t, build(ties, huffman.TieBreakInsertion).Fingerprint(), build(ties, huffman.TieBreakInsertion).Fingerprint())
	assert.NotEqual(t, build(ties, huffman.TieBreakInsertion).Fingerprint(), build(ties, huffman.TieBreakNewest).Fingerprint())

	other := huffman.Frequencies[rune]{'a': 1, 'b': 1, 'c': 1, 'e': 1}
	assert.NotEqual(t, build(ties, huffman.TieBreakInsertion).Fingerprint(), build(other, huffman.TieBreakInsertion).Fingerprint())

	assert.Equal(t, uint64(0), (&huffman.Tree[rune]{}).Fingerprint())
}
