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
)

func TestCountRunes(t *testing.T) {
	freqs := huffman.CountRunes("huffman animation example", " ")

	exp := huffman.Frequencies[rune]{
		'h': 1, 'u': 1, 'f': 2, 'm': 3, 'a': 4, 'n': 3, 'i': 2,
		't': 1, 'o': 1, 'e': 2, 'x': 1, 'p': 1, 'l': 1,
	}
	assert.Equal(t, exp, freqs)
	assert.Equal(t, uint64(23), freqs.Total())
	assert.NotContains(t, freqs, ' ')
}

func TestCountFrequencies(t *testing.T) {
	for _, tc := range []struct {
		name   string
		seq    []string
		ignore []string
		exp    huffman.Frequencies[string]
	}{
		{
			name: "empty",
			exp:  huffman.Frequencies[string]{},
		},
		{
			name: "tokens",
			seq:  []string{"GET", "PUT", "GET", "GET", "DELETE"},
			exp:  huffman.Frequencies[string]{"GET": 3, "PUT": 1, "DELETE": 1},
		},
		{
			name:   "ignore several",
			seq:    []string{"a", "-", "b", "_", "a"},
			ignore: []string{"-", "_", "z"},
			exp:    huffman.Frequencies[string]{"a": 2, "b": 1},
		},
		{
			name:   "everything ignored",
			seq:    []string{"-", "-"},
			ignore: []string{"-"},
			exp:    huffman.Frequencies[string]{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, huffman.CountFrequencies(tc.seq, tc.ignore...))
		})
	}
}

func TestFrequencies_Symbols(t *testing.T) {
	freqs := huffman.CountFrequencies([]byte("banana"))
	assert.Equal(t, []byte("abn"), freqs.Symbols())
	assert.Equal(t, uint64(6), freqs.Total())

	assert.Empty(t, huffman.Frequencies[int]{}.Symbols())
	assert.Equal(t, uint64(0), huffman.Frequencies[int]{}.Total())
}
