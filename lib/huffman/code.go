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

package huffman

import (
	"cmp"
	"slices"
	"strings"

	"github.com/openGemini/huffstep/lib/errno"
)

// Codes maps every symbol to its bit string of '0' and '1'.
type Codes[S cmp.Ordered] map[S]string

// GenerateCodes walks the tree from root, appending '0' for every left edge
// and '1' for every right edge. A root without children has an empty path and
// gets the single symbol code instead, "0" unless WithSingleSymbolCode says
// otherwise. An invalid single symbol code falls back to the default.
func GenerateCodes[S cmp.Ordered](root *Node[S], opts ...Option) Codes[S] {
	codes := make(Codes[S])
	if root == nil {
		return codes
	}

	if root.leaf {
		code := newOptions(opts).singleSymbolCode
		if !validBits(code) {
			code = DefaultSingleSymbolCode
		}
		codes[root.symbol] = code
		return codes
	}

	type item struct {
		node   *Node[S]
		prefix string
	}
	stack := []item{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.node.leaf {
			codes[it.node.symbol] = it.prefix
			continue
		}
		stack = append(stack,
			item{it.node.right, it.prefix + "1"},
			item{it.node.left, it.prefix + "0"})
	}
	return codes
}

// Symbols returns the coded symbols in ascending order.
func (c Codes[S]) Symbols() []S {
	symbols := make([]S, 0, len(c))
	for s := range c {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// Encode concatenates the codes of seq.
func (c Codes[S]) Encode(seq []S) (string, error) {
	var sb strings.Builder
	for _, s := range seq {
		code, ok := c[s]
		if !ok {
			return "", errno.NewError(errno.UnknownSymbol, s)
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// IsPrefixFree reports whether no code is a prefix of another one.
func (c Codes[S]) IsPrefixFree() bool {
	codes := make([]string, 0, len(c))
	for _, code := range c {
		codes = append(codes, code)
	}
	// after sorting, a code that prefixes others is directly followed by one of them
	slices.Sort(codes)
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return false
		}
	}
	return true
}

// WeightedLength is the number of bits needed to encode every occurrence of freqs.
func (c Codes[S]) WeightedLength(freqs Frequencies[S]) uint64 {
	var bits uint64
	for s, n := range freqs {
		bits += n * uint64(len(c[s]))
	}
	return bits
}

// AverageLength is the expected code length in bits per symbol.
func (c Codes[S]) AverageLength(freqs Frequencies[S]) float64 {
	total := freqs.Total()
	if total == 0 {
		return 0
	}
	return float64(c.WeightedLength(freqs)) / float64(total)
}

// Decode turns bits back into symbols by walking the tree, '0' goes left and
// '1' goes right. A single-leaf tree reads its code repeatedly.
func (t *Tree[S]) Decode(bits string) ([]S, error) {
	if t.Root == nil {
		return nil, errno.NewError(errno.NilTree)
	}
	if t.Root.leaf {
		return t.decodeSingle(bits)
	}

	var out []S
	cur := t.Root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			cur = cur.left
		case '1':
			cur = cur.right
		default:
			return nil, errno.NewError(errno.InvalidBit, bits[i], i)
		}

		if cur.leaf {
			out = append(out, cur.symbol)
			cur = t.Root
		}
	}

	if cur != t.Root {
		return nil, errno.NewError(errno.TruncatedCode, len(out))
	}
	return out, nil
}

func (t *Tree[S]) decodeSingle(bits string) ([]S, error) {
	code := t.Codes[t.Root.symbol]
	if !validBits(code) {
		code = DefaultSingleSymbolCode
	}

	out := make([]S, 0, len(bits)/len(code))
	for i := 0; i < len(bits); i += len(code) {
		for j := 0; j < len(code); j++ {
			if i+j >= len(bits) {
				return nil, errno.NewError(errno.TruncatedCode, len(out))
			}
			if bits[i+j] != code[j] {
				return nil, errno.NewError(errno.InvalidBit, bits[i+j], i+j)
			}
		}
		out = append(out, t.Root.symbol)
	}
	return out, nil
}
