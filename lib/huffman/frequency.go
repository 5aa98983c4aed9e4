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

	set "github.com/deckarep/golang-set"
)

// Frequencies maps every symbol to its occurrence count.
type Frequencies[S cmp.Ordered] map[S]uint64

// CountFrequencies counts the symbols of seq, skipping those listed in ignore.
func CountFrequencies[S cmp.Ordered](seq []S, ignore ...S) Frequencies[S] {
	skip := set.NewThreadUnsafeSet()
	for _, s := range ignore {
		skip.Add(s)
	}

	freqs := make(Frequencies[S])
	for _, s := range seq {
		if skip.Contains(s) {
			continue
		}
		freqs[s]++
	}
	return freqs
}

// CountRunes counts the characters of text, skipping every character of ignore.
func CountRunes(text string, ignore string) Frequencies[rune] {
	return CountFrequencies([]rune(text), []rune(ignore)...)
}

// Total is the sum of all counts, which is the frequency of the root.
func (f Frequencies[S]) Total() uint64 {
	var total uint64
	for _, n := range f {
		total += n
	}
	return total
}

// Symbols returns the symbols in ascending order.
func (f Frequencies[S]) Symbols() []S {
	symbols := make([]S, 0, len(f))
	for s := range f {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}
