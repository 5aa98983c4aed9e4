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

	"github.com/openGemini/huffstep/lib/errno"
)

// TieBreak decides which of two nodes with equal frequency leaves the queue first.
type TieBreak uint8

const (
	// TieBreakInsertion pops equal nodes in the order they entered the queue.
	// A merged node therefore lines up behind the nodes already waiting with
	// the same frequency.
	TieBreakInsertion TieBreak = iota
	// TieBreakNewest pops the most recently inserted node first.
	TieBreakNewest
	// TieBreakInternalFirst pops internal nodes before leaves, then falls
	// back to insertion order. Insertion order already favours leaves, since
	// every leaf is inserted before the first merge.
	TieBreakInternalFirst
)

var tieBreakNames = map[TieBreak]string{
	TieBreakInsertion:     "insertion",
	TieBreakNewest:        "newest",
	TieBreakInternalFirst: "internal-first",
}

func (t TieBreak) String() string {
	if name, ok := tieBreakNames[t]; ok {
		return name
	}
	return "unknown"
}

func ParseTieBreak(name string) (TieBreak, error) {
	for t, n := range tieBreakNames {
		if n == name {
			return t, nil
		}
	}
	return 0, errno.NewError(errno.InvalidTieBreak, name)
}

// TieBreaks returns every policy, in declaration order.
func TieBreaks() []TieBreak {
	return []TieBreak{TieBreakInsertion, TieBreakNewest, TieBreakInternalFirst}
}

// compare orders a before b when it has to leave the queue first.
// Node ids are unique inside a build, so the order is total.
func compare[S cmp.Ordered](policy TieBreak, a, b *Node[S]) int {
	if c := cmp.Compare(a.freq, b.freq); c != 0 {
		return c
	}

	switch policy {
	case TieBreakNewest:
		return cmp.Compare(b.id, a.id)
	case TieBreakInternalFirst:
		if a.leaf != b.leaf {
			if a.leaf {
				return 1
			}
			return -1
		}
	}
	return cmp.Compare(a.id, b.id)
}
