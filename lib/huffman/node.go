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
	"fmt"
)

// Node is a vertex of a Huffman tree. A leaf carries a symbol, an internal
// node carries the sum of its two children. Nodes never change once built.
type Node[S cmp.Ordered] struct {
	// id is the creation order inside one build: leaves first, in ascending
	// symbol order, then internal nodes in merge order.
	id     int
	symbol S
	freq   uint64
	leaf   bool
	left   *Node[S]
	right  *Node[S]
}

func newLeaf[S cmp.Ordered](id int, symbol S, freq uint64) *Node[S] {
	return &Node[S]{id: id, symbol: symbol, freq: freq, leaf: true}
}

func newInternal[S cmp.Ordered](id int, left, right *Node[S]) *Node[S] {
	return &Node[S]{id: id, freq: left.freq + right.freq, left: left, right: right}
}

// ID is stable for a given input and tie-break policy, use it instead of
// pointer identity when matching nodes across snapshots.
func (n *Node[S]) ID() int {
	return n.id
}

// Symbol returns the symbol of a leaf. ok is false for internal nodes.
func (n *Node[S]) Symbol() (symbol S, ok bool) {
	return n.symbol, n.leaf
}

func (n *Node[S]) Freq() uint64 {
	return n.freq
}

func (n *Node[S]) IsLeaf() bool {
	return n.leaf
}

func (n *Node[S]) Left() *Node[S] {
	return n.left
}

func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// String renders a leaf as "symbol:freq" and an internal node as "freq".
func (n *Node[S]) String() string {
	if n.leaf {
		return fmt.Sprintf("%v:%d", n.symbol, n.freq)
	}
	return fmt.Sprintf("%d", n.freq)
}

// Walk visits the subtree in pre-order, left before right. fn receives the
// depth of each node, the receiver being at depth 0. Returning false skips
// the children of that node.
func (n *Node[S]) Walk(fn func(node *Node[S], depth int) bool) {
	type item struct {
		node  *Node[S]
		depth int
	}

	// explicit stack, skewed trees are as deep as they have leaves
	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(it.node, it.depth) || it.node.leaf {
			continue
		}
		stack = append(stack, item{it.node.right, it.depth + 1}, item{it.node.left, it.depth + 1})
	}
}

// Count returns the number of leaves and internal nodes of the subtree.
func (n *Node[S]) Count() (leaves, internals int) {
	n.Walk(func(node *Node[S], _ int) bool {
		if node.leaf {
			leaves++
		} else {
			internals++
		}
		return true
	})
	return
}

// Height is the length of the longest root-to-leaf path.
func (n *Node[S]) Height() int {
	height := 0
	n.Walk(func(_ *Node[S], depth int) bool {
		height = max(height, depth)
		return true
	})
	return height
}
