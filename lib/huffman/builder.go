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
	"go.uber.org/zap"
)

// Step is one merge: Node was created from Left and Right, popped in that
// order, and Queue holds the queue contents after Node was pushed.
type Step[S cmp.Ordered] struct {
	Node  *Node[S]
	Left  *Node[S]
	Right *Node[S]
	Queue []*Node[S]
}

// Tree is the result of one build. It owns every node it references.
type Tree[S cmp.Ordered] struct {
	Root        *Node[S]
	Frequencies Frequencies[S]
	// Steps has one entry per merge, len(Frequencies)-1 in total.
	Steps []Step[S]
	// Snapshots has the queue before the first merge followed by the queue
	// after every merge, so the last one only holds Root.
	Snapshots [][]*Node[S]
	Codes     Codes[S]
	TieBreak  TieBreak
}

// Build constructs the Huffman tree of freqs. The whole construction is
// recorded, nothing is computed lazily.
func Build[S cmp.Ordered](freqs Frequencies[S], opts ...Option) (*Tree[S], error) {
	o := newOptions(opts)
	if len(freqs) == 0 {
		return nil, errno.NewError(errno.EmptyFrequencyMap)
	}
	if _, ok := tieBreakNames[o.tieBreak]; !ok {
		return nil, errno.NewError(errno.InvalidTieBreak, o.tieBreak)
	}
	if !validBits(o.singleSymbolCode) {
		return nil, errno.NewError(errno.InvalidSingleSymbolCode, o.singleSymbolCode)
	}

	symbols := freqs.Symbols()
	leaves := make([]*Node[S], 0, len(symbols))
	for i, s := range symbols {
		if freqs[s] == 0 {
			return nil, errno.NewError(errno.InvalidFrequency, s, freqs[s])
		}
		leaves = append(leaves, newLeaf(i, s, freqs[s]))
	}

	q := newNodeQueue(o.tieBreak, leaves)
	tree := &Tree[S]{
		Frequencies: freqs,
		Steps:       make([]Step[S], 0, len(symbols)-1),
		Snapshots:   make([][]*Node[S], 0, len(symbols)),
		TieBreak:    o.tieBreak,
	}
	tree.Snapshots = append(tree.Snapshots, q.snapshot())

	nextID := len(leaves)
	for q.Len() > 1 {
		left := q.pop()
		right := q.pop()
		node := newInternal(nextID, left, right)
		nextID++
		q.push(node)

		queue := q.snapshot()
		tree.Steps = append(tree.Steps, Step[S]{Node: node, Left: left, Right: right, Queue: queue})
		tree.Snapshots = append(tree.Snapshots, queue)

		o.logger.Debug("merge nodes",
			zap.Int("step", len(tree.Steps)),
			zap.Int("node", node.id),
			zap.Uint64("freq", node.freq),
			zap.Int("left", left.id),
			zap.Int("right", right.id),
			zap.Int("queue", len(queue)))
	}

	tree.Root = q.pop()
	tree.Codes = GenerateCodes(tree.Root, WithSingleSymbolCode(o.singleSymbolCode))

	o.logger.Debug("huffman tree built",
		zap.Int("symbols", len(symbols)),
		zap.Uint64("total", tree.Root.freq),
		zap.String("tie-break", o.tieBreak.String()))
	return tree, nil
}

// Leaves and Internals count the nodes of the finished tree.
func (t *Tree[S]) Leaves() int {
	leaves, _ := t.Root.Count()
	return leaves
}

func (t *Tree[S]) Internals() int {
	_, internals := t.Root.Count()
	return internals
}

// Node finds a node by id, nil when no node of the tree has it.
func (t *Tree[S]) Node(id int) *Node[S] {
	var found *Node[S]
	t.Root.Walk(func(n *Node[S], _ int) bool {
		if n.id == id {
			found = n
		}
		return found == nil
	})
	return found
}
