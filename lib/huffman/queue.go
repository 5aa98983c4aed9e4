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
	"container/heap"
	"slices"
)

// nodeQueue is a min-heap of nodes ordered by frequency and tie-break policy.
type nodeQueue[S cmp.Ordered] struct {
	policy TieBreak
	nodes  []*Node[S]
}

func newNodeQueue[S cmp.Ordered](policy TieBreak, nodes []*Node[S]) *nodeQueue[S] {
	q := &nodeQueue[S]{policy: policy, nodes: nodes}
	heap.Init(q)
	return q
}

func (q *nodeQueue[S]) Len() int { return len(q.nodes) }

func (q *nodeQueue[S]) Less(i, j int) bool {
	return compare(q.policy, q.nodes[i], q.nodes[j]) < 0
}

func (q *nodeQueue[S]) Swap(i, j int) {
	q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i]
}

func (q *nodeQueue[S]) Push(x any) {
	q.nodes = append(q.nodes, x.(*Node[S]))
}

func (q *nodeQueue[S]) Pop() any {
	old := q.nodes
	n := old[len(old)-1]
	old[len(old)-1] = nil
	q.nodes = old[:len(old)-1]
	return n
}

func (q *nodeQueue[S]) push(n *Node[S]) {
	heap.Push(q, n)
}

func (q *nodeQueue[S]) pop() *Node[S] {
	return heap.Pop(q).(*Node[S])
}

// snapshot lists the queued nodes in the order they would be popped.
func (q *nodeQueue[S]) snapshot() []*Node[S] {
	nodes := slices.Clone(q.nodes)
	slices.SortFunc(nodes, func(a, b *Node[S]) int {
		return compare(q.policy, a, b)
	})
	return nodes
}
