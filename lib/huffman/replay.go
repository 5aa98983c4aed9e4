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

type State uint8

const (
	// StateMerging means at least one recorded merge has not been shown yet.
	StateMerging State = iota
	// StateComplete means the whole tree is shown, codes are still hidden.
	StateComplete
	// StateCodesShown is final.
	StateCodesShown
)

func (s State) String() string {
	switch s {
	case StateMerging:
		return "merging"
	case StateComplete:
		return "complete"
	case StateCodesShown:
		return "codes-shown"
	}
	return "unknown"
}

// Frame is what a presentation layer needs to draw the current position.
type Frame[S cmp.Ordered] struct {
	// Step is the number of merges applied so far, out of Total.
	Step  int
	Total int
	State State
	// Queue is the priority queue contents at this position.
	Queue []*Node[S]
	// Processing holds the ids of the two nodes the next merge consumes.
	Processing []int
	// Merged is the merge applied last, nil before the first one.
	Merged *Step[S]
	// Tree is the subtree built by the last merge, or the root once a
	// single-symbol tree is complete. It is nil before the first merge.
	Tree  *Node[S]
	Codes Codes[S]
}

// Replay advances through a recorded build one merge at a time. It never
// rebuilds the tree, it only moves an index over Tree.Steps and Tree.Snapshots.
type Replay[S cmp.Ordered] struct {
	tree  *Tree[S]
	step  int
	state State
}

func NewReplay[S cmp.Ordered](tree *Tree[S]) *Replay[S] {
	r := &Replay[S]{tree: tree}
	r.Reset()
	return r
}

func (r *Replay[S]) Reset() {
	r.step = 0
	r.state = StateMerging
	if len(r.tree.Steps) == 0 {
		r.state = StateComplete
	}
}

func (r *Replay[S]) State() State {
	return r.state
}

func (r *Replay[S]) Step() int {
	return r.step
}

func (r *Replay[S]) Total() int {
	return len(r.tree.Steps)
}

// Advance applies the next merge, or reveals the codes once the tree is
// complete. It fails with ReplayFinished when the codes are already shown.
func (r *Replay[S]) Advance() error {
	switch r.state {
	case StateMerging:
		r.step++
		if r.step == len(r.tree.Steps) {
			r.state = StateComplete
		}
	case StateComplete:
		r.state = StateCodesShown
	default:
		return errno.NewError(errno.ReplayFinished, r.step)
	}
	return nil
}

// Next is Advance reporting progress as a bool.
func (r *Replay[S]) Next() bool {
	return r.Advance() == nil
}

func (r *Replay[S]) Frame() Frame[S] {
	f := Frame[S]{
		Step:  r.step,
		Total: len(r.tree.Steps),
		State: r.state,
		Queue: r.tree.Snapshots[r.step],
	}

	if r.state == StateMerging {
		next := r.tree.Steps[r.step]
		f.Processing = []int{next.Left.id, next.Right.id}
	}

	if r.step > 0 {
		f.Merged = &r.tree.Steps[r.step-1]
		f.Tree = f.Merged.Node
	} else if r.state != StateMerging {
		f.Tree = r.tree.Root
	}

	if r.state == StateCodesShown {
		f.Codes = r.tree.Codes
	}
	return f
}
