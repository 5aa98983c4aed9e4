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

package huffmancli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/openGemini/huffstep/lib/errno"
	"github.com/openGemini/huffstep/lib/huffman"
	"github.com/openGemini/huffstep/lib/logger"
	"github.com/xlab/treeprint"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer prints a recorded build as text or JSON.
type Renderer struct {
	out    io.Writer
	format string
	logger *logger.Logger
}

func NewRenderer(out io.Writer, format string) (*Renderer, error) {
	if format != FormatText && format != FormatJSON {
		return nil, errno.NewError(errno.InvalidOutputFormat, format)
	}
	return &Renderer{
		out:    out,
		format: format,
		logger: logger.NewLogger(errno.ModuleRender),
	}, nil
}

// Build prints the whole run: frequencies, every merge, the tree and the codes.
func (r *Renderer) Build(tree *huffman.Tree[rune]) error {
	if r.format == FormatJSON {
		return r.writeJSON("run", NewRunReport(tree))
	}

	r.frequencies(tree.Frequencies)
	r.printf("\nPriority queue: %s\n", queueLine(tree.Snapshots[0], nil))
	for i := range tree.Steps {
		step := &tree.Steps[i]
		r.printf("Step %d/%d: %s + %s -> %s | queue: %s\n", i+1, len(tree.Steps),
			label(step.Left), label(step.Right), label(step.Node), queueLine(step.Queue, nil))
	}
	r.printf("\n%s\n", treeText(tree.Root))
	r.codes(tree)
	r.summary(tree)
	return nil
}

// Replay prints one frame per advance, at most steps advances when steps >= 0.
func (r *Renderer) Replay(tree *huffman.Tree[rune], steps int) error {
	replay := huffman.NewReplay(tree)
	var frames []FrameReport

	for i := 0; ; i++ {
		frame := replay.Frame()
		if r.format == FormatJSON {
			frames = append(frames, NewFrameReport(frame))
		} else {
			r.frame(tree, frame)
		}

		if steps >= 0 && i >= steps {
			break
		}
		if err := replay.Advance(); err != nil {
			r.logger.Debug("replay stopped", zap.Error(err))
			break
		}
	}

	if r.format == FormatJSON {
		return r.writeJSON("replay", frames)
	}
	return nil
}

// Codes prints the code table only.
func (r *Renderer) Codes(tree *huffman.Tree[rune]) error {
	if r.format == FormatJSON {
		return r.writeJSON("codes", newCodesReport(tree.Codes))
	}
	r.codes(tree)
	r.summary(tree)
	return nil
}

func (r *Renderer) frame(tree *huffman.Tree[rune], frame huffman.Frame[rune]) {
	switch frame.State {
	case huffman.StateMerging:
		r.printf("Step %d/%d: merging nodes\n", frame.Step+1, frame.Total)
	case huffman.StateComplete:
		r.printf("Tree complete! Advance to show the codes.\n")
	case huffman.StateCodesShown:
		r.printf("Huffman codes:\n")
	}

	r.printf("Priority queue: %s\n", queueLine(frame.Queue, frame.Processing))
	if frame.Tree != nil {
		r.printf("%s", treeText(frame.Tree))
	}
	if frame.Codes != nil {
		r.codes(tree)
	}
	r.printf("\n")
}

func (r *Renderer) frequencies(freqs huffman.Frequencies[rune]) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Symbol", "Count"})
	for _, s := range freqs.Symbols() {
		table.Append([]string{strconv.QuoteRune(s), strconv.FormatUint(freqs[s], 10)})
	}
	table.Render()
}

func (r *Renderer) codes(tree *huffman.Tree[rune]) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Symbol", "Count", "Code"})
	for _, s := range tree.Codes.Symbols() {
		table.Append([]string{
			strconv.QuoteRune(s),
			strconv.FormatUint(tree.Frequencies[s], 10),
			tree.Codes[s],
		})
	}
	table.Render()
}

func (r *Renderer) summary(tree *huffman.Tree[rune]) {
	r.printf("total: %d, bits: %d, average: %.3f bits/symbol, tie-break: %s, fingerprint: %s\n",
		tree.Root.Freq(),
		tree.Codes.WeightedLength(tree.Frequencies),
		tree.Codes.AverageLength(tree.Frequencies),
		tree.TieBreak,
		fingerprintText(tree))
}

func (r *Renderer) writeJSON(what string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errno.NewError(errno.RenderFailed, what, err)
	}
	data = append(data, '\n')
	if _, err = r.out.Write(data); err != nil {
		return errno.NewError(errno.RenderFailed, what, err)
	}
	return nil
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// queueLine lists the queue in pop order, marking the nodes of the next merge.
func queueLine(queue []*huffman.Node[rune], processing []int) string {
	items := make([]string, 0, len(queue))
	for _, n := range queue {
		item := "[" + label(n) + "]"
		if slices.Contains(processing, n.ID()) {
			item = "*" + item + "*"
		}
		items = append(items, item)
	}
	return strings.Join(items, " ")
}

// treeText draws the subtree, each edge labelled with its bit.
func treeText(root *huffman.Node[rune]) string {
	tp := treeprint.New()
	tp.SetValue(label(root))

	type item struct {
		node   *huffman.Node[rune]
		parent treeprint.Tree
		bit    string
	}

	var stack []item
	if !root.IsLeaf() {
		stack = append(stack, item{root.Right(), tp, "1"}, item{root.Left(), tp, "0"})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		value := it.bit + " " + label(it.node)
		if it.node.IsLeaf() {
			it.parent.AddNode(value)
			continue
		}
		branch := it.parent.AddBranch(value)
		stack = append(stack, item{it.node.Right(), branch, "1"}, item{it.node.Left(), branch, "0"})
	}
	return tp.String()
}
