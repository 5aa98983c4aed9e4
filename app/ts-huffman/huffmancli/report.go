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
	"strconv"

	"github.com/openGemini/huffstep/lib/huffman"
)

type NodeReport struct {
	ID     int    `json:"id"`
	Symbol string `json:"symbol,omitempty"`
	Freq   uint64 `json:"freq"`
	Leaf   bool   `json:"leaf"`
}

type StepReport struct {
	Index int          `json:"index"`
	Node  NodeReport   `json:"node"`
	Left  NodeReport   `json:"left"`
	Right NodeReport   `json:"right"`
	Queue []NodeReport `json:"queue"`
}

// RunReport is the JSON form of a whole build.
type RunReport struct {
	TieBreak      string            `json:"tie_break"`
	Fingerprint   string            `json:"fingerprint"`
	Total         uint64            `json:"total"`
	Frequencies   map[string]uint64 `json:"frequencies"`
	Steps         []StepReport      `json:"steps"`
	Snapshots     [][]NodeReport    `json:"snapshots"`
	Codes         map[string]string `json:"codes"`
	Bits          uint64            `json:"bits"`
	AverageLength float64           `json:"average_length"`
}

type FrameReport struct {
	Step       int               `json:"step"`
	Total      int               `json:"total"`
	State      string            `json:"state"`
	Queue      []NodeReport      `json:"queue"`
	Processing []int             `json:"processing,omitempty"`
	Merged     *StepReport       `json:"merged,omitempty"`
	Codes      map[string]string `json:"codes,omitempty"`
}

func symbolText(r rune) string {
	return string(r)
}

func fingerprintText(tree *huffman.Tree[rune]) string {
	return fmt.Sprintf("%016x", tree.Fingerprint())
}

func newNodeReport(n *huffman.Node[rune]) NodeReport {
	report := NodeReport{ID: n.ID(), Freq: n.Freq(), Leaf: n.IsLeaf()}
	if s, ok := n.Symbol(); ok {
		report.Symbol = symbolText(s)
	}
	return report
}

func newNodeReports(nodes []*huffman.Node[rune]) []NodeReport {
	reports := make([]NodeReport, 0, len(nodes))
	for _, n := range nodes {
		reports = append(reports, newNodeReport(n))
	}
	return reports
}

func newStepReport(index int, step *huffman.Step[rune]) StepReport {
	return StepReport{
		Index: index,
		Node:  newNodeReport(step.Node),
		Left:  newNodeReport(step.Left),
		Right: newNodeReport(step.Right),
		Queue: newNodeReports(step.Queue),
	}
}

func newCodesReport(codes huffman.Codes[rune]) map[string]string {
	report := make(map[string]string, len(codes))
	for s, code := range codes {
		report[symbolText(s)] = code
	}
	return report
}

func NewRunReport(tree *huffman.Tree[rune]) *RunReport {
	report := &RunReport{
		TieBreak:      tree.TieBreak.String(),
		Fingerprint:   fingerprintText(tree),
		Total:         tree.Root.Freq(),
		Frequencies:   make(map[string]uint64, len(tree.Frequencies)),
		Steps:         make([]StepReport, 0, len(tree.Steps)),
		Snapshots:     make([][]NodeReport, 0, len(tree.Snapshots)),
		Codes:         newCodesReport(tree.Codes),
		Bits:          tree.Codes.WeightedLength(tree.Frequencies),
		AverageLength: tree.Codes.AverageLength(tree.Frequencies),
	}
	for s, n := range tree.Frequencies {
		report.Frequencies[symbolText(s)] = n
	}
	for i := range tree.Steps {
		report.Steps = append(report.Steps, newStepReport(i+1, &tree.Steps[i]))
	}
	for _, snapshot := range tree.Snapshots {
		report.Snapshots = append(report.Snapshots, newNodeReports(snapshot))
	}
	return report
}

func NewFrameReport(frame huffman.Frame[rune]) FrameReport {
	report := FrameReport{
		Step:       frame.Step,
		Total:      frame.Total,
		State:      frame.State.String(),
		Queue:      newNodeReports(frame.Queue),
		Processing: frame.Processing,
	}
	if frame.Merged != nil {
		merged := newStepReport(frame.Step, frame.Merged)
		report.Merged = &merged
	}
	if frame.Codes != nil {
		report.Codes = newCodesReport(frame.Codes)
	}
	return report
}

// label renders a node the way the queue and the tree show it: 'a':4 for a
// leaf, the frequency alone for an internal node.
func label(n *huffman.Node[rune]) string {
	if s, ok := n.Symbol(); ok {
		return fmt.Sprintf("%s:%d", strconv.QuoteRune(s), n.Freq())
	}
	return strconv.FormatUint(n.Freq(), 10)
}
