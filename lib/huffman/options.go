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
	"strings"

	"go.uber.org/zap"
)

// DefaultSingleSymbolCode is assigned to the only symbol of a one-node tree,
// whose root-to-leaf path is empty.
const DefaultSingleSymbolCode = "0"

type options struct {
	tieBreak         TieBreak
	singleSymbolCode string
	logger           *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{
		tieBreak:         TieBreakInsertion,
		singleSymbolCode: DefaultSingleSymbolCode,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type Option func(o *options)

// WithTieBreak sets the ordering of equal frequency nodes, TieBreakInsertion by default.
func WithTieBreak(t TieBreak) Option {
	return func(o *options) {
		o.tieBreak = t
	}
}

// WithSingleSymbolCode sets the code of a single-symbol input.
func WithSingleSymbolCode(code string) Option {
	return func(o *options) {
		o.singleSymbolCode = code
	}
}

// WithLogger receives one debug entry per merge.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func validBits(code string) bool {
	return code != "" && strings.Trim(code, "01") == ""
}
