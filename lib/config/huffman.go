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

package config

import (
	"strings"

	"github.com/openGemini/huffstep/lib/errno"
)

const (
	DefaultText             = "huffman animation example"
	DefaultIgnore           = " "
	DefaultTieBreak         = "insertion"
	DefaultSingleSymbolCode = "0"
	DefaultFormat           = "text"
)

var (
	tieBreaks = []string{"insertion", "newest", "internal-first"}
	formats   = []string{"text", "json"}
)

// Huffman holds the input and policies of one tree construction.
type Huffman struct {
	Text string `toml:"text"`
	// Ignore lists the characters left out of the frequency count
	Ignore           string `toml:"ignore"`
	TieBreak         string `toml:"tie-break"`
	SingleSymbolCode string `toml:"single-symbol-code"`
	Format           string `toml:"format"`
}

func NewHuffman() Huffman {
	return Huffman{
		Text:             DefaultText,
		Ignore:           DefaultIgnore,
		TieBreak:         DefaultTieBreak,
		SingleSymbolCode: DefaultSingleSymbolCode,
		Format:           DefaultFormat,
	}
}

func (c Huffman) Validate() error {
	if !contains(tieBreaks, c.TieBreak) {
		return errno.NewError(errno.InvalidConfigValue, "huffman.tie-break", c.TieBreak)
	}

	if c.SingleSymbolCode == "" || strings.Trim(c.SingleSymbolCode, "01") != "" {
		return errno.NewError(errno.InvalidConfigValue, "huffman.single-symbol-code", c.SingleSymbolCode)
	}

	if !contains(formats, c.Format) {
		return errno.NewError(errno.InvalidConfigValue, "huffman.format", c.Format)
	}

	return nil
}

func (c Huffman) ShowConfigs() map[string]interface{} {
	return map[string]interface{}{
		"huffman.text":               c.Text,
		"huffman.ignore":             c.Ignore,
		"huffman.tie-break":          c.TieBreak,
		"huffman.single-symbol-code": c.SingleSymbolCode,
		"huffman.format":             c.Format,
	}
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
