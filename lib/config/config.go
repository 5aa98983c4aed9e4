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
	"os"
	"path"

	"github.com/BurntSushi/toml"
	itoml "github.com/influxdata/influxdb/toml"
	"github.com/openGemini/huffstep/lib/errno"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EnvPrefix prefixes every environment override, e.g. HUFFSTEP_HUFFMAN_TEXT.
const EnvPrefix = "HUFFSTEP"

type Validator interface {
	Validate() error
}

type Config interface {
	ApplyEnvOverrides(func(string) string) error
	Validate() error
	GetLogging() *Logger
}

type App string

const (
	AppHuffman App = "huffman"
)

func Parse(conf Config, path string) error {
	if path == "" {
		return nil
	}

	return fromTomlFile(conf, path)
}

func fromTomlFile(c Config, p string) error {
	content, err := os.ReadFile(path.Clean(p))
	if err != nil {
		return errno.NewError(errno.ReadConfigFailed, p, err)
	}

	dec := unicode.BOMOverride(transform.Nop)
	content, _, err = transform.Bytes(dec, content)
	if err != nil {
		return errors.Wrapf(err, "strip byte order mark of %s", p)
	}
	return fromToml(c, string(content))
}

func fromToml(c Config, input string) error {
	_, err := toml.Decode(input, c)
	return errors.WithMessage(err, "decode toml config")
}

// Huffstep is the configuration file of the ts-huffman tool.
type Huffstep struct {
	Logging Logger  `toml:"logging"`
	Huffman Huffman `toml:"huffman"`
}

func NewHuffstep() *Huffstep {
	return &Huffstep{
		Logging: NewLogger(AppHuffman),
		Huffman: NewHuffman(),
	}
}

// ApplyEnvOverrides apply the environment configuration on top of the config.
func (c *Huffstep) ApplyEnvOverrides(fn func(string) string) error {
	return itoml.ApplyEnvOverrides(fn, EnvPrefix, c)
}

func (c *Huffstep) Validate() error {
	items := []Validator{
		c.Logging,
		c.Huffman,
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Huffstep) GetLogging() *Logger {
	return &c.Logging
}

func (c *Huffstep) ShowConfigs() map[string]interface{} {
	configs := c.Logging.ShowConfigs()
	for k, v := range c.Huffman.ShowConfigs() {
		configs[k] = v
	}
	return configs
}
