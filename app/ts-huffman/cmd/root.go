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

package cmd

import (
	"os"

	"github.com/openGemini/huffstep/lib/config"
	"github.com/openGemini/huffstep/lib/errno"
	"github.com/openGemini/huffstep/lib/huffman"
	"github.com/openGemini/huffstep/lib/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const TsHuffman = "ts-huffman"

type CommandLineConfig struct {
	ConfigPath string
	LogLevel   string
	LogPath    string

	Text       string
	Ignore     string
	TieBreak   string
	SingleCode string
	Format     string

	conf *config.Huffstep
}

// Execute executes the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	rFlags := &CommandLineConfig{}

	rootCmd := &cobra.Command{
		Use:   TsHuffman,
		Short: "Huffman tree step by step",
		Long:  `ts-huffman builds a Huffman tree from the character frequencies of a text and replays every merge`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rFlags.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rFlags.ConfigPath, "config", "c", "", "Path of the toml configuration file.")
	flags.StringVar(&rFlags.LogLevel, "log-level", "", "Log level: debug, info, warn or error.")
	flags.StringVar(&rFlags.LogPath, "log-path", "", "Directory of the log files, logs go to stderr when empty.")
	flags.StringVarP(&rFlags.Text, "text", "t", config.DefaultText, "Input text whose characters are counted.")
	flags.StringVar(&rFlags.Ignore, "ignore", config.DefaultIgnore, "Characters left out of the count.")
	flags.StringVar(&rFlags.TieBreak, "tie-break", config.DefaultTieBreak, "Order of equal frequencies: insertion, newest or internal-first.")
	flags.StringVar(&rFlags.SingleCode, "single-code", config.DefaultSingleSymbolCode, "Code of the only symbol of a single-symbol text.")
	flags.StringVar(&rFlags.Format, "format", config.DefaultFormat, "Output format: text or json.")

	rootCmd.AddCommand(
		newBuildCommand(rFlags),
		newReplayCommand(rFlags),
		newCodesCommand(rFlags),
		newVersionCommand(),
	)
	return rootCmd
}

// load reads the configuration file, then the environment, then the flags
// given on the command line, each one overriding the previous.
func (c *CommandLineConfig) load(cmd *cobra.Command) error {
	conf := config.NewHuffstep()
	if err := config.Parse(conf, c.ConfigPath); err != nil {
		return err
	}
	if err := conf.ApplyEnvOverrides(os.Getenv); err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		if err := conf.Logging.Level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return errno.NewError(errno.InvalidConfigValue, "log-level", c.LogLevel)
		}
	}
	if changed("log-path") {
		conf.Logging.Path = c.LogPath
	}
	if changed("text") {
		conf.Huffman.Text = c.Text
	}
	if changed("ignore") {
		conf.Huffman.Ignore = c.Ignore
	}
	if changed("tie-break") {
		conf.Huffman.TieBreak = c.TieBreak
	}
	if changed("single-code") {
		conf.Huffman.SingleSymbolCode = c.SingleCode
	}
	if changed("format") {
		conf.Huffman.Format = c.Format
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	logger.InitLogger(conf.Logging)
	logger.NewLogger(errno.ModuleCLI).Debug("configuration loaded", zap.Any("configs", conf.ShowConfigs()))
	c.conf = conf
	return nil
}

func (c *CommandLineConfig) buildTree() (*huffman.Tree[rune], error) {
	lg := logger.NewLogger(errno.ModuleCLI)
	h := c.conf.Huffman

	freqs := huffman.CountRunes(h.Text, h.Ignore)
	if len(freqs) == 0 {
		return nil, errno.NewError(errno.EmptyInputText, h.Ignore)
	}

	policy, err := huffman.ParseTieBreak(h.TieBreak)
	if err != nil {
		return nil, err
	}

	tree, err := huffman.Build(freqs,
		huffman.WithTieBreak(policy),
		huffman.WithSingleSymbolCode(h.SingleSymbolCode),
		huffman.WithLogger(logger.GetLogger()))
	if err != nil {
		lg.Error("build huffman tree failed", zap.Error(err))
		return nil, err
	}

	lg.Info("huffman tree built",
		zap.Int("symbols", len(freqs)),
		zap.Int("steps", len(tree.Steps)),
		zap.Uint64("fingerprint", tree.Fingerprint()))
	return tree, nil
}
