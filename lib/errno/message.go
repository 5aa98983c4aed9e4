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

package errno

type Message struct {
	format string
	level  Level
	module Module
}

func newMessage(format string, module Module, level Level) *Message {
	return &Message{
		format: format,
		level:  level,
		module: module,
	}
}

func newNoticeMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelNotice)
}

func newWarnMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelWarn)
}

func newFatalMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelFatal)
}

var unknownMessage = newNoticeMessage("unknown error", ModuleUnknown)

// When an error message is initialized, the level and module corresponding to the error code are bound
// If the module to which the error code belongs cannot be determined during initialization, set to ModuleUnknown
// Can set module when recording logs
var messageMap = map[Errno]*Message{
	// common error codes
	InternalError: newWarnMessage("%v", ModuleUnknown),
	RecoverPanic:  newFatalMessage("runtime panic: %v", ModuleUnknown),

	// huffman error codes
	EmptyFrequencyMap:       newWarnMessage("frequency map is empty, no root can be built", ModuleHuffman),
	InvalidFrequency:        newWarnMessage("invalid frequency for symbol %v: %d, expected at least 1", ModuleHuffman),
	UnknownSymbol:           newWarnMessage("symbol %v has no code", ModuleHuffman),
	InvalidBit:              newWarnMessage("invalid bit %q at offset %d, expected '0' or '1'", ModuleHuffman),
	TruncatedCode:           newWarnMessage("bit string ends inside a code after %d symbols", ModuleHuffman),
	InvalidTieBreak:         newWarnMessage("unknown tie-break policy: %s", ModuleHuffman),
	InvalidSingleSymbolCode: newWarnMessage("invalid single symbol code %q, expected a non-empty bit string", ModuleHuffman),
	NilTree:                 newFatalMessage("tree has no root", ModuleHuffman),

	// replay error codes
	ReplayFinished: newNoticeMessage("replay finished after %d steps", ModuleReplay),

	// config error codes
	InvalidConfigValue: newWarnMessage("invalid config %s: %v", ModuleConfig),
	ReadConfigFailed:   newWarnMessage("read config %s failed: %v", ModuleConfig),

	// cli and render error codes
	InvalidOutputFormat: newWarnMessage("unsupported output format: %s, expected text or json", ModuleCLI),
	EmptyInputText:      newWarnMessage("input text has no symbols left after ignoring %q", ModuleCLI),
	RenderFailed:        newWarnMessage("render %s failed: %v", ModuleRender),
}
