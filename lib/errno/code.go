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

// common error codes
const (
	InternalError = 9001
	RecoverPanic  = 9003

	// BuiltInError errors returned by built-in functions
	BuiltInError = 9007

	// ThirdPartyError errors returned by third-party packages
	ThirdPartyError = 9008
)

// huffman module error codes
const (
	EmptyFrequencyMap       = 1001
	InvalidFrequency        = 1002
	UnknownSymbol           = 1003
	InvalidBit              = 1004
	TruncatedCode           = 1005
	InvalidTieBreak         = 1006
	InvalidSingleSymbolCode = 1007
	NilTree                 = 1008
)

// replay module error codes
const (
	ReplayFinished = 2001
)

// config module error codes
const (
	InvalidConfigValue = 3001
	ReadConfigFailed   = 3002
)

// cli and render module error codes
const (
	InvalidOutputFormat = 4001
	EmptyInputText      = 4002
	RenderFailed        = 5001
)
