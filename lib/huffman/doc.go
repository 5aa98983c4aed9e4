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

/*
Package huffman builds Huffman trees step by step.

Build merges the two lowest frequency nodes of a min-priority queue until a
single root remains. Every merge is recorded together with a snapshot of the
queue, so the construction can be replayed one step at a time with Replay.
Codes are derived from root-to-leaf paths, left is '0' and right is '1'.

Equal frequencies are ordered by an explicit TieBreak policy. Exact tree
shapes differ between policies, the code lengths they produce are all optimal.
*/
package huffman
