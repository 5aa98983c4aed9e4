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
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	leafTag     = 'L'
	internalTag = 'I'
)

// Fingerprint hashes the shape of the tree together with every frequency and
// symbol. Two trees have the same fingerprint when they produce the same codes
// for the same counts, which makes it handy to compare tie-break policies.
func (t *Tree[S]) Fingerprint() uint64 {
	if t.Root == nil {
		return 0
	}

	d := xxhash.New()
	var buf []byte
	t.Root.Walk(func(n *Node[S], _ int) bool {
		buf = buf[:0]
		if n.leaf {
			buf = append(buf, leafTag)
			buf = binary.LittleEndian.AppendUint64(buf, n.freq)
			symbol := fmt.Sprint(n.symbol)
			buf = binary.LittleEndian.AppendUint32(buf, uint32(len(symbol)))
			buf = append(buf, symbol...)
		} else {
			buf = append(buf, internalTag)
			buf = binary.LittleEndian.AppendUint64(buf, n.freq)
		}
		_, _ = d.Write(buf)
		return true
	})
	return d.Sum64()
}
