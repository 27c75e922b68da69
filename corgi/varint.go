// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corgi

// maximum possible number of bytes in a packed varint64
const varint64MaximumBytes = 9

// seven bits per byte, high bit set while continuation follows,
// ninth byte carries a full eight bits
func toVarint64(value uint64) []byte {
	result := make([]byte, 0, varint64MaximumBytes)
	for i := 0; i < varint64MaximumBytes-1; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value&0x7f|0x80))
		value >>= 7
	}
	return append(result, byte(value))
}

// returns the decoded value and the number of bytes consumed,
// a zero count marks a truncated buffer
func fromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i := 0; i < varint64MaximumBytes; i += 1 {
		if i >= len(buffer) {
			return 0, 0
		}
		b := buffer[i]
		if varint64MaximumBytes-1 == i {
			return value | uint64(b)<<uint(7*i), i + 1
		}
		value |= uint64(b&0x7f) << uint(7*i)
		if 0 == b&0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}
