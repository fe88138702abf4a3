// Copyright (c) 2021 Oasis Labs Inc. All rights reserved.
// Copyright (c) 2021 Yawning Angel. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS
// IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED
// TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
// PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
// TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR
// PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF
// LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
// SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package arith provides the carry-propagating 64-bit limb primitives
// used to build the Fr Montgomery arithmetic.
package arith

import "math/bits"

// Adc computes a+b+carry, returning the result and the carry out (0 or 1).
// carry must be 0 or 1.
func Adc(a, b, carry uint64) (uint64, uint64) {
	return bits.Add64(a, b, carry)
}

// Sbb computes a-b-borrow, returning the result and the borrow out (0 or 1).
func Sbb(a, b, borrow uint64) (uint64, uint64) {
	return bits.Sub64(a, b, borrow)
}

// Mac computes a+(b*c)+carry as a 128-bit value, returning the low 64 bits
// and the high 64 bits (the carry to feed into the next limb position).
func Mac(a, b, c, carry uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(b, c)
	lo, c1 := bits.Add64(lo, a, 0)
	hi, _ = bits.Add64(hi, 0, c1)
	lo, c2 := bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, c2)
	return lo, hi
}
