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

// Package fr implements the JubJub scalar field, a 252-bit prime field
// of order r used as the exponent ring for JubJub point multiplication.
// Elements are held internally in Montgomery form.
package fr

import (
	"encoding/binary"
	"io"

	basefield "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/go-jubjub/jubjub/internal/arith"
)

// ByteSize is the length in bytes of a canonical Fr encoding.
const ByteSize = 32

// Fr is an element of the JubJub scalar field, stored in Montgomery form.
type Fr struct {
	data [4]uint64
}

// Zero returns the additive identity.
func Zero() Fr {
	return Fr{}
}

// One returns the multiplicative identity.
func One() Fr {
	return Fr{data: r1}
}

// FromUint64 builds an Fr from a small unsigned integer.
func FromUint64(v uint64) Fr {
	return mulMont([4]uint64{v, 0, 0, 0}, r2)
}

// fromInt8 sets data to the absolute value of v with no Montgomery
// conversion, negating via the field's own negation if v is negative.
// This mirrors the raw "register" mode used internally by the NAF
// recoding routine, where Fr values stand in for plain 256-bit integers.
func fromInt8(v int8) Fr {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	f := Fr{data: [4]uint64{uint64(abs), 0, 0, 0}}
	if v < 0 {
		f = f.Neg()
	}
	return f
}

// FromRaw builds an Fr representing values mod r, treating values as a
// plain (non-Montgomery) 256-bit little-endian integer.
func FromRaw(values [4]uint64) Fr {
	return mulMont(values, r2)
}

// FromBytesWide reduces a 512-bit little-endian value modulo r.
func FromBytesWide(b [ByteSize * 2]byte) Fr {
	var d0, d1 [4]uint64
	for i := 0; i < 4; i++ {
		d0[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
		d1[i] = binary.LittleEndian.Uint64(b[32+i*8 : 32+i*8+8])
	}
	a := mulMont(d0, r2)
	c := mulMont(d1, r3)
	return a.Add(c)
}

// FromBytes parses a canonical 32-byte little-endian encoding, reporting
// false if the value is not a valid (< r) field element.
func FromBytes(b [ByteSize]byte) (Fr, bool) {
	var data [4]uint64
	for i := 0; i < 4; i++ {
		data[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}

	var borrow uint64
	for i := 0; i < 4; i++ {
		_, borrow = arith.Sbb(data[i], modulus[i], borrow)
	}
	isValid := borrow == 1

	if !isValid {
		return Fr{}, false
	}
	return mulMont(data, r2), true
}

// Random draws a uniformly distributed Fr by reading 64 bytes of entropy
// from r and reducing modulo the field order.
func Random(r io.Reader) (Fr, error) {
	var b [ByteSize * 2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Fr{}, err
	}
	return FromBytesWide(b), nil
}

// IsEven reports whether the lowest bit of f's internal limbs is clear. For
// an Fr in Montgomery form this is the parity of the Montgomery image, not
// of the value; ComputeWindowedNonAdjacent calls it on the plain integer
// produced by SelfReduce.
func (f Fr) IsEven() bool {
	return f.data[0]%2 == 0
}

// IsZero reports whether f is the additive identity.
func (f Fr) IsZero() bool {
	return f.data == [4]uint64{}
}

// Equal reports whether f and other represent the same field element.
func (f Fr) Equal(other Fr) bool {
	return f.data == other.data
}

// ToBaseField converts f's canonical byte image into a base-field (Fq)
// element. Since the JubJub scalar field order r is strictly smaller
// than the base field order q, this conversion never actually fails,
// but the optional-return contract is kept for parity with the rest of
// this package's fallible constructors.
func (f Fr) ToBaseField() (basefield.Element, bool) {
	le := f.ToBytes()
	var be [ByteSize]byte
	for i := 0; i < ByteSize; i++ {
		be[i] = le[ByteSize-1-i]
	}
	var elem basefield.Element
	elem.SetBytes(be[:])
	return elem, true
}

// ToBytes returns the canonical 32-byte little-endian encoding of f.
func (f Fr) ToBytes() [ByteSize]byte {
	var wide [8]uint64
	copy(wide[:4], f.data[:])
	raw := montgomeryReduce(wide)

	var out [ByteSize]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], raw[i])
	}
	return out
}

// Doubles returns f+f.
func (f Fr) Doubles() Fr {
	return f.Add(f)
}

// Square returns f*f.
func (f Fr) Square() Fr {
	return Fr{data: montgomeryReduce(squareRaw(f.data))}
}

// SelfReduce collapses one level of Montgomery form, returning an Fr
// whose internal data holds the plain (non-Montgomery) integer value of
// f. It exists solely to feed the NAF recoding routine, which treats Fr
// as a general-purpose 256-bit register rather than a field element.
func (f Fr) SelfReduce() Fr {
	var wide [8]uint64
	copy(wide[:4], f.data[:])
	return Fr{data: montgomeryReduce(wide)}
}

// Pow raises f to the power described by the little-endian limb array exp.
func (f Fr) Pow(exp [4]uint64) Fr {
	res := One()
	for i := 3; i >= 0; i-- {
		for j := 63; j >= 0; j-- {
			res = res.Square()
			if (exp[i]>>uint(j))&1 == 1 {
				res = res.Mul(f)
			}
		}
	}
	return res
}

// Sqrt returns a square root of f, if one exists.
func (f Fr) Sqrt() (Fr, bool) {
	root := f.Pow(sqrtExp)
	if root.Square().Equal(f) {
		return root, true
	}
	return Fr{}, false
}

// Neg returns -f.
func (f Fr) Neg() Fr {
	var d [4]uint64
	var borrow uint64
	for i := 0; i < 4; i++ {
		d[i], borrow = arith.Sbb(modulus[i], f.data[i], borrow)
	}
	isZero := f.data == [4]uint64{}
	var mask uint64
	if !isZero {
		mask = ^uint64(0)
	}
	for i := 0; i < 4; i++ {
		d[i] &= mask
	}
	return Fr{data: d}
}

// Add returns f+other mod r.
func (f Fr) Add(other Fr) Fr {
	var d [4]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		d[i], carry = arith.Adc(f.data[i], other.data[i], carry)
	}
	return Fr{data: d}.sub(Fr{data: modulus})
}

// Sub returns f-other mod r.
func (f Fr) Sub(other Fr) Fr {
	return f.sub(other)
}

func (f Fr) sub(other Fr) Fr {
	var d [4]uint64
	var borrow uint64
	for i := 0; i < 4; i++ {
		d[i], borrow = arith.Sbb(f.data[i], other.data[i], borrow)
	}
	var carry uint64
	for i := 0; i < 4; i++ {
		d[i], carry = arith.Adc(d[i], modulus[i]&(-borrow), carry)
	}
	return Fr{data: d}
}

// Mul returns f*other mod r.
func (f Fr) Mul(other Fr) Fr {
	return mulMont(f.data, other.data)
}

// Invert returns f^-1, or false if f is zero. It uses an addition chain of
// 248 squarings and 54 multiplications for the Fermat's little theorem
// exponent r-2.
func (f Fr) Invert() (Fr, bool) {
	if f.IsZero() {
		return Fr{}, false
	}

	sqMulti := func(n Fr, times int) Fr {
		for i := 0; i < times; i++ {
			n = n.Square()
		}
		return n
	}

	t1 := f.Square()
	t0 := t1.Square()
	t3 := t0.Mul(t1)
	t6 := t3.Mul(f)
	t7 := t6.Mul(t1)
	t12 := t7.Mul(t3)
	t13 := t12.Mul(t0)
	t16 := t12.Mul(t3)
	t2 := t13.Mul(t3)
	t15 := t16.Mul(t3)
	t19 := t2.Mul(t0)
	t9 := t15.Mul(t3)
	t18 := t9.Mul(t3)
	t14 := t18.Mul(t1)
	t4 := t18.Mul(t0)
	t8 := t18.Mul(t3)
	t17 := t14.Mul(t3)
	t11 := t8.Mul(t3)
	t1 = t17.Mul(t3)
	t5 := t11.Mul(t3)
	t3 = t5.Mul(t0)
	t0 = t5.Square()

	t0 = sqMulti(t0, 5)
	t0 = t0.Mul(t3)
	t0 = sqMulti(t0, 6)
	t0 = t0.Mul(t8)
	t0 = sqMulti(t0, 7)
	t0 = t0.Mul(t19)
	t0 = sqMulti(t0, 6)
	t0 = t0.Mul(t13)
	t0 = sqMulti(t0, 8)
	t0 = t0.Mul(t14)
	t0 = sqMulti(t0, 6)
	t0 = t0.Mul(t18)
	t0 = sqMulti(t0, 7)
	t0 = t0.Mul(t17)
	t0 = sqMulti(t0, 5)
	t0 = t0.Mul(t16)
	t0 = sqMulti(t0, 3)
	t0 = t0.Mul(f)
	t0 = sqMulti(t0, 11)
	t0 = t0.Mul(t11)
	t0 = sqMulti(t0, 8)
	t0 = t0.Mul(t5)
	t0 = sqMulti(t0, 5)
	t0 = t0.Mul(t15)
	t0 = sqMulti(t0, 8)
	t0 = t0.Mul(f)
	t0 = sqMulti(t0, 12)
	t0 = t0.Mul(t13)
	t0 = sqMulti(t0, 7)
	t0 = t0.Mul(t9)
	t0 = sqMulti(t0, 5)
	t0 = t0.Mul(t15)
	t0 = sqMulti(t0, 14)
	t0 = t0.Mul(t14)
	t0 = sqMulti(t0, 5)
	t0 = t0.Mul(t13)
	t0 = sqMulti(t0, 2)
	t0 = t0.Mul(f)
	t0 = sqMulti(t0, 6)
	t0 = t0.Mul(f)
	t0 = sqMulti(t0, 9)
	t0 = t0.Mul(t7)
	t0 = sqMulti(t0, 6)
	t0 = t0.Mul(t12)
	t0 = sqMulti(t0, 8)
	t0 = t0.Mul(t11)
	t0 = sqMulti(t0, 3)
	t0 = t0.Mul(f)
	t0 = sqMulti(t0, 12)
	t0 = t0.Mul(t9)
	t0 = sqMulti(t0, 11)
	t0 = t0.Mul(t8)
	t0 = sqMulti(t0, 8)
	t0 = t0.Mul(t7)
	t0 = sqMulti(t0, 4)
	t0 = t0.Mul(t6)
	t0 = sqMulti(t0, 10)
	t0 = t0.Mul(t5)
	t0 = sqMulti(t0, 7)
	t0 = t0.Mul(t3)
	t0 = sqMulti(t0, 6)
	t0 = t0.Mul(t4)
	t0 = sqMulti(t0, 7)
	t0 = t0.Mul(t3)
	t0 = sqMulti(t0, 5)
	t0 = t0.Mul(t2)
	t0 = sqMulti(t0, 6)
	t0 = t0.Mul(t2)
	t0 = sqMulti(t0, 7)
	t0 = t0.Mul(t1)

	return t0, true
}

// mod2PowK returns the low k bits of f's raw register value.
func (f Fr) mod2PowK(k uint8) uint8 {
	return uint8(f.data[0] & ((uint64(1) << k) - 1))
}

// modK returns the signed residue of f's raw register value in
// [-2^(w-1), 2^(w-1)).
func (f Fr) modK(w uint8) int8 {
	m := int8(f.mod2PowK(w))
	twoPowWMinusOne := int8(1) << (w - 1)
	if m >= twoPowWMinusOne {
		return m - (int8(1) << w)
	}
	return m
}

// shiftRight1 shifts a raw 256-bit little-endian limb array right by one bit.
func shiftRight1(data [4]uint64) [4]uint64 {
	var t uint64
	for i := 3; i >= 0; i-- {
		t2 := data[i] << 63
		data[i] = (data[i] >> 1) | t
		t = t2
	}
	return data
}

// less reports whether a < b, comparing as big-endian 256-bit integers.
func less(a, b [4]uint64) bool {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// mulRaw computes the full 512-bit schoolbook product of a and b.
func mulRaw(a, b [4]uint64) [8]uint64 {
	var r [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			r[i+j], carry = arith.Mac(r[i+j], a[i], b[j], carry)
		}
		r[i+4] = carry
	}
	return r
}

// squareRaw computes the full 512-bit square of a, computing each
// off-diagonal limb product once, doubling the accumulated half, then
// adding in the diagonal terms.
func squareRaw(a [4]uint64) [8]uint64 {
	var r [8]uint64
	for i := 0; i < 3; i++ {
		var carry uint64
		for j := i + 1; j < 4; j++ {
			r[i+j], carry = arith.Mac(r[i+j], a[i], a[j], carry)
		}
		r[i+4] = carry
	}

	r[7] = r[6] >> 63
	for i := 6; i >= 2; i-- {
		r[i] = r[i]<<1 | r[i-1]>>63
	}
	r[1] <<= 1

	var carry uint64
	for i := 0; i < 4; i++ {
		r[2*i], carry = arith.Mac(r[2*i], a[i], a[i], carry)
		r[2*i+1], carry = arith.Adc(r[2*i+1], carry, 0)
	}
	return r
}

// mulMont computes the Montgomery product of two raw 256-bit operands.
func mulMont(a, b [4]uint64) Fr {
	return Fr{data: montgomeryReduce(mulRaw(a, b))}
}

// montgomeryReduce performs CIOS Montgomery reduction on a 512-bit value,
// returning a value in [0, r).
func montgomeryReduce(t [8]uint64) [4]uint64 {
	for i := 0; i < 4; i++ {
		m := t[i] * inv

		var carry uint64
		_, carry = arith.Mac(t[i], m, modulus[0], 0)
		for j := 1; j < 4; j++ {
			t[i+j], carry = arith.Mac(t[i+j], m, modulus[j], carry)
		}

		var c uint64
		t[i+4], c = arith.Adc(t[i+4], carry, 0)
		k := i + 5
		for c != 0 && k < 8 {
			t[k], c = arith.Adc(t[k], 0, c)
			k++
		}
	}

	var out [4]uint64
	copy(out[:], t[4:8])
	return Fr{data: out}.sub(Fr{data: modulus}).data
}
