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

package jubjub

import (
	basefield "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Affine is a point on the curve in affine (x, y) coordinates.
type Affine struct {
	X, Y basefield.Element
}

// IdentityAffine is the identity element of the curve group, (0, 1).
func IdentityAffine() Affine {
	var a Affine
	a.Y.SetOne()
	return a
}

// NewAffine converts an Extended point to affine coordinates.
func NewAffine(e Extended) Affine {
	var zInv basefield.Element
	zInv.Inverse(&e.Z)

	var a Affine
	a.X.Mul(&e.X, &zInv)
	a.Y.Mul(&e.Y, &zInv)
	return a
}

// IsOnCurve reports whether a satisfies -x^2 + y^2 = 1 + d*x^2*y^2.
func (a Affine) IsOnCurve() bool {
	var x2, y2, lhs, rhs basefield.Element
	x2.Square(&a.X)
	y2.Square(&a.Y)

	lhs.Sub(&y2, &x2)

	rhs.Mul(&x2, &y2)
	rhs.Mul(&rhs, &EdwardsD1)
	var one basefield.Element
	one.SetOne()
	rhs.Add(&rhs, &one)

	return lhs.Equal(&rhs)
}

// MulByCofactor clears the curve's cofactor of 8 from a.
func (a Affine) MulByCofactor() Extended {
	return NewExtended(a).MulByCofactor()
}

// ToBytes produces the 32-byte ZIP-216 style canonical encoding of a: the
// little-endian encoding of y, with the top bit of the last byte replaced
// by the low bit of x.
func (a Affine) ToBytes() [32]byte {
	yBytes := elementToLEBytes(a.Y)
	xBytes := elementToLEBytes(a.X)

	yBytes[31] = (yBytes[31] & 0x7f) | (xBytes[0] << 7)
	return yBytes
}

// FromBytes decodes a 32-byte ZIP-216 style canonical encoding, reporting
// false if the encoding does not correspond to a valid curve point.
func FromBytes(b [32]byte) (Affine, bool) {
	sign := b[31] >> 7
	b[31] &= 0x7f

	y, ok := leBytesToElement(b)
	if !ok {
		return Affine{}, false
	}

	var y2, one basefield.Element
	y2.Square(&y)
	one.SetOne()

	var x2 basefield.Element
	x2.Sub(&y2, &one)

	var denom basefield.Element
	denom.Mul(&EdwardsD1, &y2)
	denom.Add(&denom, &one)

	var source basefield.Element
	hasInverse := !denom.IsZero()
	if hasInverse {
		source.Inverse(&denom)
		x2.Mul(&x2, &source)
	} else {
		x2.SetZero()
	}

	var x basefield.Element
	if x.Sqrt(&x2) == nil {
		return Affine{}, false
	}

	xBytes := elementToLEBytes(x)
	flipSign := (xBytes[0] ^ sign) & 1
	if flipSign == 1 {
		x.Neg(&x)
	}

	xIsZero := x.IsZero()
	if xIsZero && flipSign == 1 {
		return Affine{}, false
	}

	return Affine{X: x, Y: y}, true
}

func elementToLEBytes(e basefield.Element) [32]byte {
	be := e.Bytes()
	var le [32]byte
	for i := 0; i < 32; i++ {
		le[i] = be[31-i]
	}
	return le
}

// leBytesToElement parses a little-endian byte encoding into a base field
// element, rejecting any encoding that is not the canonical (fully
// reduced) representative.
func leBytesToElement(b [32]byte) (basefield.Element, bool) {
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = b[31-i]
	}

	var e basefield.Element
	e.SetBytes(be[:])
	if e.Bytes() != be {
		return basefield.Element{}, false
	}
	return e, true
}
