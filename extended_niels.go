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

// ExtendedNiels is a precomputed form of an Extended point, used so that
// repeated addition of the same point (as in the scalar multiplication
// ladder) avoids redundant work relative to two general Extended additions.
type ExtendedNiels struct {
	YPlusX, YMinusX, Z, T2D basefield.Element
}

// IdentityExtendedNiels is the ExtendedNiels encoding of the identity point.
func IdentityExtendedNiels() ExtendedNiels {
	var n ExtendedNiels
	n.YPlusX.SetOne()
	n.YMinusX.SetOne()
	n.Z.SetOne()
	n.T2D.SetZero()
	return n
}

// NewExtendedNiels precomputes the Niels form of e.
func NewExtendedNiels(e Extended) ExtendedNiels {
	var n ExtendedNiels
	n.YPlusX.Add(&e.Y, &e.X)
	n.YMinusX.Sub(&e.Y, &e.X)
	n.Z = e.Z
	n.T2D.Mul(&e.T1, &e.T2)
	n.T2D.Mul(&n.T2D, &EdwardsD2)
	return n
}

// Multiply computes the scalar multiple of the point this ExtendedNiels
// was built from, by the 256-bit little-endian scalar in bytes. Only the
// low 252 bits are scanned.
func (n ExtendedNiels) Multiply(scalarBytes [32]byte) Extended {
	acc := IdentityExtended()
	for byteIdx := 31; byteIdx >= 0; byteIdx-- {
		b := scalarBytes[byteIdx]
		top := 7
		if byteIdx == 31 {
			top = 3
		}
		for bit := top; bit >= 0; bit-- {
			acc = acc.Doubles().ToExtended()
			if (b>>uint(bit))&1 == 1 {
				acc = acc.AddExtendedNiels(n).ToExtended()
			}
		}
	}
	return acc
}
