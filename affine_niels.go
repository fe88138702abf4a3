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

// AffineNiels is a precomputed form of an Affine point, chosen so that
// mixed addition with an Extended point avoids an inversion.
type AffineNiels struct {
	YPlusX, YMinusX, T2D basefield.Element
}

// IdentityAffineNiels is the AffineNiels encoding of the identity point.
func IdentityAffineNiels() AffineNiels {
	var n AffineNiels
	n.YPlusX.SetOne()
	n.YMinusX.SetOne()
	n.T2D.SetZero()
	return n
}

// NewAffineNiels precomputes the Niels form of a.
func NewAffineNiels(a Affine) AffineNiels {
	var n AffineNiels
	n.YPlusX.Add(&a.Y, &a.X)
	n.YMinusX.Sub(&a.Y, &a.X)
	n.T2D.Mul(&a.X, &a.Y)
	n.T2D.Mul(&n.T2D, &EdwardsD2)
	return n
}

// Multiply computes the scalar multiple of the point this AffineNiels was
// built from, by the 256-bit little-endian scalar in bytes. Only the low
// 252 bits are scanned: the top 4 bits of the most significant byte are
// skipped, matching the rest of this package's scalar multiplication.
func (n AffineNiels) Multiply(scalarBytes [32]byte) Extended {
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
				acc = acc.AddAffineNiels(n).ToExtended()
			}
		}
	}
	return acc
}
