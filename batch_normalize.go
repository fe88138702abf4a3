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

// BatchNormalize converts a slice of Extended points to Affine points
// using Montgomery's trick, so that the whole batch costs a single field
// inversion rather than one inversion per point. points is mutated in
// place as scratch space; the returned slice preserves input order.
func BatchNormalize(points []Extended) []Affine {
	acc := oneElement()
	for i := range points {
		points[i].T1 = acc
		acc.Mul(&acc, &points[i].Z)
	}

	var accInv basefield.Element
	accInv.Inverse(&acc)

	out := make([]Affine, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		p := &points[i]

		var zInv basefield.Element
		zInv.Mul(&p.T1, &accInv)
		accInv.Mul(&accInv, &p.Z)

		var x, y basefield.Element
		x.Mul(&p.X, &zInv)
		y.Mul(&p.Y, &zInv)

		p.X, p.Y = x, y
		p.Z = oneElement()
		p.T1, p.T2 = x, y

		out[i] = Affine{X: x, Y: y}
	}
	return out
}
