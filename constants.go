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
	"math/big"

	basefield "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func mustElement(hexStr string) basefield.Element {
	bi, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("jubjub: invalid constant literal " + hexStr)
	}
	var e basefield.Element
	e.SetBigInt(bi)
	return e
}

// EdwardsD1 and EdwardsD2 (2*EdwardsD1) are the twisted Edwards curve
// coefficients for -x^2 + y^2 = 1 + d*x^2*y^2.
var (
	EdwardsD1 = mustElement("2a9318e74bfa2b48f5fd9207e6bd7fd4292d7f6d37579d2601065fd6d6343eb1")
	EdwardsD2 = mustElement("552631ce97f45691ebfb240fcd7affa8525afeda6eaf3a4c020cbfadac687d62")
)

// Generator and GeneratorNums are two fixed points of unknown discrete log
// relationship to one another, both of prime order after cofactor clearing.
var (
	generatorX     = mustElement("3fd2814c43ac65a6f1fbf02d0fd6cce62e3ebb21fd6c54ed4df7b7ffec7beaca")
	generatorY     = mustElement("12")
	generatorNumsX = mustElement("5e67b8f316f414f7bd9514c773fd4456931e316a39fe4541921710179df76377")
	generatorNumsY = mustElement("43d80eb3b2f3eb1b7b162dbeeb3b34fd9949ba0f82a5507a6705b707162e3ef8")

	fullGeneratorX = mustElement("62edcbb8bf3787c88b0f03ddd60a8187caf55d1b29bf81afe4b3d35df1a7adfe")
	fullGeneratorY = mustElement("0b")
)

// Generator is a fixed generator of the prime-order subgroup after cofactor
// clearing, used as a base point for Pedersen-style commitments.
var Generator = Affine{X: generatorX, Y: generatorY}

// GeneratorNums is a second, independent fixed generator.
var GeneratorNums = Affine{X: generatorNumsX, Y: generatorNumsY}

// FullGenerator generates the full group (order r*8), prior to cofactor
// clearing. FullGenerator.MulByCofactor() is a point of the prime-order
// subgroup.
var FullGenerator = Affine{X: fullGeneratorX, Y: fullGeneratorY}

// GeneratorExtended and GeneratorNumsExtended are the Extended-coordinate
// forms of the two fixed generators, computed once at package init.
var (
	GeneratorExtended     = NewExtended(Generator)
	GeneratorNumsExtended = NewExtended(GeneratorNums)
)

// FrModulusBytes is the little-endian byte encoding of the scalar field
// order r, used to test a point for membership in the prime-order subgroup.
var FrModulusBytes = [32]byte{
	0xb7, 0x2c, 0xf7, 0xd6, 0x5e, 0x0e, 0x97, 0xd0,
	0x82, 0x10, 0xc8, 0xcc, 0x93, 0x20, 0x68, 0xa6,
	0x00, 0x3b, 0x34, 0x01, 0x01, 0x3b, 0x67, 0x06,
	0xa9, 0xaf, 0x33, 0x65, 0xea, 0xb4, 0x7d, 0x0e,
}

// eightTorsion lists the eight points of the curve's small-order
// 8-torsion subgroup, in the order produced by repeatedly adding a
// small-order generator to itself.
var eightTorsion = [8]Affine{
	{X: mustElement("71d4df38ba9e7973eaaae086a16618d17aa41ac43dae8582d92e6a7927200d43"), Y: mustElement("4958bdb21966982e16a13035ad4d72669106ee90f384a4a1ff0d2068eff496dd")},
	{X: mustElement("73eda753299d7d47a5e80b39939ed33467baa40089fb5bfefffeffff00000001"), Y: mustElement("0")},
	{X: mustElement("71d4df38ba9e7973eaaae086a16618d17aa41ac43dae8582d92e6a7927200d43"), Y: mustElement("2a94e9a11036e51a1c98a7d25c54659ec2b6b5720c79b75d00f2df96100b6924")},
	{X: mustElement("0"), Y: mustElement("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000000")},
	{X: mustElement("218c81a6eff03d4488ef781683bbf33d919893ec24fd67c26d19585d8dff2be"), Y: mustElement("2a94e9a11036e51a1c98a7d25c54659ec2b6b5720c79b75d00f2df96100b6924")},
	{X: mustElement("8d51ccce760304d0ec030002760300000001000000000000"), Y: mustElement("0")},
	{X: mustElement("218c81a6eff03d4488ef781683bbf33d919893ec24fd67c26d19585d8dff2be"), Y: mustElement("4958bdb21966982e16a13035ad4d72669106ee90f384a4a1ff0d2068eff496dd")},
	{X: mustElement("0"), Y: mustElement("1")},
}
