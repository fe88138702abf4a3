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

package fr

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvConstant(t *testing.T) {
	var v uint64 = 1
	for i := 0; i < 63; i++ {
		v *= v
		v *= 0xd0970e5ed6f72cb7
	}
	v = -v
	require.Equal(t, inv, v)
}

func TestEquality(t *testing.T) {
	require.True(t, Zero().Equal(Zero()))
	require.True(t, One().Equal(One()))
	require.False(t, Zero().Equal(One()))
	require.False(t, One().Equal(Fr{data: r2}))
}

func TestToBytes(t *testing.T) {
	require.Equal(t, [ByteSize]byte{}, Zero().ToBytes())

	oneExpected := [ByteSize]byte{1}
	require.Equal(t, oneExpected, One().ToBytes())

	r2Expected := [ByteSize]byte{
		217, 7, 150, 185, 179, 11, 248, 37,
		80, 231, 182, 102, 47, 214, 21, 243,
		244, 20, 136, 235, 238, 20, 37, 147,
		198, 85, 145, 71, 111, 252, 166, 9,
	}
	require.Equal(t, r2Expected, Fr{data: r2}.ToBytes())

	minOneExpected := [ByteSize]byte{
		182, 44, 247, 214, 94, 14, 151, 208,
		130, 16, 200, 204, 147, 32, 104, 166,
		0, 59, 52, 1, 1, 59, 103, 6,
		169, 175, 51, 101, 234, 180, 125, 14,
	}
	require.Equal(t, minOneExpected, One().Neg().ToBytes())
}

func TestFromBytes(t *testing.T) {
	zero, ok := FromBytes([ByteSize]byte{})
	require.True(t, ok)
	require.True(t, zero.Equal(Zero()))

	one, ok := FromBytes([ByteSize]byte{1})
	require.True(t, ok)
	require.True(t, one.Equal(One()))

	r2Bytes := [ByteSize]byte{
		217, 7, 150, 185, 179, 11, 248, 37,
		80, 231, 182, 102, 47, 214, 21, 243,
		244, 20, 136, 235, 238, 20, 37, 147,
		198, 85, 145, 71, 111, 252, 166, 9,
	}
	r2Got, ok := FromBytes(r2Bytes)
	require.True(t, ok)
	require.True(t, r2Got.Equal(Fr{data: r2}))

	minOneBytes := [ByteSize]byte{
		182, 44, 247, 214, 94, 14, 151, 208,
		130, 16, 200, 204, 147, 32, 104, 166,
		0, 59, 52, 1, 1, 59, 103, 6,
		169, 175, 51, 101, 234, 180, 125, 14,
	}
	_, ok = FromBytes(minOneBytes)
	require.True(t, ok)

	modulusBytes := [ByteSize]byte{
		183, 44, 247, 214, 94, 14, 151, 208,
		130, 16, 200, 204, 147, 32, 104, 166,
		0, 59, 52, 1, 1, 59, 103, 6,
		169, 175, 51, 101, 234, 180, 125, 14,
	}
	_, ok = FromBytes(modulusBytes)
	require.False(t, ok)

	modulusL1 := [ByteSize]byte{
		184, 44, 247, 214, 94, 14, 151, 208,
		130, 16, 200, 204, 147, 32, 104, 166,
		0, 59, 52, 1, 1, 59, 103, 6,
		169, 175, 51, 101, 234, 180, 125, 14,
	}
	_, ok = FromBytes(modulusL1)
	require.False(t, ok)

	modulusL2 := [ByteSize]byte{
		183, 44, 247, 214, 94, 14, 151, 208,
		130, 16, 200, 204, 147, 32, 104, 166,
		0, 59, 52, 1, 1, 59, 104, 6,
		169, 175, 51, 101, 234, 180, 125, 14,
	}
	_, ok = FromBytes(modulusL2)
	require.False(t, ok)

	modulusL3 := [ByteSize]byte{
		183, 44, 247, 214, 94, 14, 151, 208,
		130, 16, 200, 204, 147, 32, 104, 166,
		0, 59, 52, 1, 1, 59, 103, 6,
		169, 175, 51, 101, 234, 180, 125, 15,
	}
	_, ok = FromBytes(modulusL3)
	require.False(t, ok)
}

func TestFromWide(t *testing.T) {
	var r2Bytes [ByteSize * 2]byte
	copy(r2Bytes[:], []byte{
		217, 7, 150, 185, 179, 11, 248, 37, 80, 231, 182, 102, 47, 214, 21,
		243, 244, 20, 136, 235, 238, 20, 37, 147, 198, 85, 145, 71, 111,
		252, 166, 9,
	})
	require.True(t, FromBytesWide(r2Bytes).Equal(Fr{data: r2}))

	var negOneBytes [ByteSize * 2]byte
	copy(negOneBytes[:], []byte{
		182, 44, 247, 214, 94, 14, 151, 208, 130, 16, 200, 204, 147, 32,
		104, 166, 0, 59, 52, 1, 1, 59, 103, 6, 169, 175, 51, 101, 234, 180,
		125, 14,
	})
	require.True(t, FromBytesWide(negOneBytes).Equal(One().Neg()))

	var maxBytes [ByteSize * 2]byte
	for i := range maxBytes {
		maxBytes[i] = 0xff
	}
	maxExpected := Fr{data: [4]uint64{0x8b75c9015ae42a22, 0xe59082e7bf9e38b8, 0x6440c91261da51b3, 0x0a5e07ffb20991cf}}
	require.True(t, FromBytesWide(maxBytes).Equal(maxExpected))
}

func TestFromRawCtor(t *testing.T) {
	a := FromRaw([4]uint64{0x25f80bb3b99607d8, 0xf315d62f66b6e750, 0x932514eeeb8814f4, 0x09a6fc6f479155c6})
	b := FromRaw([4]uint64{0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff})
	require.True(t, a.Equal(b))

	c := FromRaw(modulus)
	require.True(t, c.Equal(Zero()))

	d := FromRaw([4]uint64{1, 0, 0, 0})
	require.True(t, d.Equal(Fr{data: r1}))
}

func TestZero(t *testing.T) {
	require.True(t, Zero().Equal(Zero().Neg()))
	require.True(t, Zero().Equal(Zero().Add(Zero())))
	require.True(t, Zero().Equal(Zero().Sub(Zero())))
	require.True(t, Zero().Equal(Zero().Mul(Zero())))
}

var largest = Fr{data: [4]uint64{0xd0970e5ed6f72cb6, 0xa6682093ccc81082, 0x06673b0101343b00, 0x0e7db4ea6533afa9}}

func TestAdd(t *testing.T) {
	temp := largest.Add(largest)
	expected := Fr{data: [4]uint64{0xd0970e5ed6f72cb5, 0xa6682093ccc81082, 0x06673b0101343b00, 0x0e7db4ea6533afa9}}
	require.True(t, temp.Equal(expected))

	temp = largest.Add(Fr{data: [4]uint64{1, 0, 0, 0}})
	require.True(t, temp.Equal(Zero()))
}

func TestNeg(t *testing.T) {
	temp := largest.Neg()
	require.True(t, temp.Equal(Fr{data: [4]uint64{1, 0, 0, 0}}))

	require.True(t, Zero().Neg().Equal(Zero()))
	require.True(t, Fr{data: [4]uint64{1, 0, 0, 0}}.Neg().Equal(largest))
}

func TestSub(t *testing.T) {
	temp := largest.Sub(largest)
	require.True(t, temp.Equal(Zero()))

	temp = Zero().Sub(largest)
	temp2 := Fr{data: modulus}.Sub(largest)
	require.True(t, temp.Equal(temp2))
}

func TestMul(t *testing.T) {
	current := largest
	for i := 0; i < 100; i++ {
		temp := current.Mul(current)

		temp2 := Zero()
		bys := current.ToBytes()
		for bi := ByteSize - 1; bi >= 0; bi-- {
			for j := 7; j >= 0; j-- {
				temp3 := temp2
				temp2 = temp2.Add(temp3)
				if (bys[bi]>>uint(j))&1 == 1 {
					temp2 = temp2.Add(current)
				}
			}
		}
		require.True(t, temp2.Equal(temp))
		current = current.Add(largest)
	}
}

func TestSquaring(t *testing.T) {
	current := largest
	for i := 0; i < 100; i++ {
		temp := current.Square()

		temp2 := Zero()
		bys := current.ToBytes()
		for bi := ByteSize - 1; bi >= 0; bi-- {
			for j := 7; j >= 0; j-- {
				temp3 := temp2
				temp2 = temp2.Add(temp3)
				if (bys[bi]>>uint(j))&1 == 1 {
					temp2 = temp2.Add(current)
				}
			}
		}
		require.True(t, temp2.Equal(temp))
		current = current.Add(largest)
	}
}

func TestInversion(t *testing.T) {
	_, ok := Zero().Invert()
	require.False(t, ok)

	oneInv, ok := One().Invert()
	require.True(t, ok)
	require.True(t, oneInv.Equal(One()))

	negOneInv, ok := One().Neg().Invert()
	require.True(t, ok)
	require.True(t, negOneInv.Equal(One().Neg()))

	temp := Fr{data: r2}
	for i := 0; i < 100; i++ {
		temp2, ok := temp.Invert()
		require.True(t, ok)
		temp2 = temp2.Mul(temp)
		require.True(t, temp2.Equal(One()))
		temp = temp.Add(Fr{data: r2})
	}
}

func TestInversionIsPow(t *testing.T) {
	rMin2 := [4]uint64{0xd0970e5ed6f72cb5, 0xa6682093ccc81082, 0x06673b0101343b00, 0x0e7db4ea6533afa9}

	r1v := Fr{data: r1}
	r2v := Fr{data: r1}

	for i := 0; i < 100; i++ {
		var ok bool
		r1v, ok = r1v.Invert()
		require.True(t, ok)
		r2v = r2v.Pow(rMin2)

		require.True(t, r1v.Equal(r2v))

		r1v = r1v.Add(Fr{data: r1})
		r2v = r1v
	}
}

func TestSqrt(t *testing.T) {
	square := Fr{data: [4]uint64{0xd0970e5ed6f72cb5, 0xa6682093ccc81082, 0x06673b0101343b00, 0x0e7db4ea6533afa9}}
	noneCount := 0

	for i := 0; i < 100; i++ {
		root, ok := square.Sqrt()
		if !ok {
			noneCount++
		} else {
			require.True(t, root.Mul(root).Equal(square))
		}
		square = square.Sub(One())
	}
	require.Equal(t, 47, noneCount)
}

func TestFromBytesRoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, err := Random(rand.Reader)
		require.NoError(t, err)
		b, ok := FromBytes(a.ToBytes())
		require.True(t, ok)
		require.True(t, a.Equal(b))
	}
}

func TestAddAssociativity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		b, _ := Random(rand.Reader)
		c, _ := Random(rand.Reader)
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
	}
}

func TestAddInv(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		require.True(t, Zero().Equal(a.Add(a.Neg())))
		require.True(t, Zero().Equal(a.Neg().Add(a)))
	}
}

func TestAddCommutativity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		b, _ := Random(rand.Reader)
		require.True(t, a.Add(b).Equal(b.Add(a)))
	}
}

func TestAddIdentity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		require.True(t, a.Equal(a.Add(Zero())))
		require.True(t, a.Equal(Zero().Add(a)))
	}
}

func TestSubIdentity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		require.True(t, a.Equal(a.Sub(Zero())))
		require.True(t, a.Equal(Zero().Sub(a.Neg())))
	}
}

func TestMulAssociativity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		b, _ := Random(rand.Reader)
		c, _ := Random(rand.Reader)
		require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
	}
}

func TestMulIdentity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		require.True(t, a.Equal(a.Mul(One())))
		require.True(t, a.Equal(One().Mul(a)))
	}
}

func TestMulInv(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		if a.IsZero() {
			continue
		}
		aInv, ok := a.Invert()
		require.True(t, ok)
		require.True(t, One().Equal(a.Mul(aInv)))
		require.True(t, One().Equal(aInv.Mul(a)))
	}
}

func TestMulCommutativity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		b, _ := Random(rand.Reader)
		require.True(t, a.Mul(b).Equal(b.Mul(a)))
	}
}

func TestMulAddIdentity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, _ := Random(rand.Reader)
		require.True(t, Zero().Equal(Zero().Mul(a)))
		require.True(t, Zero().Equal(a.Mul(Zero())))
	}
}

func TestToBaseField(t *testing.T) {
	for i := 0; i < 100; i++ {
		a, _ := Random(rand.Reader)
		elem, ok := a.ToBaseField()
		require.True(t, ok)

		aBytes := a.ToBytes()
		var be [ByteSize]byte
		for i := 0; i < ByteSize; i++ {
			be[i] = aBytes[ByteSize-1-i]
		}
		require.Equal(t, be, elem.Bytes())
	}
}
