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

// modulus is the JubJub scalar field prime r, in little-endian 64-bit limbs:
//
//	r = 0x0e7db4ea6533afa906673b0101343b00a6682093ccc81082d0970e5ed6f72cb7
var modulus = [4]uint64{
	0xd0970e5ed6f72cb7, 0xa6682093ccc81082,
	0x06673b0101343b00, 0x0e7db4ea6533afa9,
}

// inv is -r^-1 mod 2^64, the CIOS Montgomery reduction constant.
const inv uint64 = 0x1ba3a358ef788ef9

// r1 is R mod r, i.e. the Montgomery form of 1.
var r1 = [4]uint64{
	0x25f80bb3b99607d9, 0xf315d62f66b6e750,
	0x932514eeeb8814f4, 0x09a6fc6f479155c6,
}

// r2 is R^2 mod r, used to convert raw values into Montgomery form.
var r2 = [4]uint64{
	0x67719aa495e57731, 0x51b0cef09ce3fc26,
	0x69dab7fac026e9a5, 0x04f6547b8d127688,
}

// r3 is R^3 mod r, used by FromBytesWide to fold a 512-bit value down to
// a single Montgomery-form residue in one reduction pass.
var r3 = [4]uint64{
	0xe0d6c6563d830544, 0x323e3883598d0f85,
	0xf0fea3004c2e2ba8, 0x05874f84946737ec,
}

// sqrtExp is (r+1)/4, the exponent used by Sqrt.
var sqrtExp = [4]uint64{
	0xb425c397b5bdcb2e, 0x299a0824f3320420,
	0x4199cec0404d0ec0, 0x039f6d3a994cebea,
}
