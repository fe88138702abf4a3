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

// Package elgamal implements additively homomorphic lifted ElGamal
// encryption of JubJub group elements: a ciphertext is a pair of curve
// points (gamma, delta), and is homomorphic under point addition and
// scalar multiplication of the encrypted message point.
package elgamal

import (
	"github.com/go-jubjub/jubjub"
	"github.com/go-jubjub/jubjub/fr"
)

// Cipher is a lifted-ElGamal ciphertext: a pair of curve points that
// encrypts a message encoded as a curve point (msg = plaintext * G, for
// some agreed base G).
type Cipher struct {
	Gamma, Delta jubjub.Extended
}

// Encrypt builds a Cipher for the message point msg, under the public key
// pub = sk*gen for some secret scalar sk, using gen as the group's base
// point and sec as the fresh per-encryption blinding scalar.
func Encrypt(sec fr.Fr, pub jubjub.Extended, gen jubjub.Extended, msg jubjub.Extended) Cipher {
	return Cipher{
		Gamma: gen.MulFr(sec),
		Delta: msg.Add(pub.MulFr(sec)),
	}
}

// Decrypt recovers the message point encrypted in c, given the secret key
// sec that pub (passed to Encrypt) was derived from.
func (c Cipher) Decrypt(sec fr.Fr) jubjub.Extended {
	return c.Delta.Sub(c.Gamma.MulFr(sec))
}

// Add returns the ciphertext that decrypts to the sum of the messages c
// and other encrypt.
func (c Cipher) Add(other Cipher) Cipher {
	return Cipher{
		Gamma: c.Gamma.Add(other.Gamma),
		Delta: c.Delta.Add(other.Delta),
	}
}

// Sub returns the ciphertext that decrypts to the difference of the
// messages c and other encrypt.
func (c Cipher) Sub(other Cipher) Cipher {
	return Cipher{
		Gamma: c.Gamma.Sub(other.Gamma),
		Delta: c.Delta.Sub(other.Delta),
	}
}

// MulFr returns the ciphertext that decrypts to k times the message c
// encrypts.
func (c Cipher) MulFr(k fr.Fr) Cipher {
	return Cipher{
		Gamma: c.Gamma.MulFr(k),
		Delta: c.Delta.MulFr(k),
	}
}

// ToBytes encodes c as 64 bytes: the ZIP-216 style affine encoding of
// Gamma followed by that of Delta.
func (c Cipher) ToBytes() [64]byte {
	var out [64]byte
	gammaBytes := jubjub.NewAffine(c.Gamma).ToBytes()
	deltaBytes := jubjub.NewAffine(c.Delta).ToBytes()
	copy(out[:32], gammaBytes[:])
	copy(out[32:], deltaBytes[:])
	return out
}

// FromBytes decodes a 64-byte Cipher encoding produced by ToBytes,
// reporting false if either half fails to decode as a valid curve point.
func FromBytes(b [64]byte) (Cipher, bool) {
	var gammaBytes, deltaBytes [32]byte
	copy(gammaBytes[:], b[:32])
	copy(deltaBytes[:], b[32:])

	gammaAffine, ok := jubjub.FromBytes(gammaBytes)
	if !ok {
		return Cipher{}, false
	}
	deltaAffine, ok := jubjub.FromBytes(deltaBytes)
	if !ok {
		return Cipher{}, false
	}

	return Cipher{
		Gamma: jubjub.NewExtended(gammaAffine),
		Delta: jubjub.NewExtended(deltaAffine),
	}, true
}
