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

	"github.com/go-jubjub/jubjub/fr"
)

// Extended is a point in extended twisted Edwards coordinates
// (X:Y:Z:T1:T2), where x = X/Z, y = Y/Z and T1*T2 = X*Y/Z. This is the
// representation used for the bulk of the group law, since it admits a
// complete (branchless) doubling formula and fast mixed addition against
// the Niels forms.
type Extended struct {
	X, Y, Z, T1, T2 basefield.Element
}

// IdentityExtended is the identity element of the curve group.
func IdentityExtended() Extended {
	var e Extended
	e.Y.SetOne()
	e.Z.SetOne()
	return e
}

// NewExtended converts an Affine point to extended coordinates.
func NewExtended(a Affine) Extended {
	return Extended{X: a.X, Y: a.Y, Z: oneElement(), T1: a.X, T2: a.Y}
}

func oneElement() basefield.Element {
	var e basefield.Element
	e.SetOne()
	return e
}

// Equal reports whether e and other represent the same curve point, i.e.
// x1*z2 == x2*z1 and y1*z2 == y2*z1.
func (e Extended) Equal(other Extended) bool {
	var lhs1, rhs1, lhs2, rhs2 basefield.Element
	lhs1.Mul(&e.X, &other.Z)
	rhs1.Mul(&other.X, &e.Z)
	lhs2.Mul(&e.Y, &other.Z)
	rhs2.Mul(&other.Y, &e.Z)
	return lhs1.Equal(&rhs1) && lhs2.Equal(&rhs2)
}

// IsIdentity reports whether e is the identity point.
func (e Extended) IsIdentity() bool {
	var zero basefield.Element
	return e.X.Equal(&zero) && e.Y.Equal(&e.Z)
}

// IsSmallOrder reports whether e belongs to the curve's 8-element
// small-order subgroup (i.e. quadrupling e yields the identity's X
// coordinate).
func (e Extended) IsSmallOrder() bool {
	d := e.Doubles().ToExtended().Doubles().ToExtended()
	var zero basefield.Element
	return d.X.Equal(&zero)
}

// IsTorsionFree reports whether e has no component in the 8-torsion
// subgroup, i.e. multiplying by the scalar field order yields the identity.
func (e Extended) IsTorsionFree() bool {
	return e.Multiply(FrModulusBytes).IsIdentity()
}

// IsPrimeOrder reports whether e generates the full prime-order subgroup.
func (e Extended) IsPrimeOrder() bool {
	return e.IsTorsionFree() && !e.IsIdentity()
}

// IsOnCurve reports whether e is a valid point on the curve.
func (e Extended) IsOnCurve() bool {
	var zero basefield.Element
	if e.Z.Equal(&zero) {
		return false
	}
	a := NewAffine(e)
	if !a.IsOnCurve() {
		return false
	}

	// T1*T2 must equal X*Y/Z, i.e. affine x*y times Z.
	var lhs, rhs basefield.Element
	lhs.Mul(&a.X, &a.Y)
	lhs.Mul(&lhs, &e.Z)
	rhs.Mul(&e.T1, &e.T2)
	return lhs.Equal(&rhs)
}

// ToHashInputs returns the affine (x, y) coordinates of e, for use as
// inputs to an externally supplied hash function.
func (e Extended) ToHashInputs() (basefield.Element, basefield.Element) {
	a := NewAffine(e)
	return a.X, a.Y
}

// MulByCofactor clears the curve's cofactor of 8 from e.
func (e Extended) MulByCofactor() Extended {
	return e.Doubles().ToExtended().Doubles().ToExtended().Doubles().ToExtended()
}

// Neg returns -e.
func (e Extended) Neg() Extended {
	n := e
	n.X.Neg(&e.X)
	n.T1.Neg(&e.T1)
	return n
}

// Doubles computes e+e, in the Completed intermediate form.
func (e Extended) Doubles() Completed {
	var xx, yy, zz2, xPlusY, xy2, yyPlusXX, yyMinusXX basefield.Element

	xx.Square(&e.X)
	yy.Square(&e.Y)
	zz2.Square(&e.Z)
	zz2.Double(&zz2)

	xPlusY.Add(&e.X, &e.Y)
	xy2.Square(&xPlusY)

	yyPlusXX.Add(&yy, &xx)
	yyMinusXX.Sub(&yy, &xx)

	var c Completed
	c.X.Sub(&xy2, &yyPlusXX)
	c.Y = yyPlusXX
	c.Z = yyMinusXX
	c.T.Sub(&zz2, &yyMinusXX)
	return c
}

// AddAffineNiels adds the point n (in precomputed affine form) to e.
func (e Extended) AddAffineNiels(n AffineNiels) Completed {
	var a, b, c, d basefield.Element
	var yMinusX, yPlusX basefield.Element

	yMinusX.Sub(&e.Y, &e.X)
	yPlusX.Add(&e.Y, &e.X)

	a.Mul(&yMinusX, &n.YMinusX)
	b.Mul(&yPlusX, &n.YPlusX)
	c.Mul(&e.T1, &e.T2)
	c.Mul(&c, &n.T2D)
	d.Double(&e.Z)

	var out Completed
	out.X.Sub(&b, &a)
	out.Y.Add(&b, &a)
	out.Z.Add(&d, &c)
	out.T.Sub(&d, &c)
	return out
}

// SubAffineNiels subtracts the point n (in precomputed affine form) from e.
func (e Extended) SubAffineNiels(n AffineNiels) Completed {
	var a, b, c, d basefield.Element
	var yMinusX, yPlusX basefield.Element

	yMinusX.Sub(&e.Y, &e.X)
	yPlusX.Add(&e.Y, &e.X)

	a.Mul(&yMinusX, &n.YPlusX)
	b.Mul(&yPlusX, &n.YMinusX)
	c.Mul(&e.T1, &e.T2)
	c.Mul(&c, &n.T2D)
	d.Double(&e.Z)

	var out Completed
	out.X.Sub(&b, &a)
	out.Y.Add(&b, &a)
	out.Z.Sub(&d, &c)
	out.T.Add(&d, &c)
	return out
}

// AddExtendedNiels adds the point n (in precomputed extended form) to e.
func (e Extended) AddExtendedNiels(n ExtendedNiels) Completed {
	var a, b, c, d basefield.Element
	var yMinusX, yPlusX, zz basefield.Element

	yMinusX.Sub(&e.Y, &e.X)
	yPlusX.Add(&e.Y, &e.X)

	a.Mul(&yMinusX, &n.YMinusX)
	b.Mul(&yPlusX, &n.YPlusX)
	c.Mul(&e.T1, &e.T2)
	c.Mul(&c, &n.T2D)
	zz.Mul(&e.Z, &n.Z)
	d.Double(&zz)

	var out Completed
	out.X.Sub(&b, &a)
	out.Y.Add(&b, &a)
	out.Z.Add(&d, &c)
	out.T.Sub(&d, &c)
	return out
}

// SubExtendedNiels subtracts the point n (in precomputed extended form) from e.
func (e Extended) SubExtendedNiels(n ExtendedNiels) Completed {
	var a, b, c, d basefield.Element
	var yMinusX, yPlusX, zz basefield.Element

	yMinusX.Sub(&e.Y, &e.X)
	yPlusX.Add(&e.Y, &e.X)

	a.Mul(&yMinusX, &n.YPlusX)
	b.Mul(&yPlusX, &n.YMinusX)
	c.Mul(&e.T1, &e.T2)
	c.Mul(&c, &n.T2D)
	zz.Mul(&e.Z, &n.Z)
	d.Double(&zz)

	var out Completed
	out.X.Sub(&b, &a)
	out.Y.Add(&b, &a)
	out.Z.Sub(&d, &c)
	out.T.Add(&d, &c)
	return out
}

// Add returns e+other.
func (e Extended) Add(other Extended) Extended {
	return e.AddExtendedNiels(NewExtendedNiels(other)).ToExtended()
}

// Sub returns e-other.
func (e Extended) Sub(other Extended) Extended {
	return e.SubExtendedNiels(NewExtendedNiels(other)).ToExtended()
}

// Multiply computes the scalar multiple of e by the little-endian scalar in
// scalarBytes. Only the low 252 bits are scanned: the top 4 bits of
// scalarBytes[31] are ignored.
func (e Extended) Multiply(scalarBytes [32]byte) Extended {
	return NewExtendedNiels(e).Multiply(scalarBytes)
}

// MulFr computes the scalar multiple of e by s.
func (e Extended) MulFr(s fr.Fr) Extended {
	return e.Multiply(s.ToBytes())
}
