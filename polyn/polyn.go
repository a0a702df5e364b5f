// Package polyn is for arithmetic with polynomials in one variable.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/pathsmooth"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the polynomial tracer.
func T() tracing.Trace {
	return tracing.Select("polyn")
}

// ErrNegativeExponent is returned when constructing a term z^i with i < 0.
var ErrNegativeExponent = errors.New("term exponent must not be negative")

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅z^I
//
// I ≥ 1
type X struct {
	I int     // exponent of z
	C float64 // coefficient
}

// New creates a polynomial, given the term coefficients and exponents
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(z) = 8 + 2/3z + 5z²
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			err = fmt.Errorf("%w: %d, skipping it", ErrNegativeExponent, t.I)
			T().Errorf("polynomial term with exponent %d skipped", t.I)
		} else {
			p.SetTerm(t.I, t.C)
		}
	}
	return p, err
}

// FromCoefficients creates a dense polynomial c[0] + c[1]z + c[2]z² + …
// All coefficients are stored as given, including zeros, so that the
// coefficients read back are bit-identical to the input.
func FromCoefficients(c ...float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, 0.0)
	for i, a := range c {
		p.Terms.Put(i, a)
	}
	return p
}

// Polynomial is a type for polynomials in one variable z
//
//	c + a.1 z + a.2 z² + ... a.n zⁿ .
//
// We store the coefficients only. Index 0 is the constant term.
// We store the coefficients in a TreeMap (sorted map), keyed by exponent.
type Polynomial struct {
	Terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, c) // initialize with constant term (at position 0)
	return p
}

func (p *Polynomial) checkTerms() {
	if p.Terms == nil {
		p.Terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.Terms.Put(i, scale)
	return p
}

// CopyPolynomial makes a copy of a Polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p1 := NewConstantPolynomial(0.0) // will become our return value
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() { // copy all terms of p into p1
		p1.SetTerm(it.Key().(int), it.Value().(float64))
	}
	return p1
}

// Internal method: add or subtract 2 polynomials. The high level methods
// are based on this one.
// Flag doAdd signals addition or subtraction.
func (p Polynomial) addOrSub(p2 Polynomial, doAdd bool) Polynomial {
	p1 := p.CopyPolynomial() // will become our return value
	p2.checkTerms()
	it2 := p2.Terms.Iterator()
	for it2.Next() { // inspect all terms of p2
		pos2 := it2.Key().(int)
		scale2 := it2.Value().(float64)
		scale1 := p1.GetCoeffForTerm(pos2)
		if doAdd {
			scale1 = scale1 + scale2
		} else {
			scale1 = scale1 - scale2
		}
		p1.SetTerm(pos2, scale1)
	}
	return p1
}

// Add adds two Polynomials. Returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, true)
}

// Subtract subtracts two Polynomials. Returns a new Polynomial.
func (p Polynomial) Subtract(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, false)
}

// Scale multiplies every coefficient by c. Returns a new Polynomial.
func (p Polynomial) Scale(c float64) Polynomial {
	p1 := p.CopyPolynomial()
	it := p1.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64)*c)
	}
	return p1
}

// Derivative returns dP/dz as a new Polynomial.
func (p Polynomial) Derivative() Polynomial {
	d := NewConstantPolynomial(0.0)
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		i := it.Key().(int)
		if i == 0 {
			continue
		}
		d.SetTerm(i-1, float64(i)*it.Value().(float64))
	}
	return d
}

// Degree returns the highest exponent with a non-zero coefficient. A
// constant polynomial has degree 0.
func (p Polynomial) Degree() int {
	p.checkTerms()
	keys := p.Terms.Keys()
	for k := len(keys) - 1; k > 0; k-- {
		i := keys[k].(int)
		if p.GetCoeffForTerm(i) != 0 {
			return i
		}
	}
	return 0
}

// Eval evaluates P(z) by Horner's rule.
func (p Polynomial) Eval(z float64) float64 {
	n := p.Degree()
	v := p.GetCoeffForTerm(n)
	for i := n - 1; i >= 0; i-- {
		v = v*z + p.GetCoeffForTerm(i)
	}
	return v
}

// Coefficients returns the dense coefficients c[0..n-1], padding missing
// terms with 0.
func (p Polynomial) Coefficients(n int) []float64 {
	c := make([]float64, n)
	for i := range c {
		c[i] = p.GetCoeffForTerm(i)
	}
	return c
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	positions := p.Terms.Keys()     // all non-Zero terms of p
	for _, pos := range positions { // inspect terms
		if scale, _ := p.Terms.Get(pos); pathsmooth.Is0(scale.(float64)) {
			p.Terms.Remove(pos) // may lose constant term c
		}
	}
	if _, ok := p.Terms.Get(0); !ok {
		p.Terms.Put(0, 0.0) // set p = 0: re-introduce c
	}
	return p
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	return p.GetCoeffForTerm(0), p.Degree() == 0
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return (p.Terms != nil)
}

// GetCoeffForTerm gets the coefficient for term # i.
//
// Example:
//
//	p = 1 + 3z²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	p.checkTerms()
	if sc, found := p.Terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// String creates a readable string representation for a Polynomial.
// Coefficients are rounded to ε.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		pos := it.Key().(int)
		scale := pathsmooth.Round(it.Value().(float64))
		switch pos {
		case 0:
			buffer.WriteString(fmt.Sprintf("{ %g } ", scale))
		case 1:
			buffer.WriteString(fmt.Sprintf("{ %g z } ", scale))
		default:
			buffer.WriteString(fmt.Sprintf("{ %g z^%d } ", scale, pos))
		}
	}
	return buffer.String()
}
