// Package polynomial implements real polynomial algebra over a
// coefficient slice, index i holding the coefficient of x^i. The
// polynomial 3x^2 + 2x + 1 is New(1, 2, 3).
package polynomial

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Polynomial is an immutable polynomial; operations return new values.
// The zero value is the zero polynomial.
type Polynomial struct {
	coeffs []float64
}

// New builds a polynomial from coefficients in ascending power order.
// Trailing zero coefficients are trimmed.
func New(coeffs ...float64) Polynomial {
	return Polynomial{coeffs: trim(coeffs)}
}

func trim(coeffs []float64) []float64 {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	out := make([]float64, n)
	copy(out, coeffs[:n])
	return out
}

// Degree returns the degree; the zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of x^i, zero beyond the degree.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Eval evaluates the polynomial at x by Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return y
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	sum := make([]float64, n)
	for i := range sum {
		sum[i] = p.Coeff(i) + q.Coeff(i)
	}
	return New(sum...)
}

// AddScalar returns p + c.
func (p Polynomial) AddScalar(c float64) Polynomial {
	return p.Add(New(c))
}

// Mul returns the product p*q; deg(pq) = deg(p) + deg(q).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{}
	}
	prod := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			prod[i+j] += a * b
		}
	}
	return New(prod...)
}

// Scale returns c*p.
func (p Polynomial) Scale(c float64) Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a * c
	}
	return New(out...)
}

// Pow returns p raised to a non-negative integer power.
func (p Polynomial) Pow(n int) Polynomial {
	result := New(1)
	for i := 0; i < n; i++ {
		result = result.Mul(p)
	}
	return result
}

// Derivative returns dp/dx.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{}
	}
	out := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = float64(i) * p.coeffs[i]
	}
	return New(out...)
}

// Integral returns the antiderivative with zero constant term.
func (p Polynomial) Integral() Polynomial {
	out := make([]float64, len(p.coeffs)+1)
	for i, a := range p.coeffs {
		out[i+1] = a / float64(i+1)
	}
	return New(out...)
}

// Equal reports exact coefficient equality.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// String renders the raw ascending form, e.g. "1x^0 + 2x^1 + 3x^2".
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0x^0"
	}
	terms := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		terms[i] = fmt.Sprintf("%gx^%d", c, i)
	}
	return strings.Join(terms, " + ")
}

// Std renders standard form, highest power first, skipping zero terms
// and eliding unit coefficients: x^2 - 2x + 1.
func (p Polynomial) Std() string {
	var b strings.Builder
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coeff(i)
		if c == 0 {
			continue
		}
		if b.Len() > 0 {
			if c > 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
			}
		} else if c < 0 {
			b.WriteString("-")
		}
		abs := math.Abs(c)
		if abs != 1 || i == 0 {
			b.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		if i > 0 {
			b.WriteString("x")
			if i > 1 {
				fmt.Fprintf(&b, "^%d", i)
			}
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Save writes the coefficients one per line, ascending power order.
func (p Polynomial) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	w := bufio.NewWriter(f)
	coeffs := p.coeffs
	if len(coeffs) == 0 {
		coeffs = []float64{0}
	}
	for _, c := range coeffs {
		fmt.Fprintf(w, "%g\n", c)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return f.Close()
}

// Load reads a polynomial saved by Save.
func Load(filename string) (Polynomial, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Polynomial{}, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	var coeffs []float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		c, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Polynomial{}, fmt.Errorf("%s line %d: %w", filename, line, err)
		}
		coeffs = append(coeffs, c)
	}
	if err := scanner.Err(); err != nil {
		return Polynomial{}, err
	}
	return New(coeffs...), nil
}

// FromRoots returns the monic polynomial with the given roots.
func FromRoots(roots ...float64) Polynomial {
	p := New(1)
	for _, r := range roots {
		p = p.Mul(New(-r, 1))
	}
	return p
}

// Compose returns p(q(x)).
func Compose(p, q Polynomial) Polynomial {
	result := Polynomial{}
	for i := 0; i <= p.Degree(); i++ {
		result = result.Add(q.Pow(i).Scale(p.Coeff(i)))
	}
	return result
}

// Point is one interpolation sample.
type Point struct {
	X, Y float64
}

// Lagrange returns the interpolation polynomial through the points.
// X values must be distinct.
func Lagrange(points []Point) (Polynomial, error) {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X == points[j].X {
				return Polynomial{}, fmt.Errorf("polynomial: duplicate x value %g", points[i].X)
			}
		}
	}
	L := Polynomial{}
	for j := range points {
		L = L.Add(lagBasis(points, j).Scale(points[j].Y))
	}
	return L, nil
}

// lagBasis builds the j-th Lagrange basis polynomial l_j(x).
func lagBasis(points []Point, j int) Polynomial {
	l := New(1)
	for m := range points {
		if m == j {
			continue
		}
		w := 1 / (points[j].X - points[m].X)
		l = l.Mul(New(-points[m].X*w, w))
	}
	return l
}
