package measure

import (
	"math/rand"
	"strings"

	pkgerrors "textkit/pkg/errors"
)

const defaultSeed = 1303

const letters = "abcdefghijklmnopqrstuvwxyz"

// Subjects holds the built-in measurement targets. A shared seeded source
// keeps runs reproducible.
type Subjects struct {
	rnd *rand.Rand
}

// NewSubjects returns subjects backed by a deterministic random source.
func NewSubjects() *Subjects {
	return &Subjects{rnd: rand.New(rand.NewSource(defaultSeed))}
}

// Names lists the subject names accepted by ByName.
func Names() []string {
	return []string{"matrix", "selection-sort", "manual-substring", "contains-substring", "random-string"}
}

// ByName resolves a subject function by name.
func (s *Subjects) ByName(name string) (func(int), error) {
	switch name {
	case "matrix":
		return s.MatrixMultiply, nil
	case "selection-sort":
		return s.SelectionSort, nil
	case "manual-substring":
		return s.ManualSubstring, nil
	case "contains-substring":
		return s.ContainsSubstring, nil
	case "random-string":
		return func(n int) { s.RandomString(n) }, nil
	default:
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"unknown subject %q: valid subjects are %s", name, strings.Join(Names(), ", "))
	}
}

// MatrixMultiply multiplies two random n-by-n matrices the schoolbook way.
// Cubic time, quadratic space.
func (s *Subjects) MatrixMultiply(n int) {
	a := s.randomMatrix(n)
	b := s.randomMatrix(n)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
}

func (s *Subjects) randomMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = s.rnd.Float64()
		}
	}
	return m
}

// SelectionSort sorts n random ints by repeated minimum selection. Quadratic
// time.
func (s *Subjects) SelectionSort(n int) {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = s.rnd.Intn(n * 10)
	}
	for i := 0; i < len(xs)-1; i++ {
		min := i
		for j := i + 1; j < len(xs); j++ {
			if xs[j] < xs[min] {
				min = j
			}
		}
		xs[i], xs[min] = xs[min], xs[i]
	}
}

// ManualSubstring scans a random n-rune string for a fixed needle with an
// explicit position-by-position comparison loop.
func (s *Subjects) ManualSubstring(n int) {
	haystack := s.RandomString(n)
	needle := "qzj"
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			break
		}
	}
}

// ContainsSubstring scans the same workload through strings.Contains.
func (s *Subjects) ContainsSubstring(n int) {
	haystack := s.RandomString(n)
	strings.Contains(haystack, "qzj")
}

// RandomString builds an n-rune lowercase string one random letter at a
// time.
func (s *Subjects) RandomString(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(letters[s.rnd.Intn(len(letters))])
	}
	return sb.String()
}
