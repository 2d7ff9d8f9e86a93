package problem

import (
	"fmt"
	"os"
	"sort"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/bruteopt/constraint"
	"github.com/katalvlaran/bruteopt/objective"
	"github.com/katalvlaran/bruteopt/space"
)

// File is the on-disk (YAML) shape of a linear problem:
//
//	name: product-mix
//	variables:
//	  - {name: A, min: 0, max: 14}
//	  - {name: B, min: 3, max: 14}
//	objective:
//	  terms: {A: 3, B: 4}
//	constraints:
//	  - {label: transportation, terms: {A: 1, B: 2}, op: "<=", rhs: 14}
//
// Variable bounds are inclusive. Unknown fields are rejected.
type File struct {
	Name        string           `json:"name"`
	Variables   []FileVariable   `json:"variables"`
	Objective   FileObjective    `json:"objective"`
	Constraints []FileConstraint `json:"constraints,omitempty"`
}

// FileVariable declares one integer decision variable with inclusive bounds.
type FileVariable struct {
	Name string `json:"name"`
	Min  *int   `json:"min"`
	Max  *int   `json:"max"`
}

// FileObjective is a linear objective keyed by variable name.
type FileObjective struct {
	Terms    map[string]int `json:"terms"`
	Constant int            `json:"constant,omitempty"`
}

// FileConstraint is a linear constraint keyed by variable name.
type FileConstraint struct {
	Label string         `json:"label"`
	Terms map[string]int `json:"terms"`
	Op    string         `json:"op"`
	RHS   int            `json:"rhs"`
}

// LoadFile reads and parses a YAML problem file.
func LoadFile(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("problem: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML (or JSON) data into a validated Problem.
func Parse(data []byte) (Problem, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return Problem{}, fmt.Errorf("problem: decode: %w", err)
	}

	return f.Problem()
}

// Problem converts f into a validated Problem.
func (f File) Problem() (Problem, error) {
	p := Problem{Name: f.Name}
	index := make(map[string]int, len(f.Variables))
	for i, v := range f.Variables {
		if v.Name == "" {
			return Problem{}, fmt.Errorf("variable %d: %w", i, ErrEmptyLabel)
		}
		if _, ok := index[v.Name]; ok {
			return Problem{}, fmt.Errorf("variable %s: %w", v.Name, ErrDuplicateVariable)
		}
		if v.Min == nil || v.Max == nil {
			return Problem{}, fmt.Errorf("variable %s: %w", v.Name, ErrMissingBound)
		}
		if *v.Min > *v.Max {
			return Problem{}, fmt.Errorf("variable %s [%d, %d]: %w", v.Name, *v.Min, *v.Max, space.ErrInvertedRange)
		}
		index[v.Name] = i
		p.Space = append(p.Space, space.Closed(v.Name, *v.Min, *v.Max))
	}

	coeffs, err := termsToCoeffs(f.Objective.Terms, index)
	if err != nil {
		return Problem{}, fmt.Errorf("objective: %w", err)
	}
	p.Objective = objective.NewLinear(coeffs, f.Objective.Constant)

	for i, fc := range f.Constraints {
		if fc.Label == "" {
			return Problem{}, fmt.Errorf("constraint %d: %w", i, ErrEmptyLabel)
		}
		op, err := constraint.ParseOp(fc.Op)
		if err != nil {
			return Problem{}, fmt.Errorf("constraint %s: %w", fc.Label, err)
		}
		coeffs, err = termsToCoeffs(fc.Terms, index)
		if err != nil {
			return Problem{}, fmt.Errorf("constraint %s: %w", fc.Label, err)
		}
		p.Constraints = append(p.Constraints, constraint.NewLinear(fc.Label, coeffs, op, fc.RHS))
	}

	if err = p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// termsToCoeffs maps name-keyed terms onto a dense coefficient vector.
func termsToCoeffs(terms map[string]int, index map[string]int) ([]int, error) {
	coeffs := make([]int, len(index))
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic error for several unknown names
	for _, name := range names {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
		}
		coeffs[i] = terms[name]
	}

	return coeffs, nil
}

// asciiOps spells operators the way Parse reads them back.
var asciiOps = map[constraint.Op]string{
	constraint.LE: "<=",
	constraint.LT: "<",
	constraint.GE: ">=",
	constraint.GT: ">",
	constraint.EQ: "=",
}

// ToFile converts a linear problem into its file shape. Empty ranges cannot
// be written with inclusive bounds and are rejected as inverted.
func ToFile(p Problem) (File, error) {
	if !p.Linear() {
		return File{}, ErrNotLinear
	}
	if err := p.Space.Validate(); err != nil {
		return File{}, err
	}
	names := p.Names()
	f := File{Name: p.Name}
	for i, r := range p.Space {
		if r.Len() == 0 {
			return File{}, fmt.Errorf("variable %s: %w", names[i], space.ErrInvertedRange)
		}
		lo, hi := r.Lo, r.Hi-1
		f.Variables = append(f.Variables, FileVariable{Name: names[i], Min: &lo, Max: &hi})
	}
	obj := p.Objective.(objective.Linear)
	f.Objective = FileObjective{Terms: coeffsToTerms(obj.Coeffs, names), Constant: obj.Constant}
	for _, c := range p.Constraints {
		lin := c.(constraint.Linear)
		f.Constraints = append(f.Constraints, FileConstraint{
			Label: lin.Name,
			Terms: coeffsToTerms(lin.Coeffs, names),
			Op:    asciiOps[lin.Op],
			RHS:   lin.RHS,
		})
	}

	return f, nil
}

// Marshal renders a linear problem as YAML.
func Marshal(p Problem) ([]byte, error) {
	f, err := ToFile(p)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(f)
}

// coeffsToTerms keeps the non-zero coefficients keyed by variable name.
func coeffsToTerms(coeffs []int, names []string) map[string]int {
	terms := make(map[string]int, len(coeffs))
	for i, c := range coeffs {
		if c != 0 && i < len(names) {
			terms[names[i]] = c
		}
	}

	return terms
}
