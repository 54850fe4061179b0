package fileio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvopt/blend"
	"github.com/katalvlaran/lvopt/linprog"
	"github.com/katalvlaran/lvopt/model"
)

// lpDocument is the YAML layout of a generic LP.
type lpDocument struct {
	Objective   string             `yaml:"objective"`
	Variables   []linprog.Decision `yaml:"variables"`
	Constraints []linprog.Row      `yaml:"constraints"`
}

// ReadLP decodes a generic LP. Decisions and rows pass through the same
// checks as interactive edits.
func ReadLP(r io.Reader) (*linprog.Problem, error) {
	var doc lpDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyFile
		}

		return nil, fmt.Errorf("parse LP: %w", err)
	}
	sense, err := model.ParseSense(doc.Objective)
	if err != nil {
		return nil, err
	}

	p := &linprog.Problem{Objective: sense}
	for _, d := range doc.Variables {
		if err := p.AddVariable(d.Name, d.Coef); err != nil {
			return nil, fmt.Errorf("variable %q: %w", d.Name, err)
		}
	}
	for _, row := range doc.Constraints {
		if err := p.AddRow(row.Coefs, row.Sense, row.RHS); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// WriteLP encodes p as YAML.
func WriteLP(w io.Writer, p *linprog.Problem) error {
	doc := lpDocument{
		Objective:   p.Objective.String(),
		Variables:   p.Variables,
		Constraints: p.Rows,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// ReadBlend decodes a blend problem. Missing limits fall back to
// blend.DefaultLimits; the result is validated before it is returned.
func ReadBlend(r io.Reader) (*blend.Problem, error) {
	p := &blend.Problem{Limits: blend.DefaultLimits()}
	if err := yaml.NewDecoder(r).Decode(p); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyFile
		}

		return nil, fmt.Errorf("parse blend: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// WriteBlend encodes p as YAML.
func WriteBlend(w io.Writer, p *blend.Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}

	return enc.Close()
}

// LoadLP reads a generic LP from path.
func LoadLP(path string) (*linprog.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLP(f)
}

// SaveLP writes p to path as YAML.
func SaveLP(path string, p *linprog.Problem) error {
	return create(path, func(f *os.File) error { return WriteLP(f, p) })
}

// LoadBlend reads a blend problem from path.
func LoadBlend(path string) (*blend.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadBlend(f)
}

// SaveBlend writes p to path as YAML.
func SaveBlend(path string, p *blend.Problem) error {
	return create(path, func(f *os.File) error { return WriteBlend(f, p) })
}
