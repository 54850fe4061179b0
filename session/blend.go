package session

import (
	"github.com/katalvlaran/lvopt/blend"
	"github.com/katalvlaran/lvopt/fileio"
)

// BlendEditor owns a blend problem, seeded with the default catalogue.
type BlendEditor struct {
	p *blend.Problem
}

// NewBlendEditor returns an editor over blend.DefaultProblem.
func NewBlendEditor() *BlendEditor {
	return &BlendEditor{p: blend.DefaultProblem()}
}

// Problem exposes the owned blend.
func (e *BlendEditor) Problem() *blend.Problem { return e.p }

// AddIngredient appends an ingredient after validating it against the rest.
func (e *BlendEditor) AddIngredient(ing blend.Ingredient) error {
	next := *e.p
	next.Ingredients = append(append([]blend.Ingredient(nil), e.p.Ingredients...), ing)
	if err := next.Validate(); err != nil {
		return err
	}
	e.p.Ingredients = next.Ingredients

	return nil
}

// SetIncluded toggles whether the named ingredient takes part.
func (e *BlendEditor) SetIncluded(name string, included bool) error {
	i, err := e.find(name)
	if err != nil {
		return err
	}
	e.p.Ingredients[i].Excluded = !included

	return nil
}

// SetStock changes the available stock of an ingredient from user text.
func (e *BlendEditor) SetStock(name, text string) error {
	i, err := e.find(name)
	if err != nil {
		return err
	}
	v, err := parseNumber(text)
	if err != nil {
		return err
	}
	if v < 0 {
		return blend.ErrBadIngredient
	}
	e.p.Ingredients[i].Stock = v

	return nil
}

// SetQuantity sets the batch size from user text.
func (e *BlendEditor) SetQuantity(text string) error {
	q, err := parseNumber(text)
	if err != nil {
		return err
	}
	if q <= 0 {
		return blend.ErrBadQuantity
	}
	e.p.TotalQuantity = q

	return nil
}

// SetMinImpurity enables the impurity floor; blank text removes it.
func (e *BlendEditor) SetMinImpurity(text string) error {
	return e.setOptional(&e.p.Limits.MinImpurity, text)
}

// SetMinToxicity enables the toxicity floor; blank text removes it.
func (e *BlendEditor) SetMinToxicity(text string) error {
	return e.setOptional(&e.p.Limits.MinToxicity, text)
}

func (e *BlendEditor) setOptional(dst **float64, text string) error {
	if text == "" {
		*dst = nil

		return nil
	}
	v, err := parseNumber(text)
	if err != nil {
		return err
	}
	*dst = &v

	return nil
}

func (e *BlendEditor) find(name string) (int, error) {
	for i, ing := range e.p.Ingredients {
		if ing.Name == name {
			return i, nil
		}
	}

	return -1, ErrUnknownIngredient
}

// Load replaces the blend with the YAML document at path.
func (e *BlendEditor) Load(path string) error {
	p, err := fileio.LoadBlend(path)
	if err != nil {
		return err
	}
	e.p = p

	return nil
}

// Save writes the blend to path as YAML.
func (e *BlendEditor) Save(path string) error { return fileio.SaveBlend(path, e.p) }

// Reset restores the default catalogue.
func (e *BlendEditor) Reset() { e.p = blend.DefaultProblem() }
