// Package blend models the cost-minimal formulation of a batch from
// ingredients with quality attributes (impurity, toxicity, bioavailability,
// stability), each measured per unit of ingredient.
//
//	minimize    Σ cost_j·x_j
//	subject to  Σ x_j == Q                              total_weight
//	            Σ impurity_j·x_j <= MaxImpurity·Q        max_impurity
//	            Σ impurity_j·x_j >= MinImpurity·Q        min_impurity (optional)
//	            Σ toxicity_j·x_j <= MaxToxicity·Q        max_toxicity
//	            Σ toxicity_j·x_j >= MinToxicity·Q        min_toxicity (optional)
//	            Σ bioavailability_j·x_j >= MinBio·Q      min_bioavailability
//	            Σ stability_j·x_j >= MinStability·Q      min_stability
//	            x_j >= MinProportion_j·Q                 min_<name> (when > 0)
//	            x_j <= Stock_j                           stock_<name>
//
// Per-ingredient floors and stock limits are named rows rather than variable
// bounds, so an infeasible batch can blame them by name.
package blend

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/solver"
)

// Kind labels this problem family in logs and metrics.
const Kind = "blend"

// Sentinel errors for blend problems.
var (
	// ErrNoIngredients indicates that no ingredient is included.
	ErrNoIngredients = errors.New("blend: no ingredients selected for inclusion")

	// ErrBadQuantity indicates a total quantity that is not a positive finite number.
	ErrBadQuantity = errors.New("blend: total quantity must be > 0")

	// ErrBadIngredient indicates an invalid ingredient record.
	ErrBadIngredient = errors.New("blend: invalid ingredient")

	// ErrBadLimit indicates a NaN or infinite quality limit.
	ErrBadLimit = errors.New("blend: quality limits must be finite")
)

// Ingredient is one candidate component of the batch.
type Ingredient struct {
	Name            string  `yaml:"name"`
	Cost            float64 `yaml:"cost"`
	Impurity        float64 `yaml:"impurity"`
	Toxicity        float64 `yaml:"toxicity"`
	Bioavailability float64 `yaml:"bioavailability"`
	Stability       float64 `yaml:"stability"`
	MinProportion   float64 `yaml:"min_proportion"`
	Stock           float64 `yaml:"stock"`
	Excluded        bool    `yaml:"excluded,omitempty"`
}

// Limits are the batch-level quality requirements. Nil minima are not enforced.
type Limits struct {
	MaxImpurity        float64  `yaml:"max_impurity"`
	MinImpurity        *float64 `yaml:"min_impurity,omitempty"`
	MaxToxicity        float64  `yaml:"max_toxicity"`
	MinToxicity        *float64 `yaml:"min_toxicity,omitempty"`
	MinBioavailability float64  `yaml:"min_bioavailability"`
	MinStability       float64  `yaml:"min_stability"`
}

// DefaultLimits returns the stock formulation requirements.
func DefaultLimits() Limits {
	return Limits{
		MaxImpurity:        2.5,
		MaxToxicity:        2.0,
		MinBioavailability: 60,
		MinStability:       6,
	}
}

// DefaultIngredients returns the stock catalogue of active substances and
// excipients, all included.
func DefaultIngredients() []Ingredient {
	return []Ingredient{
		{Name: "substance A", Cost: 10, Impurity: 1.0, Toxicity: 0.5, Bioavailability: 70, Stability: 12, MinProportion: 0.1, Stock: 700},
		{Name: "substance B", Cost: 20, Impurity: 0.8, Toxicity: 0.7, Bioavailability: 60, Stability: 10, MinProportion: 0.05, Stock: 600},
		{Name: "substance C", Cost: 15, Impurity: 1.2, Toxicity: 0.6, Bioavailability: 65, Stability: 8, MinProportion: 0.05, Stock: 500},
		{Name: "excipient A", Cost: 25, Impurity: 0.5, Toxicity: 0.4, Bioavailability: 75, Stability: 14, MinProportion: 0.15, Stock: 800},
		{Name: "excipient B", Cost: 30, Impurity: 0.3, Toxicity: 0.2, Bioavailability: 80, Stability: 16, MinProportion: 0.2, Stock: 900},
	}
}

// DefaultProblem returns a one-unit batch over DefaultIngredients.
func DefaultProblem() *Problem {
	return &Problem{
		Ingredients:   DefaultIngredients(),
		Limits:        DefaultLimits(),
		TotalQuantity: 1,
	}
}

// Problem is the editable blend instance.
type Problem struct {
	Ingredients   []Ingredient `yaml:"ingredients"`
	Limits        Limits       `yaml:"limits"`
	TotalQuantity float64      `yaml:"total_quantity"`
}

// Kind implements the runner's problem contract.
func (p *Problem) Kind() string { return Kind }

// Build implements the runner's problem contract.
func (p *Problem) Build() (*model.Model, error) { return Build(p) }

// Finish labels the objective and switches to four-decimal quantities.
func (p *Problem) Finish(_ *model.Model, _ *solver.Result, out *outcome.Outcome) error {
	out.ObjectiveLabel = "Total Cost"
	out.Precision = 4

	return nil
}

// Included returns the ingredients that take part in the batch.
func (p *Problem) Included() []Ingredient {
	var in []Ingredient
	for _, ing := range p.Ingredients {
		if !ing.Excluded {
			in = append(in, ing)
		}
	}

	return in
}

// Validate checks quantity, limits and every included ingredient.
func (p *Problem) Validate() error {
	q := p.TotalQuantity
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return ErrBadQuantity
	}
	l := p.Limits
	for _, v := range []float64{l.MaxImpurity, l.MaxToxicity, l.MinBioavailability, l.MinStability} {
		if !finite(v) {
			return ErrBadLimit
		}
	}
	for _, v := range []*float64{l.MinImpurity, l.MinToxicity} {
		if v != nil && !finite(*v) {
			return ErrBadLimit
		}
	}

	included := p.Included()
	if len(included) == 0 {
		return ErrNoIngredients
	}
	seen := make(map[string]bool, len(included))
	for _, ing := range included {
		switch {
		case ing.Name == "" || seen[ing.Name]:
			return fmt.Errorf("%w: name %q is empty or repeated", ErrBadIngredient, ing.Name)
		case !finite(ing.Cost) || !finite(ing.Impurity) || !finite(ing.Toxicity) ||
			!finite(ing.Bioavailability) || !finite(ing.Stability):
			return fmt.Errorf("%w: %s has a non-finite attribute", ErrBadIngredient, ing.Name)
		case !finite(ing.MinProportion) || ing.MinProportion < 0 || ing.MinProportion > 1:
			return fmt.Errorf("%w: %s min proportion must be in [0,1]", ErrBadIngredient, ing.Name)
		case !finite(ing.Stock) || ing.Stock < 0:
			return fmt.Errorf("%w: %s stock must be >= 0", ErrBadIngredient, ing.Name)
		}
		seen[ing.Name] = true
	}

	return nil
}

// Build validates p and returns the blend LP.
//
// Errors: ErrBadQuantity, ErrBadLimit, ErrNoIngredients, ErrBadIngredient.
func Build(p *Problem) (*model.Model, error) {
	if p == nil {
		return nil, ErrNoIngredients
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	q := p.TotalQuantity
	included := p.Included()
	m := model.New(Kind)

	idx := make([]int, len(included))
	objective := make(model.Expr, len(included))
	for j, ing := range included {
		i, err := m.AddVar(ing.Name, 0, math.Inf(1), model.Continuous)
		if err != nil {
			return nil, err
		}
		idx[j] = i
		objective[j] = model.Term{Var: i, Coef: ing.Cost}
	}
	if err := m.SetObjective(objective, model.Minimize); err != nil {
		return nil, err
	}

	weighted := func(attr func(Ingredient) float64) model.Expr {
		e := make(model.Expr, len(included))
		for j, ing := range included {
			e[j] = model.Term{Var: idx[j], Coef: attr(ing)}
		}

		return e
	}
	impurity := weighted(func(i Ingredient) float64 { return i.Impurity })
	toxicity := weighted(func(i Ingredient) float64 { return i.Toxicity })

	type row struct {
		name string
		expr model.Expr
		rel  model.Relation
		rhs  float64
	}
	l := p.Limits
	rows := []row{
		{"total_weight", weighted(func(Ingredient) float64 { return 1 }), model.EQ, q},
		{"max_impurity", impurity, model.LE, l.MaxImpurity * q},
	}
	if l.MinImpurity != nil {
		rows = append(rows, row{"min_impurity", impurity, model.GE, *l.MinImpurity * q})
	}
	rows = append(rows, row{"max_toxicity", toxicity, model.LE, l.MaxToxicity * q})
	if l.MinToxicity != nil {
		rows = append(rows, row{"min_toxicity", toxicity, model.GE, *l.MinToxicity * q})
	}
	rows = append(rows,
		row{"min_bioavailability", weighted(func(i Ingredient) float64 { return i.Bioavailability }), model.GE, l.MinBioavailability * q},
		row{"min_stability", weighted(func(i Ingredient) float64 { return i.Stability }), model.GE, l.MinStability * q},
	)
	for j, ing := range included {
		single := model.Expr{{Var: idx[j], Coef: 1}}
		if floor := ing.MinProportion * q; floor > 0 {
			rows = append(rows, row{"min_" + ing.Name, single, model.GE, floor})
		}
		rows = append(rows, row{"stock_" + ing.Name, single, model.LE, ing.Stock})
	}

	for _, r := range rows {
		if _, err := m.AddConstraint(r.name, r.expr, r.rel, r.rhs); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
