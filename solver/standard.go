package solver

import (
	"math"

	"github.com/katalvlaran/lvopt/model"
)

// problem is the dense, minimisation-form view of a model that the solver
// works on. Branch and bound edits lower/upper; the IIS filter edits active.
type problem struct {
	cost     []float64 // minimisation costs, len n
	lower    []float64
	upper    []float64
	integral []bool
	rows     []denseRow
	active   []bool // rows taking part in the current solve
}

type denseRow struct {
	name string
	coef []float64
	rel  model.Relation
	rhs  float64
}

// newProblem densifies m. Objective coefficients are negated for Maximize.
func newProblem(m *model.Model) *problem {
	n := m.NumVars()
	p := &problem{
		cost:     make([]float64, n),
		lower:    make([]float64, n),
		upper:    make([]float64, n),
		integral: make([]bool, n),
	}
	for j, v := range m.Vars() {
		p.lower[j], p.upper[j], p.integral[j] = v.Lower, v.Upper, v.Integral()
	}
	obj, sense := m.Objective()
	sign := 1.0
	if sense == model.Maximize {
		sign = -1
	}
	for _, t := range obj {
		p.cost[t.Var] += sign * t.Coef
	}
	for _, c := range m.Constraints() {
		r := denseRow{name: c.Name, coef: make([]float64, n), rel: c.Rel, rhs: c.RHS}
		for _, t := range c.Expr {
			r.coef[t.Var] += t.Coef
		}
		p.rows = append(p.rows, r)
		p.active = append(p.active, true)
	}

	return p
}

// withBounds returns a shallow copy of p with its own bound slices.
func (p *problem) withBounds(lower, upper []float64) *problem {
	q := *p
	q.lower, q.upper = lower, upper

	return &q
}

// withActive returns a shallow copy of p with its own active-row mask.
func (p *problem) withActive(active []bool) *problem {
	q := *p
	q.active = active

	return &q
}

// feasibilityOnly returns a copy with a zero objective.
func (p *problem) feasibilityOnly() *problem {
	q := *p
	q.cost = make([]float64, len(p.cost))

	return &q
}

// mapping recovers x_j = offset + y[pos] - y[neg]; -1 marks an absent column.
type mapping struct {
	offset float64
	pos    int
	neg    int
}

// standardForm is  min c·y + constant  s.t.  a·y = b, y >= 0.
type standardForm struct {
	c        []float64
	a        [][]float64
	b        []float64
	constant float64
	vars     []mapping
}

// standardize folds bounds and inequality rows of p into standard form.
//
//	l finite, u finite (l<u)  x = l + y,  y + s = u - l
//	l finite, u = +inf        x = l + y
//	l = -inf, u finite        x = u - y
//	l = -inf, u = +inf        x = y⁺ - y⁻
//	l == u                    x = l, no column
func standardize(p *problem) *standardForm {
	sf := &standardForm{vars: make([]mapping, len(p.cost))}
	ncols := 0
	newCol := func(cost float64) int {
		sf.c = append(sf.c, cost)
		ncols++

		return ncols - 1
	}

	type boundRow struct {
		col   int
		width float64
	}
	var bounded []boundRow

	for j := range p.cost {
		l, u := p.lower[j], p.upper[j]
		mp := mapping{pos: -1, neg: -1}
		switch {
		case l == u:
			mp.offset = l
		case !math.IsInf(l, -1):
			mp.offset = l
			mp.pos = newCol(p.cost[j])
			if !math.IsInf(u, 1) {
				bounded = append(bounded, boundRow{col: mp.pos, width: u - l})
			}
		case !math.IsInf(u, 1):
			mp.offset = u
			mp.neg = newCol(-p.cost[j])
		default:
			mp.pos = newCol(p.cost[j])
			mp.neg = newCol(-p.cost[j])
		}
		sf.vars[j] = mp
		sf.constant += p.cost[j] * mp.offset
	}

	// Rows in y-space; slack columns are appended after all structural columns.
	type pending struct {
		coef  []float64
		rhs   float64
		slack float64 // +1 for <=, -1 for >=, 0 for ==
	}
	var rows []pending
	for i, r := range p.rows {
		if !p.active[i] {
			continue
		}
		coef := make([]float64, ncols)
		rhs := r.rhs
		for j, a := range r.coef {
			if a == 0 {
				continue
			}
			mp := sf.vars[j]
			rhs -= a * mp.offset
			if mp.pos >= 0 {
				coef[mp.pos] += a
			}
			if mp.neg >= 0 {
				coef[mp.neg] -= a
			}
		}
		var slack float64
		switch r.rel {
		case model.LE:
			slack = 1
		case model.GE:
			slack = -1
		}
		rows = append(rows, pending{coef: coef, rhs: rhs, slack: slack})
	}
	for _, br := range bounded {
		coef := make([]float64, ncols)
		coef[br.col] = 1
		rows = append(rows, pending{coef: coef, rhs: br.width, slack: 1})
	}

	structural := ncols
	nslack := 0
	for _, r := range rows {
		if r.slack != 0 {
			nslack++
		}
	}
	total := structural + nslack
	for len(sf.c) < total {
		sf.c = append(sf.c, 0)
	}

	next := structural
	for _, r := range rows {
		full := make([]float64, total)
		copy(full, r.coef)
		if r.slack != 0 {
			full[next] = r.slack
			next++
		}
		rhs := r.rhs
		if rhs < 0 {
			for k := range full {
				full[k] = -full[k]
			}
			rhs = -rhs
		}
		sf.a = append(sf.a, full)
		sf.b = append(sf.b, rhs)
	}

	return sf
}

// point maps a standard-form point back to model space.
func (sf *standardForm) point(y []float64) []float64 {
	x := make([]float64, len(sf.vars))
	for j, mp := range sf.vars {
		v := mp.offset
		if mp.pos >= 0 {
			v += y[mp.pos]
		}
		if mp.neg >= 0 {
			v -= y[mp.neg]
		}
		x[j] = v
	}

	return x
}
