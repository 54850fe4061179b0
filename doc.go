// Package lvopt builds, solves and explains small optimization models for
// teaching demos.
//
// A problem instance is edited through a session, turned into a
// solver-neutral model, solved by a simplex adapter over gonum, and mapped
// back to a single tagged outcome that a front end can print.
//
//	core/         - thread-safe graph with validated node IDs and float weights
//	model/        - variables, linear expressions, named constraints, objective
//	shortestpath/ - binary flow model for one route, and the route walk back
//	allocation/   - resource allocation LP (costs, <= rows, demand, cap)
//	linprog/      - generic LP with per-row sense tokens
//	blend/        - cost-minimal ingredient blend under quality limits
//	solver/       - standard form, branch and bound and IIS over lp.Simplex
//	outcome/      - Optimal / Infeasible / Unbounded / Other / error outcomes
//	dijkstra/     - combinatorial cross-check for shortest-path results
//	fileio/       - CSV and YAML load/save
//	session/      - editors and the Runner (phases, logging, metrics)
//	config/       - YAML settings with environment overrides
//	metrics/      - Prometheus collectors
//	cmd/lvopt/    - command-line front end
//
// Typical flow:
//
//	e := session.NewAllocationEditor()
//	_ = e.AddCost("2")
//	_ = e.AddCost("3")
//	_ = e.AddConstraint("1, 1", "10")
//	_ = e.SetDemand("4")
//	out := session.NewRunner().Solve(ctx, e.Instance())
//	fmt.Println(out.Message())
//	fmt.Println(out.Report())
package lvopt
