// Package session owns the editable problem instances behind a front end and
// runs them through build, solve and interpretation.
//
// Editors (GraphEditor, AllocationEditor, LPEditor, BlendEditor) accept the
// raw text a user typed, validate it, and only then mutate their instance; a
// failed edit leaves the instance exactly as it was. Loading a file replaces
// the instance wholesale.
//
// Runner.Solve drives one run through the phases
//
//	Idle → Building → Solving → <outcome kind> → Idle
//
// and always returns an outcome.Outcome: build failures, solver errors and
// panics are converted, never propagated. Each run gets a UUID that appears
// in every log line and in Outcome.RunID.
package session
