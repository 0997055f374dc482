// Package roster builds and solves monthly 24/7 plant-security shift
// rosters. It is a self-contained constraint-model and search library:
// callers assemble a Problem in memory, call Solve, and get back a flat
// list of Assignments plus diagnostics (Stats). Persistence, transport,
// and UI concerns live outside this module.
package roster
