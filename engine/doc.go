// Package engine owns one Lattice instance and wires together the
// Reducer, Oracle (created internally by the Reducer), Solver, and the
// persistence hooks into a single value a CLI entry point can drive with
// one method call. It is the "global state" struct spec.md describes: the
// original tool holds its matrix and run flags as C globals, and engine.Engine
// is the idiomatic Go replacement — one value, constructed with functional
// options, instead of package-level mutable state.
package engine
