// Package reduce implements the reduction pipeline run to a fixed point
// over a lattice.Lattice before the solver enumerates it: column-equality
// merge (Pass A), column-implication row removal (Pass B), small-group
// consistency reduction (Pass C, optional), and hot-vector impossibility
// elimination driven by the oracle package's lookahead probe (Pass D).
//
// All reductions are recorded on a single persistent lattice.UndoLog that
// the Reducer keeps open for its own lifetime — unlike the Oracle's
// scratch scopes, a reduction's effect must survive into the solving phase,
// so the log is never closed (spec.md §4.2 "reductions whose effects must
// persist are performed at the outermost scope's log").
package reduce
