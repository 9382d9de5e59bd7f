// Package oracle implements the Lookahead Oracle: a budget-bounded
// recursive feasibility probe over a lattice.Lattice. It is sound but
// incomplete by design — it never returns false when a cover exists, but
// may conservatively return true when the budget runs out before it can
// prove otherwise. The Reducer's Pass D and escalation loop are its only
// callers.
package oracle
