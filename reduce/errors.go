package reduce

import "errors"

// ErrInstanceInfeasible reports that the lattice has at least one live
// column with zero covering vectors once the reduction pipeline has
// reached a fixed point: no subcollection of the remaining rows can cover
// every column (spec.md §7 InstanceInfeasible).
var ErrInstanceInfeasible = errors.New("reduce: instance infeasible")
