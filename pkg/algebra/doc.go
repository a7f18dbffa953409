// Package algebra implements the fixed-size linear algebra used by the
// geometry kernel: 2, 3 and 4 component vectors, 2x2, 3x3 and 4x4 row-major
// matrices, scalar traits and tolerance policies.
//
// All types are generic over a floating-point scalar. Values are plain
// arrays; operations return new values unless their name ends in "In",
// in which case the receiver is updated in place.
package algebra
