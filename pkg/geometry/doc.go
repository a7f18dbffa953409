// Package geometry provides homogeneous-coordinate primitives (vertices,
// directions, lines and planes), the transformations acting on them, and
// the metric and relational algorithms between them.
//
// Unsolvable queries do not return errors. They return sentinel values
// whose components are infinite (InvalidVertex3, InvalidDirection3,
// InvalidLine3); test results with IsValid before using them.
package geometry
