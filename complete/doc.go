// Package complete implements interval completion of a tree (spec 4.D):
// given two quadrants a < b, insert the minimal sorted set of quadrants
// that exactly covers the interval between them. It is grounded on the
// original's p4est_complete_region, reshaped from an explicit work-list
// into a direct recursive descent -- the two are the same traversal, since
// p4est's list is pushed and popped from the same end once a quadrant is
// expanded into its children, which is exactly a call stack.
package complete
