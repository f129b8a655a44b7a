// Package value defines the Value capability and the FiniteLattice over a
// user-supplied finite carrier set.
//
// A signature binds this lattice to a set of primitive symbols (see package
// signature) and an interpretation function; value itself knows nothing
// about circuits, only about order.
package value
