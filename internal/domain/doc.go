// Package domain defines the core types of the flowboard diagram.
//
// A diagram is an ordered sequence of elements. Each element is either a
// Node or an Edge; order only affects stacking when the page draws the
// sequence.
//
// # Core Types
//
// Node is a labelled box placed at a fixed position. Its type selects the
// renderer used by the graph-UI library (input, default, output).
//
// Edge connects a source node to a target node, optionally through named
// handles, and carries visual attributes such as the animated flag and a
// free-form style record.
//
// Element is the tagged union of Node and Edge. On the wire an element is an
// edge when it carries both a source and a target key.
//
// # Mutations
//
// AddEdge and RemoveElements are pure: they never modify their input and
// always return a fresh sequence. Edge endpoints are not checked against the
// node set here; dangling edges are a valid state.
package domain
