package domain

// DefaultSeed returns the initial diagram: an input node wired to a default
// node by an animated edge.
func DefaultSeed() Elements {
	edge := NewEdge("1", "2")
	edge.Animated = true

	return Elements{
		NodeElement(*NewNode("1", NodeTypeInput, "Start Node", 250, 5)),
		NodeElement(*NewNode("2", "", "Another Node", 100, 100)),
		EdgeElement(*edge),
	}
}
