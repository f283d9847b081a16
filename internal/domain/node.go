package domain

// NodeType selects the node renderer of the graph-UI library
type NodeType string

const (
	NodeTypeInput   NodeType = "input"   // Source handle only
	NodeTypeDefault NodeType = "default" // Source and target handles
	NodeTypeOutput  NodeType = "output"  // Target handle only
)

// Valid reports whether t is a known node type. The empty type is valid and
// means NodeTypeDefault.
func (t NodeType) Valid() bool {
	switch t {
	case "", NodeTypeInput, NodeTypeDefault, NodeTypeOutput:
		return true
	}
	return false
}

// NodeData holds the display payload of a node
type NodeData struct {
	Label string `json:"label"`
}

// Node represents a box in the diagram
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type,omitempty"`
	Data     NodeData `json:"data"`
	Position Position `json:"position"`
}

// NewNode creates a new node at the given position
func NewNode(id string, nodeType NodeType, label string, x, y float64) *Node {
	return &Node{
		ID:       id,
		Type:     nodeType,
		Data:     NodeData{Label: label},
		Position: NewPosition(x, y),
	}
}

// Label returns the display label
func (n *Node) Label() string {
	return n.Data.Label
}

// EffectiveType returns the node type, defaulting an unset type
func (n *Node) EffectiveType() NodeType {
	if n.Type == "" {
		return NodeTypeDefault
	}
	return n.Type
}

// MoveTo sets the node position
func (n *Node) MoveTo(x, y float64) {
	n.Position = NewPosition(x, y)
}
