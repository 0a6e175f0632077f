package ir

// LeafPrecedence is the rendering precedence of leaves; they never
// need parentheses.
const LeafPrecedence = 100

// Node is one node of an expression tree. Exactly the fields for its
// Type are meaningful: Float64 for NumberType, Name for VariableType,
// and Op/Left/Right for OpType.
type Node struct {
	Type Type

	Op          Op
	Left, Right *Node

	Float64 float64

	Name string
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
	}
}

func FromName(name string) *Node {
	return &Node{
		Type: VariableType,
		Name: name,
	}
}

func BinOp(op Op, l, r *Node) *Node {
	return &Node{
		Type:  OpType,
		Op:    op,
		Left:  l,
		Right: r,
	}
}

func AddOf(l, r *Node) *Node { return BinOp(Add, l, r) }
func SubOf(l, r *Node) *Node { return BinOp(Sub, l, r) }
func MulOf(l, r *Node) *Node { return BinOp(Mul, l, r) }
func DivOf(l, r *Node) *Node { return BinOp(Div, l, r) }
func PowOf(l, r *Node) *Node { return BinOp(Pow, l, r) }

func (n *Node) Precedence() int {
	if n.Type == OpType {
		return n.Op.Precedence()
	}
	return LeafPrecedence
}

// Size returns the number of nodes in the tree.
func Size(n *Node) int {
	if n == nil {
		return 0
	}
	if n.Type != OpType {
		return 1
	}
	return 1 + Size(n.Left) + Size(n.Right)
}
