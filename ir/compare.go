package ir

// Equal reports structural equality: numbers compare by value,
// variables by name, operator nodes by kind and children.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NumberType:
		return a.Float64 == b.Float64
	case VariableType:
		return a.Name == b.Name
	case OpType:
		return a.Op == b.Op &&
			Equal(a.Left, b.Left) &&
			Equal(a.Right, b.Right)
	}
	return false
}
