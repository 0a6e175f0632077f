package ir

type Type int

const (
	NumberType Type = iota
	VariableType
	OpType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NumberType:   "Number",
		VariableType: "Variable",
		OpType:       "Op",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		NumberType,
		VariableType,
		OpType,
	}
}
