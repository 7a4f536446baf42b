package ast

type (
	// ObjectPattern properties are AssignmentProperty or a trailing
	// RestElement.
	ObjectPattern struct {
		Span
		Properties []PatternMember `json:"properties"`
	}

	// AssignmentProperty is the pattern form of Property. It serializes with
	// type "Property" and kind "init".
	AssignmentProperty struct {
		Span
		Key       Expr    `json:"key"`
		Value     Pattern `json:"value"`
		Kind      string  `json:"kind"`
		Method    bool    `json:"method"`
		Shorthand bool    `json:"shorthand"`
		Computed  bool    `json:"computed"`
	}

	// ArrayPattern elements are nil for holes.
	ArrayPattern struct {
		Span
		Elements []Pattern `json:"elements"`
	}

	RestElement struct {
		Span
		Argument Pattern `json:"argument"`
	}

	AssignmentPattern struct {
		Span
		Left  Pattern `json:"left"`
		Right Expr    `json:"right"`
	}
)
