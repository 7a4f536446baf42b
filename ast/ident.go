package ast

type (
	Identifier struct {
		Span
		Name string `json:"name"`
	}

	// PrivateIdentifier is a `#name` class member reference. Name excludes
	// the leading '#'.
	PrivateIdentifier struct {
		Span
		Name string `json:"name"`
	}
)
