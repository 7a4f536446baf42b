package ast

type (
	// Literal covers strings, numbers, booleans, null, regular expressions
	// and bigints. Value is a string, float64, bool, nil, the compiled
	// regular expression (nil when it cannot be compiled) or a *big.Int.
	Literal struct {
		Span
		Value  any        `json:"value"`
		Raw    string     `json:"raw"`
		Regex  *RegExpRaw `json:"regex,omitempty"`
		Bigint string     `json:"bigint,omitempty"`
	}

	RegExpRaw struct {
		Pattern string `json:"pattern"`
		Flags   string `json:"flags"`
	}

	TemplateLiteral struct {
		Span
		Quasis      []*TemplateElement `json:"quasis"`
		Expressions []Expr             `json:"expressions"`
	}

	TemplateElement struct {
		Span
		Value TemplateValue `json:"value"`
		Tail  bool          `json:"tail"`
	}

	// TemplateValue.Cooked is nil when the raw text holds an invalid escape,
	// which only tagged templates allow.
	TemplateValue struct {
		Raw    string  `json:"raw"`
		Cooked *string `json:"cooked"`
	}
)
