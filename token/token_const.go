package token

const (
	Undetermined Token = iota

	Eof

	Number
	String
	RegExp
	Name
	PrivateName
	Template
	InvalidTemplate

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	Assign          // =
	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	ExponentAssign  // **=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd       // &&
	LogicalOr        // ||
	Coalesce         // ??
	LogicalAndAssign // &&=
	LogicalOrAssign  // ||=
	CoalesceAssign   // ??=
	Increment        // ++
	Decrement        // --

	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	Not        // !
	BitwiseNot // ~

	LeftParenthesis  // (
	LeftBracket      // [
	LeftBrace        // {
	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Comma            // ,
	Period           // .
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	QuestionDot      // ?.
	Arrow            // =>
	Ellipsis         // ...
	Backquote        // `
	DollarBrace      // ${

	firstKeyword

	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Export
	Extends
	False
	Finally
	For
	Function
	If
	Import
	In
	InstanceOf
	New
	Null
	Return
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With

	lastKeyword
)

type props struct {
	label      string
	beforeExpr bool
	startsExpr bool
	isLoop     bool
	isAssign   bool
	prefix     bool
	postfix    bool
	binop      int
}

const (
	beforeExpr = 1 << iota
	startsExpr
	isLoop
	isAssign
	prefix
	postfix
)

func p(label string, flags int, binop int) props {
	return props{
		label:      label,
		beforeExpr: flags&beforeExpr != 0,
		startsExpr: flags&startsExpr != 0,
		isLoop:     flags&isLoop != 0,
		isAssign:   flags&isAssign != 0,
		prefix:     flags&prefix != 0,
		postfix:    flags&postfix != 0,
		binop:      binop,
	}
}

var tokenProps = [...]props{
	Undetermined: p("undetermined", 0, 0),
	Eof:           p("eof", 0, 0),

	Number:          p("num", startsExpr, 0),
	String:          p("string", startsExpr, 0),
	RegExp:          p("regexp", startsExpr, 0),
	Name:            p("name", startsExpr, 0),
	PrivateName:     p("privateId", startsExpr, 0),
	Template:        p("template", 0, 0),
	InvalidTemplate: p("invalidTemplate", 0, 0),

	Plus:      p("+", beforeExpr|startsExpr|prefix, 9),
	Minus:     p("-", beforeExpr|startsExpr|prefix, 9),
	Multiply:  p("*", beforeExpr, 10),
	Exponent:  p("**", beforeExpr, 11),
	Slash:     p("/", beforeExpr, 10),
	Remainder: p("%", beforeExpr, 10),

	And:                p("&", beforeExpr, 5),
	Or:                 p("|", beforeExpr, 3),
	ExclusiveOr:        p("^", beforeExpr, 4),
	ShiftLeft:          p("<<", beforeExpr, 8),
	ShiftRight:         p(">>", beforeExpr, 8),
	UnsignedShiftRight: p(">>>", beforeExpr, 8),

	Assign:          p("=", beforeExpr|isAssign, 0),
	AddAssign:       p("+=", beforeExpr|isAssign, 0),
	SubtractAssign:  p("-=", beforeExpr|isAssign, 0),
	MultiplyAssign:  p("*=", beforeExpr|isAssign, 0),
	ExponentAssign:  p("**=", beforeExpr|isAssign, 0),
	QuotientAssign:  p("/=", beforeExpr|isAssign, 0),
	RemainderAssign: p("%=", beforeExpr|isAssign, 0),

	AndAssign:                p("&=", beforeExpr|isAssign, 0),
	OrAssign:                 p("|=", beforeExpr|isAssign, 0),
	ExclusiveOrAssign:        p("^=", beforeExpr|isAssign, 0),
	ShiftLeftAssign:          p("<<=", beforeExpr|isAssign, 0),
	ShiftRightAssign:         p(">>=", beforeExpr|isAssign, 0),
	UnsignedShiftRightAssign: p(">>>=", beforeExpr|isAssign, 0),

	LogicalAnd:       p("&&", beforeExpr, 2),
	LogicalOr:        p("||", beforeExpr, 1),
	Coalesce:         p("??", beforeExpr, 1),
	LogicalAndAssign: p("&&=", beforeExpr|isAssign, 0),
	LogicalOrAssign:  p("||=", beforeExpr|isAssign, 0),
	CoalesceAssign:   p("??=", beforeExpr|isAssign, 0),
	Increment:        p("++", startsExpr|prefix|postfix, 0),
	Decrement:        p("--", startsExpr|prefix|postfix, 0),

	Equal:          p("==", beforeExpr, 6),
	StrictEqual:    p("===", beforeExpr, 6),
	NotEqual:       p("!=", beforeExpr, 6),
	StrictNotEqual: p("!==", beforeExpr, 6),
	Less:           p("<", beforeExpr, 7),
	Greater:        p(">", beforeExpr, 7),
	LessOrEqual:    p("<=", beforeExpr, 7),
	GreaterOrEqual: p(">=", beforeExpr, 7),

	Not:        p("!", beforeExpr|startsExpr|prefix, 0),
	BitwiseNot: p("~", beforeExpr|startsExpr|prefix, 0),

	LeftParenthesis:  p("(", beforeExpr|startsExpr, 0),
	LeftBracket:      p("[", beforeExpr|startsExpr, 0),
	LeftBrace:        p("{", beforeExpr|startsExpr, 0),
	RightParenthesis: p(")", 0, 0),
	RightBracket:     p("]", 0, 0),
	RightBrace:       p("}", 0, 0),
	Comma:            p(",", beforeExpr, 0),
	Period:           p(".", 0, 0),
	Semicolon:        p(";", beforeExpr, 0),
	Colon:            p(":", beforeExpr, 0),
	QuestionMark:     p("?", beforeExpr, 0),
	QuestionDot:      p("?.", 0, 0),
	Arrow:            p("=>", beforeExpr, 0),
	Ellipsis:         p("...", beforeExpr, 0),
	Backquote:        p("`", startsExpr, 0),
	DollarBrace:      p("${", beforeExpr|startsExpr, 0),

	firstKeyword: p("", 0, 0),

	Break:      p("break", 0, 0),
	Case:       p("case", beforeExpr, 0),
	Catch:      p("catch", 0, 0),
	Class:      p("class", startsExpr, 0),
	Const:      p("const", 0, 0),
	Continue:   p("continue", 0, 0),
	Debugger:   p("debugger", 0, 0),
	Default:    p("default", beforeExpr, 0),
	Delete:     p("delete", beforeExpr|startsExpr|prefix, 0),
	Do:         p("do", beforeExpr|isLoop, 0),
	Else:       p("else", beforeExpr, 0),
	Export:     p("export", 0, 0),
	Extends:    p("extends", beforeExpr, 0),
	False:      p("false", startsExpr, 0),
	Finally:    p("finally", 0, 0),
	For:        p("for", isLoop, 0),
	Function:   p("function", startsExpr, 0),
	If:         p("if", 0, 0),
	Import:     p("import", startsExpr, 0),
	In:         p("in", beforeExpr, 7),
	InstanceOf: p("instanceof", beforeExpr, 7),
	New:        p("new", beforeExpr|startsExpr, 0),
	Null:       p("null", startsExpr, 0),
	Return:     p("return", beforeExpr, 0),
	Super:      p("super", startsExpr, 0),
	Switch:     p("switch", 0, 0),
	This:       p("this", startsExpr, 0),
	Throw:      p("throw", beforeExpr, 0),
	True:       p("true", startsExpr, 0),
	Try:        p("try", 0, 0),
	Typeof:     p("typeof", beforeExpr|startsExpr|prefix, 0),
	Var:        p("var", 0, 0),
	Void:       p("void", beforeExpr|startsExpr|prefix, 0),
	While:      p("while", isLoop, 0),
	With:       p("with", 0, 0),

	lastKeyword: p("", 0, 0),
}

var keywordTable = map[string]Token{}

func init() {
	for t := firstKeyword + 1; t < lastKeyword; t++ {
		keywordTable[tokenProps[t].label] = t
	}
}
