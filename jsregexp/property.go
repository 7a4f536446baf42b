package jsregexp

import (
	"strings"
	"sync"
)

const (
	ecma9BinaryProperties = "ASCII ASCII_Hex_Digit AHex Alphabetic Alpha Any Assigned Bidi_Control Bidi_C Bidi_Mirrored Bidi_M Case_Ignorable CI Cased Changes_When_Casefolded CWCF Changes_When_Casemapped CWCM Changes_When_Lowercased CWL Changes_When_NFKC_Casefolded CWKCF Changes_When_Titlecased CWT Changes_When_Uppercased CWU Dash Default_Ignorable_Code_Point DI Deprecated Dep Diacritic Dia Emoji Emoji_Component Emoji_Modifier Emoji_Modifier_Base Emoji_Presentation Extender Ext Grapheme_Base Gr_Base Grapheme_Extend Gr_Ext Hex_Digit Hex IDS_Binary_Operator IDSB IDS_Trinary_Operator IDST ID_Continue IDC ID_Start IDS Ideographic Ideo Join_Control Join_C Logical_Order_Exception LOE Lowercase Lower Math Noncharacter_Code_Point NChar Pattern_Syntax Pat_Syn Pattern_White_Space Pat_WS Quotation_Mark QMark Radical Regional_Indicator RI Sentence_Terminal STerm Soft_Dotted SD Terminal_Punctuation Term Unified_Ideograph UIdeo Uppercase Upper Variation_Selector VS White_Space space XID_Continue XIDC XID_Start XIDS"

	binaryPropertiesOfStrings = "Basic_Emoji Emoji_Keycap_Sequence RGI_Emoji_Modifier_Sequence RGI_Emoji_Flag_Sequence RGI_Emoji_Tag_Sequence RGI_Emoji_ZWJ_Sequence RGI_Emoji"

	generalCategoryValues = "Cased_Letter LC Close_Punctuation Pe Connector_Punctuation Pc Control Cc cntrl Currency_Symbol Sc Dash_Punctuation Pd Decimal_Number Nd digit Enclosing_Mark Me Final_Punctuation Pf Format Cf Initial_Punctuation Pi Letter L Letter_Number Nl Line_Separator Zl Lowercase_Letter Ll Mark M Combining_Mark Math_Symbol Sm Modifier_Letter Lm Modifier_Symbol Sk Nonspacing_Mark Mn Number N Open_Punctuation Ps Other C Other_Letter Lo Other_Number No Other_Punctuation Po Other_Symbol So Paragraph_Separator Zp Private_Use Co Punctuation P punct Separator Z Space_Separator Zs Spacing_Mark Mc Surrogate Cs Symbol S Titlecase_Letter Lt Unassigned Cn Uppercase_Letter Lu"

	ecma9ScriptValues = "Adlam Adlm Ahom Anatolian_Hieroglyphs Hluw Arabic Arab Armenian Armn Avestan Avst Balinese Bali Bamum Bamu Bassa_Vah Bass Batak Batk Bengali Beng Bhaiksuki Bhks Bopomofo Bopo Brahmi Brah Braille Brai Buginese Bugi Buhid Buhd Canadian_Aboriginal Cans Carian Cari Caucasian_Albanian Aghb Chakma Cakm Cham Cham Cherokee Cher Common Zyyy Coptic Copt Qaac Cuneiform Xsux Cypriot Cprt Cyrillic Cyrl Deseret Dsrt Devanagari Deva Duployan Dupl Egyptian_Hieroglyphs Egyp Elbasan Elba Ethiopic Ethi Georgian Geor Glagolitic Glag Gothic Goth Grantha Gran Greek Grek Gujarati Gujr Gurmukhi Guru Han Hani Hangul Hang Hanunoo Hano Hatran Hatr Hebrew Hebr Hiragana Hira Imperial_Aramaic Armi Inherited Zinh Qaai Inscriptional_Pahlavi Phli Inscriptional_Parthian Prti Javanese Java Kaithi Kthi Kannada Knda Katakana Kana Kayah_Li Kali Kharoshthi Khar Khmer Khmr Khojki Khoj Khudawadi Sind Lao Laoo Latin Latn Lepcha Lepc Limbu Limb Linear_A Lina Linear_B Linb Lisu Lisu Lycian Lyci Lydian Lydi Mahajani Mahj Malayalam Mlym Mandaic Mand Manichaean Mani Marchen Marc Masaram_Gondi Gonm Meetei_Mayek Mtei Mende_Kikakui Mend Meroitic_Cursive Merc Meroitic_Hieroglyphs Mero Miao Plrd Modi Mongolian Mong Mro Mroo Multani Mult Myanmar Mymr Nabataean Nbat New_Tai_Lue Talu Newa Newa Nko Nkoo Nushu Nshu Ogham Ogam Ol_Chiki Olck Old_Hungarian Hung Old_Italic Ital Old_North_Arabian Narb Old_Permic Perm Old_Persian Xpeo Old_South_Arabian Sarb Old_Turkic Orkh Oriya Orya Osage Osge Osmanya Osma Pahawh_Hmong Hmng Palmyrene Palm Pau_Cin_Hau Pauc Phags_Pa Phag Phoenician Phnx Psalter_Pahlavi Phlp Rejang Rjng Runic Runr Samaritan Samr Saurashtra Saur Sharada Shrd Shavian Shaw Siddham Sidd SignWriting Sgnw Sinhala Sinh Sora_Sompeng Sora Soyombo Soyo Sundanese Sund Syloti_Nagri Sylo Syriac Syrc Tagalog Tglg Tagbanwa Tagb Tai_Le Tale Tai_Tham Lana Tai_Viet Tavt Takri Takr Tamil Taml Tangut Tang Telugu Telu Thaana Thaa Thai Thai Tibetan Tibt Tifinagh Tfng Tirhuta Tirh Ugaritic Ugar Vai Vaii Warang_Citi Wara Yi Yiii Zanabazar_Square Zanb"
	ecma10ScriptValues = ecma9ScriptValues + " Dogra Dogr Gunjala_Gondi Gong Hanifi_Rohingya Rohg Makasar Maka Medefaidrin Medf Old_Sogdian Sogo Sogdian Sogd"
	ecma11ScriptValues = ecma10ScriptValues + " Elymaic Elym Nandinagari Nand Nyiakeng_Puachue_Hmong Hmnp Wancho Wcho"
	ecma12ScriptValues = ecma11ScriptValues + " Chorasmian Chrs Diak Dives_Akuru Khitan_Small_Script Kits Yezi Yezidi"
	ecma13ScriptValues = ecma12ScriptValues + " Cypro_Minoan Cpmn Old_Uyghur Ougr Tangsa Tnsa Toto Vithkuqi Vith"
	ecma14ScriptValues = ecma13ScriptValues + " Gara Garay Gukh Gurung_Khema Hrkt Katakana_Or_Hiragana Kawi Kirat_Rai Krai Nag_Mundari Nagm Ol_Onal Onao Sunu Sunuwar Todhri Todr Tulu_Tigalari Tutg Unknown Zzzz"
)

type wordSet map[string]struct{}

func words(s string) wordSet {
	set := wordSet{}
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

// propertyData lists the \p{...} names and values a language version knows.
type propertyData struct {
	binary          wordSet
	binaryOfStrings wordSet
	nonBinary       map[string]wordSet
}

var (
	propertyOnce  sync.Once
	propertyTable map[int]*propertyData
)

func buildProperties() {
	binary := map[int]string{9: ecma9BinaryProperties}
	binary[10] = binary[9] + " Extended_Pictographic"
	binary[11] = binary[10]
	binary[12] = binary[11] + " EBase EComp EMod EPres ExtPict"
	binary[13] = binary[12]
	binary[14] = binary[13]

	scripts := map[int]string{
		9:  ecma9ScriptValues,
		10: ecma10ScriptValues,
		11: ecma11ScriptValues,
		12: ecma12ScriptValues,
		13: ecma13ScriptValues,
		14: ecma14ScriptValues,
	}

	propertyTable = map[int]*propertyData{}
	for v := 9; v <= 14; v++ {
		gc := words(generalCategoryValues)
		sc := words(scripts[v])
		d := &propertyData{
			binary:          words(binary[v] + " " + generalCategoryValues),
			binaryOfStrings: wordSet{},
			nonBinary: map[string]wordSet{
				"General_Category":  gc,
				"gc":                gc,
				"Script":            sc,
				"sc":                sc,
				"Script_Extensions": sc,
				"scx":               sc,
			},
		}
		if v >= 14 {
			d.binaryOfStrings = words(binaryPropertiesOfStrings)
		}
		propertyTable[v] = d
	}
}

func propertiesFor(ecmaVersion int) *propertyData {
	propertyOnce.Do(buildProperties)
	switch {
	case ecmaVersion >= 14:
		return propertyTable[14]
	case ecmaVersion < 9:
		return propertyTable[9]
	}
	return propertyTable[ecmaVersion]
}

func (v *Validator) eatUnicodePropertyValueExpression() charset {
	start := v.pos

	if v.eatUnicodePropertyName() && v.eat('=') {
		name := v.lastStringValue
		if v.eatUnicodePropertyValue() {
			value := v.lastStringValue
			values, ok := v.props.nonBinary[name]
			if !ok {
				v.raise("Invalid property name")
			}
			if !values.has(value) {
				v.raise("Invalid property value")
			}
			return charsetOk
		}
	}
	v.pos = start

	if v.eatUnicodePropertyValue() {
		nameOrValue := v.lastStringValue
		if v.props.binary.has(nameOrValue) {
			return charsetOk
		}
		if v.switchV && v.props.binaryOfStrings.has(nameOrValue) {
			return charsetString
		}
		v.raise("Invalid property name")
	}
	return charsetNone
}

func isUnicodePropertyNameCharacter(ch int) bool {
	return isControlLetter(ch) || ch == '_'
}

func (v *Validator) eatUnicodePropertyName() bool {
	var b strings.Builder
	for ch := v.current(); isUnicodePropertyNameCharacter(ch); ch = v.current() {
		b.WriteByte(byte(ch))
		v.advance()
	}
	v.lastStringValue = b.String()
	return v.lastStringValue != ""
}

func (v *Validator) eatUnicodePropertyValue() bool {
	var b strings.Builder
	for ch := v.current(); isUnicodePropertyNameCharacter(ch) || isDecimalDigit(ch); ch = v.current() {
		b.WriteByte(byte(ch))
		v.advance()
	}
	v.lastStringValue = b.String()
	return v.lastStringValue != ""
}
