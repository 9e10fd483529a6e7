package shape

import "github.com/go-text/typesetting/language"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
	// DirectionBTT is bottom-to-top text (rare)
	DirectionBTT
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	case DirectionBTT:
		return "BTT"
	default:
		return unknownStr
	}
}

// IsHorizontal returns true if the direction is horizontal (LTR or RTL).
func (d Direction) IsHorizontal() bool {
	return d == DirectionLTR || d == DirectionRTL
}

// IsVertical returns true if the direction is vertical (TTB or BTT).
func (d Direction) IsVertical() bool {
	return d == DirectionTTB || d == DirectionBTT
}

// Script identifies a Unicode script as a packed ISO 15924 tag, the
// representation the shaping library uses.
type Script uint32

// ScriptInvalid asks the shaper to detect the script from the text.
const ScriptInvalid Script = 0

// Common scripts, converted from the shaping library's script table.
const (
	ScriptCommon    = Script(language.Common)
	ScriptInherited = Script(language.Inherited)
	ScriptUnknown   = Script(language.Unknown)

	ScriptLatin      = Script(language.Latin)
	ScriptCyrillic   = Script(language.Cyrillic)
	ScriptGreek      = Script(language.Greek)
	ScriptArabic     = Script(language.Arabic)
	ScriptHebrew     = Script(language.Hebrew)
	ScriptHan        = Script(language.Han)
	ScriptHiragana   = Script(language.Hiragana)
	ScriptKatakana   = Script(language.Katakana)
	ScriptHangul     = Script(language.Hangul)
	ScriptDevanagari = Script(language.Devanagari)
	ScriptThai       = Script(language.Thai)
)

// String returns the four-letter ISO 15924 tag ("Latn", "Arab", ...).
func (s Script) String() string {
	if s == ScriptInvalid {
		return "Invalid"
	}
	return string([]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)})
}

// DetectScript returns the script of r.
func DetectScript(r rune) Script {
	return Script(language.LookupScript(r))
}
