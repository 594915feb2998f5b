// Package alphabet provides letter-alphabet presets for non-ASCII generation.
//
// Each preset is a plain string of letters (no digits, no punctuation)
// suitable for the Alphabet configuration field. Presets can be combined by
// concatenation:
//
//	cfg := stringgen.Config{Alphabet: alphabet.Cyrillic + alphabet.Greek}
package alphabet

// ranges builds a string from half-open Unicode code-point ranges [lo, hi).
func ranges(pairs ...[2]rune) string {
	var rs []rune
	for _, p := range pairs {
		for c := p[0]; c < p[1]; c++ {
			rs = append(rs, c)
		}
	}
	return string(rs)
}

// ASCII is the default alphabet: the 52 ASCII letters.
const ASCII = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Cyrillic covers the Russian alphabet, lower and upper case.
const Cyrillic = "абвгдеёжзийклмнопрстуфхцчшщъыьэюяАБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

// Greek covers the modern Greek alphabet, lower and upper case.
const Greek = "αβγδεζηθικλμνξοπρσςτυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"

// LatinExtended is ASCII plus the Latin-1 accented letters.
const LatinExtended = ASCII +
	"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖØÙÚÛÜÝÞß" +
	"àáâãäåæçèéêëìíîïðñòóôõöøùúûüýþÿ"

var (
	// Hiragana covers the Japanese hiragana syllabary.
	Hiragana = ranges([2]rune{0x3041, 0x3097})

	// Katakana covers the Japanese katakana syllabary.
	Katakana = ranges([2]rune{0x30A1, 0x30FB})

	// CJK covers the CJK Unified Ideographs block.
	CJK = ranges([2]rune{0x4E00, 0xA000})

	// Hangul covers the precomposed Korean syllables.
	Hangul = ranges([2]rune{0xAC00, 0xD7A4})

	// Arabic covers the base Arabic letters.
	Arabic = ranges([2]rune{0x0621, 0x064B})

	// Devanagari covers the Devanagari letters used by Hindi and Sanskrit.
	Devanagari = ranges([2]rune{0x0904, 0x0970})

	// Thai covers the Thai consonants and vowels.
	Thai = ranges([2]rune{0x0E01, 0x0E3B})

	// Hebrew covers the Hebrew alphabet.
	Hebrew = ranges([2]rune{0x05D0, 0x05EB})

	// Bengali covers the Bengali letters.
	Bengali = ranges([2]rune{0x0985, 0x09B0}, [2]rune{0x09B6, 0x09BA})

	// Tamil covers the Tamil letters.
	Tamil = ranges(
		[2]rune{0x0B85, 0x0B8B},
		[2]rune{0x0B8E, 0x0B91},
		[2]rune{0x0B92, 0x0B96},
		[2]rune{0x0B99, 0x0B9B},
		[2]rune{0x0B9C, 0x0B9D},
		[2]rune{0x0B9E, 0x0BA0},
		[2]rune{0x0BA3, 0x0BA5},
		[2]rune{0x0BA8, 0x0BAB},
		[2]rune{0x0BAE, 0x0BBA},
	)

	// Telugu covers the Telugu letters.
	Telugu = ranges([2]rune{0x0C05, 0x0C3A})

	// Georgian covers the Mkhedruli and Asomtavruli letters.
	Georgian = ranges([2]rune{0x10A0, 0x10C6}, [2]rune{0x10D0, 0x10FB})

	// Armenian covers the Armenian alphabet, upper and lower case.
	Armenian = ranges([2]rune{0x0531, 0x0557}, [2]rune{0x0561, 0x0588})

	// Ethiopic covers the first Ge'ez syllable block.
	Ethiopic = ranges([2]rune{0x1200, 0x1249})

	// Myanmar covers the Myanmar consonants.
	Myanmar = ranges([2]rune{0x1000, 0x102B})

	// Sinhala covers the Sinhala letters.
	Sinhala = ranges([2]rune{0x0D85, 0x0D97}, [2]rune{0x0D9A, 0x0DC7})

	// Gujarati covers the Gujarati letters.
	Gujarati = ranges(
		[2]rune{0x0A85, 0x0A8E},
		[2]rune{0x0A8F, 0x0A92},
		[2]rune{0x0A93, 0x0AAA},
		[2]rune{0x0AAB, 0x0AB1},
		[2]rune{0x0AB2, 0x0AB4},
		[2]rune{0x0AB5, 0x0ABA},
	)

	// Punjabi covers the Gurmukhi letters.
	Punjabi = ranges(
		[2]rune{0x0A05, 0x0A0B},
		[2]rune{0x0A0F, 0x0A11},
		[2]rune{0x0A13, 0x0A29},
		[2]rune{0x0A2A, 0x0A31},
		[2]rune{0x0A32, 0x0A34},
		[2]rune{0x0A35, 0x0A37},
		[2]rune{0x0A38, 0x0A3A},
	)
)
