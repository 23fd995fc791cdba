package translit

// Virama is the Telugu vowel-suppression mark (్, U+0C4D).
const Virama = '్'

// Table maps Telugu code points to their IAST equivalents. It is built
// once, never mutated afterwards, and safe to share between callers.
type Table struct {
	vowels     map[rune]string // independent vowels
	consonants map[rune]string // bare consonant values, without inherent vowel
	matras     map[rune]string // dependent vowel signs
	signs      map[rune]string // anusvara, visarga, candrabindu, avagraha
	digits     map[rune]string
}

// Default builds the standard Telugu to IAST mapping table.
func Default() *Table {
	return &Table{
		vowels: map[rune]string{
			'అ': "a",
			'ఆ': "ā",
			'ఇ': "i",
			'ఈ': "ī",
			'ఉ': "u",
			'ఊ': "ū",
			'ఋ': "ṛ",
			'ౠ': "ṝ",
			'ఌ': "ḷ",
			'ౡ': "ḹ",
			'ఎ': "e",
			'ఏ': "ē",
			'ఐ': "ai",
			'ఒ': "o",
			'ఓ': "ō",
			'ఔ': "au",
		},
		consonants: map[rune]string{
			'క': "k",
			'ఖ': "kh",
			'గ': "g",
			'ఘ': "gh",
			'ఙ': "ṅ",
			'చ': "c",
			'ఛ': "ch",
			'జ': "j",
			'ఝ': "jh",
			'ఞ': "ñ",
			'ట': "ṭ",
			'ఠ': "ṭh",
			'డ': "ḍ",
			'ఢ': "ḍh",
			'ణ': "ṇ",
			'త': "t",
			'థ': "th",
			'ద': "d",
			'ధ': "dh",
			'న': "n",
			'ప': "p",
			'ఫ': "ph",
			'బ': "b",
			'భ': "bh",
			'మ': "m",
			'య': "y",
			'ర': "r",
			'ఱ': "ṟ",
			'ల': "l",
			'ళ': "ḷ",
			'ఴ': "ḻ",
			'వ': "v",
			'శ': "ś",
			'ష': "ṣ",
			'స': "s",
			'హ': "h",
		},
		matras: map[rune]string{
			'ా': "ā",  // ా
			'ి': "i",  // ి
			'ీ': "ī",  // ీ
			'ు': "u",  // ు
			'ూ': "ū",  // ూ
			'ృ': "ṛ",  // ృ
			'ౄ': "ṝ",  // ౄ
			'ె': "e",  // ె
			'ే': "ē",  // ే
			'ై': "ai", // ై
			'ొ': "o",  // ొ
			'ో': "ō",  // ో
			'ౌ': "au", // ౌ
			'ౢ': "ḷ",  // ౢ
			'ౣ': "ḹ",  // ౣ
		},
		signs: map[rune]string{
			'ఀ': "m̐", // combining candrabindu above
			'ఁ': "m̐", // ఁ candrabindu
			'ం': "ṃ",  // ం anusvara
			'ః': "ḥ",  // ః visarga
			'ఽ': "'",  // ఽ avagraha
		},
		digits: map[rune]string{
			'౦': "0",
			'౧': "1",
			'౨': "2",
			'౩': "3",
			'౪': "4",
			'౫': "5",
			'౬': "6",
			'౭': "7",
			'౮': "8",
			'౯': "9",
		},
	}
}
