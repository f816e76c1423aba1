package kana

const (
	hiragana = "あいうえおかがきぎくぐけげこごさざしじすずせぜそぞただちぢつづてでとどなにぬねのはばぱひびぴふぶぷへべぺほぼぽまみむめもやゆよらりるれろわゐゑをんー"
	katakana = "アイウエオカガキギクグケゲコゴサザシジスズセゼソゾタダチヂツヅテデトドナニヌネノハバパヒビピフブプヘベペホボポマミムメモヤユヨラリルレロワヰヱヲンー"
	sutegana = "ァィゥェォャュョぁぃぅぇぉゃゅょ"
	sokuon   = "っッ"
)

var (
	baseSet     = runeSet(hiragana + katakana)
	suteganaSet = runeSet(sutegana)
	sokuonSet   = runeSet(sokuon)
)

// romaji maps kana, alone or followed by one sutegana, to its keystrokes.
var romaji = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "が": "ga", "き": "ki", "ぎ": "gi", "く": "ku",
	"ぐ": "gu", "け": "ke", "げ": "ge", "こ": "ko", "ご": "go",
	"さ": "sa", "ざ": "za", "し": "shi", "じ": "ji", "す": "su",
	"ず": "zu", "せ": "se", "ぜ": "ze", "そ": "so", "ぞ": "zo",
	"た": "ta", "だ": "da", "ち": "chi", "ぢ": "ji", "つ": "tsu",
	"づ": "du", "て": "te", "で": "de", "と": "to", "ど": "do",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ば": "ba", "ぱ": "pa", "ひ": "hi", "び": "bi",
	"ぴ": "pi", "ふ": "fu", "ぶ": "bu", "ぷ": "pu", "へ": "he",
	"べ": "be", "ぺ": "pe", "ほ": "ho", "ぼ": "bo", "ぽ": "po",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "ゐ": "wi", "ゑ": "we", "を": "wo", "ん": "nn",

	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",

	"ア": "a", "イ": "i", "ウ": "u", "エ": "e", "オ": "o",
	"カ": "ka", "ガ": "ga", "キ": "ki", "ギ": "gi", "ク": "ku",
	"グ": "gu", "ケ": "ke", "ゲ": "ge", "コ": "ko", "ゴ": "go",
	"サ": "sa", "ザ": "za", "シ": "shi", "ジ": "ji", "ス": "su",
	"ズ": "zu", "セ": "se", "ゼ": "ze", "ソ": "so", "ゾ": "zo",
	"タ": "ta", "ダ": "da", "チ": "chi", "ヂ": "ji", "ツ": "tsu",
	"ヅ": "du", "テ": "te", "デ": "de", "ト": "to", "ド": "do",
	"ナ": "na", "ニ": "ni", "ヌ": "nu", "ネ": "ne", "ノ": "no",
	"ハ": "ha", "バ": "ba", "パ": "pa", "ヒ": "hi", "ビ": "bi",
	"ピ": "pi", "フ": "fu", "ブ": "bu", "プ": "pu", "ヘ": "he",
	"ベ": "be", "ペ": "pe", "ホ": "ho", "ボ": "bo", "ポ": "po",
	"マ": "ma", "ミ": "mi", "ム": "mu", "メ": "me", "モ": "mo",
	"ヤ": "ya", "ユ": "yu", "ヨ": "yo",
	"ラ": "ra", "リ": "ri", "ル": "ru", "レ": "re", "ロ": "ro",
	"ワ": "wa", "ヰ": "wi", "ヱ": "we", "ヲ": "wo", "ン": "nn",
	"ー": "-",

	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho",
	"チャ": "cha", "チュ": "chu", "チョ": "cho",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",

	// Loanword digraphs.
	"ウェ": "we", "ジェ": "je", "チェ": "che",
	"フェ": "fe", "フィ": "fi", "ティ": "texi",
}

// Romanize returns the keystrokes for a single table key: one kana, or one
// kana followed by a sutegana.
func Romanize(key string) (string, bool) {
	typed, ok := romaji[key]
	return typed, ok
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s)/3)
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
