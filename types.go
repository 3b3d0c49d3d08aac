package roman

// Bounds of the representable range and of canonical spellings.
const (
	MinValue = 1
	MaxValue = 3999
	// MaxLen is the length of the longest canonical numeral (MMMDCCCLXXXVIII).
	MaxLen = 15
)

// Alphabet lists the symbols a numeral may contain, in descending value.
const Alphabet = "MDCLXVI"

// Pair is one entry of the numeral table: a symbol group and its value.
type Pair struct {
	Symbol string
	Value  int
}

// table is strictly descending by value. The subtractive entries keep every
// field at three repetitions or fewer of its unit symbol.
var table = [...]Pair{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// Table returns a copy of the numeral table used by the encoder.
func Table() []Pair {
	out := make([]Pair, len(table))
	copy(out, table[:])
	return out
}

// Fields is the validated decomposition of a numeral. Each field holds the
// decimal digit (0..9) it contributes; Thousands is at most 3.
type Fields struct {
	Thousands int
	Hundreds  int
	Tens      int
	Units     int
}

// Value sums the fields.
func (f Fields) Value() int {
	return f.Thousands*1000 + f.Hundreds*100 + f.Tens*10 + f.Units
}
