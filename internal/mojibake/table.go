package mojibake

// Pair is one repair: every occurrence of Corrupted becomes Fixed.
type Pair struct {
	Corrupted string
	Fixed     string
}

// table is never mutated; callers get copies from Table.
var table = []Pair{
	// "Ã" of a second layer of corruption. Its output can start any letter
	// pair below, so it runs first.
	{"Ãƒ", "Ã"},

	// A Latin-1 symbol corrupted twice. Each pair strips the outer layer
	// and leaves a single-layer key for the "Â" group that follows.
	{"Ã‚Â\u00a0", "Â\u00a0"},
	{"Ã‚Â¡", "Â¡"},
	{"Ã‚Â¢", "Â¢"},
	{"Ã‚Â£", "Â£"},
	{"Ã‚Â¤", "Â¤"},
	{"Ã‚Â¥", "Â¥"},
	{"Ã‚Â¦", "Â¦"},
	{"Ã‚Â§", "Â§"},
	{"Ã‚Â¨", "Â¨"},
	{"Ã‚Â©", "Â©"},
	{"Ã‚Âª", "Âª"},
	{"Ã‚Â«", "Â«"},
	{"Ã‚Â¬", "Â¬"},
	{"Ã‚Â\u00ad", "Â\u00ad"},
	{"Ã‚Â®", "Â®"},
	{"Ã‚Â¯", "Â¯"},
	{"Ã‚Â°", "Â°"},
	{"Ã‚Â±", "Â±"},
	{"Ã‚Â²", "Â²"},
	{"Ã‚Â³", "Â³"},
	{"Ã‚Â´", "Â´"},
	{"Ã‚Âµ", "Âµ"},
	{"Ã‚Â¶", "Â¶"},
	{"Ã‚Â·", "Â·"},
	{"Ã‚Â¸", "Â¸"},
	{"Ã‚Â¹", "Â¹"},
	{"Ã‚Âº", "Âº"},
	{"Ã‚Â»", "Â»"},
	{"Ã‚Â¼", "Â¼"},
	{"Ã‚Â½", "Â½"},
	{"Ã‚Â¾", "Â¾"},
	{"Ã‚Â¿", "Â¿"},

	// Punctuation and the euro sign corrupted twice.
	{"Ã¢â‚¬â„¢", "â€™"},
	{"Ã¢â‚¬Ëœ", "â€˜"},
	{"Ã¢â‚¬Å“", "â€œ"},
	{"Ã¢â‚¬Â\u009d", "â€\u009d"},
	{"Ã¢â‚¬â€œ", "â€“"},
	{"Ã¢â‚¬â€\u009d", "â€”"},
	{"Ã¢â‚¬Â¦", "â€¦"},
	{"Ã¢â‚¬Â¢", "â€¢"},
	{"Ã¢â€šÂ¬", "â‚¬"},

	// Latin-1 symbols (U+00A0..U+00BF) behind a stray "Â". Runs before the
	// letter pairs so a double-encoded letter collapses in one pass.
	{"Â\u00a0", "\u00a0"},
	{"Â¡", "¡"},
	{"Â¢", "¢"},
	{"Â£", "£"},
	{"Â¤", "¤"},
	{"Â¥", "¥"},
	{"Â¦", "¦"},
	{"Â§", "§"},
	{"Â¨", "¨"},
	{"Â©", "©"},
	{"Âª", "ª"},
	{"Â«", "«"},
	{"Â¬", "¬"},
	{"Â\u00ad", "\u00ad"},
	{"Â®", "®"},
	{"Â¯", "¯"},
	{"Â°", "°"},
	{"Â±", "±"},
	{"Â²", "²"},
	{"Â³", "³"},
	{"Â´", "´"},
	{"Âµ", "µ"},
	{"Â¶", "¶"},
	{"Â·", "·"},
	{"Â¸", "¸"},
	{"Â¹", "¹"},
	{"Âº", "º"},
	{"Â»", "»"},
	{"Â¼", "¼"},
	{"Â½", "½"},
	{"Â¾", "¾"},
	{"Â¿", "¿"},

	// General punctuation (U+2000 block) and the euro sign.
	{"â€™", "’"},
	{"â€˜", "‘"},
	{"â€œ", "“"},
	{"â€\u009d", "”"},
	{"â€“", "–"},
	{"â€”", "—"},
	{"â€¦", "…"},
	{"â€¢", "•"},
	{"â‚¬", "€"},

	// Lowercase letters.
	{"Ã¢", "â"},
	{"Ã¡", "á"},
	{"Ã\u00a0", "à"},
	{"Ã£", "ã"},
	{"Ã¤", "ä"},
	{"Ã§", "ç"},
	{"Ã©", "é"},
	{"Ã¨", "è"},
	{"Ãª", "ê"},
	{"Ã«", "ë"},
	{"Ã\u00ad", "í"},
	{"Ã¬", "ì"},
	{"Ã®", "î"},
	{"Ã¯", "ï"},
	{"Ã±", "ñ"},
	{"Ã³", "ó"},
	{"Ã²", "ò"},
	{"Ã´", "ô"},
	{"Ãµ", "õ"},
	{"Ã¶", "ö"},
	{"Ãº", "ú"},
	{"Ã¹", "ù"},
	{"Ã»", "û"},
	{"Ã¼", "ü"},

	// Uppercase. 0x81 and 0x8D are unassigned in Windows-1252 and
	// survive as C1 controls.
	{"Ã\u0081", "Á"},
	{"Ã€", "À"},
	{"Ã‚", "Â"},
	{"Ã‡", "Ç"},
	{"Ã‰", "É"},
	{"ÃŠ", "Ê"},
	{"Ã\u008d", "Í"},
	{"Ã“", "Ó"},
	{"Ã”", "Ô"},
	{"Ã•", "Õ"},
	{"Ãš", "Ú"},
	{"Ã‘", "Ñ"},
	{"Ãœ", "Ü"},
}

// Table returns a copy of the repair table in application order.
func Table() []Pair {
	out := make([]Pair, len(table))
	copy(out, table)
	return out
}

// Len reports the number of pairs in the table.
func Len() int { return len(table) }
