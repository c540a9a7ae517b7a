package lexicon

// Entry is one lexicon line: a word and its phone string.
type Entry struct {
	Word   string
	Phones string
}

/*
Dictionary maps words to phone strings and remembers insertion order so
that every run over the same corpus writes byte identical files.
*/
type Dictionary struct {
	index   map[string]int
	entries []Entry
}

func NewDictionary() *Dictionary {
	return &Dictionary{index: make(map[string]int)}
}

// Add inserts word if it is not present yet. It reports whether it did.
func (d *Dictionary) Add(word, phones string) bool {
	if _, ok := d.index[word]; ok {
		return false
	}
	d.index[word] = len(d.entries)
	d.entries = append(d.entries, Entry{word, phones})
	return true
}

func (d *Dictionary) Has(word string) bool {
	_, ok := d.index[word]
	return ok
}

func (d *Dictionary) Lookup(word string) (string, bool) {
	i, ok := d.index[word]
	if !ok {
		return "", false
	}
	return d.entries[i].Phones, true
}

func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the entries in insertion order.
func (d *Dictionary) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}
