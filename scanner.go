package sequence

// Scanner is the subset of the methods exposed by bufio.Scanner that
// FromScanner needs, and is an interface primarily to assist with unit
// testing.
type Scanner interface {
	Scan() bool
	Text() string
}

// FromScanner returns a lazy sequence of the tokens -- words, lines or
// runes depending on the scanner's split function -- produced by s.
//
// Tokens are scanned one at a time as positions are forced, and cached,
// so the sequence is restartable even though the scanner is not.  The
// sequence ends at the first Scan failure; inspect the scanner's Err
// afterwards to tell end-of-input from a read error.
func FromScanner(s Scanner) Seq[string] {
	return Lazy(func() *Cell[string] {
		if !s.Scan() {
			return nil
		}
		return &Cell[string]{Value: s.Text(), Rest: FromScanner(s)}
	})
}
