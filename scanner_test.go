package sequence

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromScannerWords(t *testing.T) {
	assert := assert.New(t)

	sc := bufio.NewScanner(strings.NewReader("alpha beta gamma"))
	sc.Split(bufio.ScanWords)

	s := FromScanner(sc)
	assert.Equal([]string{"alpha", "beta", "gamma"}, Collect(s))

	// the tokens were cached; the exhausted scanner is not re-scanned
	assert.Equal([]string{"alpha", "beta", "gamma"}, Collect(s))
	assert.NoError(sc.Err())
}

func TestFromScannerLines(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("one\ntwo\nthree\n"))

	got := Collect(Map(FromScanner(sc), strings.ToUpper))
	assert.Equal(t, []string{"ONE", "TWO", "THREE"}, got)
}

func TestFromScannerEmptyInput(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader(""))
	assert.True(t, FromScanner(sc).IsEmpty())
}

// fakeScanner counts Scan calls to verify on-demand tokenization
type fakeScanner struct {
	tokens []string
	pos    int
	scans  int
}

func (f *fakeScanner) Scan() bool {
	f.scans++
	if f.pos >= len(f.tokens) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeScanner) Text() string {
	return f.tokens[f.pos-1]
}

func TestFromScannerScansOnDemand(t *testing.T) {
	assert := assert.New(t)

	fake := &fakeScanner{tokens: []string{"a", "b", "c", "d"}}
	s := FromScanner(fake)

	assert.Zero(fake.scans)
	assert.Equal([]string{"a", "b"}, Take(s, 2))
	assert.Equal(2, fake.scans)
}
