package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeCodes(t *testing.T) {
	got := DedupeCodes([]any{" 100 ", "200", "", "100", nil, "  ", float64(300), "abc", "ABC", "200"})
	assert.Equal(t, []string{"100", "200", "300", "abc", "ABC"}, got)
}

func TestDedupeCodes_Empty(t *testing.T) {
	assert.Empty(t, DedupeCodes(nil))
	assert.Empty(t, DedupeCodes(Strings([]string{"", " "})))
}

func TestParseGeneration(t *testing.T) {
	g, ok := ParseGeneration("legacy")
	assert.True(t, ok)
	assert.Equal(t, Legacy, g)

	_, ok = ParseGeneration("mongo")
	assert.False(t, ok)
}

func TestUnmappableError(t *testing.T) {
	var err error = &UnmappableError{Generation: Partitioned, Key: Key{CD: "AV46", Code: "1"}}
	ue, ok := AsUnmappable(err)
	assert.True(t, ok)
	assert.Equal(t, "1", ue.Key.Code)
	assert.Equal(t, CodeUnmappable, err.Error())
}
