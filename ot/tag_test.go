package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagRoundTrip(t *testing.T) {
	for _, s := range []string{"liga", "isol", "ljmo", "fin2", "OS/2"} {
		assert.Equal(t, s, T(s).String())
	}
}

func TestTagPadding(t *testing.T) {
	assert.Equal(t, "cvt ", T("cvt").String(), "short tags are padded with spaces")
	assert.Equal(t, "kern", T("kerning").String(), "long tags are cut")
	assert.Equal(t, T("mark"), MakeTag([]byte("mark")))
	assert.Equal(t, Tag(0), MakeTag(nil))
}

func TestTagEqualityIsBytewise(t *testing.T) {
	assert.NotEqual(t, T("fina"), T("fin2"))
	assert.Equal(t, FeatMed2, T("med2"))
	assert.Equal(t, Tag(0x6C696761), FeatLiga)
}
