package othangul

// SyllableClass is the role of a code-point in a Hangul syllable.
type SyllableClass uint8

// Syllable classes, in state table column order.
const (
	Other SyllableClass = iota // not Hangul
	L                          // leading consonant jamo
	V                          // vowel jamo
	T                          // trailing consonant jamo
	LV                         // precomposed syllable without trailing consonant
	LVT                        // precomposed syllable with trailing consonant
	M                          // tone mark
)

func (sc SyllableClass) String() string {
	return [...]string{"X", "L", "V", "T", "LV", "LVT", "M"}[sc]
}

// Jamo arithmetic as defined in chapter 3.12 of the Unicode standard.
const (
	sBase  = 0xAC00
	lBase  = 0x1100
	vBase  = 0x1161
	tBase  = 0x11A7
	lCount = 19
	vCount = 21
	tCount = 28
	nCount = vCount * tCount // 588
	sCount = lCount * nCount // 11172
)

const dottedCircle = '\u25CC'

// ClassOf returns the syllable class of cp.
func ClassOf(cp rune) SyllableClass {
	switch {
	case cp >= sBase && cp < sBase+sCount:
		if (cp-sBase)%tCount == 0 {
			return LV
		}
		return LVT
	case cp >= 0x1100 && cp <= 0x115F, cp >= 0xA960 && cp <= 0xA97C:
		return L
	case cp >= 0x1160 && cp <= 0x11A7, cp >= 0xD7B0 && cp <= 0xD7C6:
		return V
	case cp >= 0x11A8 && cp <= 0x11FF, cp >= 0xD7CB && cp <= 0xD7FB:
		return T
	case cp == 0x302E || cp == 0x302F:
		return M
	}
	return Other
}

// Only the modern jamo take part in composition.

func isCombiningL(cp rune) bool { return cp >= lBase && cp <= 0x1112 }
func isCombiningV(cp rune) bool { return cp >= vBase && cp <= 0x1175 }
func isCombiningT(cp rune) bool { return cp >= 0x11A8 && cp <= 0x11C2 }

// decompose splits a precomposed syllable into its jamo. t is 0 for LV syllables.
func decompose(s rune) (l, v, t rune) {
	idx := s - sBase
	l = lBase + idx/nCount
	v = vBase + (idx%nCount)/tCount
	if ti := idx % tCount; ti != 0 {
		t = tBase + ti
	}
	return
}

// compose computes the precomposed syllable for jamo l, v and an optional t
// (0 if absent). It returns false if any of the jamo does not combine.
func compose(l, v, t rune) (rune, bool) {
	if !isCombiningL(l) || !isCombiningV(v) || (t != 0 && !isCombiningT(t)) {
		return 0, false
	}
	s := sBase + ((l-lBase)*vCount+(v-vBase))*tCount
	if t != 0 {
		s += t - tBase
	}
	return s, true
}
