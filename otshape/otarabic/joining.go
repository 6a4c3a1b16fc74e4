package otarabic

import (
	"unicode"

	ucd "github.com/benoitkugler/textlayout/unicodedata"
)

// JoiningClass is the joining behaviour of a code-point, as far as the joining
// state machine is concerned.
type JoiningClass int8

// Joining classes. The values of the non-transparent classes are the column
// indices of the state table.
const (
	Transparent  JoiningClass = iota - 1 // marks, skipped by the state machine
	NonJoining                           // U
	LeftJoining                          // L
	RightJoining                         // R
	DualJoining                          // D, and join-causing C
	Alaph                                // Syriac Alaph
	DalathRish                           // Syriac Dalath and Rish
)

const numClasses = 6

func (jc JoiningClass) String() string {
	switch jc {
	case Transparent:
		return "T"
	case NonJoining:
		return "U"
	case LeftJoining:
		return "L"
	case RightJoining:
		return "R"
	case DualJoining:
		return "D"
	case Alaph:
		return "Alaph"
	case DalathRish:
		return "DalathRish"
	}
	return "?"
}

// JoiningClassOf returns the joining class of cp.
//
// Code-points not listed in the Unicode joining data are transparent if they
// are non-spacing marks, enclosing marks or format characters, and
// non-joining otherwise.
func JoiningClassOf(cp rune) JoiningClass {
	if jt, ok := ucd.ArabicJoinings[cp]; ok {
		switch jt {
		case ucd.U:
			return NonJoining
		case ucd.L:
			return LeftJoining
		case ucd.R:
			return RightJoining
		case ucd.D, ucd.C:
			return DualJoining
		case ucd.Alaph:
			return Alaph
		case ucd.DalathRish:
			return DalathRish
		case ucd.T:
			return Transparent
		}
	}
	if unicode.In(cp, unicode.Mn, unicode.Me, unicode.Cf) {
		return Transparent
	}
	return NonJoining
}
