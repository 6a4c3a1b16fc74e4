package ot

// Feature tags used by the shaping engines.
//
// See https://learn.microsoft.com/en-us/typography/opentype/spec/featuretags
var (
	FeatRvrn = T("rvrn") // required variation alternates
	FeatLtra = T("ltra") // left-to-right alternates
	FeatLtrm = T("ltrm") // left-to-right mirrored forms
	FeatRtla = T("rtla") // right-to-left alternates
	FeatRtlm = T("rtlm") // right-to-left mirrored forms
	FeatCcmp = T("ccmp") // glyph composition/decomposition
	FeatLocl = T("locl") // localized forms
	FeatRlig = T("rlig") // required ligatures
	FeatMark = T("mark") // mark positioning
	FeatMkmk = T("mkmk") // mark-to-mark positioning
	FeatCalt = T("calt") // contextual alternates
	FeatClig = T("clig") // contextual ligatures
	FeatLiga = T("liga") // standard ligatures
	FeatRclt = T("rclt") // required contextual alternates
	FeatCurs = T("curs") // cursive positioning
	FeatKern = T("kern") // kerning
	FeatVkrn = T("vkrn") // vertical kerning
	FeatVert = T("vert") // vertical writing
	FeatFrac = T("frac") // fractions
	FeatNumr = T("numr") // numerators
	FeatDnom = T("dnom") // denominators
	FeatIsol = T("isol") // isolated forms
	FeatFina = T("fina") // terminal forms
	FeatFin2 = T("fin2") // terminal forms #2
	FeatFin3 = T("fin3") // terminal forms #3
	FeatMedi = T("medi") // medial forms
	FeatMed2 = T("med2") // medial forms #2
	FeatInit = T("init") // initial forms
	FeatMset = T("mset") // mark positioning via substitution
	FeatLjmo = T("ljmo") // leading jamo forms
	FeatVjmo = T("vjmo") // vowel jamo forms
	FeatTjmo = T("tjmo") // trailing jamo forms
)
