package main

// Code points 0x80-0xFF are drawn from rules rather than stored: shades,
// box drawing and blocks are generated, accented letters reuse the base
// letter with a mark added, and anything else gets the hollow placeholder.

type boxArm uint8

const (
	armNone boxArm = iota
	armSingle
	armDouble
)

// boxArms lists up, down, left, right for 0xB3-0xDA.
var boxArms = [...][4]boxArm{
	{1, 1, 0, 0}, // B3
	{1, 1, 1, 0}, // B4
	{1, 1, 2, 0}, // B5
	{2, 2, 1, 0}, // B6
	{0, 2, 1, 0}, // B7
	{0, 1, 2, 0}, // B8
	{2, 2, 2, 0}, // B9
	{2, 2, 0, 0}, // BA
	{0, 2, 2, 0}, // BB
	{2, 0, 2, 0}, // BC
	{2, 0, 1, 0}, // BD
	{1, 0, 2, 0}, // BE
	{0, 1, 1, 0}, // BF
	{1, 0, 0, 1}, // C0
	{1, 0, 1, 1}, // C1
	{0, 1, 1, 1}, // C2
	{1, 1, 0, 1}, // C3
	{0, 0, 1, 1}, // C4
	{1, 1, 1, 1}, // C5
	{1, 1, 0, 2}, // C6
	{2, 2, 0, 1}, // C7
	{2, 0, 0, 2}, // C8
	{0, 2, 0, 2}, // C9
	{2, 0, 2, 2}, // CA
	{0, 2, 2, 2}, // CB
	{2, 2, 0, 2}, // CC
	{0, 0, 2, 2}, // CD
	{2, 2, 2, 2}, // CE
	{1, 0, 2, 2}, // CF
	{2, 0, 1, 1}, // D0
	{0, 1, 2, 2}, // D1
	{0, 2, 1, 1}, // D2
	{2, 0, 0, 1}, // D3
	{1, 0, 0, 2}, // D4
	{0, 1, 0, 2}, // D5
	{0, 2, 0, 1}, // D6
	{2, 2, 1, 1}, // D7
	{1, 1, 2, 2}, // D8
	{1, 0, 1, 0}, // D9
	{0, 1, 0, 1}, // DA
}

const (
	boxVSingle   = 0x18
	boxVDouble   = 0x24
	boxLeftHalf  = 0xF8
	boxRightHalf = 0x1F
	boxMidRow    = 7
)

func boxGlyph(arms [4]boxArm) []byte {
	g := make([]byte, 16)
	vert := func(a boxArm, from, to int) {
		m := byte(boxVSingle)
		if a == armDouble {
			m = boxVDouble
		}
		for r := from; r <= to; r++ {
			g[r] |= m
		}
	}
	if arms[0] != armNone {
		vert(arms[0], 0, boxMidRow+1)
	}
	if arms[1] != armNone {
		vert(arms[1], boxMidRow, 15)
	}
	horiz := func(a boxArm, mask byte) {
		if a == armDouble {
			g[boxMidRow-1] |= mask
			g[boxMidRow+1] |= mask
			return
		}
		g[boxMidRow] |= mask
	}
	if arms[2] != armNone {
		horiz(arms[2], boxLeftHalf)
	}
	if arms[3] != armNone {
		horiz(arms[3], boxRightHalf)
	}
	return g
}

func fillRows(from, to int, v byte) []byte {
	g := make([]byte, 16)
	for r := from; r < to; r++ {
		g[r] = v
	}
	return g
}

func shadeGlyph(even, odd byte) []byte {
	g := make([]byte, 16)
	for r := range g {
		if r%2 == 0 {
			g[r] = even
		} else {
			g[r] = odd
		}
	}
	return g
}

type accent uint8

const (
	accentAcute accent = iota
	accentGrave
	accentCircumflex
	accentDiaeresis
	accentRing
	accentTilde
	accentCedilla
)

var accentMarks = [...][2]byte{
	accentAcute:      {0x0C, 0x18},
	accentGrave:      {0x30, 0x18},
	accentCircumflex: {0x38, 0x6C},
	accentDiaeresis:  {0x00, 0x6C},
	accentRing:       {0x38, 0x38},
	accentTilde:      {0x76, 0xDC},
	accentCedilla:    {0x18, 0x70},
}

type accented struct {
	base byte
	mark accent
}

var cp437Accented = map[uint8]accented{
	0x80: {'C', accentCedilla},
	0x81: {'u', accentDiaeresis},
	0x82: {'e', accentAcute},
	0x83: {'a', accentCircumflex},
	0x84: {'a', accentDiaeresis},
	0x85: {'a', accentGrave},
	0x86: {'a', accentRing},
	0x87: {'c', accentCedilla},
	0x88: {'e', accentCircumflex},
	0x89: {'e', accentDiaeresis},
	0x8A: {'e', accentGrave},
	0x8B: {'i', accentDiaeresis},
	0x8C: {'i', accentCircumflex},
	0x8D: {'i', accentGrave},
	0x8E: {'A', accentDiaeresis},
	0x8F: {'A', accentRing},
	0x90: {'E', accentAcute},
	0x93: {'o', accentCircumflex},
	0x94: {'o', accentDiaeresis},
	0x95: {'o', accentGrave},
	0x96: {'u', accentCircumflex},
	0x97: {'u', accentGrave},
	0x98: {'y', accentDiaeresis},
	0x99: {'O', accentDiaeresis},
	0x9A: {'U', accentDiaeresis},
	0xA0: {'a', accentAcute},
	0xA1: {'i', accentAcute},
	0xA2: {'o', accentAcute},
	0xA3: {'u', accentAcute},
	0xA4: {'n', accentTilde},
	0xA5: {'N', accentTilde},
}

func accentedGlyph(a accented, base *Font) []byte {
	g := make([]byte, 16)
	copy(g, base.Glyph(a.base))
	mark := accentMarks[a.mark]
	switch {
	case a.mark == accentCedilla:
		g[12], g[13] = mark[0], mark[1]
	case a.base >= 'a':
		// Lowercase letters start at row 5; clear the dot on i.
		g[0], g[1], g[2], g[3], g[4] = 0, 0, mark[0], mark[1], 0
	default:
		g[0], g[1] = mark[0], mark[1]
	}
	return g
}

// symbolGlyphs are the few 0xE0-0xFF symbols common in DOS-era text.
var symbolGlyphs = map[uint8][16]byte{
	0xF0: {0, 0, 0, 0, 0x7E, 0, 0, 0x7E, 0, 0, 0x7E},
	0xF1: {0, 0, 0, 0x18, 0x18, 0x7E, 0x18, 0x18, 0, 0, 0x7E},
	0xF6: {0, 0, 0, 0, 0x18, 0, 0, 0x7E, 0, 0, 0x18},
	0xF8: {0, 0, 0x38, 0x6C, 0x38},
	0xF9: {0, 0, 0, 0, 0, 0, 0, 0x18, 0x18},
	0xFA: {0, 0, 0, 0, 0, 0, 0, 0x18},
	0xFD: {0, 0x70, 0xD8, 0x30, 0x60, 0xF8},
	0xFE: {0, 0, 0, 0, 0x7C, 0x7C, 0x7C, 0x7C, 0x7C, 0x7C, 0x7C},
	0xFF: {},
}

// placeholderGlyph is drawn for code points with no rule.
func placeholderGlyph() []byte {
	return fillRows(2, 14, 0x7E)
}

func upperGlyph(g uint8, base *Font) []byte {
	switch {
	case g == 0xB0:
		return shadeGlyph(0x22, 0x88)
	case g == 0xB1:
		return shadeGlyph(0x55, 0xAA)
	case g == 0xB2:
		return shadeGlyph(0xDD, 0x77)
	case g >= 0xB3 && g <= 0xDA:
		return boxGlyph(boxArms[g-0xB3])
	case g == 0xDB:
		return fillRows(0, 16, 0xFF)
	case g == 0xDC:
		return fillRows(8, 16, 0xFF)
	case g == 0xDD:
		return fillRows(0, 16, 0xF0)
	case g == 0xDE:
		return fillRows(0, 16, 0x0F)
	case g == 0xDF:
		return fillRows(0, 8, 0xFF)
	}
	if a, ok := cp437Accented[g]; ok {
		return accentedGlyph(a, base)
	}
	if s, ok := symbolGlyphs[g]; ok {
		out := make([]byte, 16)
		copy(out, s[:])
		return out
	}
	return placeholderGlyph()
}
