package memfont

import (
	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/font"
)

func pt(x float64) dimen.Dimen {
	return dimen.FromPoints(x)
}

type charData struct {
	code       font.Code
	w, h, d, i float64
}

func (f *Font) setChars(chars []charData) {
	for _, c := range chars {
		f.SetChar(c.code, pt(c.w), pt(c.h), pt(c.d), pt(c.i))
	}
}

func (f *Font) setChain(codes ...font.Code) {
	for i := 0; i+1 < len(codes); i++ {
		f.SetNextLarger(codes[i], codes[i+1])
	}
}

// Roman returns a 10pt text font with the metrics of some characters of
// cmr10, including the f-ligatures.
func Roman() *Font {
	f := NewFont("demo-roman10")
	f.setChars([]charData{
		{'(', 3.88891, 7.5, 2.5, 0}, {')', 3.88891, 7.5, 2.5, 0},
		{'[', 2.77779, 7.5, 2.5, 0}, {']', 2.77779, 7.5, 2.5, 0},
		{'+', 7.77781, 5.83334, 0.83334, 0}, {'=', 7.77781, 3.67, -1.33, 0},
		{',', 2.77779, 1.05556, 1.94444, 0}, {';', 2.77779, 4.30555, 1.94444, 0},
		{'^', 5.00002, 6.94444, 0, 0},
		{'f', 3.05557, 6.94444, 0, 0.77779},
		{'g', 5.00002, 4.30555, 1.94444, 0.13889},
		{'i', 2.77779, 6.69444, 0, 0}, {'l', 2.77779, 6.94444, 0, 0},
		{'n', 5.55557, 4.30555, 0, 0}, {'o', 5.00002, 4.30555, 0, 0},
		{'s', 3.94445, 4.30555, 0, 0},
		{0x0B, 5.83336, 6.94444, 0, 0.77779}, // ff
		{0x0C, 5.55557, 6.94444, 0, 0},       // fi
		{0x0D, 5.55557, 6.94444, 0, 0},       // fl
	})
	for c := font.Code('0'); c <= '9'; c++ {
		f.SetChar(c, pt(5.00002), pt(6.44444), 0, 0)
	}
	f.SetLigKern('f',
		font.LigKern{Next: 'i', Op: font.LigReplace, Remainder: 0x0C},
		font.LigKern{Next: 'f', Op: font.LigReplace, Remainder: 0x0B},
		font.LigKern{Next: 'l', Op: font.LigReplace, Remainder: 0x0D},
		font.LigKern{Next: ')', IsKern: true, Kern: pt(0.77779)},
	)
	f.SetParams(font.Params{
		Space:    pt(3.33334),
		XHeight:  pt(4.30555),
		Quad:     pt(10.00002),
		SkewChar: font.NoSkewChar,
	})
	return f
}

// Italic returns a 10pt math italic font with the metrics of some letters
// of cmmi10. Its skew character is "7F.
func Italic() *Font {
	f := NewFont("demo-italic10")
	f.setChars([]charData{
		{'a', 5.28588, 4.30555, 0, 0}, {'b', 4.29166, 6.94444, 0, 0},
		{'f', 4.89935, 6.94444, 1.94444, 1.0764}, {'i', 3.44674, 6.5952, 0, 0},
		{'n', 6.00242, 4.30555, 0, 0}, {'x', 5.71527, 4.30555, 0, 0},
		{'y', 4.90279, 4.30555, 1.94444, 0.35878}, {'V', 5.83336, 6.83332, 0, 2.22224},
		{0x3B, 2.77779, 1.05556, 1.94444, 0}, // comma
		{0x7F, 5.00002, 6.94444, 0, 0},       // tie accent, the skew character
	})
	for _, sk := range []struct {
		c    font.Code
		kern float64
	}{{'a', 0.27779}, {'f', 0.83334}, {'i', 0.27779}, {'n', 0.27779},
		{'x', 0.27779}, {'y', 0.55556}, {'V', 0.83334}} {
		f.SetLigKern(sk.c, font.LigKern{Next: 0x7F, IsKern: true, Kern: pt(sk.kern)})
	}
	f.SetParams(font.Params{
		Slant:    dimen.PT / 4,
		XHeight:  pt(4.30555),
		Quad:     pt(10.00002),
		SkewChar: 0x7F,
	})
	return f
}

// Symbols returns a 10pt math symbol font with the parameters and some
// characters of cmsy10.
func Symbols() *Font {
	f := NewFont("demo-symbols10")
	f.setChars([]charData{
		{0x00, 7.77781, 5.83334, 0.83334, 0}, // minus
		{0x06, 7.77781, 5.83334, 0.83334, 0}, // plus-minus
		{0x14, 7.77781, 6.36, 1.36, 0},       // less-or-equal
		{0x30, 2.75, 5.6, 0, 0},              // prime
		{0x31, 10.00002, 4.30555, 0, 0},      // infinity
		{0x66, 5.00002, 7.5, 2.5, 0},         // left brace
		{0x67, 5.00002, 7.5, 2.5, 0},         // right brace
		{0x68, 3.88891, 7.5, 2.5, 0},         // left angle
		{0x69, 3.88891, 7.5, 2.5, 0},         // right angle
		{0x6A, 2.77779, 7.5, 2.5, 0},         // vertical bar
		{0x70, 8.33336, 0.4, 9.6, 0},         // radical sign
	})
	f.SetParams(font.Params{
		XHeight:  pt(4.30555),
		Quad:     pt(10.00002),
		SkewChar: 0x30,
		Sy: &font.SymbolParams{
			XHeight:    pt(4.30555),
			Quad:       pt(10.00002),
			Num1:       pt(6.76508),
			Num2:       pt(3.93732),
			Num3:       pt(4.43731),
			Denom1:     pt(6.85951),
			Denom2:     pt(3.44841),
			Sup1:       pt(4.12892),
			Sup2:       pt(3.62892),
			Sup3:       pt(2.88889),
			Sub1:       pt(1.5),
			Sub2:       pt(2.47217),
			SupDrop:    pt(3.86108),
			SubDrop:    pt(0.5),
			Delim1:     pt(23.9),
			Delim2:     pt(10.1),
			AxisHeight: pt(2.5),
		},
	})
	return f
}

// Extension returns a 10pt math extension font with the parameters and some
// characters of cmex10: parentheses, braces and the radical sign in four
// sizes plus extensible versions, summation and integral signs in text and
// display size, and a wide hat accent in three sizes.
func Extension() *Font {
	f := NewFont("demo-extension10")
	f.setChars([]charData{
		{0x00, 4.58336, 0.4, 11.6, 0}, {0x10, 5.97224, 0.4, 17.6, 0}, // (
		{0x12, 7.36115, 0.4, 23.6, 0}, {0x20, 7.91669, 0.4, 29.6, 0},
		{0x01, 4.58336, 0.4, 11.6, 0}, {0x11, 5.97224, 0.4, 17.6, 0}, // )
		{0x13, 7.36115, 0.4, 23.6, 0}, {0x21, 7.91669, 0.4, 29.6, 0},
		{0x30, 8.75003, 0.4, 17.6, 0}, {0x40, 8.75003, 0.4, 17.6, 0}, // paren pieces
		{0x42, 8.75003, 0, 6.0, 0},
		{0x31, 8.75003, 0.4, 17.6, 0}, {0x41, 8.75003, 0.4, 17.6, 0},
		{0x43, 8.75003, 0, 6.0, 0},
		{0x08, 5.83336, 0.4, 11.6, 0}, {0x1A, 6.66669, 0.4, 17.6, 0}, // {
		{0x28, 7.50002, 0.4, 23.6, 0}, {0x6E, 7.50002, 0.4, 29.6, 0},
		{0x09, 5.83336, 0.4, 11.6, 0}, {0x1B, 6.66669, 0.4, 17.6, 0}, // }
		{0x29, 7.50002, 0.4, 23.6, 0}, {0x6F, 7.50002, 0.4, 29.6, 0},
		{0x38, 8.88891, 0, 9.0, 0}, {0x3A, 8.88891, 0, 9.0, 0}, // brace pieces
		{0x39, 8.88891, 0, 9.0, 0}, {0x3B, 8.88891, 0, 9.0, 0},
		{0x3C, 8.88891, 0, 18.0, 0}, {0x3D, 8.88891, 0, 18.0, 0},
		{0x3E, 8.88891, 0, 3.0, 0},
		{0x70, 10.00002, 0.4, 11.6, 0}, {0x71, 10.00002, 0.4, 17.6, 0}, // radical
		{0x72, 10.00002, 0.4, 23.6, 0}, {0x73, 10.00002, 0.4, 29.6, 0},
		{0x74, 10.55557, 0, 18.0, 0}, {0x75, 10.55557, 0, 6.0, 0},
		{0x76, 10.55557, 0.4, 5.6, 0},
		{0x50, 10.55559, 0, 10.00002, 0}, {0x58, 14.44446, 0, 14.00003, 0}, // sum
		{0x52, 5.55557, 0, 11.11113, 1.38893}, {0x5A, 5.55557, 0, 22.22226, 5.55557}, // integral
		{0x62, 5.55557, 7.22223, 0, 0}, {0x63, 10.00002, 7.5, 0, 0}, // wide hat
		{0x64, 14.44446, 7.5, 0, 0},
	})
	f.setChain(0x00, 0x10, 0x12, 0x20, 0x30)
	f.setChain(0x01, 0x11, 0x13, 0x21, 0x31)
	f.setChain(0x08, 0x1A, 0x28, 0x6E)
	f.setChain(0x09, 0x1B, 0x29, 0x6F)
	f.setChain(0x70, 0x71, 0x72, 0x73, 0x74)
	f.setChain(0x50, 0x58)
	f.setChain(0x52, 0x5A)
	f.setChain(0x62, 0x63, 0x64)
	f.SetExtensible(0x30, font.Recipe{Top: 0x30, Bot: 0x40, Rep: 0x42})
	f.SetExtensible(0x31, font.Recipe{Top: 0x31, Bot: 0x41, Rep: 0x43})
	f.SetExtensible(0x6E, font.Recipe{Top: 0x38, Mid: 0x3C, Bot: 0x3A, Rep: 0x3E})
	f.SetExtensible(0x6F, font.Recipe{Top: 0x39, Mid: 0x3D, Bot: 0x3B, Rep: 0x3E})
	f.SetExtensible(0x74, font.Recipe{Top: 0x76, Bot: 0x74, Rep: 0x75})
	f.SetParams(font.Params{
		XHeight:  pt(4.30555),
		Quad:     pt(10.00002),
		SkewChar: font.NoSkewChar,
		Ex: &font.ExtensionParams{
			DefaultRuleThickness: pt(0.4),
			BigOpSpacing1:        pt(1.11111),
			BigOpSpacing2:        pt(1.66666),
			BigOpSpacing3:        pt(2.0),
			BigOpSpacing4:        pt(6.0),
			BigOpSpacing5:        pt(1.0),
		},
	})
	return f
}

// Demo returns a font table with the fonts of plain TeX's math setup:
// family 0 roman, family 1 math italic, family 2 symbols, each at 10, 7 and
// 5pt, and family 3 extension at 10pt in all sizes.
func Demo() *font.Table {
	t := font.NewTable()
	for fam, f := range []*Font{Roman(), Italic(), Symbols()} {
		t.SetFamily(fam, font.TextSize, t.Register(f))
		t.SetFamily(fam, font.ScriptSize, t.Register(f.Scaled(f.Name+"@7pt", 7, 10)))
		t.SetFamily(fam, font.ScriptScriptSize, t.Register(f.Scaled(f.Name+"@5pt", 5, 10)))
	}
	ex := t.Register(Extension())
	for s := font.TextSize; s <= font.ScriptScriptSize; s++ {
		t.SetFamily(3, s, ex)
	}
	tracer().Debugf("demo font table set up")
	return t
}
