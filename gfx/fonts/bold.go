package fonts

// boldMaxHeight matches Regular: emboldening only widens glyphs.
const boldMaxHeight = regularMaxHeight

// buildBold derives Bold from Regular and slots the UI sprites in just before
// the replacement glyph so every block stays in ascending order.
func buildBold() (*Font, error) {
	b := NewBuilder("Bold", boldMaxHeight)
	sprites := puaSprites()
	for _, r := range Regular.Runes() {
		if r == 0xfffd {
			for _, s := range sprites {
				if err := b.Add(s.r, s.p); err != nil {
					return nil, err
				}
			}
		}
		p := Embolden(PatternAt(Regular, Regular.GlyphOffset(r)))
		if err := b.Add(r, p); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func mustBuildBold() *Font {
	f, err := buildBold()
	if err != nil {
		panic(err)
	}
	return f
}
