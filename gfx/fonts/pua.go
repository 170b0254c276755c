package fonts

// Strings with Unicode Private Use Area characters for UI sprites. Only Bold
// carries these glyphs; other fonts draw the replacement glyph.
const (
	Battery05       = "\ue700"
	Battery25       = "\ue701"
	Battery50       = "\ue702"
	Battery75       = "\ue703"
	Battery99       = "\ue704"
	Radio3          = "\ue705"
	Radio2          = "\ue706"
	Radio1          = "\ue707"
	Radio0          = "\ue708"
	RadioOff        = "\ue709"
	ShiftArrow      = "\ue70a"
	BackspaceSymbol = "\ue70b"
	EnterSymbol     = "\ue70c"
)

// Sprites sit on the same baseline as capital letters (row 24).
const spriteBaseline = 24

type sprite struct {
	r rune
	p Pattern
}

func batterySprite(pct int) Pattern {
	const (
		w     = 26
		h     = 14
		body  = 24
		fillW = 18
	)
	n := fillW * pct / 100
	if n < 1 {
		n = 1
	}
	p := Pattern{W: w, YOffset: spriteBaseline - h, Rows: make([]uint32, h)}
	set := func(row, col int) { p.Rows[row] |= 1 << uint(w-1-col) }
	for row := 0; row < h; row++ {
		switch {
		case row < 2 || row >= h-2:
			for col := 0; col < body; col++ {
				set(row, col)
			}
		default:
			set(row, 0)
			set(row, 1)
			set(row, body-2)
			set(row, body-1)
			if row >= 3 && row < h-3 {
				for col := 3; col < 3+n; col++ {
					set(row, col)
				}
			}
		}
		if row >= 4 && row < h-4 {
			set(row, body)
			set(row, body+1)
		}
	}
	return p
}

// radioSprite draws four bars of rising height; bars above level are stubs.
// A negative level marks the radio as off.
func radioSprite(level int) Pattern {
	const (
		w = 20
		h = 14
	)
	p := Pattern{W: w, YOffset: spriteBaseline - h, Rows: make([]uint32, h)}
	set := func(row, col int) { p.Rows[row] |= 1 << uint(w-1-col) }
	for bar := 0; bar < 4; bar++ {
		top := h - 5 - bar*3
		if bar > level {
			top = h - 2
		}
		for row := top; row < h; row++ {
			for col := bar*5 + 2; col < bar*5+5; col++ {
				set(row, col)
			}
		}
	}
	if level < 0 {
		for i := 0; i < 5; i++ {
			set(i, i)
			set(i, 4-i)
		}
	}
	return p
}

var shiftArt = []string{
	"......##......",
	".....####.....",
	"....##..##....",
	"...##....##...",
	"..##......##..",
	".##........##.",
	"####......####",
	"...##....##...",
	"...##....##...",
	"...##....##...",
	"...##....##...",
	"...##....##...",
	"...##....##...",
	"...########...",
}

var backspaceArt = []string{
	"......################",
	".....##..............#",
	"....##...............#",
	"...##....##.....##...#",
	"..##......##...##....#",
	".##........##.##.....#",
	"##..........###......#",
	"##..........###......#",
	".##........##.##.....#",
	"..##......##...##....#",
	"...##....##.....##...#",
	"....##...............#",
	".....##..............#",
	"......################",
}

var enterArt = []string{
	"................##",
	"................##",
	"................##",
	"................##",
	".....#..........##",
	"....##..........##",
	"...###..........##",
	"..################",
	".#################",
	"..################",
	"...###............",
	"....##............",
	".....#............",
}

func mustArt(art []string) Pattern {
	p, err := ParsePattern(spriteBaseline-len(art), art...)
	if err != nil {
		panic(err)
	}
	return p
}

func puaSprites() []sprite {
	return []sprite{
		{0xe700, batterySprite(5)},
		{0xe701, batterySprite(25)},
		{0xe702, batterySprite(50)},
		{0xe703, batterySprite(75)},
		{0xe704, batterySprite(99)},
		{0xe705, radioSprite(3)},
		{0xe706, radioSprite(2)},
		{0xe707, radioSprite(1)},
		{0xe708, radioSprite(0)},
		{0xe709, radioSprite(-1)},
		{0xe70a, mustArt(shiftArt)},
		{0xe70b, mustArt(backspaceArt)},
		{0xe70c, mustArt(enterArt)},
	}
}
