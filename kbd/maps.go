package kbd

// MapSize is the number of key indexes in every map.
const MapSize = 54

var (
	nop    = Result{Kind: Nop}
	up     = Result{Kind: Up}
	left   = Result{Kind: Left}
	click  = Result{Kind: Click}
	right  = Result{Kind: Right}
	down   = Result{Kind: Down}
	f1     = Result{Kind: F1}
	f2     = Result{Kind: F2}
	f3     = Result{Kind: F3}
	f4     = Result{Kind: F4}
	bksp   = Result{Kind: Bksp}
	enter  = Result{Kind: Enter}
	altL   = Result{Kind: ModAltL}
	symbol = Result{Kind: Symbol}
	emoji  = Result{Kind: Emoji}
	altR   = Result{Kind: ModAltR}
	shift  = Result{Kind: ModShift}
)

// Key indexes follow the scan matrix: nav and function keys first, then the
// number row and the three letter rows left to right, then the bottom row.
// Comments give the matrix pin of each key.
var luts = [...][MapSize]Result{
	MapAzerty: {
		up,     // P2 Nav and function keys
		left,   // P5
		click,  // PC
		right,  // P6
		f1,     // P3
		shift,  // P4
		down,   // P9
		f3,     // P7
		f4,     // P8
		C('1'), // P13 Number row
		C('2'), // P14
		C('3'), // P15
		C('4'), // P16
		C('5'), // P17
		C('6'), // P18
		C('7'), // P19
		C('8'), // P20
		C('9'), // P21
		C('0'), // P22
		C('a'), // P23 Upper letter row
		C('z'), // P24
		C('e'), // P25
		C('r'), // P26
		C('t'), // P27
		C('y'), // P28
		C('u'), // P29
		C('i'), // P30
		C('o'), // P31
		C('p'), // P32
		C('q'), // P33 Home letter row
		C('s'), // P34
		C('d'), // P35
		C('f'), // P36
		C('g'), // P37
		C('h'), // P38
		C('j'), // P39
		C('k'), // P40
		C('l'), // P41
		C('m'), // P42
		nop,    // P43 Lower letter row
		C('w'), // P44
		C('x'), // P45
		C('c'), // P46
		C('v'), // P47
		C('b'), // P48
		C('n'), // P49
		C(':'), // P50
		C(';'), // P51
		nop,    // P52
		altL,   // P53 Bottom row
		C(','), // P54
		C(' '), // P55
		C('.'), // P56
		altR,   // P57
	},
	MapAzertyS: {
		up,     // P2 Nav and function keys
		left,   // P5
		click,  // PC
		right,  // P6
		f1,     // P3
		shift,  // P4
		down,   // P9
		f3,     // P7
		f4,     // P8
		C('1'), // P13 Number row
		C('2'), // P14
		C('3'), // P15
		C('4'), // P16
		C('5'), // P17
		C('6'), // P18
		C('7'), // P19
		C('8'), // P20
		C('9'), // P21
		C('0'), // P22
		C('A'), // P23 Upper letter row
		C('Z'), // P24
		C('E'), // P25
		C('R'), // P26
		C('T'), // P27
		C('Y'), // P28
		C('U'), // P29
		C('I'), // P30
		C('O'), // P31
		C('P'), // P32
		C('Q'), // P33 Home letter row
		C('S'), // P34
		C('D'), // P35
		C('F'), // P36
		C('G'), // P37
		C('H'), // P38
		C('J'), // P39
		C('K'), // P40
		C('L'), // P41
		C('M'), // P42
		nop,    // P43 Lower letter row
		C('W'), // P44
		C('X'), // P45
		C('C'), // P46
		C('V'), // P47
		C('B'), // P48
		C('N'), // P49
		C(':'), // P50
		C(';'), // P51
		nop,    // P52
		altL,   // P53 Bottom row
		C(','), // P54
		C(' '), // P55
		C('.'), // P56
		altR,   // P57
	},
	MapAzertyAltL: {
		up,      // P2 Nav and function keys
		left,    // P5
		click,   // PC
		right,   // P6
		f1,      // P3
		f2,      // P4
		down,    // P9
		f3,      // P7
		f4,      // P8
		C('§'),  // P13 Number row
		nop,     // P14
		nop,     // P15
		nop,     // P16
		C('['),  // P17
		C(']'),  // P18
		nop,     // P19
		C('_'),  // P20
		C('\''), // P21
		C('"'),  // P22
		nop,     // P23 Upper letter row
		nop,     // P24
		nop,     // P25
		nop,     // P26
		nop,     // P27
		nop,     // P28
		nop,     // P29
		nop,     // P30
		nop,     // P31
		nop,     // P32
		nop,     // P33 Home letter row
		nop,     // P34
		nop,     // P35
		nop,     // P36
		nop,     // P37
		nop,     // P38
		nop,     // P39
		C('/'),  // P40
		nop,     // P41
		nop,     // P42
		nop,     // P43 Lower letter row
		nop,     // P44
		nop,     // P45
		nop,     // P46
		nop,     // P47
		nop,     // P48
		nop,     // P49
		C('¿'),  // P50
		C('¡'),  // P51
		nop,     // P52
		altL,    // P53 Bottom row
		nop,     // P54
		C(' '),  // P55
		nop,     // P56
		altR,    // P57
	},
	MapAzertyAltR: {
		up,      // P2 Nav and function keys
		left,    // P5
		click,   // PC
		right,   // P6
		f1,      // P3
		shift,   // P4
		down,    // P9
		f3,      // P7
		f4,      // P8
		C('à'),  // P13 Number row
		C('é'),  // P14
		C('è'),  // P15
		C('ê'),  // P16
		C('('),  // P17
		C(')'),  // P18
		C('&'),  // P19
		C('*'),  // P20
		C('«'),  // P21
		C('»'),  // P22
		C('æ'),  // P23 Upper letter row
		C('£'),  // P24
		C('€'),  // P25
		C('`'),  // P26
		C('{'),  // P27
		C('}'),  // P28
		C('ù'),  // P29
		C('ï'),  // P30
		C('œ'),  // P31
		C('%'),  // P32
		C('@'),  // P33 Home letter row
		C('ß'),  // P34
		C('$'),  // P35
		C('¤'),  // P36
		C('µ'),  // P37
		C('-'),  // P38
		C('+'),  // P39
		C('\\'), // P40
		C('|'),  // P41
		C('#'),  // P42
		bksp,    // P43 Lower letter row
		C('<'),  // P44
		C('>'),  // P45
		C('ç'),  // P46
		C('^'),  // P47
		C('='),  // P48
		C('~'),  // P49
		C('?'),  // P50
		C('!'),  // P51
		enter,   // P52
		altL,    // P53 Bottom row
		symbol,  // P54
		C(' '),  // P55
		emoji,   // P56
		altR,    // P57
	},
	MapAzertyAltRS: {
		up,      // P2 Nav and function keys
		left,    // P5
		click,   // PC
		right,   // P6
		f1,      // P3
		shift,   // P4
		down,    // P9
		f3,      // P7
		f4,      // P8
		C('À'),  // P13 Number row
		C('É'),  // P14
		C('È'),  // P15
		C('Ê'),  // P16
		C('('),  // P17
		C(')'),  // P18
		C('&'),  // P19
		C('*'),  // P20
		C('«'),  // P21
		C('»'),  // P22
		C('Æ'),  // P23 Upper letter row
		C('£'),  // P24
		C('€'),  // P25
		C('`'),  // P26
		C('{'),  // P27
		C('}'),  // P28
		C('Ù'),  // P29
		C('Ï'),  // P30
		C('Œ'),  // P31
		C('%'),  // P32
		C('@'),  // P33 Home letter row
		C('ß'),  // P34
		C('$'),  // P35
		C('¤'),  // P36
		C('µ'),  // P37
		C('-'),  // P38
		C('+'),  // P39
		C('\\'), // P40
		C('|'),  // P41
		C('#'),  // P42
		bksp,    // P43 Lower letter row
		C('<'),  // P44
		C('>'),  // P45
		C('Ç'),  // P46
		C('^'),  // P47
		C('='),  // P48
		C('~'),  // P49
		C('?'),  // P50
		C('!'),  // P51
		enter,   // P52
		altL,    // P53 Bottom row
		symbol,  // P54
		C(' '),  // P55
		emoji,   // P56
		altR,    // P57
	},
	MapQwerty: {
		up,     // P2 Nav and function keys
		left,   // P5
		click,  // PC
		right,  // P6
		f1,     // P3
		shift,  // P4
		down,   // P9
		f3,     // P7
		f4,     // P8
		C('1'), // P13 Number row
		C('2'), // P14
		C('3'), // P15
		C('4'), // P16
		C('5'), // P17
		C('6'), // P18
		C('7'), // P19
		C('8'), // P20
		C('9'), // P21
		C('0'), // P22
		C('q'), // P23 Upper letter row
		C('w'), // P24
		C('e'), // P25
		C('r'), // P26
		C('t'), // P27
		C('y'), // P28
		C('u'), // P29
		C('i'), // P30
		C('o'), // P31
		C('p'), // P32
		C('a'), // P33 Home letter row
		C('s'), // P34
		C('d'), // P35
		C('f'), // P36
		C('g'), // P37
		C('h'), // P38
		C('j'), // P39
		C('k'), // P40
		C('l'), // P41
		bksp,   // P42
		C('!'), // P43 Lower letter row
		C('z'), // P44
		C('x'), // P45
		C('c'), // P46
		C('v'), // P47
		C('b'), // P48
		C('n'), // P49
		C('m'), // P50
		C('?'), // P51
		enter,  // P52
		altL,   // P53 Bottom row
		C(','), // P54
		C(' '), // P55
		C('.'), // P56
		altR,   // P57
	},
	MapQwertyS: {
		up,     // P2 Nav and function keys
		left,   // P5
		click,  // PC
		right,  // P6
		f1,     // P3
		shift,  // P4
		down,   // P9
		f3,     // P7
		f4,     // P8
		C('1'), // P13 Number row
		C('2'), // P14
		C('3'), // P15
		C('4'), // P16
		C('5'), // P17
		C('6'), // P18
		C('7'), // P19
		C('8'), // P20
		C('9'), // P21
		C('0'), // P22
		C('Q'), // P23 Upper letter row
		C('W'), // P24
		C('E'), // P25
		C('R'), // P26
		C('T'), // P27
		C('Y'), // P28
		C('U'), // P29
		C('I'), // P30
		C('O'), // P31
		C('P'), // P32
		C('A'), // P33 Home letter row
		C('S'), // P34
		C('D'), // P35
		C('F'), // P36
		C('G'), // P37
		C('H'), // P38
		C('J'), // P39
		C('K'), // P40
		C('L'), // P41
		bksp,   // P42
		C('!'), // P43 Lower letter row
		C('Z'), // P44
		C('X'), // P45
		C('C'), // P46
		C('V'), // P47
		C('B'), // P48
		C('N'), // P49
		C('M'), // P50
		C('?'), // P51
		enter,  // P52
		altL,   // P53 Bottom row
		C(','), // P54
		C(' '), // P55
		C('.'), // P56
		altR,   // P57
	},
	MapQwertyAlt: {
		up,      // P2 Nav and function keys
		left,    // P5
		click,   // PC
		right,   // P6
		f1,      // P3
		f2,      // P4
		down,    // P9
		f3,      // P7
		f4,      // P8
		nop,     // P13 Number row
		nop,     // P14
		nop,     // P15
		nop,     // P16
		nop,     // P17
		nop,     // P18
		nop,     // P19
		nop,     // P20
		nop,     // P21
		nop,     // P22
		C('%'),  // P23 Upper letter row
		C('^'),  // P24
		C('~'),  // P25
		C('|'),  // P26
		C('['),  // P27
		C(']'),  // P28
		C('<'),  // P29
		C('>'),  // P30
		C('{'),  // P31
		C('}'),  // P32
		C('@'),  // P33 Home letter row
		C('#'),  // P34
		C('&'),  // P35
		C('*'),  // P36
		C('-'),  // P37
		C('+'),  // P38
		C('='),  // P39
		C('('),  // P40
		C(')'),  // P41
		bksp,    // P42
		C('`'),  // P43 Lower letter row
		C('_'),  // P44
		C('$'),  // P45
		C('"'),  // P46
		C('\''), // P47
		C(':'),  // P48
		C(';'),  // P49
		C('/'),  // P50
		C('\\'), // P51
		enter,   // P52
		altL,    // P53 Bottom row
		symbol,  // P54
		C(' '),  // P55
		emoji,   // P56
		altR,    // P57
	},
}

func lut(m Map) *[MapSize]Result {
	if int(m) >= len(luts) {
		return &luts[MapAzerty]
	}
	return &luts[m]
}
