package gui

import "lcdkit/kbd"

// DemoFrames is the length of the demo animation loop.
const DemoFrames = 171

// Keys typed by the demo on the qwerty layout, one press and release each.
var demoPins = []string{
	"P4", "P24", "P4", // W
	"P38", "P33", "P27", "P55",
	"P30", "P34", "P55",
	"P30", "P27", "P55",
	"P28", "P31", "P29", "P55",
	"P24", "P31", "P29", "P41", "P35", "P55",
	"P34", "P25", "P25", "P51", "P55",
	"P4", "P30", "P4", // I
	"P36", "P55",
	"P33", "P29", "P37", "P38", "P27", "P55",
	"P31", "P36", "P55",
	"P24", "P31", "P25", "P55",
	"P31", "P26", "P55",
	"P24", "P31", "P49", "P35", "P25", "P26", "P54", "P55",
	"P46", "P25", "P33", "P34", "P25", "P55",
	"P28", "P31", "P29", "P26", "P55",
	"P34", "P25", "P33", "P26", "P46", "P38", "P56",
	"P55", "P55", "P55", "P55", "P55",
}

const demoTypeFrame = 11

// DemoTick advances the demo animation by one frame: five radio steps,
// five battery steps, a switch to qwerty, then a typed sentence.
func DemoTick(fb *FrameBuf, ctx *Context) {
	fr := ctx.DemoFrame
	ctx.DemoFrame = (fr + 1) % DemoFrames
	switch {
	case fr < 5:
		ctx.CycleRadio()
		Repaint(fb, ctx)
	case fr < 10:
		ctx.CycleBattery()
		Repaint(fb, ctx)
	case fr == 10:
		SetLayout(fb, ctx, kbd.Qwerty)
	default:
		step := fr - demoTypeFrame
		if step/2 >= len(demoPins) {
			return
		}
		i, ok := kbd.PinIndex(demoPins[step/2])
		if !ok {
			return
		}
		if step%2 == 0 {
			KeyDown(fb, ctx, i)
		} else {
			KeyUp(fb, ctx, i)
		}
	}
}
