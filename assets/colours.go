package assets

import "github.com/gdamore/tcell/v2"

// BlockColours maps block ids to their terminal colour.
var BlockColours = map[string]tcell.Color{
	"diamond":        tcell.ColorBlue,
	"dirt":           tcell.ColorSaddleBrown,
	"stone":          tcell.ColorGray,
	"wood":           tcell.ColorSienna,
	"leaf":           tcell.ColorGreen,
	"crafting_table": tcell.ColorPink,
	"furnace":        tcell.ColorBlack,
	"refined_stone":  tcell.ColorIvory,
	"stone_slab":     tcell.ColorOrange,
	"wood_plank":     tcell.ColorNavajoWhite,
	"wool":           tcell.ColorWhite,
	"bed":            tcell.ColorRed,
	"hive":           tcell.ColorYellow,
	"honey":          tcell.ColorOrange,
}

// ItemColours maps item ids to their terminal colour.
var ItemColours = map[string]tcell.Color{
	"diamond":        tcell.ColorBlue,
	"dirt":           tcell.ColorSaddleBrown,
	"stone":          tcell.ColorGray,
	"wood":           tcell.ColorSienna,
	"apple":          tcell.ColorRed,
	"leaf":           tcell.ColorGreen,
	"crafting_table": tcell.ColorPink,
	"furnace":        tcell.ColorBlack,
	"cooked_apple":   tcell.ColorDarkRed,
	"stick":          tcell.ColorNavajoWhite,
	"stone_slab":     tcell.ColorOrange,
	"refined_stone":  tcell.ColorIvory,
	"wool":           tcell.ColorWhite,
	"bed":            tcell.ColorRed,
	"honey":          tcell.ColorOrange,
}

// MayhemColours is the trick candle's flame colour cycle, indexed by the
// candle's cycle position.
var MayhemColours = []tcell.Color{
	tcell.ColorIndianRed,
	tcell.ColorKhaki,
	tcell.ColorPaleGreen,
	tcell.ColorSkyblue,
	tcell.ColorPlum,
}
