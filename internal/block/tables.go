package block

// PrimaryBreakTables covers the blocks placed by terrain generation.
var PrimaryBreakTables = map[string]BreakTable{
	"dirt": {
		"hand":           {TimeToBreak: 0.75, AlwaysDrops: true},
		"wood_shovel":    {TimeToBreak: 0.4, AlwaysDrops: true},
		"stone_shovel":   {TimeToBreak: 0.2, AlwaysDrops: true},
		"golden_shovel":  {TimeToBreak: 0.1, AlwaysDrops: true},
		"iron_shovel":    {TimeToBreak: 0.15, AlwaysDrops: true},
		"diamond_shovel": {TimeToBreak: 0.1, AlwaysDrops: true},
	},
	"wood": {
		"hand":        {TimeToBreak: 3, AlwaysDrops: true},
		"wood_axe":    {TimeToBreak: 1.5, AlwaysDrops: true},
		"stone_axe":   {TimeToBreak: 0.75, AlwaysDrops: true},
		"golden_axe":  {TimeToBreak: 0.25, AlwaysDrops: true},
		"iron_axe":    {TimeToBreak: 0.4, AlwaysDrops: true},
		"diamond_axe": {TimeToBreak: 0.2, AlwaysDrops: true},
	},
	"stone": {
		"hand":            {TimeToBreak: 7.5, AlwaysDrops: true},
		"wood_pickaxe":    {TimeToBreak: 1.15, AlwaysDrops: true},
		"stone_pickaxe":   {TimeToBreak: 0.6, AlwaysDrops: true},
		"golden_pickaxe":  {TimeToBreak: 0.25, AlwaysDrops: true},
		"iron_pickaxe":    {TimeToBreak: 0.4, AlwaysDrops: true},
		"diamond_pickaxe": {TimeToBreak: 0.3, AlwaysDrops: true},
	},
	"diamond": {
		"hand":            {TimeToBreak: 12, AlwaysDrops: false},
		"wood_pickaxe":    {TimeToBreak: 5, AlwaysDrops: false},
		"stone_pickaxe":   {TimeToBreak: 2.5, AlwaysDrops: true},
		"golden_pickaxe":  {TimeToBreak: 0.3, AlwaysDrops: true},
		"iron_pickaxe":    {TimeToBreak: 0.9, AlwaysDrops: true},
		"diamond_pickaxe": {TimeToBreak: 0.5, AlwaysDrops: true},
	},
}

// CraftedBreakTables covers blocks that enter the world through crafting or
// placement rather than terrain generation.
var CraftedBreakTables = map[string]BreakTable{
	"wood_plank": {
		"hand":        {TimeToBreak: 3, AlwaysDrops: true},
		"wood_axe":    {TimeToBreak: 2, AlwaysDrops: true},
		"stone_axe":   {TimeToBreak: 1, AlwaysDrops: true},
		"golden_axe":  {TimeToBreak: 0.6, AlwaysDrops: true},
		"iron_axe":    {TimeToBreak: 0.5, AlwaysDrops: true},
		"diamond_axe": {TimeToBreak: 0.1, AlwaysDrops: true},
	},
	"refined_stone": {
		"hand":            {TimeToBreak: 5, AlwaysDrops: false},
		"wood_pickaxe":    {TimeToBreak: 2, AlwaysDrops: true},
		"stone_pickaxe":   {TimeToBreak: 1, AlwaysDrops: true},
		"golden_pickaxe":  {TimeToBreak: 0.6, AlwaysDrops: true},
		"iron_pickaxe":    {TimeToBreak: 0.5, AlwaysDrops: true},
		"diamond_pickaxe": {TimeToBreak: 0.1, AlwaysDrops: true},
	},
	"stone_slab": {
		"hand":            {TimeToBreak: 5, AlwaysDrops: false},
		"wood_pickaxe":    {TimeToBreak: 2, AlwaysDrops: true},
		"stone_pickaxe":   {TimeToBreak: 1, AlwaysDrops: true},
		"golden_pickaxe":  {TimeToBreak: 0.6, AlwaysDrops: true},
		"iron_pickaxe":    {TimeToBreak: 0.5, AlwaysDrops: true},
		"diamond_pickaxe": {TimeToBreak: 0.1, AlwaysDrops: true},
	},
	"bed": {
		"hand": {TimeToBreak: 1, AlwaysDrops: true},
	},
	"honey": {
		"hand": {TimeToBreak: 1, AlwaysDrops: true},
	},
	"wool": {
		"hand": {TimeToBreak: 1, AlwaysDrops: true},
	},
}
