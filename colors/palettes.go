package colors

// Dark24 is the default discrete palette, 24 colors tuned for categorical
// series on light backgrounds.
var Dark24 = []string{
	"#2E91E5",
	"#E15F99",
	"#1CA71C",
	"#FB0D0D",
	"#DA16FF",
	"#222A2A",
	"#B68100",
	"#750D86",
	"#EB663B",
	"#511CFB",
	"#00A08B",
	"#FB00D1",
	"#FC0080",
	"#B2828D",
	"#6C7C32",
	"#778AAE",
	"#862A16",
	"#A777F1",
	"#620042",
	"#1616A7",
	"#DA60CA",
	"#6C4516",
	"#0D2A63",
	"#AF0038",
}

var discretePalettes = map[string][]string{
	"dark24": Dark24,
	"pastel": {
		"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F",
		"#9EB9F3", "#FE88B1", "#C9DB74", "#8BE0A4", "#B497E7",
	},
	"bold": {
		"#7F3C8D", "#11A579", "#3969AC", "#F2B701", "#E73F74",
		"#80BA5A", "#E68310", "#008695", "#CF1C90", "#F97B72",
	},
}

// gradientAnchors defines the continuous colormaps as evenly spaced color
// stops; sampling blends between neighbors in HCL space.
var gradientAnchors = map[string][]string{
	"viridis": {"#440154", "#414487", "#2A788E", "#22A884", "#7AD151", "#FDE725"},
	"plasma":  {"#0D0887", "#6A00A8", "#B12A90", "#E16462", "#FCA636", "#F0F921"},
	"inferno": {"#000004", "#420A68", "#932667", "#DD513A", "#FCA50A", "#FCFFA4"},
	"magma":   {"#000004", "#3B0F70", "#8C2981", "#DE4968", "#FE9F6D", "#FCFDBF"},
	"cividis": {"#00224E", "#35456C", "#666970", "#948E77", "#C8B866", "#FEE838"},
}

// namedColors covers the basic single-color names callers are likely to
// pass as a cmap; anything else must be a hex string.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#FFFFFF",
	"red":     "#FF0000",
	"green":   "#008000",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"cyan":    "#00FFFF",
	"magenta": "#FF00FF",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#FFA500",
	"purple":  "#800080",
	"brown":   "#A52A2A",
	"pink":    "#FFC0CB",
	"navy":    "#000080",
	"teal":    "#008080",
	"olive":   "#808000",
	"silver":  "#C0C0C0",
}
