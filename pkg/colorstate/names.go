package colorstate

import colorful "github.com/lucasb-eyer/go-colorful"

// NamedColor is one entry of the built-in name table.
type NamedColor struct {
	Name string
	Hex  string
}

// basicNames is the CSS basic color keywords plus orange and two extra
// gray steps, which otherwise sit too far from every keyword for the
// lookup threshold. Order is the display order of the palette flyout.
var basicNames = []NamedColor{
	{"Black", "#000000"},
	{"White", "#FFFFFF"},
	{"Red", "#FF0000"},
	{"Lime", "#00FF00"},
	{"Blue", "#0000FF"},
	{"Yellow", "#FFFF00"},
	{"Cyan", "#00FFFF"},
	{"Magenta", "#FF00FF"},
	{"Orange", "#FFA500"},
	{"Maroon", "#800000"},
	{"Green", "#008000"},
	{"Navy", "#000080"},
	{"Olive", "#808000"},
	{"Teal", "#008080"},
	{"Purple", "#800080"},
	{"Silver", "#C0C0C0"},
	{"Gray", "#808080"},
	{"Dark Gray", "#404040"},
	{"Light Gray", "#E0E0E0"},
}

// nameDistanceThreshold is the largest CIE-Lab distance still reported as
// a match. Lab distances between adjacent keyword colors run ~0.3-0.5, so
// 0.18 keeps every answer closer to its name than to any neighbor.
const nameDistanceThreshold = 0.18

var basicLab []colorful.Color

func init() {
	basicLab = make([]colorful.Color, len(basicNames))
	for i, nc := range basicNames {
		st, err := ParseHex(nc.Hex)
		if err != nil {
			panic(err)
		}
		basicLab[i] = colorful.Color{R: st.Red, G: st.Green, B: st.Blue}
	}
}

// BasicPalette returns a copy of the built-in name table.
func BasicPalette() []NamedColor {
	out := make([]NamedColor, len(basicNames))
	copy(out, basicNames)
	return out
}

// NearestName returns the name of the built-in color perceptually closest
// to s, or "" when nothing is within the match threshold. Pure function of
// the RGB triple; alpha is ignored.
func (s State) NearestName() string {
	c := colorful.Color{R: s.Red, G: s.Green, B: s.Blue}
	best := -1
	bestDist := nameDistanceThreshold
	for i, ref := range basicLab {
		if d := c.DistanceLab(ref); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return ""
	}
	return basicNames[best].Name
}
