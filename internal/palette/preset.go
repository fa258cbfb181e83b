package palette

// Preset is a named built-in theme
type Preset struct {
	Name    string
	Element ColorElement
}

// DefaultColor is the theme shown when the palette is empty
var DefaultColor = ColorElement{OrbHexCode: "#4A4A4A", SpaceHexCode: "#F8F8F5"}

var presets = []Preset{
	{Name: "Uturo", Element: DefaultColor},
	{Name: "Madoromi", Element: ColorElement{OrbHexCode: "#3BB6A2", SpaceHexCode: "#FFF8E1"}},
	{Name: "Yawaragi", Element: ColorElement{OrbHexCode: "#E28FA6", SpaceHexCode: "#FFF7F9"}},
	{Name: "Shijima", Element: ColorElement{OrbHexCode: "#A9B0B8", SpaceHexCode: "#1E2633"}},
}

// Presets returns the built-in themes used to seed an empty palette
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetElements returns the elements of the built-in themes in order
func PresetElements() []ColorElement {
	out := make([]ColorElement, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.Element)
	}
	return out
}

// PresetName returns the preset name for an element, or "" if it is not a preset
func PresetName(e ColorElement) string {
	for _, p := range presets {
		if p.Element.ColorCode() == e.ColorCode() {
			return p.Name
		}
	}
	return ""
}
