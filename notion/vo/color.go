package vo

type Color string

const (
	ColorDefault           Color = "default"
	ColorBlue              Color = "blue"
	ColorBrown             Color = "brown"
	ColorGray              Color = "gray"
	ColorGreen             Color = "green"
	ColorOrange            Color = "orange"
	ColorPink              Color = "pink"
	ColorPurple            Color = "purple"
	ColorRed               Color = "red"
	ColorYellow            Color = "yellow"
	ColorDefaultBackground Color = "default_background"
	ColorBlueBackground    Color = "blue_background"
	ColorBrownBackground   Color = "brown_background"
	ColorGrayBackground    Color = "gray_background"
	ColorGreenBackground   Color = "green_background"
	ColorOrangeBackground  Color = "orange_background"
	ColorPinkBackground    Color = "pink_background"
	ColorPurpleBackground  Color = "purple_background"
	ColorRedBackground     Color = "red_background"
	ColorYellowBackground  Color = "yellow_background"
)

var colors = newEnumSet(
	ColorDefault, ColorBlue, ColorBrown, ColorGray, ColorGreen,
	ColorOrange, ColorPink, ColorPurple, ColorRed, ColorYellow,
	ColorDefaultBackground, ColorBlueBackground, ColorBrownBackground, ColorGrayBackground, ColorGreenBackground,
	ColorOrangeBackground, ColorPinkBackground, ColorPurpleBackground, ColorRedBackground, ColorYellowBackground,
)

func (c *Color) UnmarshalJSON(data []byte) (err error) {
	*c, err = decodeEnum(data, colors, "color")
	return err
}

// SelectColor is the palette of select, multi_select and status options.
type SelectColor string

const (
	SelectColorDefault SelectColor = "default"
	SelectColorBlue    SelectColor = "blue"
	SelectColorBrown   SelectColor = "brown"
	SelectColorGray    SelectColor = "gray"
	SelectColorGreen   SelectColor = "green"
	SelectColorOrange  SelectColor = "orange"
	SelectColorPink    SelectColor = "pink"
	SelectColorPurple  SelectColor = "purple"
	SelectColorRed     SelectColor = "red"
	SelectColorYellow  SelectColor = "yellow"
)

var selectColors = newEnumSet(
	SelectColorDefault, SelectColorBlue, SelectColorBrown, SelectColorGray, SelectColorGreen,
	SelectColorOrange, SelectColorPink, SelectColorPurple, SelectColorRed, SelectColorYellow,
)

func (c *SelectColor) UnmarshalJSON(data []byte) (err error) {
	*c, err = decodeEnum(data, selectColors, "select color")
	return err
}
