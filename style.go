package vgui

// Spacing scale for layout values.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
)

// Style is the visual appearance of the virtual widgets.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	// Viewport and cells
	ViewportBgColor   uint32
	BorderColor       uint32
	RowBgAltColor     uint32 // every other row; 0 disables striping
	HoveredBgColor    uint32
	SelectedBgColor   uint32
	PlaceholderColor  uint32 // cells drawn while scrolling with UseIsScrolling
	SelectedTextColor uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32
	ScrollbarGrabActive  uint32

	FontScale   float32
	CharWidth   float32
	CharHeight  float32
	ItemSpacing float32
	CellPadding float32
	BorderSize  float32

	ScrollbarSize float32
	// WheelStep is the scroll distance of one wheel notch in pixels.
	WheelStep float32
}

// DefaultStyle returns a neutral dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		ViewportBgColor:   RGBA(20, 20, 20, 200),
		BorderColor:       RGBA(80, 80, 80, 255),
		RowBgAltColor:     RGBA(35, 35, 35, 255),
		HoveredBgColor:    RGBA(60, 60, 60, 255),
		SelectedBgColor:   RGBA(50, 100, 150, 255),
		PlaceholderColor:  RGBA(45, 45, 45, 255),
		SelectedTextColor: ColorWhite,

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),
		ScrollbarGrabActive:  RGBA(130, 130, 130, 255),

		FontScale:   1.0,
		CharWidth:   8,
		CharHeight:  8,
		ItemSpacing: SpaceSM,
		CellPadding: SpaceSM,
		BorderSize:  1,

		ScrollbarSize: 12,
		WheelStep:     40,
	}
}

// GTAStyle is dark with cyan accents and a larger font.
func GTAStyle() Style {
	s := DefaultStyle()
	s.ViewportBgColor = RGBA(0, 0, 0, 220)
	s.BorderColor = RGBA(0, 100, 150, 255)
	s.RowBgAltColor = RGBA(20, 30, 40, 255)
	s.HoveredBgColor = RGBA(50, 70, 90, 255)
	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.ScrollbarBgColor = RGBA(20, 20, 20, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)
	s.ScrollbarGrabHovered = RGBA(0, 150, 200, 255)
	s.ScrollbarGrabActive = RGBA(0, 200, 255, 255)
	s.FontScale = 1.5
	s.ItemSpacing = 6
	s.ScrollbarSize = 14
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.ViewportBgColor = RGBA(245, 245, 245, 250)
	s.BorderColor = RGBA(200, 200, 200, 255)
	s.RowBgAltColor = RGBA(250, 250, 250, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)
	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.PlaceholderColor = RGBA(225, 225, 225, 255)
	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)
	s.ScrollbarGrabActive = RGBA(140, 140, 140, 255)
	return s
}
