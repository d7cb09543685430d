package drawer

// Mode is the visual state of the drawer.
type Mode int

const (
	Disabled Mode = iota
	Collapsed
	Expanded
)

// Drawer widths per mode.
const (
	WidthDisabled  float32 = 0
	WidthCollapsed float32 = 84
	WidthExpanded  float32 = 280
)

// ModeFor projects the two drawer preferences. Disabling wins over width.
func ModeFor(disabled, wide bool) Mode {
	switch {
	case disabled:
		return Disabled
	case wide:
		return Expanded
	default:
		return Collapsed
	}
}

// Width returns the drawer width for m.
func Width(m Mode) float32 {
	switch m {
	case Collapsed:
		return WidthCollapsed
	case Expanded:
		return WidthExpanded
	default:
		return WidthDisabled
	}
}

func (m Mode) String() string {
	switch m {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "disabled"
	}
}

// ShowsLabels reports whether entry labels are drawn next to icons.
func (m Mode) ShowsLabels() bool { return m == Expanded }
