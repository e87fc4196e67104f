package input

// Key identifies a physical key the game binds
type Key uint16

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyF3
	KeyF6
	KeyF7
	KeyEscape
	KeyCtrlC
)

var keyNames = map[Key]string{
	KeyNone:   "none",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
	KeyF3:     "f3",
	KeyF6:     "f6",
	KeyF7:     "f7",
	KeyEscape: "escape",
	KeyCtrlC:  "ctrl+c",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is the key transition reported by the input source
type Action uint8

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// ModMask is a bitmask of held modifiers
type ModMask uint8

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Event is one raw key occurrence
type Event struct {
	Key    Key
	Action Action
	Mods   ModMask
}
