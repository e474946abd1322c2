package keys

// Key is an abstract key token. The front end maps raw key codes onto these
// before handing them to the console.
type Key int

const (
	Unknown Key = iota
	Up
	Down
	Left
	Right
	Backspace
	Home
	End
	Enter
	PageUp
	PageDown
)

var keyNames = map[Key]string{
	Unknown:   "unknown",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Backspace: "backspace",
	Home:      "home",
	End:       "end",
	Enter:     "enter",
	PageUp:    "pageup",
	PageDown:  "pagedown",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Modifiers records which modifier keys were held during a key press.
type Modifiers struct {
	Ctrl bool
	Alt  bool
}

// None is the modifier state with nothing held.
var None = Modifiers{}

// WithCtrl is a convenience for Ctrl-modified key presses.
var WithCtrl = Modifiers{Ctrl: true}

// WordMotion reports whether the modifiers request word-wise caret motion.
// Alt is accepted as well since many terminals deliver Alt+Arrow instead of Ctrl+Arrow.
func (m Modifiers) WordMotion() bool {
	return m.Ctrl || m.Alt
}
