package libinput

import "fmt"

// DefaultSeat is the seat a udev context binds to when none is given.
const DefaultSeat = "seat0"

// Backend selects how a Session discovers devices.
type Backend int

const (
	// BackendUdev enumerates every device on a seat and follows hotplug.
	BackendUdev Backend = iota
	// BackendPath opens only the device nodes listed in Options.Devices.
	BackendPath
)

func (b Backend) String() string {
	switch b {
	case BackendUdev:
		return "udev"
	case BackendPath:
		return "path"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Toggle is a tri-state device knob. The zero value leaves the device default.
type Toggle int

const (
	ToggleUnset Toggle = iota
	ToggleOff
	ToggleOn
)

// TapButtonMap selects the buttons generated by 1/2/3-finger taps.
type TapButtonMap int

const (
	TapMapUnset TapButtonMap = iota
	TapMapLRM                // left, right, middle
	TapMapLMR                // left, middle, right
)

type ClickMethod int

const (
	ClickMethodUnset ClickMethod = iota
	ClickMethodNone
	ClickMethodButtonAreas
	ClickMethodClickfinger
)

type ScrollMethod int

const (
	ScrollMethodUnset ScrollMethod = iota
	ScrollMethodNone
	ScrollMethodTwoFinger
	ScrollMethodEdge
	ScrollMethodButton
)

type AccelProfile int

const (
	AccelProfileUnset AccelProfile = iota
	AccelProfileFlat
	AccelProfileAdaptive
)

// Options is the bootstrap block handed to the native context. The core
// passes it through untouched; the native binding applies the device knobs
// to every device as it is added.
type Options struct {
	Seat    string
	Backend Backend
	// Devices lists device nodes for BackendPath.
	Devices []string
	// Grab requests exclusive access (EVIOCGRAB). Honoured by FileAccess
	// implementations that support it.
	Grab bool

	Tapping            Toggle
	TapButtonMap       TapButtonMap
	Drag               Toggle
	DragLock           Toggle
	NaturalScroll      Toggle
	LeftHanded         Toggle
	MiddleButton       Toggle
	DisableWhileTyping Toggle
	ClickMethod        ClickMethod
	ScrollMethod       ScrollMethod
	// ScrollButton is the button for ScrollMethodButton; 0 leaves it unset.
	ScrollButton uint32
	// Speed is the pointer acceleration speed in [-1, 1]; nil leaves it unset.
	Speed        *float64
	AccelProfile AccelProfile
}

// DefaultOptions returns a udev block on DefaultSeat with every knob unset.
func DefaultOptions() Options {
	return Options{Seat: DefaultSeat, Backend: BackendUdev}
}

// FileAccess is the privileged open/close capability. The native layer calls
// it when it needs a device node; application code supplies it but never
// calls it directly.
type FileAccess interface {
	// OpenRestricted opens path with the given open(2) flags and returns the
	// descriptor. On failure the native layer sees "no descriptor".
	OpenRestricted(path string, flags int) (int, error)
	// CloseRestricted takes ownership of fd and releases it.
	CloseRestricted(fd int)
}
