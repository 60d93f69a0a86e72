package libinput

import "log/slog"

// Native is the boundary to the C input library. The cgo binding implements
// it on Linux; tests substitute a scripted fake. Application code never calls
// it directly, it goes through Session.
type Native interface {
	// NewEnumerator starts the device enumeration backend (udev).
	// ok is false when the backend cannot start.
	NewEnumerator() (e Enumerator, ok bool)

	// NewSeatContext builds a context that discovers devices through e.
	// The context takes its own reference on e.
	NewSeatContext(e Enumerator, access FileAccess, opts Options, logger *slog.Logger) (ctx NativeContext, ok bool)

	// NewPathContext builds a context whose devices are added by path.
	NewPathContext(access FileAccess, opts Options, logger *slog.Logger) (ctx NativeContext, ok bool)
}

// Enumerator is a reference on the device enumeration backend.
type Enumerator interface {
	Unref()
}

// NativeContext is one library context. Every method except Unref is only
// valid before Unref.
type NativeContext interface {
	// AssignSeat binds the context to a seat. Non-zero means failure.
	AssignSeat(seat string) int
	// AddDevice adds a device node to a path context.
	AddDevice(path string) bool
	// FD is the level-triggered readiness descriptor, owned by the context.
	FD() int
	// Dispatch reads pending kernel input into the internal queue.
	// Returns 0 or a negative errno.
	Dispatch() int
	// NextEvent pops the next queued event, or nil when the queue is empty.
	// The caller owns the result and must Destroy it exactly once.
	NextEvent() RawEvent
	// Unref drops the context reference.
	Unref()
}

// Native event type tags. The numeric values are the C library's.
const (
	typeNone                    uint32 = 0
	typeDeviceAdded             uint32 = 1
	typeDeviceRemoved           uint32 = 2
	typeKeyboardKey             uint32 = 300
	typePointerMotion           uint32 = 400
	typePointerMotionAbsolute   uint32 = 401
	typePointerButton           uint32 = 402
	typePointerAxis             uint32 = 403
	typePointerScrollWheel      uint32 = 404
	typePointerScrollFinger     uint32 = 405
	typePointerScrollContinuous uint32 = 406
	typeTouchDown               uint32 = 500
	typeTouchUp                 uint32 = 501
	typeTouchMotion             uint32 = 502
	typeTouchCancel             uint32 = 503
	typeTouchFrame              uint32 = 504
	typeTabletToolAxis          uint32 = 600
	typeTabletToolProximity     uint32 = 601
	typeTabletToolTip           uint32 = 602
	typeTabletToolButton        uint32 = 603
	typeTabletPadButton         uint32 = 700
	typeTabletPadRing           uint32 = 701
	typeTabletPadStrip          uint32 = 702
	typeTabletPadKey            uint32 = 703
	typeTabletPadDial           uint32 = 704
	typeGestureSwipeBegin       uint32 = 800
	typeGestureSwipeUpdate      uint32 = 801
	typeGestureSwipeEnd         uint32 = 802
	typeGesturePinchBegin       uint32 = 803
	typeGesturePinchUpdate      uint32 = 804
	typeGesturePinchEnd         uint32 = 805
	typeGestureHoldBegin        uint32 = 806
	typeGestureHoldEnd          uint32 = 807
	typeSwitchToggle            uint32 = 900
)

// Native pointer axes.
const (
	axisScrollVertical   uint32 = 0
	axisScrollHorizontal uint32 = 1
)

// Tablet tool axes as understood by RawTabletTool.HasAxis/Axis.
const (
	toolAxisPressure uint32 = iota
	toolAxisDistance
	toolAxisTiltX
	toolAxisTiltY
	toolAxisRotation
	toolAxisSlider
	toolAxisWheel
)

// RawEvent is one pending native event. It is a single-use capability:
// Destroy must be called exactly once, after all reads.
type RawEvent interface {
	Type() uint32
	Device() RawDevice

	// Narrowing accessors. Only the one matching Type() may be called.
	Keyboard() RawKeyboard
	Pointer() RawPointer
	Touch() RawTouch
	Gesture() RawGesture
	TabletTool() RawTabletTool
	TabletPad() RawTabletPad
	Switch() RawSwitch

	Destroy()
}

type RawDevice interface {
	Name() string
	Sysname() string
	VendorID() uint32
	ProductID() uint32
	HasCapability(c uint32) bool
	Seat() RawSeat
}

type RawSeat interface {
	PhysicalName() string
	LogicalName() string
}

type RawKeyboard interface {
	TimeUsec() uint64
	Key() uint32
	KeyState() uint32
	SeatKeyCount() uint32
}

type RawPointer interface {
	TimeUsec() uint64
	Dx() float64
	Dy() float64
	DxUnaccelerated() float64
	DyUnaccelerated() float64
	AbsoluteX() float64
	AbsoluteY() float64
	AbsoluteXTransformed(width uint32) float64
	AbsoluteYTransformed(height uint32) float64
	Button() uint32
	ButtonState() uint32
	SeatButtonCount() uint32
	AxisSource() uint32
	HasAxis(axis uint32) bool
	AxisValue(axis uint32) float64
	ScrollValue(axis uint32) float64
	ScrollValueV120(axis uint32) float64
}

type RawTouch interface {
	TimeUsec() uint64
	Slot() int32
	SeatSlot() int32
	X() float64
	Y() float64
	XTransformed(width uint32) float64
	YTransformed(height uint32) float64
}

type RawGesture interface {
	TimeUsec() uint64
	FingerCount() int
	Cancelled() bool
	Dx() float64
	Dy() float64
	DxUnaccelerated() float64
	DyUnaccelerated() float64
	Scale() float64
	AngleDelta() float64
}

type RawTabletTool interface {
	TimeUsec() uint64
	ToolType() uint32
	Serial() uint64
	X() float64
	Y() float64
	XTransformed(width uint32) float64
	YTransformed(height uint32) float64
	HasAxis(axis uint32) bool
	Axis(axis uint32) float64
	ProximityState() uint32
	TipState() uint32
	Button() uint32
	ButtonState() uint32
}

type RawTabletPad interface {
	TimeUsec() uint64
	Mode() uint32
	ButtonNumber() uint32
	ButtonState() uint32
	RingNumber() uint32
	RingPosition() float64
	RingSource() uint32
	StripNumber() uint32
	StripPosition() float64
	StripSource() uint32
	Key() uint32
	KeyState() uint32
}

type RawSwitch interface {
	TimeUsec() uint64
	Switch() uint32
	SwitchState() uint32
}
