package libinput

import (
	"log/slog"
	"slices"
)

// fakeNative is a scripted Native that counts every acquire and release.
type fakeNative struct {
	enumFail   bool
	ctxFail    bool
	seatStatus int
	failPaths  []string
	batches    [][]*fakeEvent

	enumAcquired, enumReleased int
	ctxAcquired, ctxReleased   int

	ctx    *fakeContext
	gotOpt Options
}

func (n *fakeNative) NewEnumerator() (Enumerator, bool) {
	if n.enumFail {
		return nil, false
	}
	n.enumAcquired++
	return &fakeEnumerator{n: n}, true
}

func (n *fakeNative) NewSeatContext(e Enumerator, access FileAccess, opts Options, logger *slog.Logger) (NativeContext, bool) {
	if n.ctxFail {
		return nil, false
	}
	// The context holds its own enumerator reference.
	n.enumAcquired++
	return n.newContext(opts, true), true
}

func (n *fakeNative) NewPathContext(access FileAccess, opts Options, logger *slog.Logger) (NativeContext, bool) {
	if n.ctxFail {
		return nil, false
	}
	return n.newContext(opts, false), true
}

func (n *fakeNative) newContext(opts Options, holdsEnum bool) *fakeContext {
	n.ctxAcquired++
	n.gotOpt = opts
	n.ctx = &fakeContext{n: n, fd: 42, holdsEnum: holdsEnum, batches: slices.Clone(n.batches)}
	return n.ctx
}

// leaked is the number of native references still held.
func (n *fakeNative) leaked() int {
	return (n.enumAcquired - n.enumReleased) + (n.ctxAcquired - n.ctxReleased)
}

type fakeEnumerator struct {
	n *fakeNative
}

func (e *fakeEnumerator) Unref() { e.n.enumReleased++ }

type fakeContext struct {
	n         *fakeNative
	fd        int
	holdsEnum bool
	unrefs    int

	batches    [][]*fakeEvent
	queue      []*fakeEvent
	dispatches int
	dispatchRC int
	seats      []string
	devices    []string

	// calls records "dispatch" and "next" in order.
	calls []string
}

func (c *fakeContext) AssignSeat(seat string) int {
	c.seats = append(c.seats, seat)
	return c.n.seatStatus
}

func (c *fakeContext) AddDevice(path string) bool {
	if slices.Contains(c.n.failPaths, path) {
		return false
	}
	c.devices = append(c.devices, path)
	return true
}

func (c *fakeContext) FD() int { return c.fd }

func (c *fakeContext) Dispatch() int {
	c.dispatches++
	c.calls = append(c.calls, "dispatch")
	if len(c.batches) > 0 {
		c.queue = append(c.queue, c.batches[0]...)
		c.batches = c.batches[1:]
	}
	return c.dispatchRC
}

func (c *fakeContext) NextEvent() RawEvent {
	c.calls = append(c.calls, "next")
	if len(c.queue) == 0 {
		return nil
	}
	ev := c.queue[0]
	c.queue = c.queue[1:]
	return ev
}

func (c *fakeContext) Unref() {
	c.unrefs++
	c.n.ctxReleased++
	if c.holdsEnum {
		c.n.enumReleased++
	}
}

// fakeEvent is a native event with every payload field settable.
type fakeEvent struct {
	typ     uint32
	device  *fakeDevice
	payload fakePayload
	sw      fakeSwitch

	destroys         int
	readAfterDestroy bool
}

func newEvent(typ uint32, p fakePayload) *fakeEvent {
	ev := &fakeEvent{typ: typ, device: testDevice(), payload: p}
	ev.payload.owner = ev
	return ev
}

func (e *fakeEvent) Type() uint32 { return e.typ }

func (e *fakeEvent) Device() RawDevice {
	if e.device == nil {
		return nil
	}
	return e.device
}

func (e *fakeEvent) Keyboard() RawKeyboard     { return &e.payload }
func (e *fakeEvent) Pointer() RawPointer       { return &e.payload }
func (e *fakeEvent) Touch() RawTouch           { return &e.payload }
func (e *fakeEvent) Gesture() RawGesture       { return &e.payload }
func (e *fakeEvent) TabletTool() RawTabletTool { return &e.payload }
func (e *fakeEvent) TabletPad() RawTabletPad   { return &e.payload }

func (e *fakeEvent) Switch() RawSwitch {
	e.sw.owner = e
	return &e.sw
}

func (e *fakeEvent) Destroy() { e.destroys++ }

type fakeDevice struct {
	name, sysname     string
	vendor, product   uint32
	caps              []uint32
	physical, logical string
	noSeat            bool
}

func testDevice() *fakeDevice {
	return &fakeDevice{
		name:     "AT Translated Set 2 keyboard",
		sysname:  "event3",
		vendor:   0x0001,
		product:  0x0001,
		caps:     []uint32{0},
		physical: "seat0",
		logical:  "default",
	}
}

func (d *fakeDevice) Name() string      { return d.name }
func (d *fakeDevice) Sysname() string   { return d.sysname }
func (d *fakeDevice) VendorID() uint32  { return d.vendor }
func (d *fakeDevice) ProductID() uint32 { return d.product }

func (d *fakeDevice) HasCapability(c uint32) bool { return slices.Contains(d.caps, c) }

func (d *fakeDevice) Seat() RawSeat {
	if d.noSeat {
		return nil
	}
	return d
}

func (d *fakeDevice) PhysicalName() string { return d.physical }
func (d *fakeDevice) LogicalName() string  { return d.logical }

// fakePayload backs every narrowed accessor except switches. Transformed
// coordinates are the raw value scaled by size/100.
type fakePayload struct {
	owner *fakeEvent

	time                 uint64
	key, keyState        uint32
	seatKeyCount         uint32
	dx, dy, dxu, dyu     float64
	x, y                 float64
	button, buttonState  uint32
	seatButtonCount      uint32
	axisSource           uint32
	axes                 map[uint32]float64
	v120                 map[uint32]float64
	slot, seatSlot       int32
	fingers              int
	cancelled            bool
	scale, angle         float64
	tool                 uint32
	serial               uint64
	proximity, tip       uint32
	mode                 uint32
	ringNumber           uint32
	ringPos              float64
	ringSource           uint32
	stripNumber          uint32
	stripPos             float64
	stripSource          uint32
}

func (p *fakePayload) use() {
	if p.owner != nil && p.owner.destroys > 0 {
		p.owner.readAfterDestroy = true
	}
}

func (p *fakePayload) TimeUsec() uint64 { p.use(); return p.time }

func (p *fakePayload) Key() uint32          { p.use(); return p.key }
func (p *fakePayload) KeyState() uint32     { p.use(); return p.keyState }
func (p *fakePayload) SeatKeyCount() uint32 { p.use(); return p.seatKeyCount }

func (p *fakePayload) Dx() float64              { p.use(); return p.dx }
func (p *fakePayload) Dy() float64              { p.use(); return p.dy }
func (p *fakePayload) DxUnaccelerated() float64 { p.use(); return p.dxu }
func (p *fakePayload) DyUnaccelerated() float64 { p.use(); return p.dyu }
func (p *fakePayload) AbsoluteX() float64       { p.use(); return p.x }
func (p *fakePayload) AbsoluteY() float64       { p.use(); return p.y }

func (p *fakePayload) AbsoluteXTransformed(w uint32) float64 { p.use(); return p.x * float64(w) / 100 }
func (p *fakePayload) AbsoluteYTransformed(h uint32) float64 { p.use(); return p.y * float64(h) / 100 }

func (p *fakePayload) Button() uint32          { p.use(); return p.button }
func (p *fakePayload) ButtonState() uint32     { p.use(); return p.buttonState }
func (p *fakePayload) SeatButtonCount() uint32 { p.use(); return p.seatButtonCount }
func (p *fakePayload) AxisSource() uint32      { p.use(); return p.axisSource }

func (p *fakePayload) HasAxis(axis uint32) bool {
	p.use()
	_, ok := p.axes[axis]
	return ok
}

// AxisValue panics on an absent axis, where the native API is undefined.
func (p *fakePayload) AxisValue(axis uint32) float64 {
	p.use()
	v, ok := p.axes[axis]
	if !ok {
		panic("read of absent axis")
	}
	return v
}

func (p *fakePayload) ScrollValue(axis uint32) float64 { return p.AxisValue(axis) }

func (p *fakePayload) ScrollValueV120(axis uint32) float64 {
	p.use()
	return p.v120[axis]
}

func (p *fakePayload) Slot() int32     { p.use(); return p.slot }
func (p *fakePayload) SeatSlot() int32 { p.use(); return p.seatSlot }
func (p *fakePayload) X() float64      { p.use(); return p.x }
func (p *fakePayload) Y() float64      { p.use(); return p.y }

func (p *fakePayload) XTransformed(w uint32) float64 { p.use(); return p.x * float64(w) / 100 }
func (p *fakePayload) YTransformed(h uint32) float64 { p.use(); return p.y * float64(h) / 100 }

func (p *fakePayload) FingerCount() int    { p.use(); return p.fingers }
func (p *fakePayload) Cancelled() bool     { p.use(); return p.cancelled }
func (p *fakePayload) Scale() float64      { p.use(); return p.scale }
func (p *fakePayload) AngleDelta() float64 { p.use(); return p.angle }

func (p *fakePayload) ToolType() uint32         { p.use(); return p.tool }
func (p *fakePayload) Serial() uint64           { p.use(); return p.serial }
func (p *fakePayload) Axis(axis uint32) float64 { return p.AxisValue(axis) }
func (p *fakePayload) ProximityState() uint32   { p.use(); return p.proximity }
func (p *fakePayload) TipState() uint32         { p.use(); return p.tip }

func (p *fakePayload) Mode() uint32           { p.use(); return p.mode }
func (p *fakePayload) ButtonNumber() uint32   { p.use(); return p.button }
func (p *fakePayload) RingNumber() uint32     { p.use(); return p.ringNumber }
func (p *fakePayload) RingPosition() float64  { p.use(); return p.ringPos }
func (p *fakePayload) RingSource() uint32     { p.use(); return p.ringSource }
func (p *fakePayload) StripNumber() uint32    { p.use(); return p.stripNumber }
func (p *fakePayload) StripPosition() float64 { p.use(); return p.stripPos }
func (p *fakePayload) StripSource() uint32    { p.use(); return p.stripSource }

type fakeSwitch struct {
	owner *fakeEvent
	time  uint64
	id    uint32
	state uint32
}

func (s *fakeSwitch) use() {
	if s.owner != nil && s.owner.destroys > 0 {
		s.owner.readAfterDestroy = true
	}
}

func (s *fakeSwitch) TimeUsec() uint64    { s.use(); return s.time }
func (s *fakeSwitch) Switch() uint32      { s.use(); return s.id }
func (s *fakeSwitch) SwitchState() uint32 { s.use(); return s.state }

// fakeAccess is a FileAccess that never touches the filesystem.
type fakeAccess struct {
	opened, closed int
}

func (a *fakeAccess) OpenRestricted(path string, flags int) (int, error) {
	a.opened++
	return 100 + a.opened, nil
}

func (a *fakeAccess) CloseRestricted(fd int) { a.closed++ }

// scriptedWaiter returns errs in order, then nil.
type scriptedWaiter struct {
	errs   []error
	waits  int
	onWait func()
}

func (w *scriptedWaiter) Wait(fd int) error {
	w.waits++
	if w.onWait != nil {
		w.onWait()
	}
	if len(w.errs) == 0 {
		return nil
	}
	err := w.errs[0]
	w.errs = w.errs[1:]
	return err
}
