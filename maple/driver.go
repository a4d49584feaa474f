package maple

import (
	"context"
	"fmt"
	"sync"

	"github.com/ardnew/softmaple/maple/hal"
	"github.com/ardnew/softmaple/pkg"
)

// Device is a unit known to be attached to the bus.
type Device struct {
	Port      int
	Unit      int
	Address   Address
	Functions Functions
}

// String returns the address and functions of the device.
func (d *Device) String() string {
	return fmt.Sprintf("%v [%v]", d.Address, d.Functions)
}

// Option configures a Driver.
type Option func(*Driver)

// WithBeamCounter sets the beam position source used by light-gun pulses.
func WithBeamCounter(bc hal.BeamCounter) Option {
	return func(d *Driver) {
		d.beam = bc
	}
}

// WithTimeout sets the device response timeout programmed at Init, in bus
// ticks.
func WithTimeout(ticks uint16) Option {
	return func(d *Driver) {
		d.timeout = ticks
	}
}

// Driver owns the bus controller, the light-gun state, and the table of
// attached devices. Init and Shutdown are its bring-up boundary.
type Driver struct {
	regs    hal.RegisterHAL
	beam    hal.BeamCounter
	timeout uint16

	bus *Bus
	gun *Gun

	// Attached devices
	devices [PortCount][UnitCount]*Device

	// State
	running bool
	mutex   sync.RWMutex

	// Callbacks
	onAttach func(*Device)
	onDetach func(*Device)
}

// New creates a bus driver over the given registers.
func New(regs hal.RegisterHAL, opts ...Option) *Driver {
	d := &Driver{
		regs:    regs,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.bus = NewBus(regs)
	d.gun = NewGun(d.beam)
	return d
}

// Init initializes the register HAL, resets the controller, and enables
// the bus.
func (d *Driver) Init(ctx context.Context) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.running {
		return pkg.ErrAlreadyRunning
	}

	if err := d.regs.Init(ctx); err != nil {
		return fmt.Errorf("init registers: %w", err)
	}

	d.bus.Reset(d.timeout)
	d.running = true

	pkg.LogInfo(pkg.ComponentDriver, "bus driver initialized", "timeout", d.timeout)
	return nil
}

// Shutdown disarms the light gun, aborts any transfer, disables the bus,
// forgets attached devices, and closes the register HAL.
func (d *Driver) Shutdown() error {
	d.mutex.Lock()
	if !d.running {
		d.mutex.Unlock()
		return nil
	}
	d.running = false

	d.gun.Disarm()
	d.bus.Stop()
	d.bus.SetEnabled(false)

	var detached []*Device
	for p := range d.devices {
		for u := range d.devices[p] {
			if dev := d.devices[p][u]; dev != nil {
				detached = append(detached, dev)
				d.devices[p][u] = nil
			}
		}
	}
	cb := d.onDetach
	d.mutex.Unlock()

	if cb != nil {
		for _, dev := range detached {
			cb(dev)
		}
	}

	if err := d.regs.Close(); err != nil {
		return fmt.Errorf("close registers: %w", err)
	}

	pkg.LogInfo(pkg.ComponentDriver, "bus driver shut down")
	return nil
}

// IsRunning returns true between Init and Shutdown.
func (d *Driver) IsRunning() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.running
}

// Bus returns the bus controller.
func (d *Driver) Bus() *Bus {
	return d.bus
}

// Gun returns the light-gun tracker.
func (d *Driver) Gun() *Gun {
	return d.gun
}

// Attach records a device answering at port and unit with the given
// function mask, replacing any device recorded there.
func (d *Driver) Attach(port, unit int, functions Functions) (*Device, error) {
	addr, err := EncodeAddress(port, unit)
	if err != nil {
		return nil, err
	}

	dev := &Device{
		Port:      port,
		Unit:      unit,
		Address:   addr,
		Functions: functions,
	}

	d.mutex.Lock()
	if !d.running {
		d.mutex.Unlock()
		return nil, pkg.ErrNotRunning
	}
	d.devices[port][unit] = dev
	cb := d.onAttach
	d.mutex.Unlock()

	pkg.LogInfo(pkg.ComponentDriver, "device attached",
		"addr", addr.String(),
		"functions", functions.String())

	if cb != nil {
		cb(dev)
	}
	return dev, nil
}

// Detach forgets the device at port and unit.
func (d *Driver) Detach(port, unit int) error {
	if _, err := EncodeAddress(port, unit); err != nil {
		return err
	}

	d.mutex.Lock()
	dev := d.devices[port][unit]
	if dev == nil {
		d.mutex.Unlock()
		return fmt.Errorf("%w: port %d, unit %d", pkg.ErrNoDevice, port, unit)
	}
	d.devices[port][unit] = nil
	cb := d.onDetach
	d.mutex.Unlock()

	pkg.LogInfo(pkg.ComponentDriver, "device detached", "addr", dev.Address.String())

	if cb != nil {
		cb(dev)
	}
	return nil
}

// Device returns the device at port and unit, or nil.
func (d *Driver) Device(port, unit int) *Device {
	if port < 0 || port >= PortCount || unit < 0 || unit >= UnitCount {
		return nil
	}
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.devices[port][unit]
}

// DeviceValid reports whether a device is attached at port and unit.
func (d *Driver) DeviceValid(port, unit int) bool {
	return d.Device(port, unit) != nil
}

// Devices returns every attached device in port, then unit, order.
func (d *Driver) Devices() []*Device {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	var result []*Device
	for p := range d.devices {
		for u := range d.devices[p] {
			if dev := d.devices[p][u]; dev != nil {
				result = append(result, dev)
			}
		}
	}
	return result
}

// SetOnAttach sets the callback for device attachment.
func (d *Driver) SetOnAttach(cb func(*Device)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.onAttach = cb
}

// SetOnDetach sets the callback for device detachment.
func (d *Driver) SetOnDetach(cb func(*Device)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.onDetach = cb
}

// ArmGun arms light-gun capture on port. The port must have a device with
// the light-gun function attached.
func (d *Driver) ArmGun(port int) error {
	if port < 0 || port >= PortCount {
		return fmt.Errorf("%w: %d", pkg.ErrInvalidPort, port)
	}
	dev := d.Device(port, 0)
	if dev == nil || !dev.Functions.Has(FuncLightGun) {
		return fmt.Errorf("%w: no light gun on port %d", pkg.ErrNoDevice, port)
	}
	return d.gun.Arm(port)
}
