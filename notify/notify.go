// Package notify sends desktop notifications through the freedesktop
// notification service on the D-Bus session bus.
package notify

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	// AppName identifies ydcv to the notification service.
	AppName = "ydcv"
	// DefaultTimeout is the pop-up expiry in milliseconds.
	DefaultTimeout int32 = 30000
)

const (
	busName      = "org.freedesktop.Notifications"
	busPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod = busName + ".Notify"
)

// Notification is a reusable notification handle. ID is assigned by the
// notification service on the first send; later sends with the same handle
// replace that pop-up instead of opening a new one.
type Notification struct {
	AppName string
	Summary string
	Body    string
	Timeout int32 // milliseconds; -1 lets the server decide, 0 never expires
	ID      uint32
}

// Sender delivers notifications.
type Sender interface {
	Send(n *Notification) error
}

// DBus sends notifications over the session bus. The zero value is ready to
// use; the connection is opened on first send.
type DBus struct {
	mu   sync.Mutex
	conn *dbus.Conn
}

// NewDBus creates a DBus sender.
func NewDBus() *DBus {
	return &DBus{}
}

// Send calls org.freedesktop.Notifications.Notify and stores the returned
// notification ID in n.
func (d *DBus) Send(n *Notification) error {
	conn, err := d.connect()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object(busName, busPath)
	call := obj.Call(notifyMethod, 0,
		n.AppName,
		n.ID,
		"", // app_icon
		n.Summary,
		n.Body,
		[]string{},
		map[string]dbus.Variant{},
		n.Timeout,
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("notify reply: %w", err)
	}
	n.ID = id
	return nil
}

func (d *DBus) connect() (*dbus.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn != nil && d.conn.Connected() {
		return d.conn, nil
	}
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	d.conn = conn
	return conn, nil
}
