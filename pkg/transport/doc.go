// Package transport defines the BLE boundary consumed by the device layer.
//
// An Adapter scans for advertising peripherals and opens GATT sessions.
// A Session reads and writes characteristics identified by Handle, which
// is the characteristic UUID in string form:
//
//	adapter, err := transport.NewBLEAdapter(logger)
//	results, err := adapter.Scan(ctx)
//	sess, err := adapter.Connect(ctx, "F3:53:11:AA:BB:CC", transport.AddressRandom)
//	packet, err := sess.ReadCharacteristic(feedback)
//
// BLEAdapter is backed by github.com/go-ble/ble and requires Linux with an
// HCI device the process may open (root or CAP_NET_ADMIN). Other platforms
// get an adapter whose operations return ErrUnsupportedPlatform.
//
// The sim subpackage provides an in-memory device implementing both
// interfaces.
package transport
