// Package device implements a control session for a Hatch Rest.
//
// A Session owns one transport link and a cached Status snapshot. Every
// operation is synchronous and serialized: concurrent callers queue behind
// one another, so no two commands are ever in flight on the same link.
//
// # Lifecycle
//
//	DISCONNECTED -> CONNECTING -> CONNECTED -> DISCONNECTED
//
// Connect resolves the target (by address, or by scanning for an exact name
// match), opens the link with the random address type the device requires,
// and reads the initial status. If that first read fails, the link is
// released and the session returns to DISCONNECTED.
//
// # Commands
//
// The device does not acknowledge commands. After each write the session
// waits a settle delay (250ms by default) and re-reads FEEDBACK, so a
// mutator's returned Status reflects the applied change:
//
//	sess := device.NewSession(adapter, device.DefaultConfig())
//	if err := sess.Connect(ctx, device.Target{Name: "Hatch Rest"}); err != nil {
//		return err
//	}
//	defer sess.Disconnect()
//
//	status, err := sess.SetBrightness(128)
//
// SetColor and SetBrightness read the current status first because both
// values travel in the same command.
//
// There are no automatic retries. Callers wanting them can use the
// connection package.
package device
