// Package connection provides caller-side retry pacing for connecting to
// the device.
//
// The device layer never retries on its own: a failed connect, refresh or
// command is reported immediately. Applications that want to keep trying
// (for example when the device is briefly out of range) wrap the call in
// Retry, which waits between attempts using exponential backoff with jitter:
//
//	actual_delay = base_delay + random(0, base_delay * jitter)
//
// The default sequence is 500ms, 1s, 2s, 4s, 8s, capped at 8s.
package connection
