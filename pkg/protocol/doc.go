// Package protocol implements the Hatch Rest wire format.
//
// The device exposes two GATT characteristics: TX, which accepts short ASCII
// commands, and FEEDBACK, which returns a fixed-layout status packet.
//
// # Commands
//
// A command is a two-letter opcode followed by one or more arguments, each
// encoded as two lowercase hex digits:
//
//	SI01        power on
//	SI00        power off
//	SN02        sound mode 2 (stream)
//	SV64        volume 100
//	SC102030ff  color (16,32,48) at brightness 255
//
// The device has no brightness opcode; brightness travels inside SC together
// with the color.
//
// # Status Packet
//
// The FEEDBACK packet is at least 15 bytes:
//
//	offset  0-4   unused
//	offset  5     0x43 ('C') color section marker
//	offset  6-9   red, green, blue, brightness
//	offset  10    0x53 ('S') audio section marker
//	offset  11    sound mode
//	offset  12    volume
//	offset  13    0x50 ('P') power section marker
//	offset  14    power flags
//
// The device is on when neither of the two top bits of the power flags is set.
package protocol
