package protocol

import "fmt"

// Status packet layout.
const (
	// StatusPacketSize is the minimum length of a FEEDBACK packet.
	StatusPacketSize = 15

	offsetColorMarker = 5
	offsetRed         = 6
	offsetGreen       = 7
	offsetBlue        = 8
	offsetBrightness  = 9
	offsetAudioMarker = 10
	offsetSound       = 11
	offsetVolume      = 12
	offsetPowerMarker = 13
	offsetPower       = 14

	// MarkerColor tags the color section.
	MarkerColor byte = 0x43
	// MarkerAudio tags the audio section.
	MarkerAudio byte = 0x53
	// MarkerPower tags the power section.
	MarkerPower byte = 0x50

	// PowerOffMask selects the power flag bits. The device is on only
	// when both bits are clear.
	PowerOffMask byte = 0xC0
)

// Color is an RGB triple.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// String returns the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// Status is a decoded FEEDBACK packet. All fields come from the same read.
type Status struct {
	Color      Color
	Brightness uint8
	Sound      SoundMode
	Volume     uint8
	Power      bool
}

// String returns a one-line summary of the status.
func (s Status) String() string {
	power := "off"
	if s.Power {
		power = "on"
	}
	return fmt.Sprintf("power=%s color=%s brightness=%d sound=%s volume=%d",
		power, s.Color, s.Brightness, s.Sound, s.Volume)
}

type marker struct {
	name   string
	offset int
	want   byte
}

var statusMarkers = []marker{
	{name: "color", offset: offsetColorMarker, want: MarkerColor},
	{name: "audio", offset: offsetAudioMarker, want: MarkerAudio},
	{name: "power", offset: offsetPowerMarker, want: MarkerPower},
}

// DecodeStatus decodes a FEEDBACK packet.
// It returns a *DecodeError if the packet is shorter than StatusPacketSize
// or any section marker does not match. Bytes past offset 14 are ignored.
func DecodeStatus(packet []byte) (Status, error) {
	if len(packet) < StatusPacketSize {
		return Status{}, &DecodeError{Length: len(packet)}
	}

	for _, m := range statusMarkers {
		if got := packet[m.offset]; got != m.want {
			return Status{}, &DecodeError{
				Length: len(packet),
				Marker: m.name,
				Offset: m.offset,
				Want:   m.want,
				Got:    got,
			}
		}
	}

	return Status{
		Color: Color{
			Red:   packet[offsetRed],
			Green: packet[offsetGreen],
			Blue:  packet[offsetBlue],
		},
		Brightness: packet[offsetBrightness],
		Sound:      SoundMode(packet[offsetSound]),
		Volume:     packet[offsetVolume],
		Power:      packet[offsetPower]&PowerOffMask == 0,
	}, nil
}

// EncodeStatus builds a StatusPacketSize-byte FEEDBACK packet for s.
// Power off is encoded with both flag bits set.
func EncodeStatus(s Status) []byte {
	packet := make([]byte, StatusPacketSize)
	packet[offsetColorMarker] = MarkerColor
	packet[offsetRed] = s.Color.Red
	packet[offsetGreen] = s.Color.Green
	packet[offsetBlue] = s.Color.Blue
	packet[offsetBrightness] = s.Brightness
	packet[offsetAudioMarker] = MarkerAudio
	packet[offsetSound] = uint8(s.Sound)
	packet[offsetVolume] = s.Volume
	packet[offsetPowerMarker] = MarkerPower
	if !s.Power {
		packet[offsetPower] = PowerOffMask
	}
	return packet
}
