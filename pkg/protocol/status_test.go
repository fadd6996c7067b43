package protocol

import (
	"errors"
	"testing"
)

// examplePacket is a captured status with color (16,32,48), brightness 255,
// sound stream, volume 100, power on.
func examplePacket() []byte {
	return []byte{
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x43, 0x10, 0x20, 0x30, 0xFF,
		0x53, 0x02, 0x64,
		0x50, 0x00,
	}
}

func TestDecodeStatusExample(t *testing.T) {
	s, err := DecodeStatus(examplePacket())
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}

	want := Status{
		Color:      Color{Red: 16, Green: 32, Blue: 48},
		Brightness: 255,
		Sound:      SoundStream,
		Volume:     100,
		Power:      true,
	}
	if s != want {
		t.Errorf("DecodeStatus() = %+v, want %+v", s, want)
	}
}

func TestDecodeStatusIgnoresTrailingBytes(t *testing.T) {
	packet := append(examplePacket(), 0xDE, 0xAD, 0xBE, 0xEF)

	s, err := DecodeStatus(packet)
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}
	if s.Volume != 100 {
		t.Errorf("Volume = %d, want 100", s.Volume)
	}
}

func TestDecodeStatusPower(t *testing.T) {
	tests := []struct {
		flags byte
		want  bool
	}{
		{0x00, true},
		{0x3F, true},
		{0x01, true},
		{0x40, false},
		{0x80, false},
		{0xC0, false},
		{0xFF, false},
	}

	for _, tt := range tests {
		packet := examplePacket()
		packet[14] = tt.flags

		s, err := DecodeStatus(packet)
		if err != nil {
			t.Fatalf("flags 0x%02x: DecodeStatus() error = %v", tt.flags, err)
		}
		if s.Power != tt.want {
			t.Errorf("flags 0x%02x: Power = %v, want %v", tt.flags, s.Power, tt.want)
		}
	}
}

func TestDecodeStatusMarkerMismatch(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   byte
	}{
		{"color", 5, MarkerColor},
		{"audio", 10, MarkerAudio},
		{"power", 13, MarkerPower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet := examplePacket()
			packet[tt.offset] = 0x00

			_, err := DecodeStatus(packet)
			if !errors.Is(err, ErrProtocol) {
				t.Fatalf("DecodeStatus() error = %v, want ErrProtocol", err)
			}

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not *DecodeError", err)
			}
			if de.Marker != tt.name {
				t.Errorf("Marker = %q, want %q", de.Marker, tt.name)
			}
			if de.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", de.Offset, tt.offset)
			}
			if de.Want != tt.want || de.Got != 0x00 {
				t.Errorf("Want/Got = 0x%02x/0x%02x, want 0x%02x/0x00", de.Want, de.Got, tt.want)
			}
		})
	}
}

func TestDecodeStatusFirstFailingMarkerReported(t *testing.T) {
	packet := examplePacket()
	packet[5] = 0x01
	packet[13] = 0x02

	_, err := DecodeStatus(packet)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("DecodeStatus() error = %v, want *DecodeError", err)
	}
	if de.Marker != "color" {
		t.Errorf("Marker = %q, want color", de.Marker)
	}
}

func TestDecodeStatusTooShort(t *testing.T) {
	for _, n := range []int{0, 1, 5, 14} {
		_, err := DecodeStatus(examplePacket()[:n])
		if !errors.Is(err, ErrProtocol) {
			t.Errorf("len %d: error = %v, want ErrProtocol", n, err)
			continue
		}
		var de *DecodeError
		if errors.As(err, &de) && (de.Marker != "" || de.Length != n) {
			t.Errorf("len %d: got %+v", n, de)
		}
	}
}

func TestDecodeStatusUnknownSound(t *testing.T) {
	packet := examplePacket()
	packet[11] = 0xEE

	s, err := DecodeStatus(packet)
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}
	if s.Sound.Known() {
		t.Error("Sound.Known() = true for 0xEE")
	}
	if s.Sound.Code() != 0xEE {
		t.Errorf("Sound.Code() = 0x%02x, want 0xee", s.Sound.Code())
	}
	if s.Sound.String() != "unknown(0xee)" {
		t.Errorf("Sound.String() = %q", s.Sound.String())
	}
}

func TestDecodeStatusDeterministic(t *testing.T) {
	packet := examplePacket()
	first, _ := DecodeStatus(packet)
	for i := 0; i < 10; i++ {
		s, err := DecodeStatus(packet)
		if err != nil || s != first {
			t.Fatalf("iteration %d: got %+v, %v", i, s, err)
		}
	}
}

func TestEncodeStatusRoundTrip(t *testing.T) {
	statuses := []Status{
		{},
		{Power: true},
		{Color: Color{1, 2, 3}, Brightness: 4, Sound: SoundOcean, Volume: 5, Power: true},
		{Color: Color{255, 255, 255}, Brightness: 255, Sound: SoundMode(0xFF), Volume: 255},
	}

	for _, want := range statuses {
		packet := EncodeStatus(want)
		if len(packet) != StatusPacketSize {
			t.Fatalf("len(EncodeStatus()) = %d", len(packet))
		}
		got, err := DecodeStatus(packet)
		if err != nil {
			t.Fatalf("DecodeStatus(EncodeStatus(%+v)) error = %v", want, err)
		}
		if got != want {
			t.Errorf("round trip = %+v, want %+v", got, want)
		}
	}
}

func TestColorCommandMatchesStatusBytes(t *testing.T) {
	cmd, err := ColorCommand(0x10, 0x20, 0x30, 0xFF)
	if err != nil {
		t.Fatalf("ColorCommand() error = %v", err)
	}
	_, args, err := ParseCommand(cmd)
	if err != nil {
		t.Fatalf("ParseCommand() error = %v", err)
	}

	packet := examplePacket()
	copy(packet[6:10], args)

	s, err := DecodeStatus(packet)
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}
	if s.Color != (Color{0x10, 0x20, 0x30}) || s.Brightness != 0xFF {
		t.Errorf("decoded color=%v brightness=%d", s.Color, s.Brightness)
	}
}

func TestStatusString(t *testing.T) {
	s, _ := DecodeStatus(examplePacket())
	want := "power=on color=#102030 brightness=255 sound=stream volume=100"
	if s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}
}
