package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// SoundMode is the sound code reported in the status packet and accepted by
// the SN command. Codes outside the named set are valid values; firmware may
// add sounds at any time.
type SoundMode uint8

// Named sound modes.
const (
	SoundNone     SoundMode = 0
	SoundStream   SoundMode = 2
	SoundNoise    SoundMode = 3
	SoundDryer    SoundMode = 4
	SoundOcean    SoundMode = 5
	SoundWind     SoundMode = 6
	SoundRain     SoundMode = 7
	SoundBird     SoundMode = 9
	SoundCrickets SoundMode = 10
	SoundBrahms   SoundMode = 11
	SoundTwinkle  SoundMode = 13
	SoundRockabye SoundMode = 14
)

var soundNames = map[SoundMode]string{
	SoundNone:     "none",
	SoundStream:   "stream",
	SoundNoise:    "noise",
	SoundDryer:    "dryer",
	SoundOcean:    "ocean",
	SoundWind:     "wind",
	SoundRain:     "rain",
	SoundBird:     "bird",
	SoundCrickets: "crickets",
	SoundBrahms:   "brahms",
	SoundTwinkle:  "twinkle",
	SoundRockabye: "rockabye",
}

// Known reports whether s is one of the named sound modes.
func (s SoundMode) Known() bool {
	_, ok := soundNames[s]
	return ok
}

// Code returns the raw sound byte.
func (s SoundMode) Code() uint8 {
	return uint8(s)
}

// String returns the sound name, or unknown(0xNN) for unnamed codes.
func (s SoundMode) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(s))
}

// SoundModes returns the named sound modes in code order.
func SoundModes() []SoundMode {
	return []SoundMode{
		SoundNone, SoundStream, SoundNoise, SoundDryer, SoundOcean, SoundWind,
		SoundRain, SoundBird, SoundCrickets, SoundBrahms, SoundTwinkle, SoundRockabye,
	}
}

// ParseSoundMode parses a sound name (case-insensitive) or a decimal code.
func ParseSoundMode(s string) (SoundMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range soundNames {
		if n == name {
			return mode, nil
		}
	}

	code, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown sound %q", ErrInvalidArgument, s)
	}
	if code < 0 || code > 0xFF {
		return 0, &ArgumentError{Name: "sound", Value: code}
	}
	return SoundMode(code), nil
}
