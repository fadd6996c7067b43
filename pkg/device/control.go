package device

import "github.com/hatch-rest/restctl/pkg/protocol"

// PowerOn switches the device on.
func (s *Session) PowerOn() (protocol.Status, error) {
	return s.SetPower(true)
}

// PowerOff switches the device off.
func (s *Session) PowerOff() (protocol.Status, error) {
	return s.SetPower(false)
}

// SetPower switches the device on or off.
func (s *Session) SetPower(on bool) (protocol.Status, error) {
	return s.SendCommand(protocol.PowerCommand(on))
}

// SetSound selects a sound mode. Codes outside the named set are sent as-is.
func (s *Session) SetSound(mode protocol.SoundMode) (protocol.Status, error) {
	cmd, err := protocol.SoundCommand(int(mode))
	if err != nil {
		return protocol.Status{}, err
	}
	return s.SendCommand(cmd)
}

// SetVolume sets the volume (0-255).
func (s *Session) SetVolume(level int) (protocol.Status, error) {
	cmd, err := protocol.VolumeCommand(level)
	if err != nil {
		return protocol.Status{}, err
	}
	return s.SendCommand(cmd)
}

// SetColor changes the color and keeps the device's current brightness.
func (s *Session) SetColor(red, green, blue int) (protocol.Status, error) {
	if _, err := protocol.ColorCommand(red, green, blue, 0); err != nil {
		return protocol.Status{}, err
	}

	defer s.lockOp()()

	current, err := s.refreshLocked("pre-read color")
	if err != nil {
		return protocol.Status{}, err
	}
	cmd, err := protocol.ColorCommand(red, green, blue, int(current.Brightness))
	if err != nil {
		return protocol.Status{}, err
	}
	return s.sendLocked(cmd)
}

// SetBrightness changes the brightness and keeps the device's current color.
func (s *Session) SetBrightness(brightness int) (protocol.Status, error) {
	if _, err := protocol.ColorCommand(0, 0, 0, brightness); err != nil {
		return protocol.Status{}, err
	}

	defer s.lockOp()()

	current, err := s.refreshLocked("pre-read brightness")
	if err != nil {
		return protocol.Status{}, err
	}
	c := current.Color
	cmd, err := protocol.ColorCommand(int(c.Red), int(c.Green), int(c.Blue), brightness)
	if err != nil {
		return protocol.Status{}, err
	}
	return s.sendLocked(cmd)
}
