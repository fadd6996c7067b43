package device

import (
	"strings"

	"github.com/hatch-rest/restctl/pkg/transport"
)

// Target selects the device to connect to. Exactly one field must be set.
type Target struct {
	// Address connects directly without scanning.
	Address string

	// Name scans for a peripheral advertising exactly this name.
	Name string
}

func (t Target) String() string {
	if t.Address != "" {
		return t.Address
	}
	return "name=" + t.Name
}

// FindByName returns the first result whose advertised name equals name.
func FindByName(results []transport.ScanResult, name string) (transport.ScanResult, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return transport.ScanResult{}, false
}

// FindByAddressPrefix returns the first result whose address starts with
// prefix, ignoring case.
func FindByAddressPrefix(results []transport.ScanResult, prefix string) (transport.ScanResult, bool) {
	prefix = strings.ToUpper(prefix)
	for _, r := range results {
		if strings.HasPrefix(strings.ToUpper(r.Address), prefix) {
			return r, true
		}
	}
	return transport.ScanResult{}, false
}
