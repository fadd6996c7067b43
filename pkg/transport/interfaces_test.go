package transport

import "testing"

func TestParseAddressType(t *testing.T) {
	tests := []struct {
		in      string
		want    AddressType
		wantErr bool
	}{
		{"random", AddressRandom, false},
		{"RANDOM", AddressRandom, false},
		{"public", AddressPublic, false},
		{"static", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAddressType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAddressType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAddressType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAddressTypeString(t *testing.T) {
	if AddressRandom.String() != "random" || AddressPublic.String() != "public" {
		t.Errorf("String() = %q/%q", AddressRandom, AddressPublic)
	}
	if AddressType(9).String() != "unknown" {
		t.Errorf("AddressType(9).String() = %q", AddressType(9))
	}
}
