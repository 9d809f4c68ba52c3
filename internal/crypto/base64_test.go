package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestBase64RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"binary zeros", []byte{0x00, 0x00, 0x00}},
		{"binary all ones", []byte{0xff, 0xff, 0xff}},
		{"binary mixed", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"single byte", []byte{0x42}},
		{"two bytes", []byte{0x42, 0x43}},
		{"signature sized", make([]byte, 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64(tt.data)
			decoded, err := DecodeBase64(encoded)
			if err != nil {
				t.Fatalf("DecodeBase64() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestToBase64_Padding(t *testing.T) {
	encoded := ToBase64([]byte("a"))
	if !strings.HasSuffix(encoded, "==") {
		t.Errorf("ToBase64() = %s, want standard padding", encoded)
	}
}

func TestDecodeBase64_MultipleFormats(t *testing.T) {
	original := []byte{0xfb, 0xff, 0x3f, 0xff, 'h', 'i'}

	tests := []struct {
		name    string
		encoded string
	}{
		{"standard encoding", "+/8//2hp"},
		{"url encoding", "-_8__2hp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeBase64() error = %v", err)
			}
			if !bytes.Equal(decoded, original) {
				t.Errorf("DecodeBase64() = %v, want %v", decoded, original)
			}
		})
	}
}

func TestDecodeBase64_Unpadded(t *testing.T) {
	decoded, err := DecodeBase64("aGVsbG8")
	if err != nil {
		t.Fatalf("DecodeBase64() error = %v", err)
	}
	if string(decoded) != "hello" {
		t.Errorf("DecodeBase64() = %q, want hello", decoded)
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid chars", "!!!invalid!!!"},
		{"percent signs", "%%%"},
		{"spaces in middle", "aGVs bG8="},
		{"single char", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBase64(tt.input); err == nil {
				t.Error("expected error for invalid input")
			}
		})
	}
}
