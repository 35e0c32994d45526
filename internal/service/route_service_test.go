package service

import "testing"

func TestDetectImageContentType(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, ContentTypeJPEG},
		{"png", []byte{0x89, 0x50, 0x4E, 0x47}, ContentTypePNG},
		{"gif falls back", []byte("GIF89a"), ContentTypeOctet},
		{"empty", nil, ContentTypeOctet},
		{"single byte", []byte{0xFF}, ContentTypeOctet},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectImageContentType(tc.data); got != tc.want {
				t.Fatalf("DetectImageContentType = %q, want %q", got, tc.want)
			}
		})
	}
}
