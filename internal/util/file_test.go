package util

import (
	"bytes"
	"testing"
)

func TestValidateMimeType(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

	tests := []struct {
		name    string
		content []byte
		wantErr bool
	}{
		{"pdf", []byte("%PDF-1.4\n%some pdf body"), false},
		{"png", pngHeader, false},
		{"zip-packaged document", []byte("PK\x03\x04rest of archive"), false},
		{"html page", []byte("<html><body>not evidence</body></html>"), true},
		{"plain text", []byte("just some words"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := ValidateMimeType(bytes.NewReader(tt.content), AllowedEvidenceMimeTypes)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMimeType() mime=%q err=%v, wantErr=%v", mime, err, tt.wantErr)
			}
		})
	}
}

func TestHasAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"evidence.pdf", true},
		{"Report.DOCX", true},
		{"photo.jpeg", true},
		{"script.sh", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		if got := HasAllowedExtension(tt.filename, AllowedEvidenceExtensions); got != tt.want {
			t.Errorf("HasAllowedExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
