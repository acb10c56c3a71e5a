package domain

import "testing"

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		name   string
		source string
		prefix bool
		want   string
	}{
		{"invoice.pdf", "/mail/report.msg", false, "invoice.pdf"},
		{"invoice.pdf", "/mail/report.msg", true, "report.msg invoice.pdf"},
		{"invoice.pdf", "report.msg", true, "report.msg invoice.pdf"},
		{"invoice.pdf", "", true, "invoice.pdf"},
	}

	for _, tt := range tests {
		got := OutputFilename(tt.name, tt.source, tt.prefix)
		if got != tt.want {
			t.Errorf("OutputFilename(%q, %q, %v) = %q, want %q", tt.name, tt.source, tt.prefix, got, tt.want)
		}
	}
}

func TestSuffixedFilename(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"attachment.txt", 1, "attachment_1.txt"},
		{"attachment.txt", 12, "attachment_12.txt"},
		{"archive.tar.gz", 1, "archive.tar_1.gz"},
		{"README", 2, "README_2"},
		{".bashrc", 1, ".bashrc_1"},
	}

	for _, tt := range tests {
		got := SuffixedFilename(tt.name, tt.n)
		if got != tt.want {
			t.Errorf("SuffixedFilename(%q, %d) = %q, want %q", tt.name, tt.n, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"attachment.txt", "attachment.txt"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{`C:\temp\a.txt`, "C__temp_a.txt"},
		{"what?.txt", "what_.txt"},
		{"tab\there.txt", "tabhere.txt"},
		{"..", "unnamed"},
		{".", "unnamed"},
		{"   ", "unnamed"},
		{"", "unnamed"},
		{"résumé.docx", "résumé.docx"},
	}

	for _, tt := range tests {
		got := SanitizeFilename(tt.in)
		if got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
