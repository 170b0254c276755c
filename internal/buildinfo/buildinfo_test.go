package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "v1.2.0", "0123456789abcdef"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short() = %q, want v1.2.0", got)
	}
	Version = "dev"
	if got := Short(); got != "0123456" {
		t.Fatalf("Short() = %q, want 0123456", got)
	}
	Commit = "abc"
	if got := Short(); got != "abc" {
		t.Fatalf("Short() = %q, want abc", got)
	}
}
