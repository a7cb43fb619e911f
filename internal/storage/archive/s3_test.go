package archive

import "testing"

func TestNewS3(t *testing.T) {
	backend, err := NewS3(S3Config{
		Bucket:    "journal-archive",
		Region:    "us-east-1",
		AccessKey: "test",
		SecretKey: "test",
		Prefix:    "novacore/",
	})
	if err != nil {
		t.Fatalf("NewS3() error = %v", err)
	}

	// Trailing slash on the prefix is trimmed before key construction.
	if got := backend.key("2025/06/doc.json"); got != "novacore/2025/06/doc.json" {
		t.Errorf("key() = %q", got)
	}
}

func TestNewS3_NoPrefix(t *testing.T) {
	backend, err := NewS3(S3Config{Bucket: "b", Region: "us-east-1"})
	if err != nil {
		t.Fatalf("NewS3() error = %v", err)
	}
	if got := backend.key("doc.json"); got != "doc.json" {
		t.Errorf("key() = %q, want doc.json", got)
	}
}
