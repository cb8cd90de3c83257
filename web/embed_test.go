package web

import "testing"

func TestStaticFileSystem(t *testing.T) {
	fsys, err := NewStaticFileSystem()
	if err != nil {
		t.Fatalf("NewStaticFileSystem failed: %v", err)
	}

	if !fsys.Exists("/index.html") {
		t.Error("index.html missing from the embedded UI")
	}
	if fsys.Exists("/no-such-file.js") {
		t.Error("Exists reports a file that is not embedded")
	}

	f, err := fsys.Open("/index.html")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	f.Close()
}
