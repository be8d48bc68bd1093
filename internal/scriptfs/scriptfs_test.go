package scriptfs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover_FindsOnlyXplFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.xpl", "print hi")
	write("b.xpl", "print bye")
	write("readme.txt", "not a script")

	found, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("found %d entries, want 2: %v", len(found), found)
	}

	paths := found.Paths()
	if len(paths) != 2 || filepath.Base(paths[0]) != "a.xpl" || filepath.Base(paths[1]) != "b.xpl" {
		t.Errorf("Paths() = %v, want sorted [a.xpl b.xpl]", paths)
	}
}

func TestFS_OpenRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "only.xpl"), []byte("print x"), 0o644); err != nil {
		t.Fatal(err)
	}
	found, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}

	f, err := found.Open(".")
	if err != nil {
		t.Fatal(err)
	}
	rd, ok := f.(interface {
		ReadDir(int) ([]os.DirEntry, error)
	})
	if !ok {
		t.Fatal("root entry does not implement ReadDirFile")
	}
	entries, err := rd.ReadDir(-1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "only.xpl" {
		t.Errorf("entries = %v, want [only.xpl]", entries)
	}
}
