package palette

import (
	"os"
	"testing"
	"time"
)

func TestWatchRequiresLoadablePalette(t *testing.T) {
	if _, err := Watch("/no/such/palette.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatchDeliversReload(t *testing.T) {
	path := writePalette(t, "name: One\ncolors:\n  - name: A\n    hex: \"#112233\"\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	next := "name: Two\ncolors:\n  - name: B\n    hex: \"#445566\"\n"
	if err := os.WriteFile(path, []byte(next), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case p, ok := <-w.Updates():
		if !ok {
			t.Fatal("updates channel closed unexpectedly")
		}
		if p.Name != "Two" {
			t.Errorf("reloaded palette %q, want Two", p.Name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatchSkipsBrokenRewrite(t *testing.T) {
	path := writePalette(t, "name: Good\ncolors:\n  - name: A\n    hex: \"#112233\"\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("name: [broken\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// The broken write must not deliver anything; a following good write must.
	good := "name: Fixed\ncolors:\n  - name: A\n    hex: \"#112233\"\n"
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte(good), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-w.Updates():
		if p.Name != "Fixed" {
			t.Errorf("got palette %q, want Fixed", p.Name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := writePalette(t, "name: One\ncolors:\n  - name: A\n    hex: \"#112233\"\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}

	// The updates channel drains and closes.
	select {
	case _, ok := <-w.Updates():
		if ok {
			// A reload may have landed before close; the channel still closes.
			if _, ok := <-w.Updates(); ok {
				t.Error("updates channel did not close")
			}
		}
	case <-time.After(2 * time.Second):
		t.Error("updates channel did not close after Close")
	}
}
