package inkbutton

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadTTFFont(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 20)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	if f.Size() != 20 {
		t.Errorf("Size = %v, want 20", f.Size())
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v, want > 0", f.LineHeight())
	}
	w, h := f.MeasureString("Save")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureString = %vx%v, want positive", w, h)
	}
	if f.Face() == nil {
		t.Error("Face() = nil")
	}
}

func TestTTFFontWithSize(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 10)
	if err != nil {
		t.Fatal(err)
	}
	big := f.WithSize(40)
	wSmall, _ := f.MeasureString("Ink")
	wBig, _ := big.MeasureString("Ink")
	if wBig <= wSmall {
		t.Errorf("40px width %v not larger than 10px width %v", wBig, wSmall)
	}
	if big.Size() != 40 || f.Size() != 10 {
		t.Error("WithSize should not modify the original")
	}
}

func TestLoadTTFFontInvalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestDefaultFont(t *testing.T) {
	f := defaultFont()
	if f == nil {
		t.Fatal("default font unavailable")
	}
	if f != defaultFont() {
		t.Error("default font should be cached")
	}
	if f.Size() != DefaultFontSize {
		t.Errorf("Size = %v, want %v", f.Size(), DefaultFontSize)
	}
}
