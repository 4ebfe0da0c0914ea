package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 30), uint8(y * 30), 120, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "sprite.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return path
}

func TestLoaderDeliversDecodedImage(t *testing.T) {
	path := writeTestPNG(t)

	l := NewLoader()
	defer l.Close()

	l.Req <- Request{Key: "sprite", Path: path}

	select {
	case res := <-l.Res:
		if res.Err != nil {
			t.Fatalf("load failed: %v", res.Err)
		}
		if res.Key != "sprite" {
			t.Fatalf("key mismatch: got %q want %q", res.Key, "sprite")
		}
		b := res.Image.Bounds()
		if b.Dx() != 8 || b.Dy() != 8 {
			t.Fatalf("unexpected bounds: %+v", b)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for load result")
	}
}

func TestLoaderReportsMissingFile(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	l.Req <- Request{Key: "nope", Path: filepath.Join(t.TempDir(), "absent.png")}

	select {
	case res := <-l.Res:
		if res.Err == nil {
			t.Fatal("expected an error for a missing file")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for load result")
	}
}

func TestLoaderCloseIsIdempotentUnderBackpressure(t *testing.T) {
	path := writeTestPNG(t)

	l := NewLoader()
	defer l.Close()

	for i := range 256 {
		select {
		case l.Req <- Request{
			Key:  strconv.Itoa(i),
			Path: path,
		}:
		default:
		}
	}

	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		l.Close()
		l.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("loader close blocked under backpressure")
	}
}
