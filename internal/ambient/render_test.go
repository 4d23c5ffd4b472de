package ambient

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
)

func TestRenderWAVWritesStereoPCM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ambient.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	cfg := DefaultConfig()
	if err := RenderWAV(f, cfg, time.Second); err != nil {
		f.Close()
		t.Fatalf("RenderWAV() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		t.Fatal("rendered file is not a valid WAV")
	}
	if dec.NumChans != 2 || int(dec.SampleRate) != cfg.SampleRate || dec.BitDepth != 16 {
		t.Fatalf("format = %d ch, %d Hz, %d bit", dec.NumChans, dec.SampleRate, dec.BitDepth)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if got, want := len(buf.Data), cfg.SampleRate*2; got != want {
		t.Fatalf("decoded %d samples, want %d", got, want)
	}
}

func TestRenderWAVRejectsEmptyDuration(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()
	if err := RenderWAV(f, DefaultConfig(), 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}
