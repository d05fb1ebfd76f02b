package bonfire

import (
	"errors"
	"testing"

	"emberfall/internal/config"
	"emberfall/internal/fire"
)

func TestNewRejectsDegenerateGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := New(cfg); !errors.Is(err, fire.ErrInvalidDimension) {
		t.Fatalf("err = %v, expected fire.ErrInvalidDimension", err)
	}
}

func TestFromConfigKeepsDefaultsForMissingValues(t *testing.T) {
	got := fromConfig(nil)
	if got != DefaultConfig() {
		t.Fatalf("fromConfig(nil) = %+v, expected defaults", got)
	}

	loaded := &config.Config{}
	loaded.Fire.Width = 99
	got = fromConfig(loaded)
	if got.Width != 99 {
		t.Fatalf("Width = %d, expected override 99", got.Width)
	}
	if got.Height != DefaultConfig().Height {
		t.Fatalf("Height = %d, expected default %d", got.Height, DefaultConfig().Height)
	}
}

func TestSceneMaterializesPixels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 30, 20
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Reset(1)
	for i := 0; i < 5; i++ {
		s.Tick(s.StepSize())
	}

	size := s.PixelSize()
	if size.W != 30 || size.H != 20 {
		t.Fatalf("PixelSize = %+v", size)
	}
	buf := make([]byte, size.W*size.H*4)
	s.Pixels(buf)

	// The bottom row burns at full heat: opaque white.
	base := (size.H - 1) * size.W * 4
	for i := 0; i < 4; i++ {
		if buf[base+i] != 255 {
			t.Fatalf("bottom row byte %d = %d, expected 255", i, buf[base+i])
		}
	}
}
