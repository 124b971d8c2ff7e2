package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"

	"github.com/m3z0id/chroma/bitmap"
)

func v5Headers() (bitmap.FileHeader, bitmap.InfoHeader) {
	fh := bitmap.FileHeader{Signature: bitmap.Signature, FileSize: 162, DataOffset: 138}
	ih := bitmap.InfoHeader{
		Shape:         bitmap.ShapeV5,
		Size:          124,
		Width:         3,
		Height:        -2,
		Planes:        1,
		BitCount:      24,
		ImageSize:     24,
		XPelsPerMeter: 2835,
		YPelsPerMeter: 2835,
		Masks:         &bitmap.ChannelMasks{Red: 0xff0000, Green: 0xff00, Blue: 0xff},
		ColorSpace: &bitmap.ColorSpace{
			Type:     bitmap.SRGB,
			Red:      bitmap.Endpoint{X: 0x10000, Y: 0x8000, Z: 1},
			GammaRed: 0x23333,
		},
		Profile: &bitmap.Profile{Intent: bitmap.IntentImages, Data: 16, Size: 4},
	}
	return fh, ih
}

func TestBuild(t *testing.T) {
	got := Build(v5Headers())
	want := Header{
		Signature:  "0x4D42",
		FileSize:   162,
		DataOffset: 138,
		Info: Info{
			Size:     124,
			Shape:    "v5",
			Width:    3,
			Height:   -2,
			Planes:   1,
			BitCount: 24,
			Extended: &Extended{ImageSize: 24, XPelsPerMeter: 2835, YPelsPerMeter: 2835},
			Masks:    &Masks{Red: "0x00FF0000", Green: "0x0000FF00", Blue: "0x000000FF", Alpha: "0x00000000"},
			ColorSpace: &ColorSpace{
				Type:  "sRGB",
				Red:   Endpoint{"1.000000", "0.500000", "0.000015"},
				Green: Endpoint{"0.000000", "0.000000", "0.000000"},
				Blue:  Endpoint{"0.000000", "0.000000", "0.000000"},
				Gamma: Gamma{"2.199997", "0.000000", "0.000000"},
			},
			Profile: &Profile{Intent: "Maintaining Contrast", IntentValue: 4, Data: 16, Size: 4},
		},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", d)
	}
}

func TestBuildPartialShapes(t *testing.T) {
	core := Build(bitmap.FileHeader{}, bitmap.InfoHeader{Shape: bitmap.ShapeCore, Size: 12, Width: 1, Height: 1, Planes: 1, BitCount: 24})
	if core.Info.Extended != nil || core.Info.Masks != nil || core.Info.ColorSpace != nil || core.Info.Profile != nil {
		t.Errorf("core report has extension blocks: %+v", core.Info)
	}

	v2 := Build(bitmap.FileHeader{}, bitmap.InfoHeader{Shape: bitmap.ShapeV2, Size: 52, Masks: &bitmap.ChannelMasks{Alpha: 7}})
	if v2.Info.Masks == nil || v2.Info.Masks.Alpha != "" {
		t.Errorf("v2 masks = %+v", v2.Info.Masks)
	}

	unknown := Build(bitmap.FileHeader{}, bitmap.InfoHeader{Size: 64})
	if d := cmp.Diff(Info{Size: 64, Shape: "unknown"}, unknown.Info); d != "" {
		t.Errorf("unknown shape mismatch (-want +got):\n%s", d)
	}

	_, ih := v5Headers()
	ih.ColorSpace.Type = 0x12345678
	ih.Profile.Intent = 3
	odd := Build(bitmap.FileHeader{}, ih)
	if odd.Info.ColorSpace.Type != "0x12345678" || odd.Info.Profile.Intent != "unknown" {
		t.Errorf("unrecognized values rendered as %q, %q", odd.Info.ColorSpace.Type, odd.Info.Profile.Intent)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, Build(v5Headers())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, line := range []string{
		"=== BMP Header ===",
		"Signature          : 0x4D42",
		"=== BMP Info Header ===",
		"Header Size        : 124 bytes (v5)",
		"Red Mask           : 0x00FF0000",
		"Alpha Mask         : 0x00000000",
		"Color Space        : sRGB",
		"Red Endpoint       : 1.000000; 0.500000; 0.000015",
		"Rendering Intent   : Maintaining Contrast (4)",
	} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("missing line %q in:\n%s", line, out)
		}
	}
}

func TestWriteTextShort(t *testing.T) {
	var buf bytes.Buffer
	h := Build(bitmap.FileHeader{}, bitmap.InfoHeader{Shape: bitmap.ShapeCore, Size: 12, Width: 1, Height: 1, Planes: 1, BitCount: 24})
	if err := WriteText(&buf, h); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Header Size        : 12 bytes (core)\n") {
		t.Errorf("unexpected core report:\n%s", out)
	}
	if strings.Contains(out, "Compression") || strings.Contains(out, "Mask") {
		t.Errorf("core report lists v1 fields:\n%s", out)
	}

	buf.Reset()
	if err := WriteText(&buf, Build(bitmap.FileHeader{}, bitmap.InfoHeader{Size: 64})); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "Header Size        : 64 bytes (unknown)\n") {
		t.Errorf("unexpected unknown report:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	want := Build(v5Headers())
	var buf bytes.Buffer
	if err := WriteYAML(&buf, want); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "shape: v5\n") {
		t.Errorf("unexpected YAML:\n%s", buf.String())
	}

	var got Header
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("YAML does not read back (-want +got):\n%s", d)
	}
}
