// Package report renders decoded bitmap headers for people and for tools.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/m3z0id/chroma/bitmap"
)

type Header struct {
	Signature  string `yaml:"signature"`
	FileSize   uint32 `yaml:"file_size"`
	DataOffset uint32 `yaml:"data_offset"`
	Info       Info   `yaml:"info"`
}

// Info mirrors bitmap.InfoHeader. Blocks the shape does not carry are nil.
type Info struct {
	Size     uint32 `yaml:"size"`
	Shape    string `yaml:"shape"`
	Width    int32  `yaml:"width,omitempty"`
	Height   int32  `yaml:"height,omitempty"`
	Planes   uint16 `yaml:"planes,omitempty"`
	BitCount uint16 `yaml:"bit_count,omitempty"`

	Extended   *Extended   `yaml:"extended,omitempty"`
	Masks      *Masks      `yaml:"masks,omitempty"`
	ColorSpace *ColorSpace `yaml:"color_space,omitempty"`
	Profile    *Profile    `yaml:"profile,omitempty"`
}

// Extended holds the fields every shape after core adds.
type Extended struct {
	Compression     uint32 `yaml:"compression"`
	ImageSize       uint32 `yaml:"image_size"`
	XPelsPerMeter   uint32 `yaml:"x_pels_per_meter"`
	YPelsPerMeter   uint32 `yaml:"y_pels_per_meter"`
	ColorsUsed      uint32 `yaml:"colors_used"`
	ColorsImportant uint32 `yaml:"colors_important"`
}

type Masks struct {
	Red   string `yaml:"red"`
	Green string `yaml:"green"`
	Blue  string `yaml:"blue"`
	Alpha string `yaml:"alpha,omitempty"`
}

type ColorSpace struct {
	Type  string   `yaml:"type"`
	Red   Endpoint `yaml:"red"`
	Green Endpoint `yaml:"green"`
	Blue  Endpoint `yaml:"blue"`
	Gamma Gamma    `yaml:"gamma"`
}

type Endpoint struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
	Z string `yaml:"z"`
}

type Gamma struct {
	Red   string `yaml:"red"`
	Green string `yaml:"green"`
	Blue  string `yaml:"blue"`
}

type Profile struct {
	Intent      string `yaml:"intent"`
	IntentValue uint32 `yaml:"intent_value"`
	Data        uint32 `yaml:"data"`
	Size        uint32 `yaml:"size"`
}

var intents = map[uint32]string{
	bitmap.IntentBusiness:        "Maintaining Saturation",
	bitmap.IntentGraphics:        "Maintaining Colorimetric Match",
	bitmap.IntentImages:          "Maintaining Contrast",
	bitmap.IntentAbsColorimetric: "Maintaining White Point",
}

var colorSpaceTypes = map[uint32]string{
	bitmap.CalibratedRGB:     "calibrated RGB",
	bitmap.SRGB:              "sRGB",
	bitmap.WindowsColorSpace: "Windows default",
	bitmap.ProfileLinked:     "linked profile",
	bitmap.ProfileEmbedded:   "embedded profile",
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}

func endpoint(e bitmap.Endpoint) Endpoint {
	return Endpoint{e.X.String(), e.Y.String(), e.Z.String()}
}

// Build converts decoded headers into their report form.
func Build(fh bitmap.FileHeader, ih bitmap.InfoHeader) Header {
	h := Header{
		Signature:  fmt.Sprintf("0x%04X", fh.Signature),
		FileSize:   fh.FileSize,
		DataOffset: fh.DataOffset,
		Info: Info{
			Size:  ih.Size,
			Shape: ih.Shape.String(),
		},
	}
	if ih.Shape == bitmap.ShapeUnknown {
		return h
	}

	h.Info.Width = ih.Width
	h.Info.Height = ih.Height
	h.Info.Planes = ih.Planes
	h.Info.BitCount = ih.BitCount

	if ih.Shape >= bitmap.ShapeV1 {
		h.Info.Extended = &Extended{
			Compression:     ih.Compression,
			ImageSize:       ih.ImageSize,
			XPelsPerMeter:   ih.XPelsPerMeter,
			YPelsPerMeter:   ih.YPelsPerMeter,
			ColorsUsed:      ih.ColorsUsed,
			ColorsImportant: ih.ColorsImportant,
		}
	}
	if m := ih.Masks; m != nil {
		h.Info.Masks = &Masks{Red: hex32(m.Red), Green: hex32(m.Green), Blue: hex32(m.Blue)}
		if ih.Shape >= bitmap.ShapeV3 {
			h.Info.Masks.Alpha = hex32(m.Alpha)
		}
	}
	if cs := ih.ColorSpace; cs != nil {
		typ, ok := colorSpaceTypes[cs.Type]
		if !ok {
			typ = hex32(cs.Type)
		}
		h.Info.ColorSpace = &ColorSpace{
			Type:  typ,
			Red:   endpoint(cs.Red),
			Green: endpoint(cs.Green),
			Blue:  endpoint(cs.Blue),
			Gamma: Gamma{cs.GammaRed.String(), cs.GammaGreen.String(), cs.GammaBlue.String()},
		}
	}
	if p := ih.Profile; p != nil {
		intent, ok := intents[p.Intent]
		if !ok {
			intent = "unknown"
		}
		h.Info.Profile = &Profile{
			Intent:      intent,
			IntentValue: p.Intent,
			Data:        p.Data,
			Size:        p.Size,
		}
	}
	return h
}

// WriteYAML writes v, a Header or a value embedding Headers, as a YAML
// document.
func WriteYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal header report: %w", err)
	}
	_, err = w.Write(out)
	return err
}
