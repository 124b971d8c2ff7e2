package report

import (
	"fmt"
	"io"
)

// lineWriter writes "label : value" lines and keeps the first write error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) title(s string) {
	if lw.err == nil {
		_, lw.err = fmt.Fprintf(lw.w, "=== %s ===\n", s)
	}
}

func (lw *lineWriter) line(label, format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, "%-18s : %s\n", label, fmt.Sprintf(format, args...))
}

// WriteText writes h as aligned, human readable text.
func WriteText(w io.Writer, h Header) error {
	lw := &lineWriter{w: w}

	lw.title("BMP Header")
	lw.line("Signature", "%s", h.Signature)
	lw.line("File Size", "%d bytes", h.FileSize)
	lw.line("Data Offset", "%d bytes", h.DataOffset)

	info := h.Info
	lw.title("BMP Info Header")
	lw.line("Header Size", "%d bytes (%s)", info.Size, info.Shape)
	if info.Shape == "unknown" {
		return lw.err
	}
	lw.line("Image Width", "%d px", info.Width)
	lw.line("Image Height", "%d px", info.Height)
	lw.line("Color Planes", "%d", info.Planes)
	lw.line("Bits per Pixel", "%d", info.BitCount)

	if e := info.Extended; e != nil {
		lw.line("Compression", "%d", e.Compression)
		lw.line("Image Size", "%d bytes", e.ImageSize)
		lw.line("X Pixels per Meter", "%d", e.XPelsPerMeter)
		lw.line("Y Pixels per Meter", "%d", e.YPelsPerMeter)
		lw.line("Colors Used", "%d", e.ColorsUsed)
		lw.line("Important Colors", "%d", e.ColorsImportant)
	}
	if m := info.Masks; m != nil {
		lw.line("Red Mask", "%s", m.Red)
		lw.line("Green Mask", "%s", m.Green)
		lw.line("Blue Mask", "%s", m.Blue)
		if m.Alpha != "" {
			lw.line("Alpha Mask", "%s", m.Alpha)
		}
	}
	if cs := info.ColorSpace; cs != nil {
		lw.line("Color Space", "%s", cs.Type)
		lw.line("Red Endpoint", "%s; %s; %s", cs.Red.X, cs.Red.Y, cs.Red.Z)
		lw.line("Red Gamma", "%s", cs.Gamma.Red)
		lw.line("Green Endpoint", "%s; %s; %s", cs.Green.X, cs.Green.Y, cs.Green.Z)
		lw.line("Green Gamma", "%s", cs.Gamma.Green)
		lw.line("Blue Endpoint", "%s; %s; %s", cs.Blue.X, cs.Blue.Y, cs.Blue.Z)
		lw.line("Blue Gamma", "%s", cs.Gamma.Blue)
	}
	if p := info.Profile; p != nil {
		lw.line("Rendering Intent", "%s (%d)", p.Intent, p.IntentValue)
		lw.line("ICC Profile Offset", "%d", p.Data)
		lw.line("ICC Profile Size", "%d", p.Size)
	}
	return lw.err
}
