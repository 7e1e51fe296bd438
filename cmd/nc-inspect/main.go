package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	dstv "github.com/Symple44/go-dstv"
	"github.com/Symple44/go-dstv/transform"
)

func main() {
	showGlobal := flag.Bool("g", false, "also show global coordinates")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [options] input.nc1\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	fname := flag.Arg(0)
	if !dstv.IsNCName(fname) {
		fmt.Fprintf(os.Stderr, "Warning: %s does not look like a DSTV NC file\n", fname)
	}

	f, err := dstv.Open(fname, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", fname, err)
		os.Exit(1)
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}

	for _, rec := range f.Profiles {
		fmt.Printf("piece %d: %s  %s  L=%.2f  (%s)\n",
			rec.PieceNumber, rec.PieceID, rec.Designation, rec.Length, rec.Family)
		fmt.Printf("  %dx  %s  h=%.2f w=%.2f tw=%.2f tf=%.2f\n",
			rec.Quantity, rec.Grade,
			rec.Dims.Height, rec.Dims.Width,
			rec.Dims.WebThickness, rec.Dims.FlangeThickness)
		for _, feat := range rec.Features {
			line := "  " + describe(feat)
			if *showGlobal {
				face, local := feat.Position()
				g := transform.ToGlobal(rec.Family, face, rec.Dims, local)
				line += fmt.Sprintf("  -> (%.2f, %.2f, %.2f)", g.X, g.Y, g.Z)
			}
			fmt.Println(clip(line, width))
		}
	}

	if len(f.Warnings) > 0 {
		fmt.Printf("%d warnings:\n", len(f.Warnings))
		for _, w := range f.Warnings {
			fmt.Println(clip("  "+w.Error(), width))
		}
	}
}

func describe(f dstv.Feature) string {
	switch f := f.(type) {
	case *dstv.Hole:
		return f.String()
	case *dstv.Slot:
		return f.String()
	case *dstv.OuterContour:
		return f.String()
	case *dstv.InnerContour:
		return f.String()
	case *dstv.Marking:
		return f.String()
	case *dstv.SpecialCut:
		return fmt.Sprintf("special cut at (%g, %g) on %s", f.X, f.Y, f.Face)
	case *dstv.PowderMark:
		return fmt.Sprintf("powder mark, %d points on %s", len(f.Points), f.Face)
	case *dstv.PunchMark:
		return fmt.Sprintf("punch mark at (%g, %g) on %s", f.X, f.Y, f.Face)
	case *dstv.Tolerance:
		return fmt.Sprintf("length tolerance +%g/%g", f.Upper, f.Lower)
	case *dstv.Camber:
		return fmt.Sprintf("camber %g", f.Height)
	case *dstv.SpecialProfile:
		return fmt.Sprintf("special cross-section, %d points", len(f.Points))
	case *dstv.Bend:
		return fmt.Sprintf("bend at x=%g, %g deg", f.X, f.Angle)
	}
	return fmt.Sprintf("%T", f)
}

func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return strings.TrimRight(s[:width-3], " ") + "..."
}
