// Command shpinfo prints the header and record summary of .shp files.
//
//	shpinfo [--records] [--strict] [--bbox xmin,ymin,xmax,ymax] FILE...
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/beetlebugorg/shapefile/pkg/shapefile"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("shpinfo: ")

	app := newApp(os.Stdout)
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Printf("error: %v", err)
		os.Exit(2)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "shpinfo",
		Usage:     "Describe the contents of ESRI shapefiles.",
		UsageText: "shpinfo [options] FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "records",
				Aliases: []string{"r"},
				Usage:   "print one line per record",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "reject records whose type differs from the header and files whose length disagrees with the header",
			},
			&cli.StringFlag{
				Name:  "bbox",
				Usage: "only report records intersecting `xmin,ymin,xmax,ymax`",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return errors.New(cmd.UsageText)
			}

			var query *shapefile.BoundingBox
			if s := cmd.String("bbox"); s != "" {
				b, err := parseBBox(s)
				if err != nil {
					return err
				}
				query = &b
			}

			opts := shapefile.DefaultLoadOptions()
			opts.SkipErrors = true
			opts.ErrorLog = os.Stderr
			opts.Read.StrictShapeType = cmd.Bool("strict")
			opts.Read.StrictFileLength = cmd.Bool("strict")

			files, errs := shapefile.LoadFiles(ctx, paths, opts)
			for _, f := range files {
				describe(out, f, query, cmd.Bool("records"))
			}
			if len(errs) > 0 {
				return errors.Newf("%d of %d files failed to load", len(errs), len(paths))
			}
			return nil
		},
	}
}

func describe(out io.Writer, f *shapefile.File, query *shapefile.BoundingBox, records bool) {
	h := f.Header
	fmt.Fprintf(out, "%s\n", f.Path)
	fmt.Fprintf(out, "  type:    %v\n", h.ShapeType)
	fmt.Fprintf(out, "  length:  %d bytes\n", h.FileLength)
	fmt.Fprintf(out, "  records: %d\n", len(f.Shapes))
	fmt.Fprintf(out, "  bbox:    %g %g %g %g\n", h.BBox.XMin, h.BBox.YMin, h.BBox.XMax, h.BBox.YMax)
	if h.ShapeType.HasZ() {
		fmt.Fprintf(out, "  z:       %s\n", formatRange(h.ZRange))
	}
	if h.ShapeType.HasM() {
		fmt.Fprintf(out, "  m:       %s\n", formatRange(h.MRange))
	}

	selected := make([]int, len(f.Shapes))
	for i := range selected {
		selected[i] = i
	}
	if query != nil {
		selected = shapefile.NewIndex(f.Shapes).Search(*query)
		fmt.Fprintf(out, "  matched: %d\n", len(selected))
	}
	if !records {
		return
	}
	for _, i := range selected {
		s := f.Shapes[i]
		line := fmt.Sprintf("  #%d %v", i+1, s.ShapeType())
		if b, ok := shapefile.ShapeBounds(s); ok {
			line += fmt.Sprintf(" [%g %g %g %g]", b.XMin, b.YMin, b.XMax, b.YMax)
		}
		if mp, ok := shapefile.MultiPartOf(s); ok {
			line += fmt.Sprintf(" parts=%d points=%d", mp.NumParts(), mp.NumPoints())
		}
		fmt.Fprintln(out, line)
	}
}

func formatRange(r shapefile.Range) string {
	if r.IsNoData() {
		return "no data"
	}
	return fmt.Sprintf("%g %g", r.Min, r.Max)
}

func parseBBox(s string) (shapefile.BoundingBox, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return shapefile.BoundingBox{}, errors.Newf("bbox %q: expected xmin,ymin,xmax,ymax", s)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return shapefile.BoundingBox{}, errors.Wrapf(err, "bbox %q", s)
		}
		v[i] = n
	}
	b := shapefile.BoundingBox{XMin: v[0], YMin: v[1], XMax: v[2], YMax: v[3]}
	if b.XMin > b.XMax || b.YMin > b.YMax {
		return shapefile.BoundingBox{}, errors.Newf("bbox %q: min exceeds max", s)
	}
	return b, nil
}
