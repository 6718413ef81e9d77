// Package shapefile reads and writes the geometry stream (.shp) of ESRI
// Shapefiles.
//
// A .shp stream is a fixed 100-byte header followed by length-prefixed
// records. Structural integers are big-endian and everything else is
// little-endian. Records decode into a closed set of Shape variants:
// points, polylines and polygons, each plain (XY), measured (M) or with
// elevation and measure (Z).
//
// # Reading
//
//	f, err := os.Open("roads.shp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	reader, err := shapefile.NewReader(bufio.NewReader(f))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	shapes, err := reader.Read()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lines, err := shapefile.AsPolylines(shapes)
//	for _, line := range lines {
//	    for i := 0; i < line.NumParts(); i++ {
//	        start, end := line.PartRange(i)
//	        fmt.Println(line.Xs[start:end], line.Ys[start:end])
//	    }
//	}
//
// Next decodes one record at a time and returns io.EOF at the end of the
// stream. A stream that ends inside a record fails with *ErrTruncatedRecord.
//
// # Writing
//
//	w := shapefile.NewWriter(out)
//	err := w.WriteShapes(shapefile.ToShapes(lines))
//
// The Writer recomputes every bounding box and Z/M range from coordinates,
// so stale BBox fields on hand-built shapes are never written. All non-null
// shapes must share one type.
//
// # No data
//
// Measures at or below NoData (-1e38), within one part per million, mean
// "no value". They decode to exactly NoData and are excluded from computed
// ranges. A range with no values is NoDataRange().
//
// # Errors
//
// Domain failures are typed (*ErrInvalidFileCode, *ErrUnsupportedShapeType,
// *ErrRecordLengthMismatch, *ErrTruncatedRecord, *ErrMixedShapeTypes,
// *ErrConversion, *ErrInvalidShape, *ErrRecordTooLarge) and wrapped with
// the record and offset where they occurred. Match them with errors.As.
//
// ErrWriterClosed and ErrFileTooLarge are sentinels; match them with
// errors.Is. MultiPoint and MultiPatch records fail with
// *ErrUnsupportedShapeType.
package shapefile
