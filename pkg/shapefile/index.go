package shapefile

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Index answers bounding box queries over a decoded shape collection.
//
// Entries refer to shapes by their 0-based position in the collection, which
// is the record number minus one. Null and empty shapes are not indexed.
//
// Example:
//
//	shapes, _ := reader.Read()
//	idx := shapefile.NewIndex(shapes)
//	for _, i := range idx.Search(shapefile.BoundingBox{XMin: 0, YMin: 0, XMax: 10, YMax: 10}) {
//	    fmt.Println(i+1, shapes[i].ShapeType())
//	}
type Index struct {
	rtree  *rtreego.Rtree
	bounds BoundingBox
	count  int
}

// indexEntry wraps one shape extent for R-tree storage.
type indexEntry struct {
	index int
	bbox  BoundingBox
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect {
	return toRect(e.bbox)
}

// minExtent pads zero-width and zero-height boxes (points, axis-aligned
// lines). The R-tree requires every side to be positive.
const minExtent = 1e-9

func toRect(b BoundingBox) rtreego.Rect {
	w, h := b.Width(), b.Height()
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.XMin, b.YMin}, []float64{w, h})
	return rect
}

// NewIndex builds an R-tree over the extents of shapes, recomputed from
// their coordinates.
func NewIndex(shapes []Shape) *Index {
	// 2D, min=25 children, max=50 children
	idx := &Index{rtree: rtreego.NewTree(2, 25, 50)}
	for i, s := range shapes {
		if s == nil {
			continue
		}
		b, ok := ShapeBounds(s)
		if !ok {
			continue
		}
		if idx.count == 0 {
			idx.bounds = b
		} else {
			idx.bounds = idx.bounds.Union(b)
		}
		idx.rtree.Insert(&indexEntry{index: i, bbox: b})
		idx.count++
	}
	return idx
}

// Search returns the positions of shapes whose extent intersects b, in
// ascending order.
func (idx *Index) Search(b BoundingBox) []int {
	if idx.count == 0 {
		return nil
	}
	// Grow the query so boxes that only touch it are still candidates.
	query := BoundingBox{XMin: b.XMin - minExtent, YMin: b.YMin - minExtent, XMax: b.XMax + minExtent, YMax: b.YMax + minExtent}
	spatials := idx.rtree.SearchIntersect(toRect(query))
	result := make([]int, 0, len(spatials))
	for _, sp := range spatials {
		e := sp.(*indexEntry)
		// The R-tree works on padded rectangles; confirm against the exact box.
		if e.bbox.Intersects(b) {
			result = append(result, e.index)
		}
	}
	sort.Ints(result)
	return result
}

// Len returns the number of indexed shapes.
func (idx *Index) Len() int { return idx.count }

// Bounds returns the union of all indexed extents.
func (idx *Index) Bounds() BoundingBox { return idx.bounds }
