package cluster

import "math"

// Options configures the clustering index.
type Options struct {
	// MinZoom is the lowest zoom level clusters are generated for.
	MinZoom int
	// MaxZoom is the highest zoom level clusters are generated for;
	// above it every point stands alone.
	MaxZoom int
	// Radius is the cluster radius in pixels at the given Extent.
	Radius float64
	// Extent is the tile extent the radius is expressed against.
	Extent float64
	// NodeSize is the KD-tree leaf size.
	NodeSize int
}

// DefaultOptions mirrors the tuning the map layer runs with.
func DefaultOptions() Options {
	return Options{
		MinZoom:  0,
		MaxZoom:  18,
		Radius:   60,
		Extent:   512,
		NodeSize: 64,
	}
}

// Point is a single input coordinate in WGS84.
type Point struct {
	Lng float64
	Lat float64
}

// Feature is a marker produced for a viewport query: either a cluster
// of two or more points or a single standalone point.
type Feature struct {
	// ClusterID identifies a cluster for expansion-zoom lookups. Zero
	// for standalone points.
	ClusterID int
	// Count is the number of points the marker represents.
	Count int
	// PointIndex is the index of the input point for standalone
	// markers, -1 for clusters.
	PointIndex int
	Lng        float64
	Lat        float64
}

// IsCluster reports whether the feature represents two or more points.
func (f Feature) IsCluster() bool {
	return f.Count > 1
}

const unprocessed = math.MaxInt32

// clusterNode is one entry in a zoom level: a projected input point or
// an aggregated cluster.
type clusterNode struct {
	x, y      float64
	zoom      int
	id        int
	parentID  int
	numPoints int
}

// Index is a static hierarchical clustering index over a point set.
// Load builds one KD-tree per zoom level; queries against a loaded
// index are read-only and safe for concurrent use.
type Index struct {
	opts   Options
	levels [][]clusterNode
	trees  []*kdbush
	loaded bool
}

func NewIndex(opts Options) *Index {
	if opts.Radius <= 0 {
		opts.Radius = 60
	}
	if opts.Extent <= 0 {
		opts.Extent = 512
	}
	if opts.NodeSize <= 0 {
		opts.NodeSize = 64
	}
	if opts.MaxZoom <= 0 {
		opts.MaxZoom = 18
	}
	return &Index{opts: opts}
}

// Load replaces the index contents with the given points and builds
// the per-zoom cluster hierarchy from max zoom down to min zoom.
func (x *Index) Load(points []Point) {
	maxZoom := x.opts.MaxZoom
	x.levels = make([][]clusterNode, maxZoom+2)
	x.trees = make([]*kdbush, maxZoom+2)

	leaves := make([]clusterNode, len(points))
	for i, p := range points {
		leaves[i] = clusterNode{
			x:         lngX(p.Lng),
			y:         latY(p.Lat),
			zoom:      unprocessed,
			id:        i,
			parentID:  -1,
			numPoints: 1,
		}
	}
	x.levels[maxZoom+1] = leaves
	x.trees[maxZoom+1] = buildTree(leaves, x.opts.NodeSize)

	for z := maxZoom; z >= x.opts.MinZoom; z-- {
		level := x.clusterize(z)
		x.levels[z] = level
		x.trees[z] = buildTree(level, x.opts.NodeSize)
	}
	for z := x.opts.MinZoom - 1; z >= 0; z-- {
		x.levels[z] = x.levels[x.opts.MinZoom]
		x.trees[z] = x.trees[x.opts.MinZoom]
	}

	x.loaded = true
}

// clusterize aggregates the nodes of level zoom+1 into the clusters of
// level zoom.
func (x *Index) clusterize(zoom int) []clusterNode {
	prev := x.levels[zoom+1]
	tree := x.trees[zoom+1]
	r := x.opts.Radius / (x.opts.Extent * math.Exp2(float64(zoom)))

	next := make([]clusterNode, 0, len(prev))
	for i := range prev {
		p := &prev[i]
		if p.zoom <= zoom {
			continue
		}
		p.zoom = zoom

		neighborIDs := tree.Within(p.x, p.y, r)

		originCount := p.numPoints
		count := originCount
		for _, nid := range neighborIDs {
			b := &prev[nid]
			if b.zoom > zoom {
				count += b.numPoints
			}
		}

		if count == originCount {
			// Nothing within radius; the node survives unchanged.
			node := *p
			node.zoom = unprocessed
			next = append(next, node)
			continue
		}

		wx := p.x * float64(originCount)
		wy := p.y * float64(originCount)
		id := (i << 5) + (zoom + 1)

		for _, nid := range neighborIDs {
			b := &prev[nid]
			if b.zoom <= zoom {
				continue
			}
			b.zoom = zoom
			wx += b.x * float64(b.numPoints)
			wy += b.y * float64(b.numPoints)
			b.parentID = id
		}
		p.parentID = id

		next = append(next, clusterNode{
			x:         wx / float64(count),
			y:         wy / float64(count),
			zoom:      unprocessed,
			id:        id,
			parentID:  -1,
			numPoints: count,
		})
	}

	return next
}

// GetClusters returns the markers for a bounding box [west, south,
// east, north] at the given zoom. Boxes spanning the antimeridian are
// split into two queries.
func (x *Index) GetClusters(bbox [4]float64, zoom int) []Feature {
	if !x.loaded {
		return nil
	}

	minLng := math.Mod(math.Mod(bbox[0]+180, 360)+360, 360) - 180
	minLat := math.Max(-90, math.Min(90, bbox[1]))
	maxLng := 180.0
	if bbox[2] != 180 {
		maxLng = math.Mod(math.Mod(bbox[2]+180, 360)+360, 360) - 180
	}
	maxLat := math.Max(-90, math.Min(90, bbox[3]))

	if bbox[2]-bbox[0] >= 360 {
		minLng = -180
		maxLng = 180
	} else if minLng > maxLng {
		eastern := x.GetClusters([4]float64{minLng, minLat, 180, maxLat}, zoom)
		western := x.GetClusters([4]float64{-180, minLat, maxLng, maxLat}, zoom)
		return append(eastern, western...)
	}

	z := x.limitZoom(zoom)
	tree := x.trees[z]
	nodes := x.levels[z]

	ids := tree.Range(lngX(minLng), latY(maxLat), lngX(maxLng), latY(minLat))
	features := make([]Feature, 0, len(ids))
	for _, id := range ids {
		features = append(features, nodeFeature(&nodes[id]))
	}
	return features
}

// GetChildren returns the markers a cluster splits into one zoom level
// deeper. It returns nil for unknown cluster ids.
func (x *Index) GetChildren(clusterID int) []Feature {
	if !x.loaded {
		return nil
	}

	originIdx := clusterID >> 5
	originZoom := clusterID & 31
	if originZoom < 0 || originZoom >= len(x.levels) {
		return nil
	}
	nodes := x.levels[originZoom]
	if originIdx >= len(nodes) {
		return nil
	}

	origin := nodes[originIdx]
	r := x.opts.Radius / (x.opts.Extent * math.Exp2(float64(originZoom-1)))
	ids := x.trees[originZoom].Within(origin.x, origin.y, r)

	var children []Feature
	for _, id := range ids {
		node := &nodes[id]
		if node.parentID == clusterID {
			children = append(children, nodeFeature(node))
		}
	}
	return children
}

// GetClusterExpansionZoom returns the first zoom at which the cluster
// breaks apart into more than one marker.
func (x *Index) GetClusterExpansionZoom(clusterID int) int {
	expansionZoom := (clusterID & 31) - 1
	for expansionZoom <= x.opts.MaxZoom {
		children := x.GetChildren(clusterID)
		expansionZoom++
		if len(children) != 1 {
			break
		}
		child := children[0]
		if !child.IsCluster() {
			break
		}
		clusterID = child.ClusterID
	}
	return expansionZoom
}

func (x *Index) limitZoom(zoom int) int {
	z := zoom
	if z < x.opts.MinZoom {
		z = x.opts.MinZoom
	}
	if z > x.opts.MaxZoom+1 {
		z = x.opts.MaxZoom + 1
	}
	return z
}

func nodeFeature(node *clusterNode) Feature {
	if node.numPoints > 1 {
		return Feature{
			ClusterID:  node.id,
			Count:      node.numPoints,
			PointIndex: -1,
			Lng:        xLng(node.x),
			Lat:        yLat(node.y),
		}
	}
	return Feature{
		Count:      1,
		PointIndex: node.id,
		Lng:        xLng(node.x),
		Lat:        yLat(node.y),
	}
}

func buildTree(nodes []clusterNode, nodeSize int) *kdbush {
	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	for i := range nodes {
		xs[i] = nodes[i].x
		ys[i] = nodes[i].y
	}
	return newKDBush(xs, ys, nodeSize)
}

// Spherical mercator projection to the [0..1] square and back.

func lngX(lng float64) float64 {
	return lng/360 + 0.5
}

func latY(lat float64) float64 {
	sin := math.Sin(lat * math.Pi / 180)
	y := 0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi
	if y < 0 {
		return 0
	}
	if y > 1 {
		return 1
	}
	return y
}

func xLng(x float64) float64 {
	return (x - 0.5) * 360
}

func yLat(y float64) float64 {
	y2 := (180 - y*360) * math.Pi / 180
	return 360*math.Atan(math.Exp(y2))/math.Pi - 90
}
