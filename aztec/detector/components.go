package detector

import "github.com/aztecvision/aztecvision/bitutil"

// Component is one 4-connected run of same-colored pixels discovered by
// Label.
type Component struct {
	Label     int
	NumPixels int
	Envelope  Envelope
	Black     bool
}

// Labeling is the result of running connected-component labeling over an
// image: a dense label grid (row-major, one entry per pixel) and the
// per-label component records.
type Labeling struct {
	Width, Height int
	Labels        []int
	Components    map[int]*Component
}

// At returns the resolved component label at (x, y).
func (l *Labeling) At(x, y int) int {
	return l.Labels[y*l.Width+x]
}

// Label runs two-pass union-find connected-component labeling over image,
// treating black and white runs both as components (4-connected).
//
// Pass 1 assigns provisional labels while scanning row-major: a pixel with
// no same-colored, already-labeled neighbor among (x-1,y), (x+1,y), (x,y-1)
// and (x,y+1) gets a fresh label; otherwise it takes the minimum label among
// those neighbors, and every other distinct neighbor label is unioned with
// that minimum by linking the larger of their two roots under the smaller.
// Parent pointers therefore always point to a smaller label, so the forest
// they build is acyclic and pass 2's chain-following always terminates.
//
// Pass 2 resolves every provisional label to its root, compresses the
// chain, and accumulates the root component's pixel count and envelope.
func Label(image *bitutil.BitMatrix) *Labeling {
	w, h := image.Width(), image.Height()
	provisional := make([]int, w*h)
	parent := []int{0} // parent[0] is an unused sentinel; label 0 means "unlabeled".
	nextLabel := 0

	idx := func(x, y int) int { return y*w + x }
	rootOf := func(label int) int {
		for parent[label] != 0 {
			label = parent[label]
		}
		return label
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := image.Get(x, y)

			var neighbors []int
			add := func(nx, ny int) {
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					return
				}
				if image.Get(nx, ny) != c {
					return
				}
				l := provisional[idx(nx, ny)]
				if l == 0 {
					return
				}
				for _, seen := range neighbors {
					if seen == l {
						return
					}
				}
				neighbors = append(neighbors, l)
			}
			add(x-1, y)
			add(x+1, y)
			add(x, y-1)
			add(x, y+1)

			if len(neighbors) == 0 {
				nextLabel++
				parent = append(parent, 0)
				provisional[idx(x, y)] = nextLabel
				continue
			}

			m := neighbors[0]
			for _, l := range neighbors[1:] {
				if l < m {
					m = l
				}
			}
			provisional[idx(x, y)] = m
			for _, l := range neighbors {
				rl, rm := rootOf(l), rootOf(m)
				if rl > rm {
					parent[rl] = rm
				} else if rm > rl {
					parent[rm] = rl
				}
			}
		}
	}

	find := func(label int) int {
		root := label
		for parent[root] != 0 {
			root = parent[root]
		}
		for parent[label] != 0 {
			next := parent[label]
			parent[label] = root
			label = next
		}
		return root
	}

	labels := make([]int, w*h)
	components := make(map[int]*Component)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := idx(x, y)
			root := find(provisional[i])
			labels[i] = root

			comp, ok := components[root]
			if !ok {
				comp = &Component{Label: root, Envelope: emptyEnvelope(), Black: image.Get(x, y)}
				components[root] = comp
			}
			comp.NumPixels++
			comp.Envelope = comp.Envelope.Expand(x, y)
		}
	}

	return &Labeling{Width: w, Height: h, Labels: labels, Components: components}
}
