package cluster

import "math"

// kdbush is a flat, static KD-tree over 2D points. Points are indexed
// once at construction; the tree is never mutated afterwards.
type kdbush struct {
	nodeSize int
	ids      []int
	coords   []float64
}

func newKDBush(xs, ys []float64, nodeSize int) *kdbush {
	n := len(xs)
	b := &kdbush{
		nodeSize: nodeSize,
		ids:      make([]int, n),
		coords:   make([]float64, 2*n),
	}

	for i := 0; i < n; i++ {
		b.ids[i] = i
		b.coords[2*i] = xs[i]
		b.coords[2*i+1] = ys[i]
	}

	if n > 0 {
		sortKD(b.ids, b.coords, nodeSize, 0, n-1, 0)
	}
	return b
}

// Range returns the ids of all points within the bounding box.
func (b *kdbush) Range(minX, minY, maxX, maxY float64) []int {
	var result []int
	if len(b.ids) == 0 {
		return result
	}

	stack := []int{0, len(b.ids) - 1, 0}
	for len(stack) > 0 {
		axis := stack[len(stack)-1]
		right := stack[len(stack)-2]
		left := stack[len(stack)-3]
		stack = stack[:len(stack)-3]

		if right-left <= b.nodeSize {
			for i := left; i <= right; i++ {
				x := b.coords[2*i]
				y := b.coords[2*i+1]
				if x >= minX && x <= maxX && y >= minY && y <= maxY {
					result = append(result, b.ids[i])
				}
			}
			continue
		}

		m := (left + right) >> 1
		x := b.coords[2*m]
		y := b.coords[2*m+1]
		if x >= minX && x <= maxX && y >= minY && y <= maxY {
			result = append(result, b.ids[m])
		}

		if (axis == 0 && minX <= x) || (axis != 0 && minY <= y) {
			stack = append(stack, left, m-1, 1-axis)
		}
		if (axis == 0 && maxX >= x) || (axis != 0 && maxY >= y) {
			stack = append(stack, m+1, right, 1-axis)
		}
	}

	return result
}

// Within returns the ids of all points within radius r of (qx, qy).
func (b *kdbush) Within(qx, qy, r float64) []int {
	var result []int
	if len(b.ids) == 0 {
		return result
	}
	r2 := r * r

	stack := []int{0, len(b.ids) - 1, 0}
	for len(stack) > 0 {
		axis := stack[len(stack)-1]
		right := stack[len(stack)-2]
		left := stack[len(stack)-3]
		stack = stack[:len(stack)-3]

		if right-left <= b.nodeSize {
			for i := left; i <= right; i++ {
				if sqDist(b.coords[2*i], b.coords[2*i+1], qx, qy) <= r2 {
					result = append(result, b.ids[i])
				}
			}
			continue
		}

		m := (left + right) >> 1
		x := b.coords[2*m]
		y := b.coords[2*m+1]
		if sqDist(x, y, qx, qy) <= r2 {
			result = append(result, b.ids[m])
		}

		if (axis == 0 && qx-r <= x) || (axis != 0 && qy-r <= y) {
			stack = append(stack, left, m-1, 1-axis)
		}
		if (axis == 0 && qx+r >= x) || (axis != 0 && qy+r >= y) {
			stack = append(stack, m+1, right, 1-axis)
		}
	}

	return result
}

func sqDist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

func sortKD(ids []int, coords []float64, nodeSize, left, right, axis int) {
	if right-left <= nodeSize {
		return
	}

	m := (left + right) >> 1
	selectKD(ids, coords, m, left, right, axis)

	sortKD(ids, coords, nodeSize, left, m-1, 1-axis)
	sortKD(ids, coords, nodeSize, m+1, right, 1-axis)
}

// selectKD partially sorts so that coords[k] is the k-th smallest along
// the axis (Floyd-Rivest selection).
func selectKD(ids []int, coords []float64, k, left, right, axis int) {
	for right > left {
		if right-left > 600 {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sign := 1.0
			if m-n/2 < 0 {
				sign = -1
			}
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n) * sign
			newLeft := maxInt(left, int(math.Floor(float64(k)-m*s/n+sd)))
			newRight := minInt(right, int(math.Floor(float64(k)+(n-m)*s/n+sd)))
			selectKD(ids, coords, k, newLeft, newRight, axis)
		}

		t := coords[2*k+axis]
		i := left
		j := right

		swapItem(ids, coords, left, k)
		if coords[2*right+axis] > t {
			swapItem(ids, coords, left, right)
		}

		for i < j {
			swapItem(ids, coords, i, j)
			i++
			j--
			for coords[2*i+axis] < t {
				i++
			}
			for coords[2*j+axis] > t {
				j--
			}
		}

		if coords[2*left+axis] == t {
			swapItem(ids, coords, left, j)
		} else {
			j++
			swapItem(ids, coords, j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

func swapItem(ids []int, coords []float64, i, j int) {
	ids[i], ids[j] = ids[j], ids[i]
	coords[2*i], coords[2*j] = coords[2*j], coords[2*i]
	coords[2*i+1], coords[2*j+1] = coords[2*j+1], coords[2*i+1]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
