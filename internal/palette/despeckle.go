package palette

// Despeckle reassigns connected label regions smaller than minRatio of the
// image area to their most frequent neighboring label. Tiny islands
// otherwise trace into visual noise, so batch callers can opt in to this
// before tracing. Components are 4-connected to match the tracer's notion
// of region adjacency.
func Despeckle(lm *LabelMap, minRatio float64) {
	total := lm.W * lm.H
	if total == 0 || minRatio <= 0 {
		return
	}
	minSize := int(minRatio * float64(total))
	if minSize <= 1 {
		return
	}

	comp := make([]int, total)
	for i := range comp {
		comp[i] = -1
	}

	dx4 := [4]int{1, -1, 0, 0}
	dy4 := [4]int{0, 0, 1, -1}

	queue := make([]int, 0, 1024)
	members := make([]int, 0, 1024)
	id := 0

	for start := range total {
		if comp[start] >= 0 {
			continue
		}
		label := lm.Labels[start]

		queue = append(queue[:0], start)
		members = append(members[:0], start)
		comp[start] = id

		for len(queue) > 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			cx, cy := cur%lm.W, cur/lm.W
			for d := 0; d < 4; d++ {
				nx, ny := cx+dx4[d], cy+dy4[d]
				if nx < 0 || nx >= lm.W || ny < 0 || ny >= lm.H {
					continue
				}
				ni := ny*lm.W + nx
				if comp[ni] < 0 && lm.Labels[ni] == label {
					comp[ni] = id
					queue = append(queue, ni)
					members = append(members, ni)
				}
			}
		}

		if len(members) < minSize {
			var neighborCount [MaxColors]int
			for _, p := range members {
				cx, cy := p%lm.W, p/lm.W
				for d := 0; d < 4; d++ {
					nx, ny := cx+dx4[d], cy+dy4[d]
					if nx < 0 || nx >= lm.W || ny < 0 || ny >= lm.H {
						continue
					}
					if nl := lm.Labels[ny*lm.W+nx]; nl != label {
						neighborCount[nl]++
					}
				}
			}
			best, bestN := -1, 0
			for l, n := range neighborCount {
				if n > bestN {
					bestN = n
					best = l
				}
			}
			if best >= 0 {
				for _, p := range members {
					lm.Labels[p] = uint8(best)
				}
			}
		}
		id++
	}
}
