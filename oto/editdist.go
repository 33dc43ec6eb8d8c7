package oto

import "sort"

// EditDistance computes the Levenshtein edit distance between two alias
// strings, counted in runes.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Use single-row DP to save memory.
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev = cur
	}
	return prev[lb]
}

// Nearest returns up to n registered aliases closest to s by edit
// distance, nearest first; equal distances order lexicographically.
// Used for "did you mean" diagnostics when resolution falls back.
func (m *Map) Nearest(s string, n int) []string {
	if n <= 0 || len(m.aliases) == 0 {
		return nil
	}
	type scored struct {
		alias string
		dist  int
	}
	all := make([]scored, 0, len(m.aliases))
	for _, a := range m.aliases {
		all = append(all, scored{alias: a, dist: EditDistance(s, a)})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].dist != all[j].dist {
			return all[i].dist < all[j].dist
		}
		return all[i].alias < all[j].alias
	})
	if len(all) > n {
		all = all[:n]
	}
	out := make([]string, len(all))
	for i, sc := range all {
		out[i] = sc.alias
	}
	return out
}
