package lyrics

// Ratio measures the similarity of two strings in [0, 1] using the classic
// matching-block measure: twice the total length of the longest matching
// blocks, found recursively, divided by the combined length. Order
// preserving, so transposed words score low.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra)+len(rb) == 0 {
		return 1.0
	}

	m := newMatcher(ra, rb)
	return 2.0 * float64(m.matchTotal(0, len(ra), 0, len(rb))) / float64(len(ra)+len(rb))
}

type matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

func newMatcher(a, b []rune) *matcher {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	return &matcher{a: a, b: b, b2j: b2j}
}

// matchTotal sums the longest matching block inside the window and recurses
// into the regions on either side of it.
func (m *matcher) matchTotal(alo, ahi, blo, bhi int) int {
	i, j, size := m.longestMatch(alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		m.matchTotal(alo, i, blo, j) +
		m.matchTotal(i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest block of runes shared by a[alo:ahi] and
// b[blo:bhi], preferring the earliest position on ties.
func (m *matcher) longestMatch(alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the match ending at a[i-1], b[j]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
