package forGKlibGo

const (
	Random15Max = 32767
	Random60Max = (1 << 60) - 1
)

func Random15(seed *uint64) uint64 {
	*seed = *seed*1103515245 + 12345
	return (*seed / 65536) % (Random15Max + 1)
}

func Random60(seed *uint64) uint64 {
	i := Random15(seed)
	i = Random15(seed) + Random15Max*i
	i = Random15(seed) + Random15Max*i
	i = Random15(seed) + Random15Max*i
	i = i % (Random60Max + 1)
	return i
}

// RandInRange returns a number in [0, n). n must be positive.
func RandInRange(seed *uint64, n int) int {
	return int(Random60(seed) % uint64(n))
}

// RandArrayPermute shuffles p with nShuffles rounds of random swaps. With
// fill set, p is first reset to the identity permutation.
func RandArrayPermute(seed *uint64, p []int, nShuffles int, fill bool) {
	n := len(p)
	if fill {
		IncSet(p, 0, 1)
	}
	if n < 2 {
		return
	}
	if n < 10 {
		for i := 0; i < n; i++ {
			v := RandInRange(seed, n)
			u := RandInRange(seed, n)
			p[v], p[u] = p[u], p[v]
		}
		return
	}
	for k := 0; k < nShuffles; k++ {
		v := RandInRange(seed, n-3)
		u := RandInRange(seed, n-3)
		p[v+0], p[u+2] = p[u+2], p[v+0]
		p[v+1], p[u+3] = p[u+3], p[v+1]
		p[v+2], p[u+0] = p[u+0], p[v+2]
		p[v+3], p[u+1] = p[u+1], p[v+3]
	}
}

// Shuffle is a Fisher-Yates shuffle of x driven by Random60.
func Shuffle[T any](seed *uint64, x []T) {
	for i := len(x) - 1; i > 0; i-- {
		j := RandInRange(seed, i+1)
		x[i], x[j] = x[j], x[i]
	}
}
