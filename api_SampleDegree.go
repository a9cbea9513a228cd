package forGKlibGo

// SampleDegree estimates the mean and median degree from nSamples nodes
// drawn with Random60.
func SampleDegree(degree []int, nSamples int, seed uint64) (sampleMean, sampleMedian float64) {
	if nSamples < 1 {
		nSamples = 1
	}
	n := len(degree)
	if n == 0 {
		return 0, 0
	}
	samples := make([]int, nSamples)
	dsum := 0
	for k := 0; k < nSamples; k++ {
		d := degree[RandInRange(&seed, n)]
		samples[k] = d
		dsum += d
	}
	sampleMean = float64(dsum) / float64(nSamples)
	try(SortIdxAsc(nSamples, samples))
	sampleMedian = float64(samples[nSamples/2])
	return
}

func (G *Graph[T]) SampleDegree(nSamples int, seed uint64) (sampleMean, sampleMedian float64) {
	return SampleDegree(G.RowDegree, nSamples, seed)
}
