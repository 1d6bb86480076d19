package lib

import "math"

// AverageInt64 compute statistical mean, variance and standard
// deviation over a stream of samples, without buffering them.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	init   bool
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.init == false || sample < av.minval {
		av.minval = sample
		av.init = true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Min return the smallest sample.
func (av *AverageInt64) Min() int64 {
	return av.minval
}

// Max return the largest sample.
func (av *AverageInt64) Max() int64 {
	return av.maxval
}

// Samples return number of samples added.
func (av *AverageInt64) Samples() int64 {
	return av.n
}

// Sum return sum of all samples.
func (av *AverageInt64) Sum() int64 {
	return av.sum
}

// Mean return average value of all samples.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance return squared deviation of samples from their mean.
func (av *AverageInt64) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	nf, meanf := float64(av.n), float64(av.Mean())
	return (av.sumsq / nf) - (meanf * meanf)
}

// SD return by how much samples differ from their mean.
func (av *AverageInt64) SD() float64 {
	if av.n == 0 {
		return 0
	}
	return math.Sqrt(av.Variance())
}
