package classify_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/wyh-alt/audio-analyzer/internal/classify"
)

func sine(n int, freq, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2*math.Pi*freq*float64(i)/float64(n) + phase)
	}
	return out
}

func noise(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

func TestClassifyByChannelCount(t *testing.T) {
	cases := []struct {
		name     string
		channels int
		want     classify.Type
	}{
		{"mono", 1, classify.Mono},
		{"surround51", 6, classify.Surround51},
		{"surround71", 8, classify.Surround71},
		{"quad", 4, classify.NChannel},
		{"five", 5, classify.NChannel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify.Classify(tc.channels, nil); got != tc.want {
				t.Fatalf("Classify(%d, nil) = %v, want %v", tc.channels, got, tc.want)
			}
		})
	}
}

func TestClassifyIdenticalChannelsIsFakeStereo(t *testing.T) {
	left := sine(4096, 440, 0)
	right := append([]float64{}, left...)
	if got := classify.Classify(2, [][]float64{left, right}); got != classify.FakeStereo {
		t.Fatalf("identical channels classified as %v, want fake stereo", got)
	}
}

func TestClassifyScaledDuplicateIsFakeStereo(t *testing.T) {
	// A volume difference between channels does not change the correlation.
	left := sine(4096, 440, 0)
	right := make([]float64, len(left))
	for i, v := range left {
		right[i] = 0.5 * v
	}
	if got := classify.Classify(2, [][]float64{left, right}); got != classify.FakeStereo {
		t.Fatalf("scaled duplicate classified as %v, want fake stereo", got)
	}
}

func TestClassifyIndependentChannelsIsStereo(t *testing.T) {
	if got := classify.Classify(2, [][]float64{noise(4096, 1), noise(4096, 2)}); got != classify.Stereo {
		t.Fatalf("independent noise classified as %v, want stereo", got)
	}
}

func TestClassifySilentChannelsIsStereo(t *testing.T) {
	// Zero variance makes the correlation undefined; that must read as "not
	// similar", not crash or report fake stereo.
	silent := make([]float64, 1024)
	if got := classify.Classify(2, [][]float64{silent, silent}); got != classify.Stereo {
		t.Fatalf("silent channels classified as %v, want stereo", got)
	}
}

func TestClassifyStereoWithoutSamplesIsMono(t *testing.T) {
	if got := classify.Classify(2, nil); got != classify.Mono {
		t.Fatalf("metadata-only stereo classified as %v, want mono fallback", got)
	}
	if got := classify.Classify(2, [][]float64{{1, 2, 3}}); got != classify.Mono {
		t.Fatalf("single-buffer stereo classified as %v, want mono fallback", got)
	}
}

func TestClassifyThresholdIsHonored(t *testing.T) {
	left := sine(4096, 440, 0)
	right := make([]float64, len(left))
	for i, v := range left {
		right[i] = v + 0.05*math.Sin(2*math.Pi*3*float64(i)/float64(len(left)))
	}
	r := classify.Correlation(left, right)
	if math.IsNaN(r) || r >= 1 {
		t.Fatalf("fixture correlation out of range: %v", r)
	}
	if got := classify.ClassifyThreshold(2, [][]float64{left, right}, r-0.001); got != classify.FakeStereo {
		t.Fatalf("threshold below correlation should yield fake stereo, got %v", got)
	}
	if got := classify.ClassifyThreshold(2, [][]float64{left, right}, r+0.001); got != classify.Stereo {
		t.Fatalf("threshold above correlation should yield stereo, got %v", got)
	}
}

func TestCorrelation(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	if r := classify.Correlation(a, a); math.Abs(r-1) > 1e-12 {
		t.Fatalf("self correlation = %v, want 1", r)
	}

	inverted := []float64{5, 4, 3, 2, 1}
	if r := classify.Correlation(a, inverted); math.Abs(r+1) > 1e-12 {
		t.Fatalf("inverted correlation = %v, want -1", r)
	}

	if r := classify.Correlation(a, []float64{1}); !math.IsNaN(r) {
		t.Fatalf("short input correlation = %v, want NaN", r)
	}

	// Unequal lengths truncate to the shorter sequence.
	longer := append(append([]float64{}, a...), 99, -99)
	if r := classify.Correlation(a, longer); math.Abs(r-1) > 1e-12 {
		t.Fatalf("truncated correlation = %v, want 1", r)
	}
}

func TestDescribe(t *testing.T) {
	if got := classify.Describe(classify.NChannel, 5); got != "5 channels" {
		t.Fatalf("Describe(NChannel, 5) = %q", got)
	}
	if got := classify.Describe(classify.Surround51, 6); got != "5.1 surround" {
		t.Fatalf("Describe(Surround51, 6) = %q", got)
	}
	if got := classify.Describe(classify.AnalysisError, 0); got != "analysis error" {
		t.Fatalf("Describe(AnalysisError, 0) = %q", got)
	}
}
