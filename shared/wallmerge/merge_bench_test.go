package wallmerge

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkBuildRowPlates(b *testing.B) {
	layer := randomLayer(rand.New(rand.NewPCG(3, 4)), 256, 128, 0.4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildRowPlates(layer.Width, layer.Height, layer.Occupied)
	}
}

func BenchmarkMergePlates(b *testing.B) {
	layer := randomLayer(rand.New(rand.NewPCG(3, 4)), 256, 128, 0.4)
	rows := BuildRowPlates(layer.Width, layer.Height, layer.Occupied)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MergePlates(rows)
	}
}
