package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Len(t *testing.T) {
	assert.InDelta(t, 5, V3(3, 4, 0).Len(), 1e-6)
	assert.InDelta(t, 3, V3(1, 2, 2).Dist(V3(0, 0, 0)), 1e-6)
}

func TestVec3_DistLargeComponents(t *testing.T) {
	d := V3(-1e20, 0, 0).Dist(V3(1e20, 0, 0))
	assert.InEpsilon(t, 2e20, d, 1e-6)

	d = V3(3e19, 4e19, 0).Len()
	assert.InEpsilon(t, 5e19, d, 1e-6)
}
