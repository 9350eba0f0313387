package rsfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameHash_ConformanceVectors(t *testing.T) {
	assert.Equal(t, int32(1362520410), NameHash("mapedge.dat"))
	assert.Equal(t, int32(-1568083395), NameHash("invback.dat"))
}

func TestNameHash_CaseInsensitive(t *testing.T) {
	assert.Equal(t, NameHash("ANIM_CRC"), NameHash("anim_crc"))
	assert.Equal(t, NameHash("Map0.dat"), NameHash("MAP0.DAT"))
}

func TestNameHash_Deterministic(t *testing.T) {
	for _, s := range []string{"", "a", "config", "(listfile)"} {
		assert.Equal(t, NameHash(s), NameHash(s))
	}
}
