package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRTLOffsetTypeOnce(t *testing.T) {
	resetRTLDetection()
	t.Cleanup(resetRTLDetection)

	probes := 0
	probe := func() RTLOffsetType { probes++; return RTLOffsetPositiveDescending }
	assert.Equal(t, RTLOffsetPositiveDescending, DetectRTLOffsetType(probe))
	assert.Equal(t, RTLOffsetPositiveDescending, DetectRTLOffsetType(func() RTLOffsetType { return RTLOffsetNegative }))
	assert.Equal(t, 1, probes)
}

func TestDetectRTLOffsetTypeNilProbe(t *testing.T) {
	resetRTLDetection()
	t.Cleanup(resetRTLDetection)
	assert.Equal(t, RTLOffsetPositiveAscending, DetectRTLOffsetType(nil))
}

func TestRTLNormalize(t *testing.T) {
	const scrollWidth, clientWidth = 1000, 200
	tests := []struct {
		typ     RTLOffsetType
		native  float32
		logical float32
	}{
		{RTLOffsetNegative, -40, 40},
		{RTLOffsetNegative, 0, 0},
		{RTLOffsetPositiveDescending, 800, 0},
		{RTLOffsetPositiveDescending, 760, 40},
		{RTLOffsetPositiveAscending, 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.logical, NormalizeScrollLeft(tt.native, scrollWidth, clientWidth, tt.typ))
			assert.Equal(t, tt.native, DenormalizeScrollLeft(tt.logical, scrollWidth, clientWidth, tt.typ))
		})
	}
}
