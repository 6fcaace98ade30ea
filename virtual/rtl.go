package virtual

import "sync"

// RTLOffsetType is the convention a host uses to report horizontal scroll
// positions of right-to-left content.
type RTLOffsetType uint8

const (
	// RTLOffsetPositiveAscending reports 0 at the right edge, growing leftwards.
	RTLOffsetPositiveAscending RTLOffsetType = iota
	// RTLOffsetNegative reports 0 at the right edge, going negative leftwards.
	RTLOffsetNegative
	// RTLOffsetPositiveDescending reports the maximum at the right edge, shrinking leftwards.
	RTLOffsetPositiveDescending
)

func (t RTLOffsetType) String() string {
	switch t {
	case RTLOffsetNegative:
		return "negative"
	case RTLOffsetPositiveDescending:
		return "positive-descending"
	}
	return "positive-ascending"
}

// RTLProbe inspects the host environment and reports its convention.
type RTLProbe func() RTLOffsetType

type rtlDetection struct {
	once sync.Once
	typ  RTLOffsetType
}

var rtlDetect = new(rtlDetection)

// DetectRTLOffsetType runs probe the first time it is called in the process
// and returns the cached answer afterwards. A nil probe assumes
// RTLOffsetPositiveAscending, which needs no translation.
func DetectRTLOffsetType(probe RTLProbe) RTLOffsetType {
	d := rtlDetect
	d.once.Do(func() {
		if probe != nil {
			d.typ = probe()
		}
	})
	return d.typ
}

// NormalizeScrollLeft converts a native RTL scroll position into the logical
// left-to-right offset used by the windowing math.
func NormalizeScrollLeft(native, scrollWidth, clientWidth float32, typ RTLOffsetType) float32 {
	switch typ {
	case RTLOffsetNegative:
		return -native
	case RTLOffsetPositiveDescending:
		return scrollWidth - clientWidth - native
	}
	return native
}

// DenormalizeScrollLeft is the inverse of NormalizeScrollLeft.
func DenormalizeScrollLeft(logical, scrollWidth, clientWidth float32, typ RTLOffsetType) float32 {
	switch typ {
	case RTLOffsetNegative:
		return -logical
	case RTLOffsetPositiveDescending:
		return scrollWidth - clientWidth - logical
	}
	return logical
}
