package virtual

// resetRTLDetection forgets the cached probe result.
func resetRTLDetection() { rtlDetect = new(rtlDetection) }
