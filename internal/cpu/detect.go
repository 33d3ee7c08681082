package cpu

import (
	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

// detectFeaturesImpl probes the processor through algo-vecmath's detector,
// which wraps golang.org/x/sys/cpu on every architecture. HasAVX and
// HasAVX512 are only reported when the OS saves the wider register state
// (XGETBV), so a positive result is always safe to execute.
func detectFeaturesImpl() Features {
	return fromVecmath(vcpu.DetectFeatures())
}

// fromVecmath keeps the levels a fill tier can use. AVX2 and NEON have no
// tier of their own and are dropped.
func fromVecmath(f vcpu.Features) Features {
	return Features{
		HasSSE2:      f.HasSSE2,
		HasAVX:       f.HasAVX,
		HasAVX512:    f.HasAVX512,
		ForceGeneric: f.ForceGeneric,
		Architecture: f.Architecture,
	}
}
