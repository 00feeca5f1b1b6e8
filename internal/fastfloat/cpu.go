package fastfloat

import "github.com/klauspost/cpuid/v2"

// hostFeatures is computed once at package init for diagnostic
// reporting only; nothing in the parse paths branches on it. The
// bit-trick math in eisellemire.go and u128.go (LeadingZeros64,
// Mul64, Add64) compiles to the same portable intrinsics on every
// platform Go targets, so there is no fast/slow hardware split to
// select between here.
var hostFeatures = cpuid.CPU.BrandName + " (BMI2=" + boolTag(cpuid.CPU.Supports(cpuid.BMI2)) + ")"

func boolTag(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// HostFeatures describes the CPU this process is running on, for
// callers that want to log it alongside parse results.
func HostFeatures() string {
	return hostFeatures
}
