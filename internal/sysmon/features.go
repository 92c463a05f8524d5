package sysmon

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures lists the instruction set extensions that speed up limb
// carry chains and wide multiplication.
type CPUFeatures struct {
	Arch  string
	ADX   bool // add with carry/overflow flags (ADCX/ADOX)
	BMI2  bool // flagless MULX
	AVX2  bool
	ASIMD bool // arm64 advanced SIMD
}

// DetectCPUFeatures reads the current processor's features.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		Arch:  runtime.GOARCH,
		ADX:   cpu.X86.HasADX,
		BMI2:  cpu.X86.HasBMI2,
		AVX2:  cpu.X86.HasAVX2,
		ASIMD: cpu.ARM64.HasASIMD,
	}
}

// HasCarryChain reports whether both ADX and BMI2 are available.
func (f CPUFeatures) HasCarryChain() bool {
	return f.ADX && f.BMI2
}

func (f CPUFeatures) String() string {
	var names []string
	for _, feat := range []struct {
		name string
		on   bool
	}{
		{"adx", f.ADX},
		{"bmi2", f.BMI2},
		{"avx2", f.AVX2},
		{"asimd", f.ASIMD},
	} {
		if feat.on {
			names = append(names, feat.name)
		}
	}
	if len(names) == 0 {
		return f.Arch + " (none)"
	}
	return f.Arch + " (" + strings.Join(names, ",") + ")"
}
