package control

import (
	"github.com/shirou/gopsutil/v3/process"
)

// processResidentMemory reads the resident set size of a process in bytes
func processResidentMemory(pid int32) (int64, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return 0, err
	}

	info, err := proc.MemoryInfo()
	if err != nil {
		return 0, err
	}

	return int64(info.RSS), nil
}
