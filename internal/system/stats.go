package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// PrintRunStats prints a performance report for a finished batch run. Host
// metrics that cannot be read are simply omitted.
func PrintRunStats(build string, pages int, elapsed time.Duration) {
	fmt.Println("--- [PERFORMANCE REPORT] ---")
	fmt.Printf("Build: %s\n", build)
	fmt.Printf("Pages: %d\n", pages)
	fmt.Printf("Total Time: %.2fs\n", elapsed.Seconds())
	if elapsed > 0 {
		fmt.Printf("Pages/sec: %.2f\n", float64(pages)/elapsed.Seconds())
	}

	if counts, err := cpu.Counts(true); err == nil {
		fmt.Printf("Logical CPUs: %d\n", counts)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("Host Memory: %.1f%% of %d MB used\n", vm.UsedPercent, vm.Total/1024/1024)
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := proc.MemoryInfo(); err == nil {
			fmt.Printf("Process RSS: %d MB\n", mi.RSS/1024/1024)
		}
	}
	fmt.Println("----------------------------")
}
