package common

import "runtime"

// WorkerCount resolves a requested number of workers; zero means one per CPU.
func WorkerCount(requested int) int {
	if requested <= 0 {
		return runtime.NumCPU()
	}

	return requested
}
