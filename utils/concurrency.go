package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every work index in [0, workSize) across routines goroutines.
// init is called once per routine before any work starts, and may be nil.
// A routines value of zero or less uses one routine per CPU.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	routines = Routines(routines, workSize)

	var counter atomic.Uint64

	if init != nil {
		for routineIndex := range routines {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var eg errgroup.Group

	for routineIndex := range routines {
		eg.Go(func() error {
			for {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					return err
				}
			}
		})
	}
	return eg.Wait()
}

// Routines returns the routine count SplitWork would use for workSize.
func Routines(routines int, workSize uint64) int {
	if routines <= 0 {
		routines = runtime.NumCPU()
	}
	if workSize < uint64(routines) {
		routines = max(int(workSize), 1)
	}
	return routines
}
