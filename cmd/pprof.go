package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"sync"
	"syscall"
)

// CPUProfile writes a cpu profile to path until the returned stop function
// runs. SIGINT and SIGTERM also stop the profile before the process dies.
func CPUProfile(path string) (stop func(), err *Error) {
	f, cerr := os.Create(path)
	if cerr != nil {
		return nil, Errorf(2, "could not create the profile %v: %v", path, cerr)
	}
	if perr := pprof.StartCPUProfile(f); perr != nil {
		f.Close()
		return nil, Errorf(2, "could not start the cpu profile: %v", perr)
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(sigs)
			pprof.StopCPUProfile()
			f.Close()
		})
	}
	go func() {
		sig := <-sigs
		stop()
		panic(fmt.Errorf("caught signal: %v", sig))
	}()
	return stop, nil
}
