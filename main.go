package main

import (
	"fmt"

	"github.com/Guocork/simple-VM/vm"
	"go.uber.org/zap"
)

func main() {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	fmt.Println("Executing stack-based virtual machine")

	machine := vm.NewVM(vm.SampleProgram())
	runErr := machine.Run()
	machine.StackDump()
	if runErr != nil {
		l.Fatal("program aborted", zap.Error(runErr))
	}
}
