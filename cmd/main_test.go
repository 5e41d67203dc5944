package main

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type otherSignal struct{}

func (otherSignal) String() string { return "other" }
func (otherSignal) Signal()        {}

func TestSignalExitCode(t *testing.T) {
	assert.Equal(t, 130, signalExitCode(syscall.SIGINT))
	assert.Equal(t, 143, signalExitCode(syscall.SIGTERM))
	assert.Equal(t, 1, signalExitCode(otherSignal{}))
}
