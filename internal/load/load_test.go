package load

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/sched"
)

func TestProcesses(t *testing.T) {
	in := strings.NewReader("1,5,0,2\n2,3,1,1\n")

	processes, err := Processes(in)
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{
		{PID: 1, BurstDuration: 5, ArrivalTime: 0, Priority: 2},
		{PID: 2, BurstDuration: 3, ArrivalTime: 1, Priority: 1},
	}, processes)
}

func TestProcessesPriorityOptional(t *testing.T) {
	processes, err := Processes(strings.NewReader("4,10,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{{PID: 4, BurstDuration: 10, ArrivalTime: 2}}, processes)
}

func TestProcessesBadNumber(t *testing.T) {
	_, err := Processes(strings.NewReader("1,five,0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad burst")
}

func TestProcessesTooFewFields(t *testing.T) {
	_, err := Processes(strings.NewReader("1,5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least pid, burst, arrival")
}
