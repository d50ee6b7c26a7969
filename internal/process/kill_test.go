package process

import "testing"

// Real processes are not killed here; browser teardown is covered by the
// integration tests.

func TestKillTree_NonPositivePID(t *testing.T) {
	t.Parallel()

	// PID 0 would target the current process group; it must be ignored.
	KillTree(0)
	KillTree(-1)
}

func TestKillTree_UnknownPID(t *testing.T) {
	t.Parallel()

	KillTree(999999999)
}
