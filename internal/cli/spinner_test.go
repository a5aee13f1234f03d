package cli

import "testing"

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("working")
	s.Start()
	s.Stop()

	// Stop on a stopped spinner must not panic or block.
	s.Stop()
}

func TestSpinnerDoubleStart(t *testing.T) {
	s := newSpinner("working")
	s.Start()
	s.Start()
	s.Stop()
}
