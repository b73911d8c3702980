package log

import "testing"

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("IsVerbose() = false after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("IsVerbose() = true after SetVerbose(false)")
	}
}

func TestDisabledLogsProduceNoOutput(t *testing.T) {
	DisableLogs()

	// Must not panic or write once disabled; Fatalf is excluded since it exits.
	Debugf("debug %d", 1)
	Infof("info %s", "x")
	Warnf("warn")
	Errorf("error: %v", nil)
}
