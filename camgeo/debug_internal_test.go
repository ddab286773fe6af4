package camgeo

import "testing"

// TestInitializeDebugFlagGatesLogging guards against dbg.NewContext's own
// enabled-by-default logging masking Config.Debug: NewContext enables
// logging/timers unconditionally, so Debug=false must explicitly disable
// them rather than leave them silently on.
func TestInitializeDebugFlagGatesLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = false
	e := New()
	if err := e.Initialize(cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	e.dbgCtx.Warningf("should not be recorded")
	if n := len(e.dbgCtx.Messages()); n != 0 {
		t.Errorf("Debug=false must suppress logging, got %d messages", n)
	}

	cfg.Debug = true
	e2 := New()
	if err := e2.Initialize(cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	e2.dbgCtx.Warningf("should be recorded")
	if n := len(e2.dbgCtx.Messages()); n != 1 {
		t.Errorf("Debug=true must leave logging enabled, got %d messages", n)
	}
}
