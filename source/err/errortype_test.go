package err_test

import (
	"testing"

	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

func TestMessageTemplates(t *testing.T) {
	tok := &token.Token{Line: 3, ChStart: 4, ChEnd: 5, Source: "main"}
	e := err.NewCollector().Throw(err.UNKNOWN_VARIABLE, tok, "radish")
	if e.Message() != "unknown variable 'radish'" {
		t.Errorf("got message %q", e.Message())
	}
	if e.Severity != err.ERROR {
		t.Errorf("UNKNOWN_VARIABLE should default to an error")
	}
	if err.UNUSED_VARIABLE.DefaultSeverity() != err.WARNING {
		t.Errorf("UNUSED_VARIABLE should default to a warning")
	}
}

func TestEncoding(t *testing.T) {
	tok := &token.Token{Line: 3, ChStart: 4, ChEnd: 10, Source: "main"}
	e := err.NewCollector().Throw(err.UNKNOWN_VARIABLE, tok, "radish")
	row := e.Encode()
	expected := []any{int(err.ERROR), "main", 3, 5, 3, 11, int(err.UNKNOWN_VARIABLE)}
	if len(row) != 8 {
		t.Fatalf("expected 8 fields, got %v", row)
	}
	for i, want := range expected {
		if row[i] != want {
			t.Errorf("field %d: got %v, expected %v", i, row[i], want)
		}
	}
	params := row[7].([]string)
	if len(params) != 1 || params[0] != "radish" {
		t.Errorf("expected params [radish], got %v", row[7])
	}

	// Without arguments the params column is omitted altogether.
	bare := err.NewCollector().Throw(err.ANALYSIS_TIMEOUT, tok)
	if len(bare.Encode()) != 7 {
		t.Errorf("expected 7 fields without params, got %v", bare.Encode())
	}
}

func TestCollectorCounts(t *testing.T) {
	tok := &token.Token{Line: 1, Source: "main"}
	collector := err.NewCollector()
	collector.Throw(err.UNKNOWN_VARIABLE, tok, "x")
	collector.Throw(err.UNUSED_VARIABLE, tok, "y")
	if collector.ErrorCount() != 1 || collector.WarningCount() != 1 {
		t.Errorf("got %d errors and %d warnings", collector.ErrorCount(), collector.WarningCount())
	}
	if collector.TooMany() {
		t.Error("two diagnostics should not hit the ceiling")
	}
	for i := 0; i < settings.MAX_ERRORS; i++ {
		collector.Throw(err.UNKNOWN_VARIABLE, tok, "x")
	}
	if !collector.TooMany() {
		t.Error("expected the ceiling to be hit")
	}
	if len(collector.All()) != settings.MAX_ERRORS+2 {
		t.Errorf("expected all diagnostics back, got %d", len(collector.All()))
	}
}

func TestSnapshotsShareNothingForward(t *testing.T) {
	tok := &token.Token{Line: 1, Source: "main"}
	collector := err.NewCollector()
	collector.Throw(err.UNKNOWN_VARIABLE, tok, "x")
	snap := collector.Snapshot()
	collector.Throw(err.UNKNOWN_VARIABLE, tok, "y")
	if snap.Len() != 1 {
		t.Errorf("snapshot grew to %d", snap.Len())
	}
	if collector.Snapshot().Len() != 2 {
		t.Errorf("collector lost a diagnostic")
	}
}
