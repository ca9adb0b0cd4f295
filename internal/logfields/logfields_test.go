package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b1", BuildID("b1")},
		{"Stage", KeyStage, "render", Stage("render")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Page", KeyPage, "index.html", Page("index.html")},
		{"URL", KeyURL, "/docs", URL("/docs")},
		{"Field", KeyField, "navbar.items[0]", Field("navbar.items[0]")},
		{"Locale", KeyLocale, "en", Locale("en")},
		{"Integration", KeyIntegration, "search", Integration("search")},
		{"Policy", KeyPolicy, "warn", Policy("warn")},
		{"Addr", KeyAddr, ":3000", Addr(":3000")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s: key mismatch got %s want %s", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s: value mismatch got %s want %s", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if got := Count(3).Value.Int64(); got != 3 {
		t.Fatalf("count: got %d", got)
	}
	if got := DurationMS(1.5).Value.Float64(); got != 1.5 {
		t.Fatalf("duration: got %v", got)
	}
}

func TestErrorHelper(t *testing.T) {
	if Error(nil).Value.String() != "" {
		t.Fatal("nil error should yield empty string")
	}
	if Error(errors.New("boom")).Value.String() != "boom" {
		t.Fatal("error text mismatch")
	}
}
