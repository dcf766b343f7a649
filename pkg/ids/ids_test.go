package ids

import (
	"strings"
	"testing"
	"time"
)

func TestNewFormat(t *testing.T) {
	id := New("task")
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %q", id)
	}
	if parts[0] != "task" {
		t.Fatalf("unexpected prefix: %q", parts[0])
	}
	if len(parts[2]) != 8 {
		t.Fatalf("expected 8 hex chars of randomness, got %q", parts[2])
	}
}

func TestNewNoCollisions(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New("n")
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestToday(t *testing.T) {
	got := Today()
	if _, err := time.Parse("2006-01-02", got); err != nil {
		t.Fatalf("Today returned %q: %v", got, err)
	}
}

func TestNowISOIsRFC3339(t *testing.T) {
	got := NowISO()
	if _, err := time.Parse(time.RFC3339, got); err != nil {
		t.Fatalf("NowISO returned %q: %v", got, err)
	}
	if !strings.HasPrefix(got, Today()) {
		t.Fatalf("NowISO %q should start with Today %q", got, Today())
	}
}
