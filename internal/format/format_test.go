package format

import (
	"testing"
	"time"
)

func TestStamp(t *testing.T) {
	at := time.Date(2024, time.January, 5, 9, 3, 0, 0, time.UTC)
	if got := Stamp(at); got != "05/01/2024 09:03" {
		t.Fatalf("got %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("a1b2c3d4e5f6"); got != "a1b2c3d4" {
		t.Fatalf("got %q", got)
	}
	if got := ShortID("a1b2c3d4"); got != "a1b2c3d4" {
		t.Fatalf("exact length changed: %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Fatalf("short input changed: %q", got)
	}
	if got := ShortID(""); got != "" {
		t.Fatalf("empty input changed: %q", got)
	}
}
