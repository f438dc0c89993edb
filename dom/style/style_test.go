package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.style")
	defer teardown()
	//
	pmap, err := ParseInline("display: none; Color: red; margin-top: 3px")
	if err != nil {
		t.Fatal(err)
	}
	if pmap.Size() != 3 {
		t.Errorf("expected 3 properties, have %d", pmap.Size())
	}
	if p, ok := pmap.Property("color"); !ok || p != "red" {
		t.Errorf("expected color to be red, is %q", p)
	}
	if p, _ := pmap.Property("display"); p != DisplayNone {
		t.Errorf("expected display to be none, is %q", p)
	}
}

func TestParseInlineImportant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.style")
	defer teardown()
	//
	pmap, err := ParseInline("color: red !important; color: blue")
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := pmap.Property("color"); p != "red" {
		t.Errorf("expected important color red to win, is %q", p)
	}
	empty, err := ParseInline("   ")
	if err != nil || empty.Size() != 0 {
		t.Errorf("expected empty map for blank style, got %v (err=%v)", empty, err)
	}
}

func TestPropertyMapRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Set("display", DisplayBlock)
	pmap.Set("color", "green")
	pmap.Set("display", DisplayNone) // keeps position
	if s := pmap.String(); s != "display: none; color: green" {
		t.Errorf("unexpected serialization %q", s)
	}
	pmap.Remove("display")
	pmap.Set("color", NullStyle)
	if pmap.Size() != 0 || pmap.String() != "" {
		t.Errorf("expected empty map, got %q", pmap.String())
	}
	other := NewPropertyMap()
	other.Set("a", "1")
	if pmap.Merge(other).String() != "a: 1" {
		t.Errorf("merge failed: %q", pmap.String())
	}
}
