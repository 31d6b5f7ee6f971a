package attributes

import (
	"testing"
)

// FuzzPointGrammar checks that any text accepted as a point re-renders to text
// that parses to the same point.
func FuzzPointGrammar(f *testing.F) {
	f.Add("10, 20")
	f.Add("0.5,-3")
	f.Add(" 1e3 , 2 ")
	f.Add(",")
	f.Add("1,2,3")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		p, ok := ParsePoint(text)
		if !ok {
			return
		}
		back, ok := ParsePoint(FormatPoint(p))
		if !ok {
			t.Fatalf("formatted point %q does not parse", FormatPoint(p))
		}
		if back != p {
			t.Errorf("point round trip changed value: %v -> %v", p, back)
		}
	})
}

// FuzzRectGrammar does the same for rects.
func FuzzRectGrammar(f *testing.F) {
	f.Add("1,2,3,4")
	f.Add("0, 0, 100.5, 20")
	f.Add("1,2,3")

	f.Fuzz(func(t *testing.T, text string) {
		r, ok := ParseRect(text)
		if !ok {
			return
		}
		back, ok := ParseRect(FormatRect(r))
		if !ok || back != r {
			t.Errorf("rect round trip failed for %q: %v -> %v", text, r, back)
		}
	})
}

// FuzzStringArray checks that arrays without empty trailing items survive a
// join and split.
func FuzzStringArray(f *testing.F) {
	f.Add("a,b,c")
	f.Add("a,,b")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		items := ParseStringArray(text)
		if len(items) > 0 && items[len(items)-1] == "" {
			t.Skip("trailing empty item does not survive a join")
		}
		joined := FormatStringArray(items)
		again := ParseStringArray(joined)
		if len(again) != len(items) {
			t.Errorf("string array %q: %d items became %d", text, len(items), len(again))
		}
	})
}
