package reconcile

import (
	"testing"

	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/txn"
)

func TestDiffIdentical(t *testing.T) {
	a := doc.TextFragment("x = 1")
	b := doc.TextFragment("x = 1")

	if _, ok := Diff(a, b); ok {
		t.Error("identical fragments should produce no diff")
	}
}

func TestDiffIdenticalAcrossRuns(t *testing.T) {
	// Same flattened text split into different runs is still equal
	// content node-wise only when the runs match; differing runs with
	// equal text diverge at the run boundary, which is still a valid
	// (if larger) region. Equal runs must produce no diff.
	a := doc.NewFragment(doc.NewText("ab"), doc.NewText("cd"))
	b := doc.NewFragment(doc.NewText("ab"), doc.NewText("cd"))

	if _, ok := Diff(a, b); ok {
		t.Error("identical fragments should produce no diff")
	}
}

func TestDiffSingleInsertedToken(t *testing.T) {
	outer := doc.TextFragment("x = 1+1")
	inner := doc.TextFragment("x = 1")

	region, ok := Diff(outer, inner)
	if !ok {
		t.Fatal("expected a diff")
	}

	// The reported outer span must cover exactly the inserted token.
	if got := region.OuterRange().Len(); got != 2 {
		t.Errorf("expected outer span of 2 bytes, got %d (%s)", got, region)
	}
	if !region.InnerRange().IsEmpty() {
		t.Errorf("expected zero-width inner span, got %s", region)
	}
}

func TestDiffAmbiguousOverlap(t *testing.T) {
	inner := doc.TextFragment("aaa")
	outer := doc.TextFragment("aaaa")

	region, ok := Diff(outer, inner)
	if !ok {
		t.Fatal("expected a diff")
	}

	// The suffix scan overlaps the prefix in a repeated run; the
	// extended region must still transform inner into exactly outer.
	tx := Patch(region, outer)
	next, err := tx.Apply(doc.StateFromText(inner.Text()))
	if err != nil {
		t.Fatalf("patch failed to apply: %v", err)
	}
	if next.Text() != "aaaa" {
		t.Errorf("patch produced %q, want %q", next.Text(), "aaaa")
	}
}

func TestDiffPureDeletion(t *testing.T) {
	outer := doc.TextFragment("x = 1")
	inner := doc.TextFragment("x = 1+1")

	region, ok := Diff(outer, inner)
	if !ok {
		t.Fatal("expected a diff")
	}
	if !region.OuterRange().IsEmpty() {
		t.Errorf("expected zero-width outer span, got %s", region)
	}

	next, err := Patch(region, outer).Apply(doc.StateFromText(inner.Text()))
	if err != nil {
		t.Fatalf("patch failed to apply: %v", err)
	}
	if next.Text() != "x = 1" {
		t.Errorf("patch produced %q, want %q", next.Text(), "x = 1")
	}
}

func TestDiffMiddleReplacement(t *testing.T) {
	outer := doc.TextFragment("a XYZ b")
	inner := doc.TextFragment("a pq b")

	region, ok := Diff(outer, inner)
	if !ok {
		t.Fatal("expected a diff")
	}
	if region.Start != 2 {
		t.Errorf("expected start 2, got %s", region)
	}
	if region.OuterEnd != 5 || region.InnerEnd != 4 {
		t.Errorf("expected ends (5, 4), got %s", region)
	}
}

func TestDiffStructuralNodes(t *testing.T) {
	outer := doc.NewFragment(
		doc.NewText("a"),
		doc.NewNode("span", nil, doc.NewText("XX")),
		doc.NewText("b"),
	)
	inner := doc.NewFragment(
		doc.NewText("a"),
		doc.NewNode("span", nil, doc.NewText("XY")),
		doc.NewText("b"),
	)

	region, ok := Diff(outer, inner)
	if !ok {
		t.Fatal("expected a diff")
	}
	// Divergence is inside the span's text, one byte past its "X".
	if region.Start != 2 {
		t.Errorf("expected start 2, got %s", region)
	}
	if region.OuterEnd != 3 || region.InnerEnd != 3 {
		t.Errorf("expected ends (3, 3), got %s", region)
	}
}

func TestDiffDifferentNodeKinds(t *testing.T) {
	outer := doc.NewFragment(doc.NewText("a"), doc.NewNode("hard_break", nil))
	inner := doc.NewFragment(doc.NewText("a"), doc.NewText("x"))

	region, ok := Diff(outer, inner)
	if !ok {
		t.Fatal("expected a diff")
	}
	if region.Start != 1 {
		t.Errorf("expected divergence at node boundary 1, got %s", region)
	}
}

func TestDiffTrailingContent(t *testing.T) {
	outer := doc.NewFragment(doc.NewText("ab"), doc.NewText("cd"))
	inner := doc.NewFragment(doc.NewText("ab"))

	region, ok := Diff(outer, inner)
	if !ok {
		t.Fatal("expected a diff")
	}

	next, err := Patch(region, outer).Apply(doc.StateFromText(inner.Text()))
	if err != nil {
		t.Fatalf("patch failed to apply: %v", err)
	}
	if next.Text() != "abcd" {
		t.Errorf("patch produced %q, want %q", next.Text(), "abcd")
	}
}

func TestReconcileNilOnIdentical(t *testing.T) {
	f := doc.TextFragment("same")

	if tx := Reconcile(f, f); tx != nil {
		t.Errorf("expected nil patch, got %s", tx)
	}
}

func TestReconcilePatchIsEcho(t *testing.T) {
	tx := Reconcile(doc.TextFragment("new"), doc.TextFragment("old"))

	if tx == nil {
		t.Fatal("expected a patch")
	}
	if tx.Origin() != txn.OriginEcho {
		t.Errorf("patch must be echo-tagged, got %s", tx.Origin())
	}
}

func TestReconcileTransformsArbitraryPairs(t *testing.T) {
	pairs := []struct{ inner, outer string }{
		{"", "abc"},
		{"abc", ""},
		{"x = 1+1", "x = 1"},
		{"hello world", "hello brave world"},
		{"abab", "ababab"},
		{"mississippi", "missouri"},
	}

	for _, p := range pairs {
		tx := Reconcile(doc.TextFragment(p.outer), doc.TextFragment(p.inner))
		if tx == nil {
			t.Errorf("%q -> %q: expected a patch", p.inner, p.outer)
			continue
		}
		next, err := tx.Apply(doc.StateFromText(p.inner))
		if err != nil {
			t.Errorf("%q -> %q: patch failed: %v", p.inner, p.outer, err)
			continue
		}
		if next.Text() != p.outer {
			t.Errorf("%q -> %q: patch produced %q", p.inner, p.outer, next.Text())
		}
	}
}
