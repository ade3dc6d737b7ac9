package txn

import (
	"errors"
	"testing"

	"github.com/dshills/inlay/internal/doc"
)

func TestStepConstructors(t *testing.T) {
	ins := Insert(3, "ab")
	if !ins.IsInsert() || ins.Delta() != 2 {
		t.Errorf("expected insert with delta 2, got %s (delta %d)", ins, ins.Delta())
	}

	del := Delete(1, 4)
	if !del.IsDelete() || del.Delta() != -3 {
		t.Errorf("expected delete with delta -3, got %s (delta %d)", del, del.Delta())
	}

	rep := Replace(0, 2, "xyz")
	if rep.IsInsert() || rep.IsDelete() || rep.Delta() != 1 {
		t.Errorf("expected replace with delta 1, got %s (delta %d)", rep, rep.Delta())
	}

	if !(Step{}).IsNoOp() {
		t.Error("zero step should be a no-op")
	}
}

func TestTransactionApplyInsert(t *testing.T) {
	state := doc.StateFromText("x = 1")

	next, err := New().AddStep(Insert(5, "+1")).Apply(state)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if next.Text() != "x = 1+1" {
		t.Errorf("expected %q, got %q", "x = 1+1", next.Text())
	}
	if state.Text() != "x = 1" {
		t.Errorf("input snapshot was mutated: %q", state.Text())
	}
}

func TestTransactionApplySequentialCoordinates(t *testing.T) {
	// The second step addresses the text produced by the first.
	state := doc.StateFromText("ab")

	next, err := New().
		AddStep(Insert(2, "cd")).
		AddStep(Delete(0, 1)).
		Apply(state)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if next.Text() != "bcd" {
		t.Errorf("expected %q, got %q", "bcd", next.Text())
	}
}

func TestTransactionApplyOutOfBounds(t *testing.T) {
	state := doc.StateFromText("abc")

	_, err := New().AddStep(Delete(1, 10)).Apply(state)
	if !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("expected ErrRangeOutOfBounds, got %v", err)
	}
}

func TestTransactionApplyInvalidRange(t *testing.T) {
	state := doc.StateFromText("abc")

	_, err := New().AddStep(NewStep(doc.NewRange(3, 1), "")).Apply(state)
	if !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestTransactionApplySetsSelection(t *testing.T) {
	state := doc.StateFromText("abc")

	next, err := New().
		AddStep(Insert(3, "d")).
		SetSelection(doc.Collapsed(4)).
		Apply(state)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if next.Selection().Head != 4 {
		t.Errorf("expected cursor at 4, got %s", next.Selection())
	}
}

func TestTransactionOrigin(t *testing.T) {
	if New().Origin() != OriginLocal {
		t.Error("New should create a local transaction")
	}
	if NewEcho().Origin() != OriginEcho {
		t.Error("NewEcho should create an echo transaction")
	}
	if OriginLocal.String() != "local" || OriginEcho.String() != "echo" {
		t.Error("unexpected origin string forms")
	}
}

func TestTransactionMeta(t *testing.T) {
	tx := New().SetMeta("source", "keyboard")

	v, ok := tx.Meta("source")
	if !ok || v != "keyboard" {
		t.Errorf("expected metadata %q, got %v (present=%v)", "keyboard", v, ok)
	}
	if _, ok := tx.Meta("missing"); ok {
		t.Error("missing key should not be present")
	}
}

func TestTransactionChangesContent(t *testing.T) {
	if New().ChangesContent() {
		t.Error("empty transaction should not change content")
	}
	if New().AddStep(Step{}).ChangesContent() {
		t.Error("no-op steps should not count as content change")
	}
	if !New().AddStep(Insert(0, "a")).ChangesContent() {
		t.Error("insert should count as content change")
	}
}

// shiftMap is a test PositionMap adding a fixed delta, failing on request.
type shiftMap struct {
	delta doc.ByteOffset
	fail  error
}

func (m shiftMap) MapPos(pos doc.ByteOffset) (doc.ByteOffset, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	return pos + m.delta, nil
}

func TestStepMap(t *testing.T) {
	mapped, err := Replace(2, 4, "zz").Map(shiftMap{delta: 10})
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}

	if mapped.Range.Start != 12 || mapped.Range.End != 14 || mapped.Text != "zz" {
		t.Errorf("expected Replace[12:14) with %q, got %s", "zz", mapped)
	}
}

func TestStepMapFailureIsHard(t *testing.T) {
	cause := errors.New("gone")

	_, err := Insert(0, "a").Map(shiftMap{fail: cause})
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}
