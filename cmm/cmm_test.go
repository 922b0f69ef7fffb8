package cmm

import (
	"errors"
	"testing"
)

func TestErrorClearCheck(t *testing.T) {
	c := New()
	if err := c.ErrorCheck(); err != nil {
		t.Fatalf("fresh context latched %v, want nil", err)
	}

	c.Log(errors.New("boom"))
	err := c.ErrorCheck()
	if err == nil || err.Error() != "boom" {
		t.Fatalf("ErrorCheck() = %v, want boom", err)
	}
	if err2 := c.ErrorCheck(); err2 != nil {
		t.Fatalf("second ErrorCheck() = %v, want nil (slot should be drained)", err2)
	}
}

func TestLogPrefixesWhenAlreadyLatched(t *testing.T) {
	c := New()
	c.Log(errors.New("first"))
	c.Log(errors.New("second"))
	err := c.ErrorCheck()
	want := "second & first"
	if err == nil || err.Error() != want {
		t.Fatalf("ErrorCheck() = %v, want %q", err, want)
	}
}

func TestRec709Lifecycle(t *testing.T) {
	c := New()
	if !c.Rec709Registered() {
		t.Fatal("Rec709Registered() = false after New, want true")
	}
	c.Free()
	if c.Rec709Registered() {
		t.Fatal("Rec709Registered() = true after Free, want false")
	}
}
