package podcast

import (
	"bytes"
	"testing"
)

func TestAssemble_PreservesOrder(t *testing.T) {
	buffers := [][]byte{
		[]byte("first-"),
		[]byte("second-"),
		[]byte("third"),
	}

	got := Assemble(buffers)
	if !bytes.Equal(got, []byte("first-second-third")) {
		t.Errorf("Assemble = %q", got)
	}
}

func TestAssemble_LengthIsSumOfParts(t *testing.T) {
	buffers := [][]byte{
		make([]byte, 100),
		make([]byte, 0),
		make([]byte, 250),
	}

	if got := len(Assemble(buffers)); got != 350 {
		t.Errorf("assembled length = %d, want 350", got)
	}
}

func TestAssemble_Empty(t *testing.T) {
	if got := Assemble(nil); len(got) != 0 {
		t.Errorf("Assemble(nil) length = %d, want 0", len(got))
	}
	if got := Assemble([][]byte{}); len(got) != 0 {
		t.Errorf("Assemble(empty) length = %d, want 0", len(got))
	}
}

func TestAssemble_DoesNotAliasInputs(t *testing.T) {
	src := []byte("abc")
	out := Assemble([][]byte{src})
	out[0] = 'z'
	if src[0] != 'a' {
		t.Error("Assemble aliased the input buffer")
	}
}
