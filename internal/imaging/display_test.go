package imaging

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisplay(t *testing.T) {
	b := bufferOf([]Pixel{red, green})
	want := b.Clone()

	var out bytes.Buffer
	if err := Display(&out, b); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	wantText := "\n" +
		"[  [  (255,0,0,255) #ff0000,\n" +
		"      (0,255,0,255) #00ff00 ]  ]\n" +
		"\n" +
		"R255 R0\n" +
		"G0   G255\n" +
		"B0   B0\n" +
		"A255 A255\n" +
		"\n"
	if diff := cmp.Diff(wantText, out.String()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("display modified the buffer:\n%s", diff)
	}
}

func TestDisplay_RowBrackets(t *testing.T) {
	b := bufferOf(
		[]Pixel{px(1, 2, 3, 4)},
		[]Pixel{px(100, 200, 255, 0)},
	)

	var out bytes.Buffer
	if err := Display(&out, b); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	// shorter labels are padded to the widest one before the closing bracket
	wantPrefix := "\n" +
		"[  [  (1,2,3,4) #010203       ],\n" +
		"   [  (100,200,255,0) #64c8ff ]  ]\n"
	if got := out.String(); len(got) < len(wantPrefix) || got[:len(wantPrefix)] != wantPrefix {
		t.Errorf("dump prefix mismatch:\ngot:\n%s\nwant prefix:\n%s", got, wantPrefix)
	}
}
