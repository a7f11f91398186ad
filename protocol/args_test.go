package protocol

import (
	"bytes"
	"reflect"
	"testing"
)

func TestArgBlock(t *testing.T) {
	cases := []struct {
		name  string
		base  string
		extra []string
		want  string
	}{
		{"no launch args", "app.dol", nil, "app.dol\x00"},
		{"one launch arg", "boot.elf", []string{"-v"}, "boot.elf\x00-v\x00"},
		{"order preserved", "game.zip", []string{"b", "a"}, "game.zip\x00b\x00a\x00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ArgBlock(tc.base, tc.extra); string(got) != tc.want {
				t.Errorf("ArgBlock = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestArgBlockRoundTrip(t *testing.T) {
	// Splitting on NUL must give back the ordered list plus one
	// trailing empty element from the terminator.
	block := ArgBlock("app.dol", []string{"one", "two"})

	var got []string
	for _, part := range bytes.Split(block, []byte{0x00}) {
		got = append(got, string(part))
	}

	want := []string{"app.dol", "one", "two", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("split = %q, want %q", got, want)
	}
}
