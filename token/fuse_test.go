package token

import "testing"

func TestFusePower(t *testing.T) {
	fts := []struct {
		in   string
		want []string
	}{
		{"2 ** 10", []string{"2", "**", "10"}},
		{"2**10", []string{"2", "**", "10"}},
		{"2 * * 10", []string{"2", "**", "10"}},
		{"2 * 10", []string{"2", "*", "10"}},
		{"a * b * c", []string{"a", "*", "b", "*", "c"}},
		{"a ** b ** c", []string{"a", "**", "b", "**", "c"}},
		{"**", []string{"**"}},
		{"", nil},
	}
	for _, ft := range fts {
		toks, err := Tokenize(nil, []byte(ft.in))
		if err != nil {
			t.Fatalf("%q: %v", ft.in, err)
		}
		got := tokStrings(FusePower(toks))
		if len(got) != len(ft.want) {
			t.Errorf("%q: got %v, want %v", ft.in, got, ft.want)
			continue
		}
		for i := range got {
			if got[i] != ft.want[i] {
				t.Errorf("%q: token %d is %q, want %q", ft.in, i, got[i], ft.want[i])
			}
		}
	}
}

func TestFusePowerPos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a ** b"))
	if err != nil {
		t.Fatal(err)
	}
	fused := FusePower(toks)
	if len(fused) != 3 {
		t.Fatalf("got %d tokens", len(fused))
	}
	if fused[1].Pos.I != 2 {
		t.Errorf("fused token at offset %d, want 2", fused[1].Pos.I)
	}
}
