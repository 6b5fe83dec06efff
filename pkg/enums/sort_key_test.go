package enums

import "testing"

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{in: "", want: SortKeyNone},
		{in: "none", want: SortKeyNone},
		{in: "price-asc", want: SortKeyPriceAsc},
		{in: "price-desc", want: SortKeyPriceDesc},
		{in: "rating-desc", want: SortKeyRatingDesc},
		{in: "rating", want: SortKeyRatingDesc},
		{in: "price", wantErr: true},
		{in: "RATING", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseSortKey(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseSortKey(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSortKey(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSortKey(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestSortKeyIsValid(t *testing.T) {
	if !SortKeyPriceAsc.IsValid() {
		t.Fatal("price-asc should be valid")
	}
	if SortKey("rating").IsValid() {
		t.Fatal("legacy alias is not a canonical sort key")
	}
}
