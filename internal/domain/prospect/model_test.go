package prospect

import "testing"

func TestProspect_Matches(t *testing.T) {
	p := Prospect{PlayerID: 1, Name: "Cooper Flagg", CurrentTeam: "Duke", League: "NCAA"}

	tests := []struct {
		query string
		want  bool
	}{
		{query: "", want: true},
		{query: "flagg", want: true},
		{query: "DUKE", want: true},
		{query: " ncaa ", want: true},
		{query: "kentucky", want: false},
	}
	for _, tc := range tests {
		if got := p.Matches(tc.query); got != tc.want {
			t.Fatalf("query %q: got=%v want=%v", tc.query, got, tc.want)
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	items := []Prospect{
		{PlayerID: 1, Name: "A Guard", League: "NCAA"},
		{PlayerID: 2, Name: "B Wing", League: "NBL"},
		{PlayerID: 3, Name: "C Big", League: "NCAA"},
	}

	got := Filter(items, "ncaa")
	if len(got) != 2 || got[0].PlayerID != 1 || got[1].PlayerID != 3 {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestProspect_Validate(t *testing.T) {
	if err := (Prospect{PlayerID: 1}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if err := (Prospect{PlayerID: 1, Name: "x", Height: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if err := (Prospect{PlayerID: 1, Name: "x"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
