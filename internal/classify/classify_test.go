package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		title, desc string
		want        Category
	}{
		{"Science Olympiad Results", "Our team did well in the regional science exam", Academics},
		{"Varsity Soccer Wins League", "A late goal sealed the championship match", Sports},
		{"Winter Concert", "The orchestra and choir perform seasonal music", Arts},
		{"Open Day This Saturday", "Prospective families can tour the campus", Admissions},
		{"Career Fair", "Meet employers and find an internship", Career},
		{"Food Drive Success", "Thanks to every volunteer and family who helped", Community},
	}
	for _, tt := range tests {
		if got := Classify(tt.title, tt.desc); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.title, got, tt.want)
		}
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	if cat := Classify("", ""); cat != Community {
		t.Errorf("expected Community for empty input, got %s", cat)
	}
}

func TestClassifyDefaultsToCommunity(t *testing.T) {
	if cat := Classify("Principal's Update", "A few notes on the week ahead"); cat != Community {
		t.Errorf("expected Community for generic content, got %s", cat)
	}
}

func TestClassifyTitleWeighsDouble(t *testing.T) {
	// One title hit for Sports beats one description hit for Arts.
	if cat := Classify("Basketball update", "with music at halftime"); cat != Sports {
		t.Errorf("expected Sports, got %s", cat)
	}
}

func TestClassifyTieKeepsEarlierCategory(t *testing.T) {
	// "exam" (Academics) and "concert" (Arts) both score 2.
	if cat := Classify("exam concert", ""); cat != Academics {
		t.Errorf("expected Academics on tie, got %s", cat)
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Hello, World! (2025)")
	want := []string{"hello", "world", "2025"}
	if len(got) != len(want) {
		t.Fatalf("tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
