package wordcount

import "testing"

func TestCount_MarkdownLinkKeepsLabel(t *testing.T) {
	if got := Count("[OpenAI](https://openai.com) is great."); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestCount_Compounds(t *testing.T) {
	if got := Count("state-of-the-art don't"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestCount_RawURLCountsOnce(t *testing.T) {
	if got := Count("see https://en.wikipedia.org/wiki/Solar_power today"); got != 3 {
		t.Fatalf("expected 3 (see, URL, today), got %d", got)
	}
}

func TestCount_Empty(t *testing.T) {
	if got := Count(""); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Count("   \n\t"); got != 0 {
		t.Fatalf("expected 0 for whitespace, got %d", got)
	}
}

func TestCount_PunctuationSeparates(t *testing.T) {
	if got := Count("Overview: growth, risk; outlook."); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestUnderLimit(t *testing.T) {
	if !UnderLimit(499) {
		t.Fatal("499 should be under the limit")
	}
	if UnderLimit(500) {
		t.Fatal("500 is at the limit, not under it")
	}
}
