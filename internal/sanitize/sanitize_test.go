package sanitize

import (
	"strings"
	"testing"
)

func TestReport_RemovesTrailingSourcesBlock(t *testing.T) {
	raw := "Overview: text.\n\nSources: Wikipedia, 2023.\n[1] https://en.wikipedia.org/wiki/X\n"
	if got := Report(raw); got != "Overview: text." {
		t.Fatalf("got %q", got)
	}
}

func TestReport_LabelVariants(t *testing.T) {
	raw := "Body first.\nSOURCES: a, b\nreferences : c\nSource: d\nReference: e\nBody last."
	got := Report(raw)
	for _, label := range []string{"SOURCES", "references", "Source:", "Reference:"} {
		if strings.Contains(got, label) {
			t.Fatalf("label %q survived: %q", label, got)
		}
	}
	if !strings.Contains(got, "Body first.") || !strings.Contains(got, "Body last.") {
		t.Fatalf("body lines lost: %q", got)
	}
}

func TestReport_StandaloneLinkLines(t *testing.T) {
	raw := "Intro.\n[2] https://en.wikipedia.org/wiki/A\n3. https://en.wikipedia.org/wiki/B\nhttps://en.wikipedia.org/wiki/C\nOutro."
	got := Report(raw)
	if strings.Contains(got, "wikipedia") {
		t.Fatalf("link line survived: %q", got)
	}
	if !strings.Contains(got, "Intro.") || !strings.Contains(got, "Outro.") {
		t.Fatalf("body lines lost: %q", got)
	}
}

func TestReport_InlineURLBlanked(t *testing.T) {
	raw := "Growth is tracked at https://example.com/stats and remains strong."
	got := Report(raw)
	if strings.Contains(got, "http") {
		t.Fatalf("inline URL survived: %q", got)
	}
	if !strings.Contains(got, "Growth is tracked at") || !strings.Contains(got, "remains strong.") {
		t.Fatalf("surrounding text lost: %q", got)
	}
}

func TestReport_NoSchemeSurvives(t *testing.T) {
	raw := "A http://a.com\n\nB https://b.org/x#f\nSources: http://c.net\nhttps://d.io\n"
	got := Report(raw)
	if strings.Contains(got, "http://") || strings.Contains(got, "https://") {
		t.Fatalf("scheme survived: %q", got)
	}
}

func TestReport_CollapsesNewlines(t *testing.T) {
	raw := "One.\n\n\n\n\nTwo."
	if got := Report(raw); got != "One.\n\nTwo." {
		t.Fatalf("got %q", got)
	}
}

func TestReport_LabelBehindURL(t *testing.T) {
	// Blanking the URL exposes a label line; it must not survive.
	raw := "keep one\nhttps://leak.example Sources: Wikipedia, 2023.\nkeep two"
	got := Report(raw)
	if strings.Contains(got, "Sources") || strings.Contains(got, "http") {
		t.Fatalf("label or URL survived: %q", got)
	}
	if !strings.Contains(got, "keep one") || !strings.Contains(got, "keep two") {
		t.Fatalf("body lines lost: %q", got)
	}
}

func TestReport_CRLFLinkLines(t *testing.T) {
	raw := "Intro.\r\n[1] https://en.wikipedia.org/wiki/A\r\nSources: b\r\nOutro.\r\n"
	got := Report(raw)
	if strings.Contains(got, "[1]") || strings.Contains(got, "http") || strings.Contains(got, "Sources") {
		t.Fatalf("link line survived CRLF input: %q", got)
	}
	if !strings.Contains(got, "Intro.") || !strings.Contains(got, "Outro.") {
		t.Fatalf("body lines lost: %q", got)
	}
}

func TestReport_Idempotent(t *testing.T) {
	inputs := []string{
		"Overview: text.\n\nSources: Wikipedia, 2023.\n[1] https://en.wikipedia.org/wiki/X\n",
		"plain text, nothing to do",
		"",
		"a https://x.com b\n\n\nSources:\n1. https://y.com\n",
		"   leading and trailing   \n\n\n",
		"https://leak.example Sources: Wikipedia, 2023.\nbody",
		"Intro.\r\n[2] https://en.wikipedia.org/wiki/B\r\n",
	}
	for _, in := range inputs {
		once := Report(in)
		twice := Report(once)
		if once != twice {
			t.Fatalf("not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestReport_KeepsNumberedProse(t *testing.T) {
	raw := "1. The market grew.\n2. Margins fell."
	if got := Report(raw); got != raw {
		t.Fatalf("numbered prose should be untouched, got %q", got)
	}
}
