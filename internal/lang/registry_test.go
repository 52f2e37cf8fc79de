package lang

import "testing"

func TestExtensionFor_KnownTags(t *testing.T) {
	cases := map[string]string{
		"javascript": "js",
		"js":         "js",
		"jsx":        "jsx",
		"typescript": "ts",
		"ts":         "ts",
		"tsx":        "tsx",
		"css":        "css",
		"scss":       "scss",
		"html":       "html",
		"json":       "json",
		"markdown":   "md",
	}
	for tag, want := range cases {
		if got := ExtensionFor(tag); got != want {
			t.Errorf("ExtensionFor(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestExtensionFor_UnknownTag_Defaults(t *testing.T) {
	if got := ExtensionFor("cobol"); got != DefaultExtension {
		t.Fatalf("expected default %q, got %q", DefaultExtension, got)
	}
	if got := ExtensionFor(""); got != DefaultExtension {
		t.Fatalf("expected default %q for empty tag, got %q", DefaultExtension, got)
	}
}

func TestLanguageFor_HTMLIsMarkup(t *testing.T) {
	if got := LanguageFor("html"); got != "markup" {
		t.Fatalf("expected markup, got %q", got)
	}
}

func TestLanguageFor_LeadingDotAccepted(t *testing.T) {
	if got := LanguageFor(".jsx"); got != "jsx" {
		t.Fatalf("expected jsx, got %q", got)
	}
}

func TestLanguageFor_UnknownExtension_Defaults(t *testing.T) {
	if got := LanguageFor("xyz"); got != DefaultHighlighter {
		t.Fatalf("expected default %q, got %q", DefaultHighlighter, got)
	}
}

func TestRoundTrip_TagToExtToHighlighter(t *testing.T) {
	// js and javascript both land on the javascript highlighter.
	if got := LanguageFor(ExtensionFor("javascript")); got != "javascript" {
		t.Fatalf("expected javascript, got %q", got)
	}
	if got := LanguageFor(ExtensionFor("markdown")); got != "markdown" {
		t.Fatalf("expected markdown, got %q", got)
	}
}
