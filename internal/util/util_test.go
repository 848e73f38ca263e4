package util

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "simple title", title: "Hello World", expected: "hello-world"},
		{name: "punctuation stripped", title: "Hello, World!", expected: "hello-world"},
		{name: "already a slug", title: "hello-world", expected: "hello-world"},
		{name: "mixed case and digits", title: "Go 1.22 Release Notes", expected: "go-122-release-notes"},
		{name: "underscores stripped", title: "snake_case_title", expected: "snakecasetitle"},
		{name: "collapses dash runs", title: "a -- b", expected: "a-b"},
		{name: "trims edge dashes", title: "--edgy--", expected: "edgy"},
		{name: "empty", title: "", expected: ""},
		{name: "only punctuation", title: "!!!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.title); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	t.Parallel()

	got := SplitTags(" go, web ,  , api ")
	want := []string{"go", "web", "api"}
	if len(got) != len(want) {
		t.Fatalf("SplitTags returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitTags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestJoinTags(t *testing.T) {
	t.Parallel()

	if got := JoinTags([]string{" go ", "", "web"}); got != "go,web" {
		t.Errorf("JoinTags = %q, want %q", got, "go,web")
	}
}
