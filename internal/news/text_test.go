package news

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
		{"<p>One</p><p>Two</p>", "One Two"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{`<img src="x" onerror="alert(1)">Safe<script>alert(2)</script>`, "Safe"},
		{"line<br>break", "line break"},
		{"a\x1b[31mred\x07", "a[31mred"},
		{"<p>x&#27;]52;c;aGk=&#7;y</p>", "x]52;c;aGk=y"},
		{"c1\u009bcontrol", "c1control"},
	}
	for _, tt := range tests {
		got := PlainText(tt.input)
		if got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSpeechText(t *testing.T) {
	if got := SpeechText(Article{Title: "A", Description: "<p>B</p>"}); got != "A. B" {
		t.Errorf("SpeechText = %q", got)
	}
	if got := SpeechText(Article{Title: "A"}); got != "A" {
		t.Errorf("SpeechText without description = %q", got)
	}
}
