package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("# 标题\n\n一段 **加粗** 文本"))
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	out := string(RenderMarkdown("正文\n\n<script>alert('x')</script>"))
	if strings.Contains(out, "<script>") {
		t.Errorf("script survived: %s", out)
	}
	if !strings.Contains(out, "正文") {
		t.Errorf("text dropped: %s", out)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	// GFM 表格扩展
	out := string(RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |"))
	if !strings.Contains(out, "<table>") {
		t.Errorf("table not rendered: %s", out)
	}
}

func TestSanitizeUGC(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"普通评论", "普通评论"},
		{`好文<script>alert("x")</script>`, "好文"},
		{`<img src="x" onerror="alert(1)">`, `<img src="x">`},
	}
	for _, c := range cases {
		if got := SanitizeUGC(c.in); got != c.want {
			t.Errorf("SanitizeUGC(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
