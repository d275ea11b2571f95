package docs

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics returns the topics listed in readme.md as "* topic: description".
func readmeTopics(t *testing.T) []string {
	t.Helper()
	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	var topics []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindListItem {
			return ast.WalkContinue, nil
		}
		var line strings.Builder
		for i := 0; i < n.FirstChild().Lines().Len(); i++ {
			seg := n.FirstChild().Lines().At(i)
			line.Write(seg.Value(content))
		}
		if name, _, ok := strings.Cut(line.String(), ":"); ok {
			topics = append(topics, strings.TrimSpace(name))
		}
		return ast.WalkSkipChildren, nil
	})
	return topics
}

func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("no topic listed in readme.md")
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	for _, topic := range listed {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q) error = %v", topic, err)
			continue
		}
		if !strings.HasPrefix(content, "# ") {
			t.Errorf("topic %q does not start with a title", topic)
		}
	}
}

func TestGetTopic_All(t *testing.T) {
	content, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	for _, title := range []string{"# Ledger file", "# Fees", "# Anomalies"} {
		if !strings.Contains(content, title) {
			t.Errorf("GetTopic(*) does not contain %q", title)
		}
	}
	if _, err := GetTopic("unknown"); err == nil {
		t.Error("GetTopic(unknown) want an error")
	}
}
