package view

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/thapliyals/portfolio/internal/content"
)

// parse renders n and parses the markup back into a node tree.
func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return n.Type == html.ElementNode && slices.Contains(strings.Fields(attr(n, "class")), class)
}

// byClass returns every element under root carrying class, in document order.
func byClass(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if hasClass(n, class) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func oneByClass(t *testing.T, root *html.Node, class string) *html.Node {
	t.Helper()
	found := byClass(root, class)
	require.Len(t, found, 1, "expected exactly one .%s", class)
	return found[0]
}

func byID(root *html.Node, id string) *html.Node {
	if root.Type == html.ElementNode && attr(root, "id") == id {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := byID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, text(n))
	}
	return out
}

func fixture() content.Portfolio {
	return content.Portfolio{
		Brand: content.Brand{Mark: "BE", Title: "Test Engineer", Subtitle: "Remote"},
		Hero: content.Hero{
			Label:           "Backend",
			Title:           "Reliable systems.",
			Description:     "I build things.",
			PrimaryAction:   "Get in touch",
			SecondaryAction: "View LinkedIn",
			Stats: []content.Stat{
				{Value: "500+", Label: "Users Served"},
				{Value: "20+", Label: "Projects Delivered"},
				{Value: "99%", Label: "Client Satisfaction"},
			},
			Image: content.Image{Src: "/svg/product.svg", Alt: "Software illustration"},
		},
		SkillsHeading: content.Heading{Label: "Skills", Title: "What I can build"},
		Skills: []content.SkillGroup{
			{Title: "Backend & Platform", Items: []string{"Java", "Spring Boot"}},
			{Title: "Full-Stack", Items: []string{"React.js", "Next.js", "MySQL"}},
		},
		ProjectsHeading: content.Heading{Label: "Projects", Title: "Real systems"},
		Projects: []content.Project{
			{Name: "Alpha", Description: "First project.", Tech: []string{"Go", "SQLite"}, Impact: "Fast"},
			{Name: "Beta", Description: "Second project.", Tech: []string{"React.js", "Next.js", "SEO"}, Impact: "35% faster"},
		},
		ContactHeading: content.Heading{Label: "Contact", Title: "Ready?"},
		ContactPitch:   "Let's talk.",
		Contact: content.ContactInfo{
			Email:    "mailto:test@example.com",
			LinkedIn: "https://linkedin.com/in/test",
			GitHub:   "https://github.com/test",
		},
		Footer: content.Footer{Byline: "Test Engineer | Remote"},
	}
}
