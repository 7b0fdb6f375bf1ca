// Package view renders the portfolio page as a gomponents node tree.
//
// Every function here is a pure mapping from content to markup: the same
// input always renders the same bytes.
package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/thapliyals/portfolio/internal/content"
)

// SectionHeading renders a small label line above a larger section title.
func SectionHeading(label, title string) g.Node {
	return h.Div(h.Class("section-heading"),
		h.P(h.Class("section-label"), g.Text(label)),
		h.H2(h.Class("section-title"), g.Text(title)),
	)
}

// Stat renders a pre-formatted value with its caption underneath.
func Stat(value, label string) g.Node {
	return h.Div(h.Class("stat-card"),
		h.Div(h.Class("stat-value"), g.Text(value)),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

// ProjectCard renders one project. Tags keep the order of p.Tech.
func ProjectCard(p content.Project) g.Node {
	return h.Article(h.Class("project-card"),
		h.Div(h.Class("project-header"),
			h.Div(
				h.H3(h.Class("project-name"), g.Text(p.Name)),
				h.P(h.Class("project-impact"), g.Text(p.Impact)),
			),
			h.Span(h.Class("project-badge"), g.Text("Production")),
		),
		h.P(h.Class("project-description"), g.Text(p.Description)),
		h.Div(h.Class("project-tech"),
			g.Map(p.Tech, func(tag string) g.Node {
				return h.Span(h.Class("project-tech-item"), g.Text(tag))
			}),
		),
	)
}

// ContactLink renders an outbound link that opens in a new tab without
// opener access or a referrer. href is not validated.
func ContactLink(href, label string) g.Node {
	return h.A(h.Href(href), h.Class("contact-link"), h.Target("_blank"), h.Rel("noopener noreferrer"),
		h.Span(g.Text(label)),
		h.Span(h.Aria("hidden", "true"), h.Class("contact-link-arrow"), g.Text("→")),
	)
}

// FooterLink is the plain footer variant of ContactLink.
func FooterLink(href, label string) g.Node {
	return h.A(h.Class("footer-link"), h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"),
		g.Text(label),
	)
}
