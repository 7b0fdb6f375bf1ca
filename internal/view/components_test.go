package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thapliyals/portfolio/internal/content"
)

func TestSectionHeading(t *testing.T) {
	doc := parse(t, SectionHeading("Skills", "What I can build"))

	block := oneByClass(t, doc, "section-heading")
	children := elementChildren(block)
	require.Len(t, children, 2)
	assert.Equal(t, "p", children[0].Data)
	assert.Equal(t, "Skills", text(children[0]))
	assert.Equal(t, "h2", children[1].Data)
	assert.Equal(t, "What I can build", text(children[1]))
}

func TestSectionHeading_EmptyStrings(t *testing.T) {
	doc := parse(t, SectionHeading("", ""))

	assert.Equal(t, "", text(oneByClass(t, doc, "section-label")))
	assert.Equal(t, "", text(oneByClass(t, doc, "section-title")))
}

func TestStat(t *testing.T) {
	doc := parse(t, Stat("99%", "Client Satisfaction"))

	card := oneByClass(t, doc, "stat-card")
	assert.Equal(t, "99%", text(oneByClass(t, card, "stat-value")))
	assert.Equal(t, "Client Satisfaction", text(oneByClass(t, card, "stat-label")))
}

func TestProjectCard(t *testing.T) {
	p := content.Project{
		Name:        "Web Application Performance Optimization",
		Description: "Enhanced existing web applications.",
		Tech:        []string{"React.js", "Next.js", "Redux Toolkit", "SSR/SSG", "SEO"},
		Impact:      "35% faster loads · 50% fewer API calls",
	}
	doc := parse(t, ProjectCard(p))

	card := oneByClass(t, doc, "project-card")
	assert.Equal(t, "article", card.Data)
	assert.Equal(t, p.Name, text(oneByClass(t, card, "project-name")))
	assert.Equal(t, p.Impact, text(oneByClass(t, card, "project-impact")))
	assert.Equal(t, "Production", text(oneByClass(t, card, "project-badge")))
	assert.Equal(t, p.Description, text(oneByClass(t, card, "project-description")))
	assert.Equal(t, p.Tech, texts(byClass(card, "project-tech-item")))
}

func TestProjectCard_EmptyTech(t *testing.T) {
	doc := parse(t, ProjectCard(content.Project{Name: "Bare", Tech: nil}))

	strip := oneByClass(t, doc, "project-tech")
	assert.Empty(t, elementChildren(strip))
}

func TestContactLink(t *testing.T) {
	doc := parse(t, ContactLink("mailto:test@example.com", "Email"))

	a := oneByClass(t, doc, "contact-link")
	assert.Equal(t, "a", a.Data)
	assert.Equal(t, "mailto:test@example.com", attr(a, "href"))
	assert.Equal(t, "_blank", attr(a, "target"))
	assert.Equal(t, "noopener noreferrer", attr(a, "rel"))

	spans := elementChildren(a)
	require.Len(t, spans, 2)
	assert.Equal(t, "Email", text(spans[0]))
	assert.Equal(t, "→", text(spans[1]))
	assert.Equal(t, "true", attr(spans[1], "aria-hidden"))
}

func TestContactLink_HrefIsNotValidated(t *testing.T) {
	doc := parse(t, ContactLink("not a url", "Odd"))
	assert.Equal(t, "not a url", attr(oneByClass(t, doc, "contact-link"), "href"))
}

func TestFooterLink(t *testing.T) {
	doc := parse(t, FooterLink("https://github.com/test", "GitHub"))

	a := oneByClass(t, doc, "footer-link")
	assert.Equal(t, "https://github.com/test", attr(a, "href"))
	assert.Equal(t, "_blank", attr(a, "target"))
	assert.Equal(t, "noopener noreferrer", attr(a, "rel"))
	assert.Equal(t, "GitHub", text(a))
}
