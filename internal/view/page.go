package view

import (
	"io"

	"github.com/samber/lo"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/thapliyals/portfolio/internal/content"
)

type link struct {
	href  string
	label string
}

// profileLinks is the LinkedIn, GitHub, Email order used by the header and footer.
func profileLinks(ci content.ContactInfo) []link {
	return []link{
		{ci.LinkedIn, "LinkedIn"},
		{ci.GitHub, "GitHub"},
		{ci.Email, "Email"},
	}
}

func contactLinks(ci content.ContactInfo) []link {
	return []link{
		{ci.Email, "Email"},
		{ci.LinkedIn, "LinkedIn"},
		{ci.GitHub, "GitHub"},
	}
}

func renderLinks(links []link, fn func(href, label string) g.Node) g.Group {
	return lo.Map(links, func(l link, _ int) g.Node { return fn(l.href, l.label) })
}

// Render writes the full HTML document for p to w.
func Render(w io.Writer, p content.Portfolio) error {
	return Page(p).Render(w)
}

// Page wraps App in an HTML5 document.
func Page(p content.Portfolio) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       p.Brand.Title,
		Description: p.Hero.Title,
		Language:    "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		},
		Body: []g.Node{App(p)},
	})
}

// App assembles header, hero, skills, projects, contact and footer in that
// order. Every collection entry is rendered; empty collections render
// empty containers.
func App(p content.Portfolio) g.Node {
	return h.Div(h.Class("app"),
		header(p),
		h.Main(h.Class("main"),
			hero(p),
			skills(p),
			projects(p),
			contact(p),
		),
		footer(p),
	)
}

func header(p content.Portfolio) g.Node {
	return h.Header(h.Class("header"),
		h.Div(h.Class("header-container"),
			h.Div(h.Class("header-brand"),
				h.Div(h.Class("header-logo"), g.Text(p.Brand.Mark)),
				h.Div(
					h.P(h.Class("header-title"), g.Text(p.Brand.Title)),
					h.P(h.Class("header-subtitle"), g.Text(p.Brand.Subtitle)),
				),
			),
			h.Div(h.Class("header-links"), renderLinks(profileLinks(p.Contact), ContactLink)),
		),
	)
}

func hero(p content.Portfolio) g.Node {
	hr := p.Hero
	return h.Section(h.ID("hero"), h.Class("hero"),
		h.Div(h.Class("hero-content"),
			h.P(h.Class("hero-label"), g.Text(hr.Label)),
			h.H1(h.Class("hero-title"), g.Text(hr.Title)),
			h.P(h.Class("hero-description"), g.Text(hr.Description)),
			h.Div(h.Class("hero-actions"),
				ContactLink(p.Contact.Email, hr.PrimaryAction),
				ContactLink(p.Contact.LinkedIn, hr.SecondaryAction),
			),
			h.Div(h.Class("hero-stats"),
				g.Map(hr.Stats, func(s content.Stat) g.Node { return Stat(s.Value, s.Label) }),
			),
		),
		heroVisual(hr),
	)
}

// heroVisual shows the illustration, or the summary card when no image is set.
func heroVisual(hr content.Hero) g.Node {
	if hr.Image.Src != "" {
		return h.Div(h.Class("hero-visual"),
			h.Img(h.Src(hr.Image.Src), h.Alt(hr.Image.Alt), h.Class("hero-image")),
		)
	}
	return h.Div(h.Class("hero-card"),
		h.P(h.Class("hero-card-title"), g.Text(hr.Summary.Title)),
		h.Ul(h.Class("hero-card-list"),
			g.Map(hr.Summary.Items, func(item string) g.Node {
				return h.Li(h.Class("hero-card-item"), g.Text(item))
			}),
		),
	)
}

func skills(p content.Portfolio) g.Node {
	return h.Section(h.ID("skills"), h.Class("skills"),
		SectionHeading(p.SkillsHeading.Label, p.SkillsHeading.Title),
		h.Div(h.Class("skills-grid"),
			g.Map(p.Skills, skillCard),
		),
	)
}

func skillCard(group content.SkillGroup) g.Node {
	return h.Article(h.Class("skill-card"),
		h.H3(h.Class("skill-title"), g.Text(group.Title)),
		h.Ul(h.Class("skill-list"),
			g.Map(group.Items, func(item string) g.Node {
				return h.Li(h.Class("skill-item"),
					h.Span(h.Class("skill-bullet"), h.Aria("hidden", "true")),
					g.Text(item),
				)
			}),
		),
	)
}

func projects(p content.Portfolio) g.Node {
	return h.Section(h.ID("projects"), h.Class("projects"),
		SectionHeading(p.ProjectsHeading.Label, p.ProjectsHeading.Title),
		h.Div(h.Class("projects-grid"),
			g.Map(p.Projects, ProjectCard),
		),
	)
}

func contact(p content.Portfolio) g.Node {
	return h.Section(h.ID("contact"), h.Class("contact"),
		SectionHeading(p.ContactHeading.Label, p.ContactHeading.Title),
		h.Div(h.Class("contact-content"),
			h.P(h.Class("contact-text"), g.Text(p.ContactPitch)),
			h.Div(h.Class("contact-links"), renderLinks(contactLinks(p.Contact), ContactLink)),
		),
	)
}

func footer(p content.Portfolio) g.Node {
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("footer-container"),
			h.P(g.Text(p.Footer.Byline)),
			h.Div(h.Class("footer-links"), renderLinks(profileLinks(p.Contact), FooterLink)),
		),
	)
}
