package main

import "github.com/thapliyals/portfolio/internal/content"

// defaultPortfolio is the built-in page content. A CONTENT_FILE overlays it.
func defaultPortfolio() content.Portfolio {
	return content.Portfolio{
		Brand: content.Brand{
			Mark:     "BE",
			Title:    "Shailesh — Backend & Full-Stack Engineer",
			Subtitle: "Remote (Global) | Available for US/EU hours | Distributed team experience",
		},
		Hero: content.Hero{
			Label: "Backend & Full-Stack",
			Title: "Reliable software systems. Maintainable code. Seamless collaboration.",
			Description: `I build scalable software, backend services, and web applications that solve real problems.
			Production-ready code with high test coverage, fast issue resolution, and smooth distributed teamwork.`,
			PrimaryAction:   "Get in touch",
			SecondaryAction: "View LinkedIn",
			Stats: []content.Stat{
				{Value: "500+", Label: "Users Served"},
				{Value: "20+", Label: "Projects Delivered"},
				{Value: "99%", Label: "Client Satisfaction"},
			},
			Image: content.Image{Src: "/svg/product.svg", Alt: "Software illustration"},
			Summary: content.Summary{
				Title: "What you get",
				Items: []string{
					"Production-ready code with high test coverage",
					"Fast issue resolution",
					"Smooth collaboration across US/EU hours",
				},
			},
		},
		SkillsHeading: content.Heading{Label: "Skills", Title: "What I can build for you"},
		Skills: []content.SkillGroup{
			{
				Title: "Backend & Platform",
				Items: []string{"Java", "Spring Boot", "FastAPI", "REST APIs", "Microservices", "Cloud-native Architecture"},
			},
			{
				Title: "Systems & Infrastructure",
				Items: []string{"Apache Kafka", "RabbitMQ", "Distributed Systems", "TDD", "CI/CD", "Docker"},
			},
			{
				Title: "Full-Stack",
				Items: []string{"React.js", "Next.js", "MySQL", "MongoDB", "Performance Optimization", "SEO"},
			},
		},
		ProjectsHeading: content.Heading{Label: "Projects", Title: "Real systems, real results"},
		Projects: []content.Project{
			{
				Name: "Custom Software Solutions",
				Description: `Built scalable, maintainable software systems for multiple clients. Delivered backend APIs,
				web applications, and automation pipelines. Ensured high uptime, fast response, and test coverage across projects.`,
				Tech:   []string{"Java", "Spring Boot", "React.js", "FastAPI", "MySQL", "MongoDB"},
				Impact: "High reliability · Fast delivery · Scalable design",
			},
			{
				Name: "Web Application Performance Optimization",
				Description: `Enhanced existing web applications by reducing API calls, improving SSR/SSG performance,
				and optimizing state management. Outcome: Faster page loads, reduced server costs, and improved user experience.`,
				Tech:   []string{"React.js", "Next.js", "Redux Toolkit", "SSR/SSG", "SEO"},
				Impact: "35% faster loads · 50% fewer API calls",
			},
			{
				Name: "AI-powered Resume Matching",
				Description: `Built an automated resume screening system with FastAPI and transformer models.
				Integrated Hugging Face API to identify skill gaps and improve candidate-job fit. Reduced screening time from hours to seconds.`,
				Tech:   []string{"Python", "FastAPI", "Hugging Face API", "React.js"},
				Impact: "Automated matching · Skill gap analysis · Production-ready SaaS",
			},
		},
		ContactHeading: content.Heading{Label: "Contact", Title: "Ready to build something reliable?"},
		ContactPitch: `Need a backend that handles peak traffic? Systems that stay up? Someone who builds maintainable code and fixes issues fast? Let's talk.
		I deliver on time, write tested code, and collaborate seamlessly with distributed teams. Available for US/EU hours, ready to start immediately.`,
		Contact: content.ContactInfo{
			Email:    "mailto:sbthapliyal2002@gmail.com",
			LinkedIn: "https://linkedin.com/in/thapliyalshailesh",
			GitHub:   "https://github.com/thapliyals",
		},
		Footer: content.Footer{
			Byline: "Shailesh — Backend & Full-Stack Engineer | Remote-ready for US/EU clients | Reliable delivery for production systems",
		},
	}
}
