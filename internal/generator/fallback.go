package generator

import "github.com/devgen/devproject-generator/internal/types"

// DefaultProjects returns the hand-curated fallback catalog, used whenever
// the model cannot produce usable output. Every record is fully populated;
// the only per-request substitution is the caller's skills at the front of
// each tech stack.
func DefaultProjects(skills []string) []types.ProjectIdea {
	return []types.ProjectIdea{
		{
			ID:            1,
			Title:         "Interactive Dashboard",
			Difficulty:    "Medium",
			EstimatedTime: "2-3 weeks",
			Type:          "Dashboard",
			Description:   "Build a responsive dashboard that displays real-time data visualizations. Allow users to filter and sort data, with multiple view options and exportable reports.",
			Overview:      "This dashboard project demonstrates your ability to organize and present complex data in a user-friendly interface. It focuses on data visualization, state management, and responsive design principles.",
			EmployerAppeal: "This project showcases your ability to transform complex data into actionable insights through an intuitive interface. " +
				"Employers will value your skills in data visualization, state management, and creating practical business tools that help users make data-driven decisions.",
			Features: []string{
				"Real-time data updates using WebSockets",
				"Interactive charts and graphs with filtering options",
				"User authentication and role-based access control",
				"Customizable dashboard layouts with drag-and-drop widgets",
				"Data export capabilities (CSV, PDF)",
				"Dark/light theme support",
				"Responsive design for all device sizes",
			},
			TechStack: append(firstN(skills, 3), "Chart.js", "Socket.io"),
			LearningOpportunities: []string{
				"State management for complex UI interactions",
				"Real-time data handling and WebSocket integration",
				"Creating reusable chart components",
				"Implementing dashboard layouts with CSS Grid",
				"Managing user authentication and authorization",
			},
			Challenges: []string{
				"Handling real-time data updates without affecting performance",
				"Creating an intuitive drag-and-drop interface for widget arrangement",
				"Implementing responsive design that works across all device sizes",
			},
			ImplementationSteps: []types.ImplementationPhase{
				{
					Phase:       "Project Setup",
					Description: "Set up project structure and install dependencies",
					Tasks: []string{
						"Initialize project with Create React App",
						"Install necessary libraries (Chart.js, Socket.io, etc.)",
						"Set up routing and basic component structure",
					},
					EstimatedTime: "2-3 hours",
				},
				{
					Phase:       "Dashboard Layout",
					Description: "Create the main dashboard layout and widget system",
					Tasks: []string{
						"Design responsive dashboard grid",
						"Implement widget containers",
						"Create drag-and-drop functionality",
					},
					EstimatedTime: "6-8 hours",
				},
				{
					Phase:       "Data Visualization",
					Description: "Implement charts and data display components",
					Tasks: []string{
						"Create various chart components (bar, line, pie)",
						"Implement data filtering and manipulation",
						"Add export functionality",
					},
					EstimatedTime: "8-10 hours",
				},
			},
			Resources: []types.Resource{
				{
					Title:       "Chart.js Documentation",
					URL:         "https://www.chartjs.org/docs/latest/",
					Type:        "Documentation",
					Description: "Official documentation for Chart.js",
				},
				{
					Title:       "Building Real-Time Applications with WebSockets",
					URL:         "https://developer.mozilla.org/en-US/docs/Web/API/WebSockets_API",
					Type:        "Tutorial",
					Description: "MDN guide on using WebSockets for real-time features",
				},
				{
					Title:       "React DnD Tutorial",
					URL:         "https://react-dnd.github.io/react-dnd/docs/tutorial",
					Type:        "Tutorial",
					Description: "Learn how to implement drag-and-drop in React",
				},
			},
		},
		{
			ID:            2,
			Title:         "E-commerce Product Page",
			Difficulty:    "Simple",
			EstimatedTime: "1 week",
			Type:          "E-commerce",
			Description:   "Create a fully responsive product detail page with image gallery, product variations, reviews, and add-to-cart functionality.",
			Overview:      "This project focuses on creating a modern, interactive product page that showcases your frontend skills. You'll implement common e-commerce features that demonstrate your understanding of user experience and conversion optimization.",
			EmployerAppeal: "This project demonstrates your ability to create engaging user interfaces that drive conversion. " +
				"Employers in e-commerce and retail will appreciate your attention to detail, understanding of shopping UX patterns, and implementation of features that directly impact business metrics.",
			Features: []string{
				"Interactive product image gallery with zoom functionality",
				"Product variations (size, color, etc.) with inventory tracking",
				"Customer reviews and ratings section",
				"Add to cart with animations",
				"Related products carousel",
				"Size guide and measurement information",
			},
			TechStack: append(firstN(skills, 3), "Framer Motion"),
			LearningOpportunities: []string{
				"Creating accessible and interactive UI components",
				"Managing product variations and options",
				"Implementing image galleries and carousels",
				"Animation and micro-interactions",
				"Practicing responsive design for e-commerce",
			},
			Challenges: []string{
				"Ensuring the image gallery works seamlessly across devices",
				"Managing product option combinations and inventory",
				"Creating smooth animations that enhance rather than detract from UX",
			},
			ImplementationSteps: []types.ImplementationPhase{
				{
					Phase:       "Project Setup",
					Description: "Initialize project and create basic structure",
					Tasks: []string{
						"Set up project with necessary dependencies",
						"Create component skeleton and routing",
						"Set up mock product data",
					},
					EstimatedTime: "1-2 hours",
				},
				{
					Phase:       "Image Gallery",
					Description: "Create interactive product image gallery",
					Tasks: []string{
						"Build main image viewer with thumbnails",
						"Implement image zoom functionality",
						"Make gallery fully responsive",
					},
					EstimatedTime: "3-4 hours",
				},
				{
					Phase:       "Product Options",
					Description: "Implement product variations and selection",
					Tasks: []string{
						"Create selectors for different product options",
						"Link options to inventory data",
						"Implement validation and error states",
					},
					EstimatedTime: "3-4 hours",
				},
			},
			Resources: []types.Resource{
				{
					Title:       "Building Accessible E-commerce Sites",
					URL:         "https://web.dev/accessible-ecommerce/",
					Type:        "Guide",
					Description: "Best practices for creating accessible e-commerce experiences",
				},
				{
					Title:       "Animation Techniques in React",
					URL:         "https://www.framer.com/motion/",
					Type:        "Documentation",
					Description: "Framer Motion documentation for animations",
				},
				{
					Title:       "E-commerce UX Design Patterns",
					URL:         "https://baymard.com/blog/product-page-ux",
					Type:        "Article",
					Description: "Research-based UX design patterns for product pages",
				},
			},
		},
	}
}

// firstN returns a copy of the first n elements of s (fewer when s is short).
// A copy is required so catalog tech stacks never alias the caller's slice.
func firstN(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	out := make([]string, n, n+2)
	copy(out, s[:n])
	return out
}
