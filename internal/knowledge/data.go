package knowledge

// Default returns the built-in Inonetecx knowledge base. It is the fallback
// when no knowledge file is configured and the reference content for tests.
func Default() *Base {
	return &Base{
		Company: Company{
			Name:       "Inonetecx",
			Tagline:    "Innovating Tomorrow's Technology Today",
			About:      "Inonetecx is a cutting-edge technology solutions provider specializing in digital transformation, AI integration, and innovative software development. We empower businesses to thrive in the digital age.",
			Foundation: "2023",
			Mission:    "To democratize technology and make it accessible for businesses of all sizes",
			Clients:    "78+ satisfied clients globally",
		},
		Services: []Service{
			{
				Key:          "web_development",
				Name:         "Web Development",
				Description:  "Custom websites, e-commerce platforms, and web applications using latest technologies",
				Technologies: []string{"React", "Angular", "Node.js", "Python", "PHP"},
				Timeline:     "2-8 weeks depending on complexity",
			},
			{
				Key:          "mobile_development",
				Name:         "Mobile App Development",
				Description:  "Native and cross-platform mobile applications for iOS and Android",
				Technologies: []string{"React Native", "Flutter", "Swift", "Kotlin"},
				Timeline:     "6-16 weeks depending on features",
			},
			{
				Key:          "cloud_solutions",
				Name:         "Cloud Computing Solutions",
				Description:  "Cloud migration, infrastructure setup, and management services",
				Technologies: []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes"},
				Timeline:     "4-12 weeks depending on scale",
			},
			{
				Key:          "ai_ml",
				Name:         "AI/ML Integration",
				Description:  "Artificial intelligence and machine learning solutions for business automation",
				Technologies: []string{"TensorFlow", "PyTorch", "OpenAI", "Hugging Face"},
				Timeline:     "8-20 weeks depending on complexity",
			},
			{
				Key:          "digital_marketing",
				Name:         "Digital Marketing Services",
				Description:  "SEO, social media marketing, content marketing, and PPC campaigns",
				Technologies: []string{"Google Ads", "Facebook Ads", "Analytics", "SEO Tools"},
				Timeline:     "Ongoing monthly services",
			},
			{
				Key:          "ui_ux",
				Name:         "UI/UX Design",
				Description:  "User-centered design for websites and applications",
				Technologies: []string{"Figma", "Adobe XD", "Sketch", "Photoshop"},
				Timeline:     "3-6 weeks depending on scope",
			},
		},
		Pricing: []PricingEntry{
			{Key: "web_development", Start: 15000, Currency: "₹", Description: "Basic website starts from"},
			{Key: "mobile_development", Start: 50000, Currency: "₹", Description: "Mobile app starts from"},
			{Key: "cloud_solutions", Start: 40000, Currency: "₹", Description: "Cloud setup starts from"},
			{Key: "digital_marketing", Start: 10000, Currency: "₹/month", Description: "Monthly marketing package starts from"},
			{Key: "ai_ml", Start: 75000, Currency: "₹", Description: "AI/ML solution starts from"},
			{Key: "ui_ux", Start: 20000, Currency: "₹", Description: "Design project starts from"},
		},
		EnterpriseNote: "Contact for custom enterprise pricing",
		Contact: Contact{
			Email:         "contact@inonetecx.com",
			Phone:         "+1 647-493-5614 (Canada)",
			Address:       "180 Northfield Dr. W, unit 4 Waterloo, ON N2L 0C7, Canada",
			Website:       "https://inonetecx.com",
			BusinessHours: "Monday to Friday, 9:00 AM to 6:00 PM IST",
		},
		Team: Team{
			Size:           "25+ skilled professionals",
			Expertise:      []string{"Full-stack developers", "AI specialists", "Cloud architects", "UI/UX designers", "Digital marketing experts"},
			Experience:     "Average 3+ years industry experience",
			Certifications: []string{"AWS Certified", "Google Cloud Professional", "Microsoft Azure Certified"},
		},
		Process: []ProcessStep{
			{Name: "consultation", Description: "Free initial consultation to understand your requirements"},
			{Name: "planning", Description: "Detailed project planning and timeline creation"},
			{Name: "development", Description: "Agile development with regular updates"},
			{Name: "testing", Description: "Comprehensive testing and quality assurance"},
			{Name: "deployment", Description: "Smooth deployment and go-live support"},
			{Name: "maintenance", Description: "Ongoing support and maintenance services"},
		},
	}
}
