package models

// SampleProfessional returns the fixed placeholder profile inserted when the
// professional collection is found empty, so the first listing is never bare.
func SampleProfessional() Professional {
	return Professional{
		ProfessionalName: "Jane Doe",
		Base64Image:      "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==",
		NameLink: &NameLink{
			FirstName: "Jane Doe",
			URL:       "https://example.com",
		},
		PrimaryDescription: "Full Stack Developer & UI/UX Designer",
		WorkDescription1:   "Experienced developer with a passion for creating intuitive user experiences. Specialized in React, Node.js, and modern web technologies.",
		WorkDescription2:   "Previously worked at Tech Innovations Inc. where I led the development of several award-winning applications. Focused on writing clean, maintainable code.",
		LinkTitleText:      "Connect with me:",
		LinkedInLink: &TextLink{
			Text: "LinkedIn Profile",
			Link: "https://linkedin.com/in/janedoe",
		},
		GithubLink: &TextLink{
			Text: "GitHub Profile",
			Link: "https://github.com/janedoe",
		},
	}
}
