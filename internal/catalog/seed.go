package catalog

import "github.com/iliyamo/edusynth/internal/course"

var seed = []Item{
	{
		Course: course.Course{
			ID:               "catalog-1",
			Title:            "Complete Web Development Bootcamp",
			Description:      "Master modern web development with HTML, CSS, JavaScript, React, Node.js, and more. Build real-world projects and become a full-stack developer.",
			Instructor:       "Dr. Sarah Chen",
			Thumbnail:        "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:         "Programming",
			Level:            course.Beginner,
			Duration:         "45 hours",
			Rating:           4.9,
			StudentsEnrolled: 15234,
			TotalLessons:     42,
			Certificate:      true,
			Source:           "pdf",
			Topics:           []string{"HTML", "CSS", "JavaScript", "React", "Node.js"},
			Summary:          "From zero to full-stack developer. This comprehensive bootcamp covers everything you need to build modern web applications.",
			Lessons: []course.Lesson{
				{
					ID:          "lesson-1-1",
					Title:       "Introduction to Web Development",
					Description: "Get started with web development fundamentals",
					Duration:    "15 min",
					Content:     "Welcome to the Complete Web Development Bootcamp! In this lesson, you'll learn about the structure of the web, how websites work, and what tools you'll need to become a web developer. We'll explore the relationship between HTML, CSS, and JavaScript, and discuss the modern web development landscape.",
					Order:       1,
					Resources:   []course.Resource{},
				},
				{
					ID:          "lesson-1-2",
					Title:       "HTML Fundamentals",
					Description: "Master HTML structure and semantic markup",
					Duration:    "25 min",
					Content:     "HTML is the foundation of web development. Learn about HTML elements, attributes, semantic markup, and best practices for creating well-structured web pages. We'll build your first webpage from scratch.",
					Order:       2,
					Resources:   []course.Resource{},
				},
			},
			Notes:      []course.Note{},
			Quizzes:    []course.Quiz{},
			Flashcards: []course.Flashcard{},
		},
		WhatYouLearn: []string{
			"Build responsive websites from scratch",
			"Master React.js and modern JavaScript",
			"Create full-stack applications with Node.js",
			"Deploy applications to production",
			"Work with databases and APIs",
		},
		Requirements: []string{
			"No programming experience required",
			"A computer with internet connection",
			"Willingness to learn and practice",
		},
	},
	{
		Course: emptyCourse(course.Course{
			ID:               "catalog-2",
			Title:            "Data Science and Machine Learning",
			Description:      "Learn data science, machine learning, and AI. Master Python, statistical analysis, and build predictive models with real datasets.",
			Instructor:       "Prof. Michael Rodriguez",
			Thumbnail:        "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:         "Data Science",
			Level:            course.Intermediate,
			Duration:         "60 hours",
			Rating:           4.8,
			StudentsEnrolled: 12567,
			TotalLessons:     38,
			Topics:           []string{"Python", "Machine Learning", "Data Analysis", "Neural Networks"},
			Summary:          "Become a data scientist. Master Python, machine learning algorithms, and build AI models from scratch.",
		}),
		WhatYouLearn: []string{
			"Master Python for data science",
			"Build machine learning models",
			"Perform statistical analysis",
			"Work with neural networks",
			"Create data visualizations",
		},
		Requirements: []string{
			"Basic Python knowledge",
			"Understanding of mathematics",
			"Familiarity with programming concepts",
		},
	},
	{
		Course: emptyCourse(course.Course{
			ID:               "catalog-3",
			Title:            "Digital Marketing Mastery",
			Description:      "Complete digital marketing course covering SEO, social media, content marketing, email campaigns, and analytics to grow your business.",
			Instructor:       "Emma Thompson",
			Thumbnail:        "https://images.pexels.com/photos/265087/pexels-photo-265087.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:         "Business",
			Level:            course.Beginner,
			Duration:         "30 hours",
			Rating:           4.7,
			StudentsEnrolled: 18903,
			TotalLessons:     28,
			Topics:           []string{"SEO", "Social Media", "Content Marketing", "Analytics"},
			Summary:          "Master digital marketing strategies. Learn SEO, social media, and content marketing to grow your business.",
		}),
		WhatYouLearn: []string{
			"Master SEO and content marketing",
			"Run successful social media campaigns",
			"Create email marketing strategies",
			"Analyze marketing metrics",
			"Build a complete marketing plan",
		},
		Requirements: []string{
			"No prior marketing experience needed",
			"Access to social media platforms",
			"Basic computer skills",
		},
	},
	{
		Course: emptyCourse(course.Course{
			ID:               "catalog-4",
			Title:            "UI/UX Design Fundamentals",
			Description:      "Learn user interface and experience design principles. Master Figma, create beautiful designs, and build user-centered products.",
			Instructor:       "Alex Kim",
			Thumbnail:        "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:         "Design",
			Level:            course.Beginner,
			Duration:         "25 hours",
			Rating:           4.8,
			StudentsEnrolled: 9876,
			TotalLessons:     32,
			Topics:           []string{"UI Design", "UX Research", "Figma", "Prototyping"},
			Summary:          "Master UI/UX design. Learn design principles, user research, and create beautiful interfaces with Figma.",
		}),
		WhatYouLearn: []string{
			"Master design principles and theory",
			"Create professional UI designs in Figma",
			"Conduct user research and testing",
			"Build design systems",
			"Create interactive prototypes",
		},
		Requirements: []string{
			"No design experience required",
			"Install Figma (free)",
			"Creative mindset",
		},
	},
	{
		Course: emptyCourse(course.Course{
			ID:               "catalog-5",
			Title:            "Python Programming Complete Course",
			Description:      "From basics to advanced Python programming. Learn OOP, data structures, algorithms, and build real projects.",
			Instructor:       "Dr. James Wilson",
			Thumbnail:        "https://images.pexels.com/photos/1181671/pexels-photo-1181671.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:         "Programming",
			Level:            course.Beginner,
			Duration:         "40 hours",
			Rating:           4.9,
			StudentsEnrolled: 21456,
			TotalLessons:     45,
			Topics:           []string{"Python", "OOP", "Data Structures", "Algorithms"},
			Summary:          "Master Python programming from scratch. Learn fundamentals, OOP, and build real-world applications.",
		}),
		WhatYouLearn: []string{
			"Master Python fundamentals",
			"Object-oriented programming",
			"Work with APIs and databases",
			"Build automation scripts",
			"Create real-world applications",
		},
		Requirements: []string{
			"No programming experience needed",
			"A computer with Python installed",
			"Dedication to practice coding",
		},
	},
	{
		Course: emptyCourse(course.Course{
			ID:               "catalog-6",
			Title:            "Financial Analysis and Modeling",
			Description:      "Master financial analysis, Excel modeling, valuation techniques, and investment strategies used by professional analysts.",
			Instructor:       "Robert Martinez",
			Thumbnail:        "https://images.pexels.com/photos/6801648/pexels-photo-6801648.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:         "Finance",
			Level:            course.Advanced,
			Duration:         "35 hours",
			Rating:           4.7,
			StudentsEnrolled: 5432,
			TotalLessons:     30,
			Topics:           []string{"Financial Modeling", "Valuation", "Excel", "Investment Analysis"},
			Summary:          "Master financial analysis and modeling. Learn valuation, Excel modeling, and investment strategies.",
		}),
		WhatYouLearn: []string{
			"Build financial models in Excel",
			"Perform company valuations",
			"Analyze financial statements",
			"Create investment portfolios",
			"Master financial forecasting",
		},
		Requirements: []string{
			"Basic accounting knowledge",
			"Excel proficiency",
			"Understanding of business fundamentals",
		},
	},
}

// emptyCourse fills the defaults shared by seed entries that ship without
// lesson content yet.
func emptyCourse(c course.Course) course.Course {
	c.Source = "pdf"
	c.Certificate = true
	c.Lessons = []course.Lesson{}
	c.Notes = []course.Note{}
	c.Quizzes = []course.Quiz{}
	c.Flashcards = []course.Flashcard{}
	return c
}
