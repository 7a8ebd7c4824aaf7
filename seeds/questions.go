package seeds

import "github.com/actuallystonmai/program-finder/internal/domain"

func opt(id, text, value string) domain.QuestionOption {
	return domain.QuestionOption{ID: id, Text: text, Value: value}
}

func num(v float64) *float64 {
	return &v
}

// Questions returns the default questionnaire in the order it is asked.
func Questions() []domain.Question {
	return []domain.Question{
		{
			ID:      "goal",
			Text:    "What is your primary weight loss goal?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("lose-weight", "Lose weight quickly", "quick"),
				opt("gradual", "Lose weight gradually", "gradual"),
				opt("sustainable", "Develop sustainable habits", "sustainable"),
				opt("muscle", "Build muscle while losing fat", "muscle"),
			},
		},
		{
			ID:      "past-experience",
			Text:    "Have you tried weight loss programs before?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("yes-success", "Yes, with success", "success"),
				opt("yes-failure", "Yes, but didn't work for me", "failure"),
				opt("no", "No, this is my first time", "first-time"),
			},
		},
		{
			ID:      "previous-programs",
			Text:    "Which programs have you tried before? (Select all that apply)",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("weight-watchers", "Weight Watchers", "weight-watchers"),
				opt("noom", "Noom", "noom"),
				opt("keto", "Keto Diet", "keto"),
				opt("intermittent", "Intermittent Fasting", "intermittent-fasting"),
				opt("personal-trainer", "Personal Trainer", "personal-trainer"),
				opt("meal-delivery", "Meal Delivery Service", "meal-delivery"),
				opt("other", "Other", "other"),
				opt("none", "None", "none"),
			},
		},
		{
			ID:      "support-preference",
			Text:    "Do you prefer to have support or work independently?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("group", "I prefer group support", "group"),
				opt("one-on-one", "I prefer one-on-one coaching", "one-on-one"),
				opt("independent", "I prefer to work independently", "independent"),
				opt("mix", "I prefer a mix of support and independence", "mix"),
			},
		},
		{
			ID:       "budget",
			Text:     "What is your monthly budget for a weight loss program?",
			Type:     domain.QuestionSlider,
			Min:      num(0),
			Max:      num(300),
			Step:     num(25),
			MinLabel: "$0",
			MaxLabel: "$300+",
		},
		{
			ID:      "time-commitment",
			Text:    "How much time can you commit to a program each week?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("minimal", "Minimal (1-2 hours)", "minimal"),
				opt("moderate", "Moderate (3-5 hours)", "moderate"),
				opt("significant", "Significant (6+ hours)", "significant"),
			},
		},
		{
			ID:      "diet-preference",
			Text:    "Do you have any dietary preferences?",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("vegetarian", "Vegetarian", "vegetarian"),
				opt("vegan", "Vegan", "vegan"),
				opt("keto", "Keto", "keto"),
				opt("paleo", "Paleo", "paleo"),
				opt("gluten-free", "Gluten-Free", "gluten-free"),
				opt("no-preference", "No specific preference", "no-preference"),
			},
		},
		{
			ID:      "exercise-preference",
			Text:    "What type of exercise do you enjoy?",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("cardio", "Cardio (running, swimming, etc.)", "cardio"),
				opt("strength", "Strength training", "strength"),
				opt("yoga", "Yoga/Pilates", "yoga"),
				opt("group-fitness", "Group fitness classes", "group-fitness"),
				opt("home-workout", "Home workouts", "home-workout"),
				opt("walking", "Walking", "walking"),
				opt("none", "I don't enjoy exercise", "none"),
			},
		},
		{
			ID:      "current-fitness-level",
			Text:    "How would you describe your current fitness level?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("beginner", "Beginner - I rarely exercise", "beginner"),
				opt("intermediate", "Intermediate - I exercise occasionally", "intermediate"),
				opt("advanced", "Advanced - I exercise regularly", "advanced"),
			},
		},
		{
			ID:      "technology-comfort",
			Text:    "How comfortable are you with using apps and technology?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("very-comfortable", "Very comfortable - I love tech solutions", "tech-savvy"),
				opt("comfortable", "Comfortable - I can learn new apps", "moderate"),
				opt("basic", "Basic - I prefer simple solutions", "basic"),
				opt("prefer-traditional", "I prefer traditional methods", "traditional"),
			},
		},
		{
			ID:      "tracking-preference",
			Text:    "How do you prefer to track your progress?",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("mobile-app", "Mobile app", "mobile-app"),
				opt("website", "Website/computer", "website"),
				opt("paper-journal", "Paper journal", "paper"),
				opt("photos", "Progress photos", "photos"),
				opt("measurements", "Body measurements", "measurements"),
				opt("minimal", "Minimal tracking", "minimal"),
			},
		},
		{
			ID:      "motivation-style",
			Text:    "What motivates you most to stick with a program?",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("community", "Community support and encouragement", "community"),
				opt("progress-tracking", "Seeing measurable progress", "progress"),
				opt("rewards", "Rewards and incentives", "rewards"),
				opt("education", "Learning about health and nutrition", "education"),
				opt("competition", "Challenges and competition", "competition"),
				opt("routine", "Having a structured routine", "routine"),
			},
		},
		{
			ID:      "lifestyle-factors",
			Text:    "Which lifestyle factors affect your ability to follow a program?",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("busy-schedule", "Very busy work/life schedule", "busy"),
				opt("family-responsibilities", "Family/caregiving responsibilities", "family"),
				opt("travel-frequently", "Frequent travel", "travel"),
				opt("irregular-schedule", "Irregular work hours", "irregular"),
				opt("social-eating", "Frequent social eating situations", "social"),
				opt("limited-cooking", "Limited time/ability to cook", "cooking"),
				opt("none", "No major constraints", "flexible"),
			},
		},
		{
			ID:      "program-structure",
			Text:    "What type of program structure works best for you?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("highly-structured", "Highly structured with detailed plans", "structured"),
				opt("semi-structured", "Semi-structured with some flexibility", "semi-structured"),
				opt("flexible", "Flexible with general guidelines", "flexible"),
				opt("self-directed", "Self-directed with minimal structure", "self-directed"),
			},
		},
		{
			ID:      "accountability-preference",
			Text:    "How do you prefer to be held accountable?",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("daily-check-ins", "Daily check-ins or reminders", "daily"),
				opt("weekly-coaching", "Weekly coaching calls", "weekly-coaching"),
				opt("group-accountability", "Group accountability sessions", "group"),
				opt("progress-reports", "Regular progress reports", "reports"),
				opt("self-accountability", "Self-accountability tools", "self"),
				opt("minimal", "Minimal accountability", "minimal"),
			},
		},
		{
			ID:      "timeline-expectation",
			Text:    "What is your realistic timeline for seeing results?",
			Type:    domain.QuestionSingleChoice,
			Options: []domain.QuestionOption{
				opt("immediate", "1-2 weeks (quick results)", "immediate"),
				opt("short-term", "1-3 months", "short-term"),
				opt("medium-term", "3-6 months", "medium-term"),
				opt("long-term", "6+ months (sustainable approach)", "long-term"),
			},
		},
		{
			ID:      "health-considerations",
			Text:    "Do any of these health considerations apply to you?",
			Type:    domain.QuestionMultiChoice,
			Options: []domain.QuestionOption{
				opt("diabetes", "Diabetes or pre-diabetes", "diabetes"),
				opt("heart-conditions", "Heart conditions", "heart"),
				opt("joint-issues", "Joint problems or arthritis", "joints"),
				opt("food-allergies", "Food allergies or intolerances", "allergies"),
				opt("medications", "Medications that affect weight", "medications"),
				opt("pregnancy", "Pregnancy or nursing", "pregnancy"),
				opt("eating-disorder-history", "History of eating disorders", "eating-disorder"),
				opt("none", "None of these apply", "none"),
			},
		},
	}
}
