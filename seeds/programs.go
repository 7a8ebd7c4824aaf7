package seeds

import "github.com/actuallystonmai/program-finder/internal/domain"

// Programs returns the default program catalog in display order.
func Programs() []domain.Program {
	return []domain.Program{
		{
			ID:                  "weight-watchers",
			Name:                "Weight Watchers (WW)",
			Description:         "A points-based system focusing on overall eating habits rather than restricting specific foods.",
			MonthlyPrice:        20,
			Website:             "https://www.weightwatchers.com",
			Features:            []string{"SmartPoints system", "Mobile app", "Group meetings", "Online community support", "ZeroPoint foods"},
			Pros:                []string{"No foods are off-limits", "Strong community support", "Scientifically backed approach", "Focuses on sustainable lifestyle changes", "Extensive food database"},
			Cons:                []string{"Points tracking can be tedious", "Results may be slower than other programs", "Additional cost for in-person meetings", "Some find the system confusing"},
			SupportType:         domain.Tags{"group", "app", "community"},
			DietType:            domain.Tags{"balanced", "flexible", "points-based"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"sustainable", "first-time", "group", "balanced-approach"},
			NotSuitableFor:      domain.Tags{"quick-results", "independent-only"},
		},
		{
			ID:                  "noom",
			Name:                "Noom",
			Description:         "Psychology-based approach focused on behavior change through education and coaching.",
			MonthlyPrice:        60,
			Website:             "https://www.noom.com",
			Features:            []string{"Personal coach", "Daily lessons", "Food logging", "Group chat support", "Color-coded food system"},
			Pros:                []string{"Focus on psychology of eating", "Personal coaching", "Educational approach", "No foods are restricted", "Evidence-based methods"},
			Cons:                []string{"Higher cost", "Text-based coaching (not video)", "Requires daily app engagement", "Can be overwhelming for some"},
			SupportType:         domain.Tags{"one-on-one", "app", "community"},
			DietType:            domain.Tags{"balanced", "educational", "psychology-based"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"sustainable", "one-on-one", "behavioral-change"},
			NotSuitableFor:      domain.Tags{"minimal-time", "quick-fixes"},
		},
		{
			ID:                  "nutrisystem",
			Name:                "Nutrisystem",
			Description:         "Pre-packaged meal delivery system with portion-controlled foods for structured weight loss.",
			MonthlyPrice:        300,
			Website:             "https://www.nutrisystem.com",
			Features:            []string{"Pre-packaged meals", "Portion control", "Counselor support", "Meal planning app", "Flex meals"},
			Pros:                []string{"No meal planning required", "Portion controlled", "Structured approach", "Professional counselor support", "Clear guidelines"},
			Cons:                []string{"Expensive", "Processed food dependent", "Limited fresh food variety", "May not teach cooking skills", "Shipping costs"},
			SupportType:         domain.Tags{"one-on-one", "structured"},
			DietType:            domain.Tags{"portion-control", "convenient", "structured"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeMinimal,
			BestFor:             domain.Tags{"structured-approach", "busy-lifestyle", "portion-control"},
			NotSuitableFor:      domain.Tags{"cooking-enthusiasts", "flexible-eaters"},
		},
		{
			ID:                  "jenny-craig",
			Name:                "Jenny Craig",
			Description:         "Personal weight loss program combining pre-packaged meals with one-on-one coaching.",
			MonthlyPrice:        400,
			Website:             "https://www.jennycraig.com",
			Features:            []string{"Pre-packaged meals", "Personal consultant", "Weekly check-ins", "Gradual transition to own food"},
			Pros:                []string{"Personal one-on-one support", "Structured meal plan", "No calorie counting", "Proven results", "Gradual transition plan"},
			Cons:                []string{"Very expensive", "Relies on packaged foods", "Limited location availability", "May not teach long-term habits", "Restrictive approach"},
			SupportType:         domain.Tags{"one-on-one", "in-person"},
			DietType:            domain.Tags{"structured", "portion-control"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"high-support", "structured-approach", "accountability"},
			NotSuitableFor:      domain.Tags{"budget-conscious", "independent-learners"},
		},
		{
			ID:                  "keto-diet",
			Name:                "Ketogenic Diet",
			Description:         "High-fat, low-carb diet that puts your body into ketosis to burn fat for energy.",
			MonthlyPrice:        0,
			Website:             "https://www.ruled.me",
			Features:            []string{"Meal plans", "Recipes", "Educational content", "Free resources online", "Macros tracking"},
			Pros:                []string{"Potential for rapid weight loss", "Can be followed without cost", "May reduce appetite", "Specific guidelines", "Mental clarity benefits"},
			Cons:                []string{"Very restrictive", "Difficult to maintain socially", "Potential \"keto flu\"", "Limited food variety", "May affect athletic performance"},
			SupportType:         domain.Tags{"independent", "online-community"},
			DietType:            domain.Tags{"keto", "low-carb", "high-fat"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"quick-results", "independent", "keto-lifestyle"},
			NotSuitableFor:      domain.Tags{"flexible-eating", "social-eaters"},
		},
		{
			ID:                  "paleo-diet",
			Name:                "Paleo Diet",
			Description:         "Eating like our ancestors - whole foods, no processed items, grains, or dairy.",
			MonthlyPrice:        0,
			Website:             "https://thepaleodiet.com",
			Features:            []string{"Whole foods focus", "Recipe databases", "Meal planning guides", "Community forums"},
			Pros:                []string{"Emphasizes whole foods", "No calorie counting", "May reduce inflammation", "Simple food rules", "High protein intake"},
			Cons:                []string{"Eliminates entire food groups", "Can be expensive", "Socially restrictive", "May lack certain nutrients", "Limited scientific evidence"},
			SupportType:         domain.Tags{"independent", "online-community"},
			DietType:            domain.Tags{"paleo", "whole-foods", "grain-free"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"whole-food-focus", "anti-inflammatory", "simple-rules"},
			NotSuitableFor:      domain.Tags{"budget-conscious", "vegetarians"},
		},
		{
			ID:                  "mediterranean-diet",
			Name:                "Mediterranean Diet",
			Description:         "Heart-healthy eating pattern based on traditional Mediterranean cuisine with olive oil, fish, and vegetables.",
			MonthlyPrice:        0,
			Website:             "https://www.mayoclinic.org/healthy-lifestyle/nutrition-and-healthy-eating/in-depth/mediterranean-diet",
			Features:            []string{"Flexible eating pattern", "Heart-healthy focus", "Extensive research backing", "Recipe collections"},
			Pros:                []string{"Heart health benefits", "Flexible and sustainable", "Allows moderate wine", "Emphasizes healthy fats", "Well-researched"},
			Cons:                []string{"May not lead to rapid weight loss", "Requires cooking skills", "Can be higher in calories", "Olive oil can be expensive", "Less structured guidance"},
			SupportType:         domain.Tags{"independent"},
			DietType:            domain.Tags{"mediterranean", "heart-healthy", "balanced"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"heart-health", "sustainable", "cooking-enthusiasts"},
			NotSuitableFor:      domain.Tags{"quick-results", "structured-guidance"},
		},
		{
			ID:                  "whole30",
			Name:                "Whole30",
			Description:         "30-day elimination diet removing sugar, grains, dairy, and legumes to reset eating habits.",
			MonthlyPrice:        0,
			Website:             "https://whole30.com",
			Features:            []string{"30-day program", "Detailed food lists", "Recipe ideas", "Reintroduction protocol"},
			Pros:                []string{"Short-term commitment", "May identify food sensitivities", "Focus on whole foods", "Strong community support", "Clear guidelines"},
			Cons:                []string{"Very restrictive", "Difficult to maintain long-term", "Social challenges", "May create unhealthy relationship with food", "No scientific backing for claims"},
			SupportType:         domain.Tags{"independent", "online-community"},
			DietType:            domain.Tags{"elimination", "whole-foods", "short-term"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeSignificant,
			BestFor:             domain.Tags{"short-term-commitment", "food-sensitivity", "reset"},
			NotSuitableFor:      domain.Tags{"long-term-solution", "flexible-eaters"},
		},
		{
			ID:                  "intermittent-fasting",
			Name:                "Intermittent Fasting (16:8)",
			Description:         "Time-restricted eating with 16-hour fasting and 8-hour eating windows.",
			MonthlyPrice:        0,
			Website:             "https://www.healthline.com/nutrition/intermittent-fasting-guide",
			Features:            []string{"Various fasting protocols", "Flexible food choices", "Timing-focused approach", "Apps for tracking"},
			Pros:                []string{"No cost to implement", "Flexible food choices", "May improve metabolic health", "Simple to understand", "Can enhance autophagy"},
			Cons:                []string{"Hunger during fasting", "Social eating challenges", "May affect energy levels", "Not suitable for everyone", "Requires discipline"},
			SupportType:         domain.Tags{"independent", "app-based"},
			DietType:            domain.Tags{"flexible", "timing-focused", "fasting"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeMinimal,
			BestFor:             domain.Tags{"schedule-flexibility", "minimal-rules", "metabolic-health"},
			NotSuitableFor:      domain.Tags{"eating-disorders", "medical-conditions"},
		},
		{
			ID:                  "personal-trainer",
			Name:                "Personal Training Program",
			Description:         "One-on-one fitness coaching with customized workout and nutrition plans.",
			MonthlyPrice:        250,
			Website:             "https://www.acefitness.org/resources/everyone/find-an-ace-pro/",
			Features:            []string{"Personalized workouts", "Nutrition guidance", "Form correction", "Accountability", "Progress tracking"},
			Pros:                []string{"Highly personalized", "Direct accountability", "Expert guidance", "Form and technique correction", "Motivation and support"},
			Cons:                []string{"Expensive", "Requires scheduled appointments", "Quality varies by trainer", "May focus more on fitness", "Location dependent"},
			SupportType:         domain.Tags{"one-on-one", "in-person"},
			DietType:            domain.Tags{"personalized", "fitness-focused"},
			ExerciseRequirement: domain.ExerciseHigh,
			TimeCommitment:      domain.TimeSignificant,
			BestFor:             domain.Tags{"muscle-building", "fitness-focus", "high-accountability"},
			NotSuitableFor:      domain.Tags{"budget-conscious", "minimal-time"},
		},
		{
			ID:                  "beachbody",
			Name:                "Beachbody On Demand",
			Description:         "Home workout programs with nutrition plans including P90X, Insanity, and 21 Day Fix.",
			MonthlyPrice:        15,
			Website:             "https://www.beachbodyondemand.com",
			Features:            []string{"Home workout videos", "Nutrition plans", "Portion control containers", "Supplement options"},
			Pros:                []string{"Home convenience", "Variety of programs", "No gym membership needed", "Structured workout plans", "Nutritional guidance included"},
			Cons:                []string{"Requires self-motivation", "Limited equipment options", "Can be repetitive", "Promotes supplements heavily", "One-size-fits-all approach"},
			SupportType:         domain.Tags{"independent", "online-community"},
			DietType:            domain.Tags{"portion-control", "structured"},
			ExerciseRequirement: domain.ExerciseHigh,
			TimeCommitment:      domain.TimeSignificant,
			BestFor:             domain.Tags{"home-workouts", "structured-programs", "fitness-variety"},
			NotSuitableFor:      domain.Tags{"gym-preference", "custom-routines"},
		},
		{
			ID:                  "orangetheory",
			Name:                "OrangeTheory Fitness",
			Description:         "Heart rate-based interval training classes with calorie burn tracking.",
			MonthlyPrice:        160,
			Website:             "https://www.orangetheory.com",
			Features:            []string{"Heart rate monitoring", "Group classes", "HIIT workouts", "Calorie burn tracking", "Professional coaching"},
			Pros:                []string{"High calorie burn", "Motivating group environment", "Science-based approach", "Professional instruction", "Variety in workouts"},
			Cons:                []string{"Expensive membership", "High intensity may not suit everyone", "Class scheduling required", "Limited nutrition guidance", "Can be intimidating"},
			SupportType:         domain.Tags{"group", "in-person"},
			DietType:            domain.Tags{"independent", "exercise-focused"},
			ExerciseRequirement: domain.ExerciseHigh,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"group-motivation", "high-intensity", "structured-exercise"},
			NotSuitableFor:      domain.Tags{"low-fitness-level", "budget-conscious"},
		},
		{
			ID:                  "myfitnesspal",
			Name:                "MyFitnessPal Premium",
			Description:         "Comprehensive calorie and macro tracking app with extensive food database.",
			MonthlyPrice:        10,
			Website:             "https://www.myfitnesspal.com",
			Features:            []string{"Food tracking", "Exercise logging", "Macro tracking", "Barcode scanning", "Recipe importer"},
			Pros:                []string{"Comprehensive food database", "Detailed macro tracking", "Affordable price", "Integrates with fitness devices", "Custom goal setting"},
			Cons:                []string{"Requires consistent logging", "Can promote obsessive tracking", "Limited personalized guidance", "Free version has ads", "Learning curve for beginners"},
			SupportType:         domain.Tags{"independent", "app-based"},
			DietType:            domain.Tags{"flexible", "tracking-focused", "macro-based"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"data-driven", "flexible-approach", "macro-tracking"},
			NotSuitableFor:      domain.Tags{"tracking-averse", "simple-approach"},
		},
		{
			ID:                  "calibrate",
			Name:                "Calibrate",
			Description:         "Medical weight loss program combining FDA-approved medications with lifestyle coaching.",
			MonthlyPrice:        375,
			Website:             "https://www.joincalibrate.com",
			Features:            []string{"Medical supervision", "FDA-approved medications", "Lifestyle coaching", "Lab testing", "Telehealth appointments"},
			Pros:                []string{"Medical supervision", "Clinically proven medications", "Comprehensive approach", "Regular monitoring", "Evidence-based methods"},
			Cons:                []string{"Very expensive", "Requires medical eligibility", "Potential medication side effects", "Insurance may not cover", "Long-term commitment needed"},
			SupportType:         domain.Tags{"medical", "one-on-one"},
			DietType:            domain.Tags{"medical", "supervised", "medication-assisted"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"medical-supervision", "significant-weight-loss", "medication-appropriate"},
			NotSuitableFor:      domain.Tags{"medication-averse", "budget-conscious"},
		},
		{
			ID:                  "found",
			Name:                "Found",
			Description:         "Prescription weight loss program with coaching, community support, and medication options.",
			MonthlyPrice:        99,
			Website:             "https://found.com",
			Features:            []string{"Medical consultation", "Prescription medications", "Coaching support", "Community features", "Progress tracking"},
			Pros:                []string{"Medical approach", "Coaching included", "Community support", "Convenient telehealth", "Personalized treatment"},
			Cons:                []string{"Requires prescription eligibility", "Monthly subscription cost", "Potential side effects", "Limited to certain states", "Insurance coverage varies"},
			SupportType:         domain.Tags{"medical", "one-on-one", "community"},
			DietType:            domain.Tags{"medical", "coached", "medication-assisted"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"medical-approach", "coaching-support", "medication-appropriate"},
			NotSuitableFor:      domain.Tags{"natural-approach-only", "self-guided-preference"},
		},
		{
			ID:                  "lose-it",
			Name:                "Lose It!",
			Description:         "Simple calorie tracking app with social features and challenges.",
			MonthlyPrice:        4,
			Website:             "https://www.loseit.com",
			Features:            []string{"Calorie tracking", "Social challenges", "Barcode scanning", "Exercise integration", "Goal setting"},
			Pros:                []string{"Very affordable", "User-friendly interface", "Social motivation features", "Good food database", "Simple approach"},
			Cons:                []string{"Basic features only", "Limited advanced tracking", "Less comprehensive than competitors", "Fewer premium features", "Simple may be too basic"},
			SupportType:         domain.Tags{"independent", "community"},
			DietType:            domain.Tags{"calorie-focused", "flexible"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeMinimal,
			BestFor:             domain.Tags{"budget-conscious", "simple-tracking", "social-motivation"},
			NotSuitableFor:      domain.Tags{"advanced-features", "detailed-analysis"},
		},
		{
			ID:                  "sparkpeople",
			Name:                "SparkPeople",
			Description:         "Free comprehensive platform with meal plans, workouts, and community support.",
			MonthlyPrice:        0,
			Website:             "https://www.sparkpeople.com",
			Features:            []string{"Free meal plans", "Workout videos", "Community forums", "Progress tracking", "Educational articles"},
			Pros:                []string{"Completely free", "Comprehensive resources", "Strong community", "Educational content", "No premium pressure"},
			Cons:                []string{"Outdated interface", "Less modern features", "Limited mobile optimization", "Ad-supported", "Less personalized"},
			SupportType:         domain.Tags{"community", "independent"},
			DietType:            domain.Tags{"balanced", "educational"},
			ExerciseRequirement: domain.ExerciseMedium,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"budget-conscious", "community-support", "comprehensive-free"},
			NotSuitableFor:      domain.Tags{"modern-interface", "premium-features"},
		},
		{
			ID:                  "factor75",
			Name:                "Factor",
			Description:         "Fresh, chef-prepared meals delivered weekly with various dietary options.",
			MonthlyPrice:        200,
			Website:             "https://www.factor75.com",
			Features:            []string{"Chef-prepared meals", "Various diet options", "No preparation needed", "Fresh ingredients", "Portion controlled"},
			Pros:                []string{"High-quality ingredients", "No cooking required", "Portion controlled", "Dietary variety", "Convenient delivery"},
			Cons:                []string{"Expensive per meal", "Limited customization", "Packaging waste", "Delivery scheduling", "May not satisfy hunger"},
			SupportType:         domain.Tags{"independent"},
			DietType:            domain.Tags{"convenient", "portion-control", "various-options"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeMinimal,
			BestFor:             domain.Tags{"convenience", "busy-lifestyle", "quality-ingredients"},
			NotSuitableFor:      domain.Tags{"cooking-enthusiasts", "budget-conscious"},
		},
		{
			ID:                  "hello-fresh-fit",
			Name:                "HelloFresh Fit & Wholesome",
			Description:         "Meal kit delivery with calorie-conscious recipes and fresh ingredients.",
			MonthlyPrice:        120,
			Website:             "https://www.hellofresh.com",
			Features:            []string{"Meal kits", "Calorie-conscious recipes", "Pre-portioned ingredients", "Cooking instructions", "Variety of options"},
			Pros:                []string{"Learn cooking skills", "Fresh ingredients", "Portion controlled", "Recipe variety", "Reduces food waste"},
			Cons:                []string{"Still requires cooking", "Higher cost than grocery shopping", "Packaging waste", "Limited to available recipes", "Time investment for cooking"},
			SupportType:         domain.Tags{"independent"},
			DietType:            domain.Tags{"balanced", "cooking-focused"},
			ExerciseRequirement: domain.ExerciseLow,
			TimeCommitment:      domain.TimeModerate,
			BestFor:             domain.Tags{"cooking-learners", "variety-seekers", "portion-control"},
			NotSuitableFor:      domain.Tags{"cooking-averse", "budget-conscious"},
		},
	}
}
