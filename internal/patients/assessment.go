package patients

import (
	"errors"
	"math"
)

// AssessmentOption is one selectable answer, weighted toward a single dosha.
type AssessmentOption struct {
	Text   string `json:"text"`
	Dosha  string `json:"dosha"`
	Points int    `json:"points"`
}

// AssessmentQuestion is one question of the constitution quiz.
type AssessmentQuestion struct {
	ID       string             `json:"id"`
	Question string             `json:"question"`
	Category string             `json:"category"`
	Options  []AssessmentOption `json:"options"`
}

// AssessmentQuestionsResponse is the response for GET /v1/assessment/questions
type AssessmentQuestionsResponse struct {
	Questions []AssessmentQuestion `json:"questions"`
}

// AssessmentRequest maps question IDs to the index of the chosen option.
type AssessmentRequest struct {
	Answers map[string]int `json:"answers"`
}

// AssessmentResult is the scored constitution split.
type AssessmentResult struct {
	DoshaBalance DoshaBalanceDTO `json:"dosha_balance"`
	Dominant     string          `json:"dominant"`
	Answered     int             `json:"answered"`
}

var (
	ErrNoAnswers     = errors.New("no answers given")
	ErrUnknownOption = errors.New("option index out of range")
)

// assessmentQuestions covers physical, mental, emotional and lifestyle traits.
// Strong constitutional markers (frame, appetite, digestion, energy, stress)
// weigh 3 points, the rest 2.
var assessmentQuestions = []AssessmentQuestion{
	{
		ID:       "body_frame",
		Question: "How would you describe your body frame?",
		Category: "physical",
		Options: []AssessmentOption{
			{Text: "Thin, light, difficulty gaining weight", Dosha: "vata", Points: 3},
			{Text: "Medium build, muscular, athletic", Dosha: "pitta", Points: 3},
			{Text: "Heavy, broad, tendency to gain weight easily", Dosha: "kapha", Points: 3},
		},
	},
	{
		ID:       "skin_type",
		Question: "What best describes your skin?",
		Category: "physical",
		Options: []AssessmentOption{
			{Text: "Dry, rough, cool to touch", Dosha: "vata", Points: 2},
			{Text: "Warm, oily, prone to rashes/acne", Dosha: "pitta", Points: 2},
			{Text: "Soft, smooth, cool, oily", Dosha: "kapha", Points: 2},
		},
	},
	{
		ID:       "hair_texture",
		Question: "How would you describe your hair?",
		Category: "physical",
		Options: []AssessmentOption{
			{Text: "Dry, frizzy, thin", Dosha: "vata", Points: 2},
			{Text: "Fine, straight, early graying/balding", Dosha: "pitta", Points: 2},
			{Text: "Thick, oily, wavy, lustrous", Dosha: "kapha", Points: 2},
		},
	},
	{
		ID:       "appetite",
		Question: "How is your appetite typically?",
		Category: "lifestyle",
		Options: []AssessmentOption{
			{Text: "Irregular, sometimes forget to eat", Dosha: "vata", Points: 3},
			{Text: "Strong, get irritable when hungry", Dosha: "pitta", Points: 3},
			{Text: "Steady but can skip meals easily", Dosha: "kapha", Points: 3},
		},
	},
	{
		ID:       "digestion",
		Question: "How is your digestion?",
		Category: "physical",
		Options: []AssessmentOption{
			{Text: "Variable, gas, bloating", Dosha: "vata", Points: 3},
			{Text: "Strong, quick, sometimes loose stools", Dosha: "pitta", Points: 3},
			{Text: "Slow, heavy feeling after eating", Dosha: "kapha", Points: 3},
		},
	},
	{
		ID:       "sleep_pattern",
		Question: "What's your sleep pattern like?",
		Category: "lifestyle",
		Options: []AssessmentOption{
			{Text: "Light sleeper, difficulty falling asleep", Dosha: "vata", Points: 2},
			{Text: "Moderate sleep, need less than 8 hours", Dosha: "pitta", Points: 2},
			{Text: "Deep sleeper, need 8+ hours", Dosha: "kapha", Points: 2},
		},
	},
	{
		ID:       "energy_levels",
		Question: "How are your energy levels throughout the day?",
		Category: "mental",
		Options: []AssessmentOption{
			{Text: "Bursts of energy followed by fatigue", Dosha: "vata", Points: 3},
			{Text: "Consistent high energy", Dosha: "pitta", Points: 3},
			{Text: "Steady, slow to start but enduring", Dosha: "kapha", Points: 3},
		},
	},
	{
		ID:       "stress_response",
		Question: "How do you typically respond to stress?",
		Category: "emotional",
		Options: []AssessmentOption{
			{Text: "Anxious, worried, overwhelmed", Dosha: "vata", Points: 3},
			{Text: "Irritable, angry, impatient", Dosha: "pitta", Points: 3},
			{Text: "Withdrawn, sluggish, procrastinate", Dosha: "kapha", Points: 3},
		},
	},
	{
		ID:       "weather_preference",
		Question: "What weather do you prefer?",
		Category: "lifestyle",
		Options: []AssessmentOption{
			{Text: "Warm, humid weather", Dosha: "vata", Points: 2},
			{Text: "Cool, dry weather", Dosha: "pitta", Points: 2},
			{Text: "Warm, dry weather", Dosha: "kapha", Points: 2},
		},
	},
	{
		ID:       "learning_style",
		Question: "How do you learn best?",
		Category: "mental",
		Options: []AssessmentOption{
			{Text: "Quickly but forget easily", Dosha: "vata", Points: 2},
			{Text: "Moderate pace with good retention", Dosha: "pitta", Points: 2},
			{Text: "Slowly but excellent long-term memory", Dosha: "kapha", Points: 2},
		},
	},
}

// AssessmentQuestions returns the quiz in presentation order.
func AssessmentQuestions() []AssessmentQuestion {
	return assessmentQuestions
}

// ScoreAssessment sums the per-dosha points of the chosen options and
// converts them to rounded percentages. Unknown question IDs are ignored;
// an option index outside the question's options is an error.
func ScoreAssessment(answers map[string]int) (AssessmentResult, error) {
	byID := make(map[string]AssessmentQuestion, len(assessmentQuestions))
	for _, q := range assessmentQuestions {
		byID[q.ID] = q
	}

	scores := map[string]int{"vata": 0, "pitta": 0, "kapha": 0}
	answered := 0
	for id, idx := range answers {
		q, ok := byID[id]
		if !ok {
			continue
		}
		if idx < 0 || idx >= len(q.Options) {
			return AssessmentResult{}, ErrUnknownOption
		}
		opt := q.Options[idx]
		scores[opt.Dosha] += opt.Points
		answered++
	}

	total := scores["vata"] + scores["pitta"] + scores["kapha"]
	if total == 0 {
		return AssessmentResult{}, ErrNoAnswers
	}

	pct := func(n int) int {
		return int(math.Round(float64(n) / float64(total) * 100))
	}
	result := AssessmentResult{
		DoshaBalance: DoshaBalanceDTO{
			Vata:  pct(scores["vata"]),
			Pitta: pct(scores["pitta"]),
			Kapha: pct(scores["kapha"]),
		},
		Answered: answered,
	}

	// Ties go to the later dosha in vata/pitta/kapha order.
	dominant := "vata"
	best := result.DoshaBalance.Vata
	for _, d := range []struct {
		name string
		pct  int
	}{{"pitta", result.DoshaBalance.Pitta}, {"kapha", result.DoshaBalance.Kapha}} {
		if d.pct >= best {
			dominant, best = d.name, d.pct
		}
	}
	result.Dominant = dominant

	return result, nil
}
