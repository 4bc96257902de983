package cli

import "strings"

// AnswerResponse is the graded answer for one card.
type AnswerResponse struct {
	Correct      bool
	Word         string
	Answer       string
	Translations []string
}

// gradeAnswer accepts any of the card's translations, ignoring case and surrounding space.
func gradeAnswer(word, answer string, translations []string) AnswerResponse {
	response := AnswerResponse{
		Word:         word,
		Answer:       strings.TrimSpace(answer),
		Translations: translations,
	}
	if response.Answer == "" {
		return response
	}
	for _, t := range translations {
		if strings.EqualFold(strings.TrimSpace(t), response.Answer) {
			response.Correct = true
			break
		}
	}
	return response
}
