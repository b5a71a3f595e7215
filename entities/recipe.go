package entities

type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"` // step order is meaningful
	Reason       string   `json:"reason"`
	Calories     int      `json:"calories"` // kcal estimate for one serving
}

type Language string

const (
	LanguageVietnamese Language = "vi"
	LanguageEnglish    Language = "en"
	LanguageJapanese   Language = "ja"
	LanguageKorean     Language = "ko"
	LanguageChinese    Language = "zh"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageVietnamese, LanguageEnglish, LanguageJapanese,
		LanguageKorean, LanguageChinese:
		return true
	}
	return false
}

// DisplayName is the language name handed to the recipe generator so it
// answers in the user's language.
func (l Language) DisplayName() string {
	switch l {
	case LanguageVietnamese:
		return "Vietnamese (Tiếng Việt)"
	case LanguageJapanese:
		return "Japanese (日本語)"
	case LanguageKorean:
		return "Korean (한국어)"
	case LanguageChinese:
		return "Chinese (中文)"
	default:
		return "English"
	}
}
