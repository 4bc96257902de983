package reverso

import (
	"fmt"
	"sort"
	"strings"
)

// Language is a language name as used in context.reverso.net URLs, e.g. "german".
type Language string

const (
	Arabic     Language = "arabic"
	Chinese    Language = "chinese"
	Dutch      Language = "dutch"
	English    Language = "english"
	French     Language = "french"
	German     Language = "german"
	Hebrew     Language = "hebrew"
	Italian    Language = "italian"
	Japanese   Language = "japanese"
	Polish     Language = "polish"
	Portuguese Language = "portuguese"
	Romanian   Language = "romanian"
	Russian    Language = "russian"
	Spanish    Language = "spanish"
	Swedish    Language = "swedish"
	Turkish    Language = "turkish"
	Ukrainian  Language = "ukrainian"
)

// translateCodes maps a language to the three-letter code the translate API expects.
var translateCodes = map[Language]string{
	Arabic:     "ara",
	Chinese:    "chi",
	Dutch:      "dut",
	English:    "eng",
	French:     "fra",
	German:     "ger",
	Hebrew:     "heb",
	Italian:    "ita",
	Japanese:   "jpn",
	Polish:     "pol",
	Portuguese: "por",
	Romanian:   "rum",
	Russian:    "rus",
	Spanish:    "spa",
	Swedish:    "swe",
	Turkish:    "tur",
	Ukrainian:  "ukr",
}

// ParseLanguage accepts either a language name ("German") or its API code ("ger").
func ParseLanguage(value string) (Language, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if _, ok := translateCodes[Language(value)]; ok {
		return Language(value), nil
	}
	for lang, code := range translateCodes {
		if code == value {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language: %q", value)
}

// Code returns the translate API code, or an empty string for an unsupported language.
func (l Language) Code() string {
	return translateCodes[l]
}

func (l Language) String() string {
	return string(l)
}

// Languages returns all supported languages sorted by name.
func Languages() []Language {
	result := make([]Language, 0, len(translateCodes))
	for lang := range translateCodes {
		result = append(result, lang)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}
