package game

// ValidateWord checks that word is a non-empty run of lowercase letters.
func ValidateWord(word string) error {
	if word == "" {
		return &InvalidWordError{Word: word, Reason: "empty"}
	}
	for _, r := range word {
		if !IsLetter(r) {
			return &InvalidWordError{Word: word, Reason: "contains non-alphabetic character " + string(r)}
		}
	}
	return nil
}
