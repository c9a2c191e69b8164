package wordle

import "strings"

// Score colors guess against answer with the standard two-pass algorithm:
// exact matches first, then present letters limited by the remaining count
// of each letter in the answer. Both words must be WordLength letters.
func Score(answer, guess string) [WordLength]LetterColor {
	answer = strings.ToLower(answer)
	guess = strings.ToLower(guess)

	var res [WordLength]LetterColor
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			res[i] = Green
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == Green {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = Yellow
			counts[j]--
		} else {
			res[i] = Gray
		}
	}
	return res
}
