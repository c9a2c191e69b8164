package wordle

import "strings"

// LetterSet is a set of uppercase ASCII letters stored as a bitmask.
type LetterSet uint32

// Add returns the set with letter c added. Non-letters are ignored.
func (s LetterSet) Add(c byte) LetterSet {
	c = upper(c)
	if c < 'A' || c > 'Z' {
		return s
	}
	return s | 1<<(c-'A')
}

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	c = upper(c)
	if c < 'A' || c > 'Z' {
		return false
	}
	return s&(1<<(c-'A')) != 0
}

// Empty reports whether the set has no letters.
func (s LetterSet) Empty() bool { return s == 0 }

// Contains reports whether every letter of o is in s.
func (s LetterSet) Contains(o LetterSet) bool { return s&o == o }

// String lists the letters in alphabetical order, e.g. "ARN".
func (s LetterSet) String() string {
	var sb strings.Builder
	for c := byte('A'); c <= 'Z'; c++ {
		if s.Has(c) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// ConstraintSet is what the feedback so far proves about the hidden word.
// The zero value is the all-unknown set of the first round.
type ConstraintSet struct {
	// Fixed holds the confirmed uppercase letter per position, 0 if unknown.
	Fixed [WordLength]byte
	// MustContain holds letters confirmed present somewhere (green or yellow).
	MustContain LetterSet
	// PositionExclusions holds, per position, present letters that are not there.
	PositionExclusions [WordLength]LetterSet
	// Excluded holds letters confirmed absent from the word.
	Excluded LetterSet
}

// Track folds the history, oldest first, into a ConstraintSet. It is pure:
// the same history always yields the same set.
func Track(history RoundHistory) ConstraintSet {
	var cs ConstraintSet
	for _, r := range history {
		cs = cs.fold(r)
	}
	// Contradictory feedback could leave a letter both present and absent.
	// Presence wins.
	cs.Excluded &^= cs.MustContain
	return cs
}

func (cs ConstraintSet) fold(r GuessResult) ConstraintSet {
	for pos := 0; pos < WordLength; pos++ {
		letter := r.Letter(pos)
		switch r.Colors[pos] {
		case Green:
			cs.Fixed[pos] = letter
			cs.MustContain = cs.MustContain.Add(letter)
		case Yellow:
			cs.MustContain = cs.MustContain.Add(letter)
			cs.PositionExclusions[pos] = cs.PositionExclusions[pos].Add(letter)
		case Gray:
			if presentElsewhere(r, pos) || cs.MustContain.Has(letter) {
				continue
			}
			cs.Excluded = cs.Excluded.Add(letter)
		}
	}
	return cs
}

// presentElsewhere reports whether the letter at pos is colored non-gray at
// another position of the same guess. A gray tile is then only telling us the
// letter was guessed more times than it occurs.
func presentElsewhere(r GuessResult, pos int) bool {
	letter := r.Letter(pos)
	for p := 0; p < WordLength; p++ {
		if p != pos && r.Letter(p) == letter && r.Colors[p] != Gray {
			return true
		}
	}
	return false
}

// Empty reports whether nothing is known yet.
func (cs ConstraintSet) Empty() bool {
	return cs == ConstraintSet{}
}

// Pattern renders the fixed positions as a five-slot template, "?" for unknown.
func (cs ConstraintSet) Pattern() string {
	b := make([]byte, WordLength)
	for i, c := range cs.Fixed {
		if c == 0 {
			b[i] = '?'
		} else {
			b[i] = c
		}
	}
	return string(b)
}

// Allows reports whether word is consistent with every constraint. It does
// not model exact letter counts.
func (cs ConstraintSet) Allows(word string) bool {
	if !IsWord(word) {
		return false
	}
	var letters LetterSet
	for i := 0; i < WordLength; i++ {
		c := upper(word[i])
		letters = letters.Add(c)
		if cs.Fixed[i] != 0 && cs.Fixed[i] != c {
			return false
		}
		if cs.PositionExclusions[i].Has(c) {
			return false
		}
		if cs.Excluded.Has(c) {
			return false
		}
	}
	return letters.Contains(cs.MustContain)
}
