package fake

import "strings"

var firstNames = []string{
	"Ada", "Alex", "Amara", "Anna", "Arthur", "Astrid", "Ben", "Bianca",
	"Carlos", "Clara", "Daniel", "Dina", "Elena", "Emil", "Felix", "Freya",
	"Gustav", "Hana", "Henrik", "Ines", "Ivan", "Jonas", "Julia", "Kai",
	"Lara", "Leo", "Lina", "Lucas", "Maja", "Marco", "Mila", "Nadia",
	"Niko", "Nora", "Oscar", "Petra", "Rafael", "Rosa", "Samuel", "Sofia",
	"Stefan", "Talia", "Teo", "Vera", "Viktor", "Yara", "Zofia", "Zoran",
}

var lastNames = []string{
	"Adler", "Becker", "Bergman", "Castillo", "Dubois", "Eriksen", "Fischer",
	"Fontaine", "Garcia", "Haas", "Hansen", "Holm", "Ivanov", "Jansen",
	"Keller", "Kovacs", "Larsen", "Lindqvist", "Marek", "Moreau", "Novak",
	"Olsen", "Orlov", "Petrov", "Quint", "Reyes", "Richter", "Rossi",
	"Santos", "Schneider", "Silva", "Sorensen", "Takacs", "Vargas", "Vogel",
	"Weber", "Wolf", "Zima",
}

// FirstName returns a random given name.
func FirstName() string {
	return pick(firstNames)
}

// LastName returns a random family name.
func LastName() string {
	return pick(lastNames)
}

// FullName returns a random "First Last" pair.
func FullName() string {
	return FirstName() + " " + LastName()
}

// Username returns a random lowercase handle like "clara382".
func Username() string {
	return strings.ToLower(FirstName()) + Digits(3)
}
