package mask

import "strings"

// Card replaces all but the last four characters of a card number with a
// fixed mask character. Inputs of four characters or fewer come back
// unchanged: there is nothing before the last min(4, len) characters.
func Card(number string) string {
	keep := 4
	if len(number) < keep {
		keep = len(number)
	}
	return strings.Repeat("*", len(number)-keep) + number[len(number)-keep:]
}
