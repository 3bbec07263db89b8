package subarray

import "strconv"

// ParseInts converts tokens to ints, rejecting the first non-integer token.
func ParseInts(tokens []string) ([]int, error) {
	out := make([]int, 0, len(tokens))
	for pos, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &InvalidInputError{Pos: pos, Token: tok, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
