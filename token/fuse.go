package token

// FusePower rewrites two adjacent '*' tokens into a single '**'
// token. The scanner emits operators one character at a time; ** is
// the only two-character operator, so fusing is a separate pass over
// the token sequence.
func FusePower(toks []Token) []Token {
	res := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if isStar(&t) && i+1 < len(toks) && isStar(&toks[i+1]) {
			res = append(res, Token{Type: TSym, Pos: t.Pos, Bytes: []byte("**")})
			i++
			continue
		}
		res = append(res, t)
	}
	return res
}

func isStar(t *Token) bool {
	return t.Type == TSym && len(t.Bytes) == 1 && t.Bytes[0] == '*'
}
