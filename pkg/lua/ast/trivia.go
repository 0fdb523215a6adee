package ast

// TokenTrivia holds the non-semantic text attached to one structural token
// position: comments that precede or follow the token, and the raw
// whitespace run between it and its neighbor.
type TokenTrivia struct {
	LeadingComments  []string
	TrailingComments []string
	Whitespace       string
}

// ClearComments drops every comment attached to this token.
func (t *TokenTrivia) ClearComments() {
	if t == nil {
		return
	}
	t.LeadingComments = nil
	t.TrailingComments = nil
}

// ClearWhitespaces drops the recorded whitespace run, falling back to
// canonical spacing on render.
func (t *TokenTrivia) ClearWhitespaces() {
	if t == nil {
		return
	}
	t.Whitespace = ""
}

// Trivia bundles the token-keyed trivia attached to one node. Keys are
// structural position names local to the node kind that owns them (for
// example "local", "=", or "comma2" for the third comma in a variable
// list). A nil *Trivia behaves as an empty bundle.
type Trivia struct {
	tokens map[string]*TokenTrivia
}

// NewTrivia returns an empty trivia bundle.
func NewTrivia() *Trivia {
	return &Trivia{tokens: make(map[string]*TokenTrivia)}
}

// Get returns the trivia recorded at key, or nil if none was recorded.
func (t *Trivia) Get(key string) *TokenTrivia {
	if t == nil || t.tokens == nil {
		return nil
	}
	return t.tokens[key]
}

// Set records trivia at key, replacing whatever was there.
func (t *Trivia) Set(key string, tt *TokenTrivia) {
	if t.tokens == nil {
		t.tokens = make(map[string]*TokenTrivia)
	}
	t.tokens[key] = tt
}

// Drop removes the trivia recorded at key. Rules that remove a structural
// position (e.g. a variable and its comma) must call this so the renderer
// never sees a stale token.
func (t *Trivia) Drop(key string) {
	if t == nil || t.tokens == nil {
		return
	}
	delete(t.tokens, key)
}

// Keys returns the recorded trivia keys. The order is unspecified; callers
// that need determinism should sort the result.
func (t *Trivia) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.tokens))
	for k := range t.tokens {
		keys = append(keys, k)
	}
	return keys
}

// ClearComments drops every comment on every token in the bundle.
func (t *Trivia) ClearComments() {
	if t == nil {
		return
	}
	for _, tt := range t.tokens {
		tt.ClearComments()
	}
}

// ClearWhitespaces drops every recorded whitespace run in the bundle.
func (t *Trivia) ClearWhitespaces() {
	if t == nil {
		return
	}
	for _, tt := range t.tokens {
		tt.ClearWhitespaces()
	}
}

// IsEmpty reports whether the bundle carries no trivia at all.
func (t *Trivia) IsEmpty() bool {
	return t == nil || len(t.tokens) == 0
}
