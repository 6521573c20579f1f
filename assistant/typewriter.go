package assistant

import "time"

// DefaultRevealInterval is how often the UI should call Tick on a Typewriter.
const DefaultRevealInterval = 50 * time.Millisecond

// Typewriter reveals a response one character at a time. The embedding UI
// owns the timer and calls Tick per interval; setting a new text restarts
// the reveal, which is how an in-progress reveal gets cancelled.
// Text is held as runes so multi-byte characters reveal whole.
type Typewriter struct {
	text []rune
	pos  int
}

func NewTypewriter(text string) *Typewriter {
	return &Typewriter{text: []rune(text)}
}

// Tick reveals the next character and returns the visible prefix.
func (t *Typewriter) Tick() string {
	if t.pos < len(t.text) {
		t.pos++
	}
	return string(t.text[:t.pos])
}

// Text returns the currently visible prefix without advancing.
func (t *Typewriter) Text() string {
	return string(t.text[:t.pos])
}

// Done reports whether the full text is visible.
func (t *Typewriter) Done() bool {
	return t.pos >= len(t.text)
}

// Reset starts revealing a new text from the beginning.
func (t *Typewriter) Reset(text string) {
	t.text = []rune(text)
	t.pos = 0
}
