package decision

import "io"

// Target is the byte that wins.
const Target byte = 'z'

// EOF is returned by ReadFirst when no byte could be read. It lies outside
// the byte range, so it never equals Target.
const EOF = -1

// Outcome is the result of classifying the first byte of a stream.
type Outcome int

const (
	Lose Outcome = iota
	Win
)

// Message returns the line reported to the user for the outcome.
func (o Outcome) Message() string {
	if o == Win {
		return "you win!"
	}
	return "you lose!"
}

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "lose"
}

// ReadFirst reads exactly one byte from r and nothing beyond it.
// End-of-stream and any other read error both yield EOF.
func ReadFirst(r io.Reader) int {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return EOF
	}
	return int(b[0])
}

// Classify maps a value returned by ReadFirst to an Outcome.
func Classify(v int) Outcome {
	if v == int(Target) {
		return Win
	}
	return Lose
}
