package crt

// UnknownTechnique - Custom error to inform that a collision resolution technique is not supported
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify that the technique is not supported
func (E UnknownTechnique) Error() string {
	if E.msg == "" {
		return "unknown collision resolution technique"
	}
	return E.msg
}

// Is - Matches any UnknownTechnique
func (E UnknownTechnique) Is(target error) bool {
	_, ok := target.(UnknownTechnique)
	return ok
}

// ProbingAlgorithm - Custom error to inform that probing visited every bucket without finding a free one
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that probing was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// Is - Matches any ProbingAlgorithm
func (P ProbingAlgorithm) Is(target error) bool {
	_, ok := target.(ProbingAlgorithm)
	return ok
}
