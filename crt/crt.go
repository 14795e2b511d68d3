// Package crt enumerates the Collision Resolution Techniques a hash table can be built with.
package crt

// SeparateChaining - Each bucket heads a chain of entries that hashed to it
const SeparateChaining int = 0

// LinearProbing - Open addressing where a collision moves on to the next bucket
const LinearProbing int = 1

// Name - Returns a human-readable name of the technique, or "unknown"
func Name(technique int) string {
	switch technique {
	case SeparateChaining:
		return "separate chaining"
	case LinearProbing:
		return "linear probing"
	default:
		return "unknown"
	}
}

// Parse - Returns the technique given its short name ("chaining" or "linear")
func Parse(name string) (technique int, err error) {
	switch name {
	case "chaining", "separate-chaining":
		technique = SeparateChaining
	case "linear", "linear-probing":
		technique = LinearProbing
	default:
		err = UnknownTechnique{msg: "unknown collision resolution technique: " + name}
	}

	return
}
