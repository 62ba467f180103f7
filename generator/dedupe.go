package generator

import (
	"hash"
	"hash/fnv"
	"strconv"
)

// hashDeclaration computes a structural hash for a declaration.
// Structural hashes ignore descriptions and cover only what changes the
// emitted type. Hash collisions are possible; use Declaration.Equal to
// confirm equivalence.
func hashDeclaration(d *Declaration) uint64 {
	hasher := fnv.New64a()
	writeString(hasher, "kind:")
	writeString(hasher, d.Kind.String())
	writeString(hasher, "name:")
	writeString(hasher, d.Name)

	// Properties (order matters: it is the emission order)
	if len(d.Properties) > 0 {
		writeString(hasher, "properties:")
		for _, p := range d.Properties {
			writeString(hasher, p.Name)
			writeString(hasher, p.Type)
			writeString(hasher, strconv.FormatBool(p.Optional))
		}
	}

	// Enum members (order matters)
	if len(d.Members) > 0 {
		writeString(hasher, "members:")
		for _, m := range d.Members {
			writeString(hasher, m.Name)
			writeString(hasher, strconv.Itoa(int(m.Value.Kind)))
			writeString(hasher, m.Value.Raw)
		}
	}

	if d.Target != "" {
		writeString(hasher, "target:")
		writeString(hasher, d.Target)
	}
	return hasher.Sum64()
}

// writeString writes s followed by a NUL separator so adjacent fields
// cannot run together.
func writeString(hasher hash.Hash64, s string) {
	_, _ = hasher.Write([]byte(s))
	_, _ = hasher.Write([]byte{0})
}
