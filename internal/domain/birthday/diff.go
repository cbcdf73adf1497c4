package birthday

// Diff computes the two-way set difference between the members the system
// knows about and the members actually present in the chat. missing holds
// known ids absent from present, unexpected holds present ids absent from
// known. No ordering is guaranteed on either result.
func Diff[T comparable](known, present []T) (missing, unexpected []T) {
	knownSet := make(map[T]struct{}, len(known))
	for _, id := range known {
		knownSet[id] = struct{}{}
	}

	presentSet := make(map[T]struct{}, len(present))
	for _, id := range present {
		presentSet[id] = struct{}{}
	}

	for id := range knownSet {
		if _, ok := presentSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	for id := range presentSet {
		if _, ok := knownSet[id]; !ok {
			unexpected = append(unexpected, id)
		}
	}

	return missing, unexpected
}
