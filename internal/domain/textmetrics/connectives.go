package textmetrics

// connectiveMarkers lists single-word connective and subordination markers
// counted as syntactic-complexity signals. Multi-word conjunctions
// ("even though", "so that") are deliberately absent: matching runs per
// token.
var connectiveMarkers = []string{
	"because", "although", "however", "whereas", "moreover",
	"nevertheless", "therefore", "furthermore", "unless", "despite",
	"since", "while", "whenever", "wherever", "notwithstanding",
	"consequently", "albeit", "hence", "nonetheless", "whereby",
	"though", "after", "before", "until", "once",
}

// DefaultMarkers returns a copy of the built-in marker list.
func DefaultMarkers() []string {
	out := make([]string, len(connectiveMarkers))
	copy(out, connectiveMarkers)
	return out
}

func defaultMarkers() map[string]struct{} {
	m := make(map[string]struct{}, len(connectiveMarkers))
	for _, w := range connectiveMarkers {
		m[w] = struct{}{}
	}
	return m
}
