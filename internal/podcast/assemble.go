package podcast

// Assemble concatenates per-segment audio buffers strictly in input order.
// Spoken dialogue must preserve conversational order, so no reordering ever
// happens here — callers that synthesise out of order are responsible for
// slotting buffers back by segment index first. Zero segments assemble to an
// empty buffer; that is not an error.
func Assemble(buffers [][]byte) []byte {
	total := 0
	for _, b := range buffers {
		total += len(b)
	}
	out := make([]byte, 0, total)
	for _, b := range buffers {
		out = append(out, b...)
	}
	return out
}
