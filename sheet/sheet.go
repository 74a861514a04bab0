/*
Package sheet implements the batching and grid layout used to arrange cover
cards onto printable sheets.

A sheet is a 3 by 3 grid of equally sized cells filled row-major, left to
right then top to bottom. Cards are consumed in order in chunks of at most
nine; the final chunk may be short, in which case the trailing cells are left
as background. Sheets are numbered from 1 per run and written as
<collection>_<NN>.png.
*/
package sheet

import "fmt"

const (
	gridX = 3
	gridY = gridX

	// Capacity is the number of cards on a full sheet.
	Capacity = gridX * gridY
)

// Batch splits cards into chunks of at most Capacity, preserving order. Zero
// cards yields zero chunks.
func Batch(cards []string) [][]string {
	var chunks [][]string
	for len(cards) > Capacity {
		chunks = append(chunks, cards[:Capacity:Capacity])
		cards = cards[Capacity:]
	}
	if len(cards) > 0 {
		chunks = append(chunks, cards)
	}
	return chunks
}

// Name returns the output filename for sheet n of a collection. Numbering
// starts at 1 and is zero-padded to two digits.
func Name(collection string, n int) string {
	return fmt.Sprintf("%s_%02d.png", collection, n)
}
