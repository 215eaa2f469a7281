package catalog

import "strings"

// FormatName turns a catalog slug into a readable title.
// Double underscores separate subtitles and editions, single ones are spaces:
// "This_Game__Special_Edition" becomes "This Game - Special Edition".
func FormatName(slug string) string {
	// "__" must go first or it would become two spaces.
	name := strings.ReplaceAll(slug, "__", " - ")
	return strings.ReplaceAll(name, "_", " ")
}
