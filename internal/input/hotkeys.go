package input

import "strings"

// Hotkeys extracts the menu hotkeys embedded in a topic name. Names carry
// their hotkeys as a bracketed, pipe-separated group, e.g.
// "<a|A>: How to move around" yields ["a", "A"]. Names without a group
// have no hotkeys and are reachable only by reading the menu.
func Hotkeys(name string) []string {
	start := strings.IndexByte(name, '<')
	end := strings.IndexByte(name, '>')
	if start < 0 || end < 0 || end <= start+1 {
		return nil
	}
	return strings.Split(name[start+1:end], "|")
}
