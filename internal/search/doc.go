// Package search resolves a user-supplied pattern to a single stored entry.
//
// Keys are matched with Go regular expressions (a match anywhere in the key
// counts). When the pattern matches nothing or several keys, the Engine
// lists the candidates and asks for a new pattern, then matches it against
// the full set of entries again, so a user can pivot as well as narrow. A key
// equal to the raw pattern resolves an ambiguous result immediately.
//
// The narrowing runs as a loop over three states: AwaitingPattern, Resolved
// and Cancelled. Once resolved, the user confirms the retrieval and the
// password is handed to the clipboard. It is never written to the terminal.
package search
