// Package cli provides the interactive UOCFlix command-line menu.
//
// It wires configuration, the film catalog and the catalog service, then
// runs a read–eval–print loop over stdin. Commands:
//
//	help                      show available commands
//	adduser                   register a user (prompts for fields)
//	deluser <username>        remove a user and its favorites
//	users                     list users
//	show <username>           show one user
//	normalize <username>      trim and capitalize the user's name
//	films                     list the film catalog
//	fav <username>            add a favorite film (prompts for title)
//	favs <username>           list favorites, most recent first
//	favgenre <username>       most favorited genre
//	favseries <username>      favorites of one series (prompts for title)
//	favtime <username>        total favorite runtime in minutes
//	exit | quit               leave the program
//
// Prompts are only printed when stdin is a terminal, so the CLI can also be
// driven by a piped script.
package cli
