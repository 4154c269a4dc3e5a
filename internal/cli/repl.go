package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context, args []string) error
	ListUsers(ctx context.Context) error
	ShowUser(ctx context.Context, args []string) error
	Normalize(ctx context.Context, args []string) error
	ListFilms(ctx context.Context) error
	AddFavorite(ctx context.Context, args []string) error
	ListFavorites(ctx context.Context, args []string) error
	FavoriteGenre(ctx context.Context, args []string) error
	FavsPerSeries(ctx context.Context, args []string) error
	FavsLength(ctx context.Context, args []string) error
}

const helpText = "Available commands: adduser, deluser, users, show, normalize, films, fav, favs, favgenre, favseries, favtime, exit"

// runREPL reads commands from reader until EOF, "exit" or "quit". The first
// token of a line selects the command; the rest are its arguments. Handler
// errors are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, prompt string, reader *bufio.Reader) {
	for {
		if prompt != "" {
			printFn(prompt + "> ")
		}

		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("error:", err)
			}
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)
		case "adduser":
			err = a.AddUser(ctx)
		case "deluser":
			err = a.DeleteUser(ctx, args)
		case "users":
			err = a.ListUsers(ctx)
		case "show":
			err = a.ShowUser(ctx, args)
		case "normalize":
			err = a.Normalize(ctx, args)
		case "films":
			err = a.ListFilms(ctx)
		case "fav":
			err = a.AddFavorite(ctx, args)
		case "favs":
			err = a.ListFavorites(ctx, args)
		case "favgenre":
			err = a.FavoriteGenre(ctx, args)
		case "favseries":
			err = a.FavsPerSeries(ctx, args)
		case "favtime":
			err = a.FavsLength(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}
