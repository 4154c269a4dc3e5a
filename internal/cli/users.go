package cli

import (
	"context"
	"fmt"
)

func (a *App) AddUser(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "- Enter username", a.prompts)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "- Enter name", a.prompts)
	if err != nil {
		return err
	}
	mail, err := GetSimpleText(a.reader, "- Enter mail", a.prompts)
	if err != nil {
		return err
	}

	if err := a.service.Register(ctx, username, name, mail); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s added\n", username)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	username, err := usernameArg("deluser", args)
	if err != nil {
		return err
	}
	if err := a.service.Unregister(ctx, username); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s removed\n", username)
	return nil
}

func (a *App) ListUsers(ctx context.Context) error {
	list := a.service.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}
	for _, u := range list {
		fmt.Fprintf(a.out, "%-12s %-24s %-24s favs=%d\n", u.Username, u.Name, u.Mail, u.Favorites)
	}
	return nil
}

func (a *App) ShowUser(ctx context.Context, args []string) error {
	username, err := usernameArg("show", args)
	if err != nil {
		return err
	}
	u, err := a.service.Get(ctx, username)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Username: %s\nName: %s\nMail: %s\nFavorites: %d\n", u.Username, u.Name, u.Mail, u.Favorites)
	return nil
}

func (a *App) Normalize(ctx context.Context, args []string) error {
	username, err := usernameArg("normalize", args)
	if err != nil {
		return err
	}
	name, err := a.service.NormalizeName(ctx, username)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Name: %s\n", name)
	return nil
}
