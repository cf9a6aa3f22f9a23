package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pawbuddy-client/internal/app"
	"pawbuddy-client/internal/domain/accounts"
	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/nav"
	"pawbuddy-client/internal/platform/jsontime"
)

type cli struct {
	app *app.App
	in  *bufio.Reader
	out io.Writer
	r   renderer
}

type command func(ctx context.Context, args []string) (app.Screen, error)

// errUsage corta el comando sin pantalla; dispatch imprime el uso.
type errUsage string

func (e errUsage) Error() string { return string(e) }

func (c *cli) dispatch(ctx context.Context, args []string) int {
	cmds := map[string]command{
		"home":      c.home,
		"animals":   c.animals,
		"adopt":     c.adopt,
		"intents":   c.intents,
		"users":     c.users,
		"adoptions": c.adoptions,
		"me":        c.me,
		"login":     c.login,
		"register":  c.register,
		"logout":    c.logout,
		"admin":     c.admin,
	}

	name, rest := args[0], args[1:]
	if name == "whoami" {
		c.whoami()
		return exitOK
	}
	cmd, ok := cmds[name]
	if !ok {
		fmt.Fprintf(c.out, "unknown command %q\n", name)
		return exitUsage
	}

	sc, err := cmd(ctx, rest)
	if err != nil {
		fmt.Fprintf(c.out, "%s: %v\n", name, err)
		return exitUsage
	}
	c.r.screen(sc)
	if sc.Failed() {
		return exitError
	}
	return exitOK
}

func (c *cli) whoami() {
	st := c.app.Session()
	switch {
	case !st.LoggedIn:
		fmt.Fprintln(c.out, "not logged in")
	case st.IsAdmin:
		fmt.Fprintf(c.out, "user %d (admin)\n", st.UserID)
	default:
		fmt.Fprintf(c.out, "user %d\n", st.UserID)
	}
}

func (c *cli) home(ctx context.Context, _ []string) (app.Screen, error) {
	return c.app.Navigate(ctx, nav.Home()), nil
}

func (c *cli) admin(ctx context.Context, _ []string) (app.Screen, error) {
	return c.app.Navigate(ctx, nav.AdminDashboard()), nil
}

func (c *cli) animals(ctx context.Context, args []string) (app.Screen, error) {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.app.Navigate(ctx, nav.AnimalList()), nil
	case "show":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.Navigate(ctx, nav.AnimalDetail(id)), nil
	case "create":
		f, _, err := parseAnimalForm(rest, animals.Form{})
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.SaveAnimal(ctx, 0, f), nil
	case "edit":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		sc := c.app.Navigate(ctx, nav.AnimalForm(id))
		if sc.Destination != nav.AnimalForm(id) || sc.Animal == nil {
			return sc, nil
		}
		f, changed, err := parseAnimalForm(rest[1:], animals.FormFrom(*sc.Animal))
		if err != nil {
			return app.Screen{}, err
		}
		if !changed {
			return sc, nil
		}
		return c.app.SaveAnimal(ctx, id, f), nil
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.DeleteAnimal(ctx, id), nil
	}
	return app.Screen{}, errUsage("expected list, show, create, edit or delete")
}

// parseAnimalForm aplica sobre base solo los flags presentes.
func parseAnimalForm(args []string, base animals.Form) (animals.Form, bool, error) {
	fs := flag.NewFlagSet("animals", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", base.Name, "nome")
	breed := fs.String("breed", base.Breed, "raca")
	age := fs.String("age", base.Age, "idade")
	gender := fs.String("gender", base.Gender, "genero")
	species := fs.String("species", base.Species, "especie")
	color := fs.String("color", base.Color, "cor")
	img := fs.String("image", "", "path to a JPEG file")
	if err := fs.Parse(args); err != nil {
		return base, false, err
	}

	f := animals.Form{
		Name: *name, Breed: *breed, Age: *age, Gender: *gender,
		Species: *species, Color: *color,
	}
	if *img != "" {
		data, err := os.ReadFile(*img)
		if err != nil {
			return base, false, err
		}
		f.Image = &animals.Image{Filename: filepath.Base(*img), Data: data}
	}
	return f, fs.NFlag() > 0, nil
}

func (c *cli) adopt(ctx context.Context, args []string) (app.Screen, error) {
	id, err := idArg(args)
	if err != nil {
		return app.Screen{}, err
	}

	fs := flag.NewFlagSet("adopt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	d := intents.Draft{AnimalID: id}
	fs.StringVar(&d.Profession, "profession", "", "profissao")
	fs.StringVar(&d.Residence, "residence", "", "residencia")
	fs.StringVar(&d.Reason, "reason", "", "motivo")
	fs.StringVar(&d.HasPets, "has-pets", "", "Sim|Nao")
	fs.StringVar(&d.WhichPets, "which-pets", "", "quaisAnimais")
	if err := fs.Parse(args[1:]); err != nil {
		return app.Screen{}, err
	}

	// Sin flags solo se abre el formulario (o el login si hace falta).
	if fs.NFlag() == 0 {
		return c.app.Adopt(ctx, id), nil
	}
	return c.app.SubmitIntent(ctx, d), nil
}

func (c *cli) intents(ctx context.Context, args []string) (app.Screen, error) {
	sub, rest := subcommand(args, "mine")
	switch sub {
	case "mine":
		return c.app.Navigate(ctx, nav.MyIntents()), nil
	case "list":
		return c.app.Navigate(ctx, nav.AdminIntents()), nil
	case "show":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.Navigate(ctx, nav.IntentDetail(id)), nil
	case "state":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		if len(rest) < 2 {
			return app.Screen{}, errUsage("missing target state")
		}
		to, err := intents.ParseState(rest[1])
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.ChangeState(ctx, id, to), nil
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.DeleteIntent(ctx, id), nil
	}
	return app.Screen{}, errUsage("expected mine, list, show, state or delete")
}

func (c *cli) users(ctx context.Context, args []string) (app.Screen, error) {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.app.Navigate(ctx, nav.AdminUsers()), nil
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.DeleteUser(ctx, id), nil
	}
	return app.Screen{}, errUsage("expected list or delete")
}

func (c *cli) adoptions(ctx context.Context, args []string) (app.Screen, error) {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.app.Navigate(ctx, nav.AdminAdoptions()), nil
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return app.Screen{}, err
		}
		return c.app.DeleteAdoption(ctx, id), nil
	}
	return app.Screen{}, errUsage("expected list or delete")
}

func (c *cli) me(ctx context.Context, args []string) (app.Screen, error) {
	sub, rest := subcommand(args, "show")
	switch sub {
	case "show":
		return c.app.Navigate(ctx, nav.Profile()), nil
	case "edit":
		sc := c.app.Navigate(ctx, nav.Profile())
		if sc.User == nil {
			return sc, nil
		}
		u, changed, err := parseProfile("me edit", rest, *sc.User)
		if err != nil {
			return app.Screen{}, err
		}
		if !changed {
			return sc, nil
		}
		return c.app.UpdateProfile(ctx, u), nil
	}
	return app.Screen{}, errUsage("expected show or edit")
}

func (c *cli) login(ctx context.Context, args []string) (app.Screen, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return app.Screen{}, err
	}
	if *email == "" {
		*email = c.prompt("email: ")
	}
	if *password == "" {
		*password = c.prompt("password: ")
	}
	return c.app.Login(ctx, *email, *password), nil
}

func (c *cli) register(ctx context.Context, args []string) (app.Screen, error) {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	password := fs.String("password", "", "password (prompted when empty)")
	u, _, err := parseProfileInto(fs, args, users.User{})
	if err != nil {
		return app.Screen{}, err
	}
	if *password == "" {
		*password = c.prompt("password: ")
	}
	return c.app.Register(ctx, accounts.RegisterRequest{User: u, Password: *password}), nil
}

func (c *cli) logout(ctx context.Context, _ []string) (app.Screen, error) {
	return c.app.Logout(ctx), nil
}

func parseProfile(name string, args []string, base users.User) (users.User, bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseProfileInto(fs, args, base)
}

// parseProfileInto define los flags del perfil sobre fs con base como
// valores por defecto.
func parseProfileInto(fs *flag.FlagSet, args []string, base users.User) (users.User, bool, error) {
	u := base
	fs.StringVar(&u.Name, "name", base.Name, "nome")
	birth := fs.String("birth", base.BirthDate.String(), "dataNascimento (YYYY-MM-DD)")
	fs.StringVar(&u.TaxID, "nif", base.TaxID, "nif (9 digits)")
	fs.StringVar(&u.Phone, "phone", base.Phone, "telemovel (9 digits)")
	fs.StringVar(&u.Address, "address", base.Address, "morada")
	fs.StringVar(&u.PostalCode, "postal", base.PostalCode, "codPostal")
	fs.StringVar(&u.Email, "email", base.Email, "email")
	fs.StringVar(&u.Country, "country", base.Country, "pais")
	if err := fs.Parse(args); err != nil {
		return base, false, err
	}

	if *birth != "" && *birth != base.BirthDate.String() {
		t, err := jsontime.Parse(*birth)
		if err != nil {
			return base, false, err
		}
		u.BirthDate = jsontime.Date{Time: t}
	}
	// El perfil anidado no se reenvía.
	u.Intents = nil
	return u, fs.NFlag() > 0, nil
}

func (c *cli) prompt(label string) string {
	fmt.Fprint(c.out, label)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func subcommand(args []string, def string) (string, []string) {
	if len(args) == 0 {
		return def, nil
	}
	return args[0], args[1:]
}

func idArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errUsage("missing ID")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, errUsage(fmt.Sprintf("invalid ID %q", args[0]))
	}
	return id, nil
}
