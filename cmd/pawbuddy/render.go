package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/app"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/nav"
)

type renderer struct {
	out      io.Writer
	imageURL func(string) string
}

func (r renderer) screen(sc app.Screen) {
	fmt.Fprintf(r.out, "== %s ==\n", title(sc.Destination))
	if sc.Notice != "" {
		fmt.Fprintf(r.out, "» %s\n", sc.Notice)
	}
	if sc.Message != nil {
		r.message(sc.Message)
	}

	switch {
	case sc.Summary != nil:
		r.summary(sc.Summary)
	case sc.Animal != nil:
		r.animal(sc)
	case sc.Intent != nil:
		r.intent(sc.Intent)
	case sc.User != nil:
		r.profile(sc)
	case sc.Destination.Screen == nav.ScreenAnimalList || sc.Destination.Screen == nav.ScreenHome:
		r.animals(sc)
	case sc.Destination.Screen == nav.ScreenMyIntents || sc.Destination.Screen == nav.ScreenAdminIntents:
		r.intents(sc.Intents)
	case sc.Destination.Screen == nav.ScreenAdminUsers:
		r.users(sc)
	case sc.Destination.Screen == nav.ScreenAdminAdoptions:
		r.adoptions(sc)
	}

	if acts := sc.Decision.Actions.List(); len(acts) > 0 {
		names := make([]string, 0, len(acts))
		for _, a := range acts {
			names = append(names, a.String())
		}
		fmt.Fprintf(r.out, "\nactions: %s\n", strings.Join(names, ", "))
	}
}

func (r renderer) message(m *app.Message) {
	fmt.Fprintf(r.out, "! %s\n", m.Text)
	if len(m.Fields) == 0 {
		return
	}
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(r.out, "  - %s: %s\n", k, m.Fields[k])
	}
}

func (r renderer) animals(sc app.Screen) {
	if len(sc.Animals) == 0 {
		fmt.Fprintln(r.out, "(no animals)")
		return
	}
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tBREED\tAGE\tGENDER")
	for _, a := range sc.Animals {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Species, a.Breed, a.Age, a.Gender)
	}
	_ = tw.Flush()
}

func (r renderer) animal(sc app.Screen) {
	a := sc.Animal
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", a.ID)
	fmt.Fprintf(tw, "Name\t%s\n", a.Name)
	fmt.Fprintf(tw, "Species\t%s\n", a.Species)
	fmt.Fprintf(tw, "Breed\t%s\n", a.Breed)
	fmt.Fprintf(tw, "Age\t%s\n", a.Age)
	fmt.Fprintf(tw, "Gender\t%s\n", a.Gender)
	fmt.Fprintf(tw, "Color\t%s\n", a.Color)
	if p := a.ImagePath(); p != "" {
		fmt.Fprintf(tw, "Image\t%s\n", r.imageURL(p))
	}
	_ = tw.Flush()

	if len(a.Intents) > 0 {
		fmt.Fprintln(r.out, "\nAdoption requests:")
		r.intents(a.Intents)
	}
	if sc.Destination.Screen == nav.ScreenAdoptionForm && sc.Can(access.ActionSubmitIntent) {
		fmt.Fprintf(r.out, "\nsubmit with: pawbuddy adopt %d -profession ... -residence ... -reason ... -has-pets Sim|Nao [-which-pets ...]\n", a.ID)
	}
}

func (r renderer) intents(items []intents.Intent) {
	if len(items) == 0 {
		fmt.Fprintln(r.out, "(no adoption requests)")
		return
	}
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tANIMAL\tUSER\tSTATE\tCREATED")
	for _, i := range items {
		created := ""
		if !i.CreatedAt.IsZero() {
			created = i.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i.ID, i.AnimalName(), i.UserName(), i.State.Label(), created)
	}
	_ = tw.Flush()
}

func (r renderer) intent(i *intents.Intent) {
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", i.ID)
	fmt.Fprintf(tw, "State\t%s\n", i.State.Label())
	fmt.Fprintf(tw, "Animal\t%s\n", i.AnimalName())
	fmt.Fprintf(tw, "User\t%s\n", i.UserName())
	fmt.Fprintf(tw, "Profession\t%s\n", i.Profession)
	fmt.Fprintf(tw, "Residence\t%s\n", i.Residence)
	fmt.Fprintf(tw, "Reason\t%s\n", i.Reason)
	fmt.Fprintf(tw, "Has pets\t%s\n", i.HasPets)
	if i.WhichPets != "" {
		fmt.Fprintf(tw, "Which pets\t%s\n", i.WhichPets)
	}
	_ = tw.Flush()

	if next := i.State.Next(); len(next) > 0 {
		labels := make([]string, 0, len(next))
		for _, s := range next {
			labels = append(labels, fmt.Sprintf("%s (%d)", s.Label(), int(s)))
		}
		fmt.Fprintf(r.out, "\nnext states: %s\n", strings.Join(labels, ", "))
	}
}

func (r renderer) profile(sc app.Screen) {
	u := sc.User
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	fmt.Fprintf(tw, "Birth date\t%s\n", u.BirthDate.String())
	fmt.Fprintf(tw, "NIF\t%s\n", u.TaxID)
	fmt.Fprintf(tw, "Phone\t%s\n", u.Phone)
	fmt.Fprintf(tw, "Address\t%s, %s, %s\n", u.Address, u.PostalCode, u.Country)
	_ = tw.Flush()

	if len(sc.Intents) > 0 {
		fmt.Fprintln(r.out, "\nMy adoption requests:")
		r.intents(sc.Intents)
	}
	if len(sc.Animals) > 0 {
		fmt.Fprintln(r.out, "\nAdopted animals:")
		r.animals(sc)
	}
}

func (r renderer) users(sc app.Screen) {
	if len(sc.Users) == 0 {
		fmt.Fprintln(r.out, "(no users)")
		return
	}
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCOUNTRY")
	for _, u := range sc.Users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Phone, u.Country)
	}
	_ = tw.Flush()
}

func (r renderer) adoptions(sc app.Screen) {
	if len(sc.Adoptions) == 0 {
		fmt.Fprintln(r.out, "(no adoptions)")
		return
	}
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tANIMAL\tADOPTER")
	for _, a := range sc.Adoptions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", a.ID, a.Date.String(), a.AnimalName(), a.UserName())
	}
	_ = tw.Flush()
}

func (r renderer) summary(s *app.Summary) {
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Animals\t%d\n", s.Animals)
	fmt.Fprintf(tw, "Users\t%d\n", s.Users)
	fmt.Fprintf(tw, "Open requests\t%d\n", s.OpenIntents)
	for _, st := range []intents.State{intents.StateReserved, intents.StateInProcess, intents.StateInValidation} {
		fmt.Fprintf(tw, "  %s\t%d\n", st.Label(), s.PendingByState[st])
	}
	fmt.Fprintf(tw, "Closed requests\t%d\n", s.ClosedIntents)
	fmt.Fprintf(tw, "Adoptions\t%d\n", s.Adoptions)
	_ = tw.Flush()
}

func title(d nav.Destination) string {
	switch d.Screen {
	case nav.ScreenHome:
		return "PawBuddy"
	case nav.ScreenAnimalList:
		return "Animals"
	case nav.ScreenAnimalDetail:
		return "Animal"
	case nav.ScreenLogin:
		return "Login"
	case nav.ScreenRegister:
		return "Register"
	case nav.ScreenAdoptionForm:
		return "Adoption request"
	case nav.ScreenMyIntents:
		return "My adoption requests"
	case nav.ScreenProfile:
		return "Profile"
	case nav.ScreenAdminDashboard:
		return "Admin"
	case nav.ScreenAnimalForm:
		if d.AnimalID == 0 {
			return "New animal"
		}
		return "Edit animal"
	case nav.ScreenAdminUsers:
		return "Users"
	case nav.ScreenAdminIntents:
		return "Adoption requests"
	case nav.ScreenIntentDetail:
		return "Adoption request"
	case nav.ScreenAdminAdoptions:
		return "Adoptions"
	default:
		return d.String()
	}
}
