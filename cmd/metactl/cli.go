package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"localmeta/internal/domain/entities"
	"localmeta/internal/ports/input"
	"localmeta/internal/ports/output"
)

const usage = `usage: metactl <command> [flags]

commands:
  create     -kind -actor -name [-description]
  show       -id
  list       -kind [-all]
  translate  -id -actor -to [-field] [-text | -remove]
  retire     -id -actor -reason
  unretire   -id -actor
  purge      -id          deletes the record for good; prefer retire

every command accepts -locale to choose the display language.
`

var errUsage = errors.New("usage")

type cli struct {
	metadata input.MetadataUseCase
	present  output.MetadataPresenter
	stdout   io.Writer
	stderr   io.Writer
}

func newCLI(metadata input.MetadataUseCase, present output.MetadataPresenter, stdout, stderr io.Writer) *cli {
	return &cli{metadata: metadata, present: present, stdout: stdout, stderr: stderr}
}

// run executes one command and returns the process exit code.
func (c *cli) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return 2
	}

	var err error
	locale := c.present.DefaultLocale()
	switch args[0] {
	case "create":
		err = c.create(ctx, args[1:], &locale)
	case "show":
		err = c.show(ctx, args[1:], &locale)
	case "list":
		err = c.list(ctx, args[1:], &locale)
	case "translate":
		err = c.translate(ctx, args[1:], &locale)
	case "retire":
		err = c.retire(ctx, args[1:], &locale)
	case "unretire":
		err = c.unretire(ctx, args[1:], &locale)
	case "purge":
		err = c.purge(ctx, args[1:], &locale)
	default:
		err = errUsage
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprint(c.stderr, usage)
		return 2
	default:
		fmt.Fprintln(c.stderr, c.present.ErrorMessage(locale, err))
		return 1
	}
}

func (c *cli) flagSet(name string, locale *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.StringVar(locale, "locale", *locale, "locale used for display and messages")
	return fs
}

func (c *cli) create(ctx context.Context, args []string, locale *string) error {
	fs := c.flagSet("create", locale)
	kind := fs.String("kind", "", "metadata kind (location, encounter_type, concept_class)")
	actor := fs.String("actor", "", "acting user")
	name := fs.String("name", "", "unlocalized name")
	description := fs.String("description", "", "unlocalized description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := c.metadata.Create(ctx, entities.Kind(*kind), entities.ActorID(*actor), *name, *description)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, m.ID)
	return nil
}

func (c *cli) show(ctx context.Context, args []string, locale *string) error {
	fs := c.flagSet("show", locale)
	rawID := fs.String("id", "", "metadata id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}

	m, err := c.metadata.Get(ctx, id)
	if err != nil {
		return err
	}
	c.printDetail(*locale, m)
	return nil
}

func (c *cli) list(ctx context.Context, args []string, locale *string) error {
	fs := c.flagSet("list", locale)
	kind := fs.String("kind", "", "metadata kind")
	all := fs.Bool("all", false, "include retired records")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := c.metadata.List(ctx, entities.Kind(*kind), *all)
	if err != nil {
		return err
	}
	for i := range records {
		m := &records[i]
		fmt.Fprintf(c.stdout, "%s\t%s\t%s\n", m.ID, c.present.DisplayName(*locale, m), c.present.Status(*locale, m))
	}
	return nil
}

func (c *cli) translate(ctx context.Context, args []string, locale *string) error {
	fs := c.flagSet("translate", locale)
	rawID := fs.String("id", "", "metadata id")
	actor := fs.String("actor", "", "acting user")
	field := fs.String("field", string(input.FieldName), "name or description")
	target := fs.String("to", "", "locale of the translation")
	text := fs.String("text", "", "translated text")
	remove := fs.Bool("remove", false, "remove the translation instead of setting it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(*target) == "" {
		return errUsage
	}

	var m *entities.Metadata
	if *remove {
		m, err = c.metadata.RemoveTranslation(ctx, id, entities.ActorID(*actor), input.Field(*field), *target)
	} else {
		m, err = c.metadata.SetTranslation(ctx, id, entities.ActorID(*actor), input.Field(*field), *target, *text)
	}
	if err != nil {
		return err
	}
	c.printDetail(*locale, m)
	return nil
}

func (c *cli) retire(ctx context.Context, args []string, locale *string) error {
	fs := c.flagSet("retire", locale)
	rawID := fs.String("id", "", "metadata id")
	actor := fs.String("actor", "", "acting user")
	reason := fs.String("reason", "", "why the record is retired")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}

	m, err := c.metadata.Retire(ctx, id, entities.ActorID(*actor), *reason)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, c.present.Status(*locale, m))
	return nil
}

func (c *cli) unretire(ctx context.Context, args []string, locale *string) error {
	fs := c.flagSet("unretire", locale)
	rawID := fs.String("id", "", "metadata id")
	actor := fs.String("actor", "", "acting user")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}

	m, err := c.metadata.Unretire(ctx, id, entities.ActorID(*actor))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, c.present.Status(*locale, m))
	return nil
}

func (c *cli) purge(ctx context.Context, args []string, locale *string) error {
	fs := c.flagSet("purge", locale)
	rawID := fs.String("id", "", "metadata id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}

	if err := c.metadata.Purge(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, id)
	return nil
}

func (c *cli) printDetail(locale string, m *entities.Metadata) {
	fmt.Fprintf(c.stdout, "id:          %s\n", m.ID)
	fmt.Fprintf(c.stdout, "kind:        %s\n", m.Kind)
	fmt.Fprintf(c.stdout, "name:        %s\n", c.present.DisplayName(locale, m))
	if desc := c.present.DisplayDescription(locale, m); desc != "" {
		fmt.Fprintf(c.stdout, "description: %s\n", desc)
	}
	if locales := m.LocalizedName().Locales(); len(locales) > 0 {
		fmt.Fprintf(c.stdout, "translated:  %s\n", strings.Join(locales, ", "))
	}
	fmt.Fprintf(c.stdout, "created:     %s by %s\n", m.DateCreated.Format("2006-01-02 15:04"), m.Creator)
	if !m.DateChanged.IsZero() {
		fmt.Fprintf(c.stdout, "changed:     %s by %s\n", m.DateChanged.Format("2006-01-02 15:04"), m.ChangedBy)
	}
	fmt.Fprintf(c.stdout, "status:      %s\n", c.present.Status(locale, m))
}

func parseID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, errUsage
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", errUsage, raw)
	}
	return id, nil
}
