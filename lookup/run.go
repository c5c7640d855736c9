package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"fanyi/config"
	"fanyi/iciba"
	"fanyi/render"
	"fanyi/state"
)

// Run is the program action: it looks up the text given as the only
// argument and prints the entry.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("lookup")

	text := PrepareText(cmd.Args().First())
	if len(text) == 0 {
		return errors.New("no text to look up has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	renderer, err := selectRenderer(&env.Cfg.Render)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate lookup id: %w", err)
	}
	name := reportName(text, id)

	log.Debug("Lookup starting", zap.String("text", text), zap.Stringer("id", id))
	defer func(start time.Time) {
		log.Debug("Lookup completed", zap.Stringer("id", id), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	body, err := iciba.NewClient(&env.Cfg.Service, env.Log.Named("iciba")).Fetch(ctx, text)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("response/"+name+".xml", []byte(body))

	res, err := Process(body, renderer, log)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("record/"+name+".txt", []byte(res.Record.String()))

	if _, err := fmt.Fprintln(cmd.Root().Writer, res.Text); err != nil {
		return fmt.Errorf("unable to output entry: %w", err)
	}
	return nil
}

// PrepareText trims surrounding whitespace and brings text to NFC, so
// composed and decomposed spellings produce the same query.
func PrepareText(in string) string {
	return norm.NFC.String(strings.TrimSpace(in))
}

func selectRenderer(conf *config.RenderConfig) (render.Renderer, error) {
	if len(conf.Template) == 0 {
		return render.Plain{}, nil
	}
	tmpl, err := render.NewTemplate(string(config.RenderTemplateFieldName), conf.Template)
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

func reportName(text string, id uuid.UUID) string {
	s := slug.Make(text)
	if len(s) == 0 {
		s = "lookup"
	}
	return s + "-" + id.String()
}
