package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/product-showcase/internal/form"
)

// errCanceled is returned by dialog flows the user closed. Callers treat it
// as a no-op.
var errCanceled = errors.New("canceled")

// prompter is the native dialog surface the page uses for the contact form
// and the soundtrack picker.
type prompter interface {
	Entry(title, prompt string) (string, error)
	Choose(title, prompt string, items []string) (string, error)
	SelectFile(title, filter string, patterns []string) (string, error)
	Error(title, msg string) error
}

// zenityDialogs shows real native dialogs. Calls block the frame loop
// until the dialog closes.
type zenityDialogs struct{}

func canceled(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return errCanceled
	}
	return err
}

func (zenityDialogs) Entry(title, prompt string) (string, error) {
	s, err := zenity.Entry(prompt, zenity.Title(title))
	return s, canceled(err)
}

func (zenityDialogs) Choose(title, prompt string, items []string) (string, error) {
	s, err := zenity.List(prompt, items, zenity.Title(title))
	return s, canceled(err)
}

func (zenityDialogs) SelectFile(title, filter string, patterns []string) (string, error) {
	s, err := zenity.SelectFile(
		zenity.Title(title),
		zenity.FileFilters{{Name: filter, Patterns: patterns}},
	)
	return s, canceled(err)
}

func (zenityDialogs) Error(title, msg string) error {
	return canceled(zenity.Error(msg, zenity.Title(title)))
}

// collectEntry walks the user through the contact form fields.
func collectEntry(p prompter, products []string) (form.Entry, error) {
	const title = "Contacto"
	var e form.Entry
	var err error

	if e.Name, err = p.Entry(title, "Nombre"); err != nil {
		return form.Entry{}, err
	}
	if e.Email, err = p.Entry(title, "Email"); err != nil {
		return form.Entry{}, err
	}
	if len(products) > 0 {
		if e.Product, err = p.Choose(title, "Producto de interes", products); err != nil {
			return form.Entry{}, err
		}
	}
	if e.Message, err = p.Entry(title, "Mensaje"); err != nil {
		return form.Entry{}, err
	}
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	return e, nil
}

// pickSoundtrack asks for an audio file. An empty path means canceled.
func pickSoundtrack(p prompter, patterns []string) (string, error) {
	path, err := p.SelectFile("Abrir musica", "Audio", patterns)
	if errors.Is(err, errCanceled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("select soundtrack: %w", err)
	}
	return path, nil
}
