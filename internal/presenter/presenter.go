// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package presenter renders ranked places for the user.
package presenter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/vorlif/spreak"

	"github.com/wneessen/foodfinder/internal/locate"
	"github.com/wneessen/foodfinder/internal/place"
)

// Sink presents the ranked records for the given origin.
type Sink interface {
	Present(ctx context.Context, records []place.Record, origin locate.Location) error
}

// Opener opens the file at path in a viewer.
type Opener func(path string) error

// DefaultOpener opens files with the default application of the desktop.
var DefaultOpener Opener = browser.OpenFile

// artifact holds what the map sinks share: where to write the document, where to report to and
// how to open it afterward.
type artifact struct {
	path      string
	out       io.Writer
	localizer *spreak.Localizer
	opener    Opener
}

// publish reports the saved document and opens it, if an opener is configured. Failing to open
// the viewer is not an error; the user is told to open the file manually instead.
func (a artifact) publish(savedMsg string) error {
	path, err := filepath.Abs(a.path)
	if err != nil {
		path = a.path
	}
	if _, err = fmt.Fprintf(a.out, a.localizer.Get(savedMsg)+"\n", path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if a.opener == nil {
		return nil
	}
	if err = a.opener(path); err != nil {
		if _, err = fmt.Fprintln(a.out, a.localizer.Get("Open the file manually to view the map.")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
