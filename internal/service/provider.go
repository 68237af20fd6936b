// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"

	"github.com/wneessen/foodfinder/internal/config"
	"github.com/wneessen/foodfinder/internal/locate"
	"github.com/wneessen/foodfinder/internal/locate/provider/ipinfo"
	"github.com/wneessen/foodfinder/internal/overpass"
	"github.com/wneessen/foodfinder/internal/presenter"
)

func (s *Service) selectLocator() locate.Locator {
	return ipinfo.New(s.http, s.config.Endpoints.GeoIP)
}

func (s *Service) selectQuerier() PlaceQuerier {
	return overpass.New(s.http, s.logger, s.config.Endpoints.Overpass)
}

func (s *Service) selectSink() (presenter.Sink, error) {
	var opener presenter.Opener
	if !s.config.Output.NoViewer {
		opener = presenter.DefaultOpener
	}

	switch s.config.Output.Mode {
	case config.OutputModeList:
		return presenter.NewText(s.out, s.t, s.config.Search.Radius)
	case config.OutputModeMap:
		return presenter.NewMap(s.config.Output.MapFile, s.out, s.t, opener)
	case config.OutputModeKML:
		return presenter.NewKML(s.config.Output.KMLFile, s.out, s.t, opener), nil
	default:
		return nil, fmt.Errorf("unsupported output mode: %s", s.config.Output.Mode)
	}
}
