/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package scenario reads the comma separated topology files that describe a
// simulation run. Each line describes one controller and the devices hanging
// off of it:
//
//	mgc1:5ms:100Mbps,ied1:1ms:10Mbps,ied2:2ms,ied3
//
// Every field is name[:latency[:bandwidth]]. Missing latencies default to 0ms
// and missing bandwidths to 1000Mbps.
package scenario

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gravwell/syspath/syspath"
)

const (
	DefaultLatency   = `0ms`
	DefaultBandwidth = `1000Mbps`

	propSep = `:`
)

var (
	ErrNotFound       = errors.New("scenario file not found")
	ErrEmptyName      = errors.New("endpoint name is empty")
	ErrTooManyProps   = errors.New("endpoint has more than name, latency, and bandwidth")
	ErrNoControllers  = errors.New("scenario defines no controllers")
	ErrDuplicateEndpt = errors.New("endpoint name is already in use")
)

// Endpoint is a named node along with the link that attaches it.
type Endpoint struct {
	Name      string
	Latency   string
	Bandwidth string
}

// Controller is one line of a scenario file. Its own link is the
// inter-controller link.
type Controller struct {
	Endpoint
	Devices []Endpoint
}

type Scenario struct {
	Controllers []Controller
}

// Load validates that path exists and parses it.
func Load(path string) (*Scenario, error) {
	if !syspath.Exists(path) {
		return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
	}
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	s, err := Parse(fin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse reads a scenario from r. Blank lines and lines starting with # are
// ignored.
func Parse(r io.Reader) (*Scenario, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	s := &Scenario{}
	seen := make(map[string]bool)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		var c Controller
		for i, field := range rec {
			ep, err := parseEndpoint(field)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", line, i+1, err)
			}
			if seen[ep.Name] {
				return nil, fmt.Errorf("line %d field %d: %q: %w", line, i+1, ep.Name, ErrDuplicateEndpt)
			}
			seen[ep.Name] = true
			if i == 0 {
				c.Endpoint = ep
			} else {
				c.Devices = append(c.Devices, ep)
			}
		}
		s.Controllers = append(s.Controllers, c)
	}
	if len(s.Controllers) == 0 {
		return nil, ErrNoControllers
	}
	return s, nil
}

func parseEndpoint(field string) (ep Endpoint, err error) {
	props := strings.Split(strings.TrimSpace(field), propSep)
	if len(props) > 3 {
		err = ErrTooManyProps
		return
	}
	for i := range props {
		props[i] = strings.TrimSpace(props[i])
	}
	if ep.Name = props[0]; ep.Name == `` {
		err = ErrEmptyName
		return
	}
	ep.Latency = DefaultLatency
	ep.Bandwidth = DefaultBandwidth
	if len(props) > 1 && props[1] != `` {
		ep.Latency = props[1]
	}
	if len(props) > 2 && props[2] != `` {
		ep.Bandwidth = props[2]
	}
	return
}

// Devices returns the number of devices across all controllers.
func (s *Scenario) Devices() (n int) {
	for _, c := range s.Controllers {
		n += len(c.Devices)
	}
	return
}
