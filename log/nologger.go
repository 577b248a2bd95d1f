/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package log

import "github.com/crewjam/rfc5424"

type nilLogger struct{}

func (n nilLogger) Criticalf(s string, i ...interface{}) error    { return nil }
func (n nilLogger) Errorf(s string, i ...interface{}) error       { return nil }
func (n nilLogger) Warnf(s string, i ...interface{}) error        { return nil }
func (n nilLogger) Infof(s string, i ...interface{}) error        { return nil }
func (n nilLogger) Debugf(s string, i ...interface{}) error       { return nil }
func (n nilLogger) Critical(a string, i ...rfc5424.SDParam) error { return nil }
func (n nilLogger) Error(a string, i ...rfc5424.SDParam) error    { return nil }
func (n nilLogger) Warn(a string, i ...rfc5424.SDParam) error     { return nil }
func (n nilLogger) Info(a string, i ...rfc5424.SDParam) error     { return nil }
func (n nilLogger) Debug(a string, i ...rfc5424.SDParam) error    { return nil }
func (n nilLogger) Hostname() string                              { return `` }
func (n nilLogger) Appname() string                               { return `` }

func NoLogger() Logger {
	return &nilLogger{}
}
