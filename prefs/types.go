// This file is part of wmsboard.
//
// wmsboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wmsboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wmsboard.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all the pref types.
type hooks struct {
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// SetHookPre sets a function to be called before the value is changed. The
// new value is passed to the function and any error prevents the change. The
// hook is called even if the value is unchanged.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.hookPre = f
}

// SetHookPost sets a function to be called after the value has changed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.hookPost = f
}

// typed is the storage common to all pref types. values can be read and
// written from different goroutines.
type typed[T any] struct {
	hooks
	value atomic.Value
}

func (p *typed[T]) load() T {
	var zero T
	if v := p.value.Load(); v != nil {
		return v.(T)
	}
	return zero
}

// store the new value, running the hooks either side
func (p *typed[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}
	p.value.Store(nv)
	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	typed[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set accepts a bool or a string. Any string other than "true" (in any
// letter case) is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the value as a bool.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system. The length of the
// string can be limited with SetMaxLen().
type String struct {
	typed[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

// SetMaxLen limits the length of the string. A value of zero or less removes
// the limit. The current value is cropped if necessary. The hooks are not
// called when cropping.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); len(s) != len(p.crop(s)) {
		p.value.Store(p.crop(s))
	}
}

// Set accepts any value and converts it with the %s verb.
func (p *String) Set(v Value) error {
	return p.store(p.crop(fmt.Sprintf("%s", v)))
}

// Get returns the value as a string.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	typed[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set accepts any of the common integer types or a string. Strings are parsed
// with the usual Go prefixes so "0x19" is a valid value.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int64:
		return p.store(int(v))
	case int32:
		return p.store(int(v))
	case uint8:
		return p.store(int(v))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(int(n))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the value as an int.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
