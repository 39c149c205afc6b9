// Package apikit is the runtime support library of generated APIs. It
// declares resource routes, keeps the controller registry and mounts
// both on an http.ServeMux.
package apikit

import (
	"net/http"
	"strings"
)

// Action is one of the seven resource actions.
type Action uint8

const (
	ActionIndex Action = 1 << iota
	ActionCreate
	ActionStore
	ActionShow
	ActionEdit
	ActionUpdate
	ActionDestroy
)

// actions lists every action in routing order.
var actions = []Action{ActionIndex, ActionCreate, ActionStore, ActionShow, ActionEdit, ActionUpdate, ActionDestroy}

func (a Action) String() string {
	switch a {
	case ActionIndex:
		return "index"
	case ActionCreate:
		return "create"
	case ActionStore:
		return "store"
	case ActionShow:
		return "show"
	case ActionEdit:
		return "edit"
	case ActionUpdate:
		return "update"
	case ActionDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// patterns returns the ServeMux patterns of a under segment.
func (a Action) patterns(segment string) []string {
	base := "/" + strings.Trim(segment, "/")
	item := base + "/{id}"
	switch a {
	case ActionIndex:
		return []string{http.MethodGet + " " + base}
	case ActionCreate:
		return []string{http.MethodGet + " " + base + "/create"}
	case ActionStore:
		return []string{http.MethodPost + " " + base}
	case ActionShow:
		return []string{http.MethodGet + " " + item}
	case ActionEdit:
		return []string{http.MethodGet + " " + item + "/edit"}
	case ActionUpdate:
		return []string{http.MethodPut + " " + item, http.MethodPatch + " " + item}
	case ActionDestroy:
		return []string{http.MethodDelete + " " + item}
	default:
		return nil
	}
}

// ActionSet is a set of actions.
type ActionSet uint8

// All returns every action.
func All() ActionSet {
	var s ActionSet
	for _, a := range actions {
		s |= ActionSet(a)
	}
	return s
}

// Only returns a set holding exactly the given actions.
func Only(list ...Action) ActionSet {
	var s ActionSet
	for _, a := range list {
		s |= ActionSet(a)
	}
	return s
}

// Except returns every action but the given ones.
func Except(list ...Action) ActionSet {
	return All() &^ Only(list...)
}

// Has reports whether a is in s.
func (s ActionSet) Has(a Action) bool {
	return s&ActionSet(a) != 0
}

// List returns the actions of s in routing order.
func (s ActionSet) List() []Action {
	var out []Action
	for _, a := range actions {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s ActionSet) String() string {
	names := make([]string, 0, len(actions))
	for _, a := range s.List() {
		names = append(names, a.String())
	}
	return strings.Join(names, ",")
}
