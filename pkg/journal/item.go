// Package journal holds the ordered log sheet: continuation-linked entries,
// the reconciliation pass that rebuilds chain links after every edit, summary
// aggregation, and undo/redo snapshots.
package journal

import (
	"tableflip.dev/tempo/pkg/entry"
	"tableflip.dev/tempo/pkg/timeutil"
)

const noLink = -1

// Item is one row of the sheet. Chain links are arena indices into the owning
// Journal's item slice rather than pointers; they are derived state, rebuilt
// wholesale by Reconcile and never persisted.
type Item struct {
	entry.Entry

	// Index is the item's position in the sheet, stable across reconciles.
	Index int

	// Continued reports that this item currently extends a same-named
	// predecessor. It is recomputed by Reconcile.
	Continued bool

	// ManuallyUncontinued records that the user explicitly unchecked
	// continuation; it stops Reconcile from auto-linking this item.
	ManuallyUncontinued bool

	// Plan is the chain's shared budget. Every member of a chain holds the
	// identical pointer; the head's plan is authoritative.
	Plan *entry.Plan

	// backup is the item's own plan from before it joined a chain. It is set
	// once at construction and never reassigned, so leaving a chain always
	// restores the deepest original.
	backup *entry.Plan

	prev, next int
}

// NewItem builds an unlinked item with its own fresh plan.
func NewItem(name, startStr, endStr string, index int) *Item {
	start, _ := timeutil.ParseClock(startStr)
	end, _ := timeutil.ParseClock(endStr)
	plan := &entry.Plan{}
	return &Item{
		Entry:  entry.Entry{Name: name, Start: start, End: end},
		Index:  index,
		Plan:   plan,
		backup: plan,
		prev:   noLink,
		next:   noLink,
	}
}

// NewItemWithPlan builds an item carrying a loaded plan, used when restoring
// a persisted sheet.
func NewItemWithPlan(name, startStr, endStr string, index int, plan *entry.Plan, continued, manuallyUncontinued bool) *Item {
	it := NewItem(name, startStr, endStr, index)
	if plan != nil {
		it.Plan = plan
		it.backup = plan
	}
	it.Continued = continued
	it.ManuallyUncontinued = manuallyUncontinued
	return it
}

// IsHead reports whether the item starts a chain of length two or more.
func (it *Item) IsHead() bool {
	return it.prev == noLink && it.next != noLink
}

// InChain reports whether the item is linked to any other item.
func (it *Item) InChain() bool {
	return it.prev != noLink || it.next != noLink
}

func (it *Item) clearLinks() {
	it.Continued = false
	it.prev = noLink
	it.next = noLink
}

func (it *Item) clone() *Item {
	cp := *it
	cp.prev = noLink
	cp.next = noLink
	cp.Continued = false
	return &cp
}
