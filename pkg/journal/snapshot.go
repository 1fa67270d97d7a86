package journal

import "tableflip.dev/tempo/pkg/entry"

// deepCopy duplicates an item list, giving the copy its own plan objects
// while preserving plan sharing: items that referenced one plan reference one
// copied plan. Links are dropped; Reconcile rebuilds them on restore.
func deepCopy(items []*Item) []*Item {
	plans := make(map[*entry.Plan]*entry.Plan)
	replace := func(p *entry.Plan) *entry.Plan {
		if p == nil {
			return nil
		}
		if cp, ok := plans[p]; ok {
			return cp
		}
		cp := p.Clone()
		plans[p] = cp
		return cp
	}

	out := make([]*Item, len(items))
	for i, it := range items {
		cp := it.clone()
		cp.Plan = replace(it.Plan)
		cp.backup = replace(it.backup)
		out[i] = cp
	}
	return out
}

// RegisterUndo snapshots the current sheet onto the undo stack and clears the
// redo stack; Undo and Redo push their own snapshots directly.
func (j *Journal) RegisterUndo() {
	j.undo = append(j.undo, deepCopy(j.Items))
	j.redo = nil
}

// Undo swaps the sheet for the most recent snapshot, pushing the current
// state onto the redo stack. It reports whether anything changed.
func (j *Journal) Undo() bool {
	if len(j.undo) == 0 {
		return false
	}
	j.redo = append(j.redo, deepCopy(j.Items))
	j.Items = j.undo[len(j.undo)-1]
	j.undo = j.undo[:len(j.undo)-1]
	j.Reconcile()
	return true
}

// Redo restores the most recently undone state.
func (j *Journal) Redo() bool {
	if len(j.redo) == 0 {
		return false
	}
	j.undo = append(j.undo, deepCopy(j.Items))
	j.Items = j.redo[len(j.redo)-1]
	j.redo = j.redo[:len(j.redo)-1]
	j.Reconcile()
	return true
}

// CanUndo reports whether an undo snapshot exists.
func (j *Journal) CanUndo() bool { return len(j.undo) > 0 }

// CanRedo reports whether a redo snapshot exists.
func (j *Journal) CanRedo() bool { return len(j.redo) > 0 }
