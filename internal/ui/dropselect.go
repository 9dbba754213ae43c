// Package ui models the admin page widgets as explicit state machines.
// The rendered page drives these transitions; keeping them as typed values
// removes the double-click and reentrancy hazards of ad-hoc DOM toggling.
package ui

import "errors"

// Drop selector phases
const (
	DropIdle      = "idle"
	DropSelecting = "selecting"
)

// Drop button labels shown in each phase.
const (
	DropButtonLabel   = "- Drop Service"
	CancelButtonLabel = "Cancel"
)

// Selector errors
var (
	ErrNotSelecting = errors.New("selector is not in selecting phase")
	ErrUnknownRow   = errors.New("unknown row id")
	ErrNoneChecked  = errors.New("no rows are checked")
)

// DropRow is one service table row. HasCheckbox reports whether the
// selection checkbox is currently injected into the row.
type DropRow struct {
	ID          string
	HasCheckbox bool
	Checked     bool
}

// DropSelector is the bulk drop-service widget: a table of rows that gains
// per-row checkboxes plus a header select-all while selecting, and collects
// the checked row ids into a single removal request on confirm.
type DropSelector struct {
	Phase          string
	HeaderInjected bool
	HeaderChecked  bool
	ConfirmVisible bool
	Rows           []DropRow
}

// DropRequest is the payload the confirm action produces. Reload is always
// true: the page fully reloads after the POST no matter how it resolved.
type DropRequest struct {
	Units  []string
	Reload bool
}

// NewDropSelector creates an idle selector over the given row ids.
func NewDropSelector(rowIDs []string) *DropSelector {
	rows := make([]DropRow, len(rowIDs))
	for i, id := range rowIDs {
		rows[i] = DropRow{ID: id}
	}
	return &DropSelector{Phase: DropIdle, Rows: rows}
}

// ButtonLabel returns the label the drop button carries in the current phase.
// INVARIANT: Selector fields are not mutated
func (d *DropSelector) ButtonLabel() string {
	if d.Phase == DropSelecting {
		return CancelButtonLabel
	}
	return DropButtonLabel
}

// Toggle flips the widget between idle and selecting. Entering selecting
// injects a checkbox per row plus the header select-all and reveals the
// confirm control; leaving removes every injected checkbox again, so two
// toggles always return the table to zero checkboxes.
func (d *DropSelector) Toggle() {
	if d.Phase == DropIdle {
		d.Phase = DropSelecting
		d.HeaderInjected = true
		d.HeaderChecked = false
		d.ConfirmVisible = true
		for i := range d.Rows {
			d.Rows[i].HasCheckbox = true
			d.Rows[i].Checked = false
		}
		return
	}
	d.Phase = DropIdle
	d.HeaderInjected = false
	d.HeaderChecked = false
	d.ConfirmVisible = false
	for i := range d.Rows {
		d.Rows[i].HasCheckbox = false
		d.Rows[i].Checked = false
	}
}

// SetHeader records a change event on the select-all checkbox and mirrors
// its checked state onto every row checkbox.
// POST: every row's Checked equals checked
func (d *DropSelector) SetHeader(checked bool) error {
	if d.Phase != DropSelecting {
		return ErrNotSelecting
	}
	d.HeaderChecked = checked
	for i := range d.Rows {
		d.Rows[i].Checked = checked
	}
	return nil
}

// SetRow records a change event on a single row checkbox.
func (d *DropSelector) SetRow(id string, checked bool) error {
	if d.Phase != DropSelecting {
		return ErrNotSelecting
	}
	for i := range d.Rows {
		if d.Rows[i].ID == id {
			d.Rows[i].Checked = checked
			return nil
		}
	}
	return ErrUnknownRow
}

// Confirm collects the ids of every checked row into one removal request
// and returns the widget to idle.
func (d *DropSelector) Confirm() (DropRequest, error) {
	if d.Phase != DropSelecting {
		return DropRequest{}, ErrNotSelecting
	}
	var units []string
	for _, row := range d.Rows {
		if row.Checked {
			units = append(units, row.ID)
		}
	}
	if len(units) == 0 {
		return DropRequest{}, ErrNoneChecked
	}
	d.Toggle()
	return DropRequest{Units: units, Reload: true}, nil
}

// CheckboxCount returns the number of rows with an injected checkbox.
// INVARIANT: Selector fields are not mutated
func (d *DropSelector) CheckboxCount() int {
	n := 0
	for _, row := range d.Rows {
		if row.HasCheckbox {
			n++
		}
	}
	return n
}
