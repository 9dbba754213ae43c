package ui

import "errors"

// Profile editor states
const (
	ProfileViewing = "viewing"
	ProfileEditing = "editing"
)

// Popups the editor can show. At most one is visible at a time.
const (
	PopupNone            = ""
	PopupNoChanges       = "no_changes"
	PopupIncompleteField = "incomplete_field"
	PopupConfirmPassword = "confirm_password"
	PopupSuccess         = "edit_profile_success"
)

// Confirm outcomes
const (
	ConfirmSuccess  = "success"
	ConfirmMismatch = "mismatch"
)

// ErrNoConfirmPending is returned when a confirm action arrives without the
// confirm-password popup being open.
var ErrNoConfirmPending = errors.New("no password confirmation is pending")

// PasswordFields are the three password inputs, addressed by name rather
// than by position in a DOM collection.
type PasswordFields struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

func (f PasswordFields) allEmpty() bool {
	return f.OldPassword == "" && f.NewPassword == "" && f.ConfirmPassword == ""
}

func (f PasswordFields) allFilled() bool {
	return f.OldPassword != "" && f.NewPassword != "" && f.ConfirmPassword != ""
}

// ProfileEditor is the admin profile widget. Viewing shows disabled inputs;
// Edit enables them and reveals the password fields; Save evaluates the
// password fields as a group and always returns to viewing, surfacing the
// result through a popup.
type ProfileEditor struct {
	State          string
	InputsDisabled bool
	PasswordsShown bool
	Popup          string
	Fields         PasswordFields

	// pending holds the field values captured at save time, so the confirm
	// popup compares what the admin actually typed even after the visible
	// fields are cleared.
	pending PasswordFields
}

// NewProfileEditor creates an editor in the viewing state.
func NewProfileEditor() *ProfileEditor {
	return &ProfileEditor{
		State:          ProfileViewing,
		InputsDisabled: true,
	}
}

// Edit enables the profile inputs and reveals the password fields.
// Re-entering while already editing is a no-op.
func (p *ProfileEditor) Edit() {
	if p.State == ProfileEditing {
		return
	}
	p.State = ProfileEditing
	p.InputsDisabled = false
	p.PasswordsShown = true
}

// Save evaluates the three password fields as a group and returns to
// viewing: all empty shows the no-changes popup, a partial fill shows the
// incomplete-field popup, and a complete fill opens the confirm-password
// popup. Inputs are disabled again on every path.
func (p *ProfileEditor) Save() {
	if p.State != ProfileEditing {
		return
	}
	switch {
	case p.Fields.allEmpty():
		p.Popup = PopupNoChanges
	case p.Fields.allFilled():
		p.pending = p.Fields
		p.Popup = PopupConfirmPassword
	default:
		p.Popup = PopupIncompleteField
	}
	p.Fields = PasswordFields{}
	p.leaveEditing()
}

// Cancel discards in-progress edits without any validation or popup. Input
// values are left as-is; only the password fields are cleared.
func (p *ProfileEditor) Cancel() {
	if p.State != ProfileEditing {
		return
	}
	p.Fields = PasswordFields{}
	p.leaveEditing()
}

// ConfirmOK resolves the confirm-password popup. A new/confirm mismatch is
// a distinct outcome rather than a silent console log; a match shows the
// success popup. The confirm popup closes either way.
func (p *ProfileEditor) ConfirmOK() (string, error) {
	if p.Popup != PopupConfirmPassword {
		return "", ErrNoConfirmPending
	}
	if p.pending.NewPassword != p.pending.ConfirmPassword {
		p.Popup = PopupNone
		p.pending = PasswordFields{}
		return ConfirmMismatch, nil
	}
	p.Popup = PopupSuccess
	p.pending = PasswordFields{}
	return ConfirmSuccess, nil
}

// ConfirmCancel dismisses the confirm-password popup and clears the
// captured password values.
func (p *ProfileEditor) ConfirmCancel() error {
	if p.Popup != PopupConfirmPassword {
		return ErrNoConfirmPending
	}
	p.Popup = PopupNone
	p.pending = PasswordFields{}
	p.Fields = PasswordFields{}
	return nil
}

// DismissPopup acknowledges a notice popup (no-changes, incomplete-field or
// success).
func (p *ProfileEditor) DismissPopup() {
	if p.Popup == PopupConfirmPassword {
		return
	}
	p.Popup = PopupNone
}

func (p *ProfileEditor) leaveEditing() {
	p.State = ProfileViewing
	p.InputsDisabled = true
	p.PasswordsShown = false
}
