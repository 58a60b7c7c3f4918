package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name string
}

func newTestController() *Controller[profile] {
	return New(profile{Name: "Amina"},
		Field{Name: "name", Label: "Name", Required: true},
		Field{Name: "bio", Label: "Biography"},
	)
}

func TestControllerLifecycle(t *testing.T) {
	c := newTestController()
	assert.Equal(t, Viewing, c.Phase())

	require.True(t, c.BeginEdit(map[string]string{"name": "Amina", "bio": "weaver"}))
	assert.Equal(t, Editing, c.Phase())
	assert.Equal(t, "Amina", c.Value("name"))

	c.Set("name", "Amina Z.")
	errs, ok := c.Submit()
	require.True(t, ok)
	require.Empty(t, errs)
	assert.Equal(t, Submitting, c.Phase())

	c.Resolve(profile{Name: "Amina Z."}, nil)
	assert.Equal(t, Viewing, c.Phase())
	assert.Equal(t, "Amina Z.", c.Committed().Name)
	assert.Empty(t, c.Draft())
	assert.NoError(t, c.Err())
}

func TestControllerValidationBlocksSubmit(t *testing.T) {
	c := newTestController()
	c.BeginEdit(map[string]string{"name": "   "})

	errs, ok := c.Submit()
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	// Validation failure keeps the form editable with the draft intact.
	assert.Equal(t, Editing, c.Phase())
	assert.Equal(t, "   ", c.Value("name"))
	assert.Error(t, c.Err())
}

func TestControllerMatchRule(t *testing.T) {
	c := New(struct{}{},
		Field{Name: "new_password", Label: "New password", Secret: true},
		Field{Name: "confirm", Label: "Confirm", Secret: true},
	)
	c.RequireMatch("new_password", "confirm", "passwords do not match")
	c.BeginEdit(nil)
	c.Set("new_password", "s3cret")
	c.Set("confirm", "s3cret!")

	errs, ok := c.Submit()
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "confirm", errs[0].Field)
	assert.Equal(t, Editing, c.Phase(), "mismatch must never leave Editing")

	c.Set("confirm", "s3cret")
	_, ok = c.Submit()
	assert.True(t, ok)
}

func TestControllerSubmitGuard(t *testing.T) {
	c := newTestController()
	c.BeginEdit(map[string]string{"name": "Amina"})

	_, ok := c.Submit()
	require.True(t, ok)

	// A second submit while one is in flight is a no-op.
	errs, ok := c.Submit()
	assert.False(t, ok)
	assert.Nil(t, errs)
	assert.Equal(t, Submitting, c.Phase())
}

func TestControllerResolveFailureKeepsDraft(t *testing.T) {
	c := newTestController()
	c.BeginEdit(map[string]string{"name": "Amina"})
	c.Set("name", "Amina Z.")
	c.Set("bio", "master weaver from Azilal")

	_, ok := c.Submit()
	require.True(t, ok)

	boom := errors.New("backend unavailable")
	c.Resolve(profile{}, boom)

	assert.Equal(t, Editing, c.Phase())
	assert.Equal(t, "Amina Z.", c.Value("name"), "draft survives a failed submit")
	assert.Equal(t, "master weaver from Azilal", c.Value("bio"))
	assert.Equal(t, "Amina", c.Committed().Name, "committed copy untouched on failure")
	assert.ErrorIs(t, c.Err(), boom)
}

func TestControllerCancelDiscardsDraft(t *testing.T) {
	c := newTestController()
	c.BeginEdit(map[string]string{"name": "Amina"})
	c.Set("name", "changed")

	require.True(t, c.Cancel())
	assert.Equal(t, Viewing, c.Phase())
	assert.Empty(t, c.Value("name"))
	assert.Equal(t, "Amina", c.Committed().Name)

	assert.False(t, c.Cancel(), "cancel outside Editing is a no-op")
}

func TestControllerBeginEditOnlyFromViewing(t *testing.T) {
	c := newTestController()
	require.True(t, c.BeginEdit(nil))
	assert.False(t, c.BeginEdit(nil))

	_, ok := c.Submit()
	require.False(t, ok, "empty required field")
	c.Set("name", "x")
	_, ok = c.Submit()
	require.True(t, ok)
	assert.False(t, c.BeginEdit(nil), "no re-entry while Submitting")
}

func TestControllerSetIgnoredOutsideEditing(t *testing.T) {
	c := newTestController()
	c.Set("name", "ghost")
	assert.Empty(t, c.Value("name"))
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "price", Message: "Price is required"},
	}
	assert.Equal(t, "name: Name is required; price: Price is required", errs.Error())
}
