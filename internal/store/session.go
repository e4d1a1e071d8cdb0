package store

import (
	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/parsererror"
	"fjacquet/recipe-book/internal/textutils"
)

// BeginEdit starts editing the recipe at index. It returns the editing session and
// the current recipe so the caller can pre-fill its form.
func (s *RecipeStore) BeginEdit(session models.EditSession, index int) (models.EditSession, models.Recipe, error) {
	if session.IsEditing() {
		return session, models.Recipe{}, parsererror.ErrEditInProgress
	}
	recipe, err := s.Get(index)
	if err != nil {
		return session, models.Recipe{}, err
	}

	s.logger.Debug("Edit started", logging.F(logging.FieldIndex, index), logging.F(logging.FieldRecipe, recipe.Name))
	return models.Editing(index, recipe.Name), recipe, nil
}

// SaveEdit replaces the recipe being edited. On success the returned session is
// idle; on failure the session is returned unchanged so the user can retry.
func (s *RecipeStore) SaveEdit(session models.EditSession, recipe models.Recipe) (models.EditSession, error) {
	if !session.IsEditing() {
		return session, parsererror.ErrNoActiveEdit
	}
	current, err := s.Get(session.Index)
	if err != nil || !textutils.EqualFold(current.Name, session.Name) {
		return session, parsererror.ErrStaleEdit
	}

	if err := s.Update(session.Index, recipe); err != nil {
		return session, err
	}
	return models.IdleSession(), nil
}

// CancelEdit abandons the edit in progress, if any.
func (s *RecipeStore) CancelEdit(session models.EditSession) models.EditSession {
	if session.IsEditing() {
		s.logger.Debug("Edit cancelled", logging.F(logging.FieldRecipe, session.Name))
	}
	return models.IdleSession()
}

// DeleteDuringEdit deletes name and ends any edit in progress, since deleting can
// shift the position the session points at.
func (s *RecipeStore) DeleteDuringEdit(session models.EditSession, name string) (models.EditSession, int, error) {
	removed, err := s.Delete(name)
	if err != nil {
		return session, 0, err
	}
	return s.CancelEdit(session), removed, nil
}
