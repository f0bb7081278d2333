package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

// OpenDayCell opens a create form pre-filled with the date of day in the
// displayed month.
func (s *boardService) OpenDayCell(day int) (EventDraft, error) {
	if day < 1 || day > s.nav.DaysInMonth() {
		return EventDraft{}, fmt.Errorf("%w: day %d of %s", domain.ErrIndexOutOfRange, day, s.nav.Label())
	}
	draft := EventDraft{StartDate: s.nav.DateOf(day)}
	s.modal = &draft
	return draft, nil
}

// OpenEventByTitle opens the first event whose title matches in edit mode.
// Two events sharing a title resolve to the earlier one; OpenEventByID
// addresses a specific event.
func (s *boardService) OpenEventByTitle(title string) (EventDraft, error) {
	ev, err := s.FindEventByTitle(title)
	if err != nil {
		return EventDraft{}, err
	}
	return s.openEdit(ev), nil
}

func (s *boardService) OpenEventByID(id string) (EventDraft, error) {
	ev, err := s.FindEventByID(id)
	if err != nil {
		return EventDraft{}, err
	}
	return s.openEdit(ev), nil
}

func (s *boardService) openEdit(ev domain.MonthlyEvent) EventDraft {
	draft := EventDraft{
		EditingID: ev.ID,
		Title:     ev.Title,
		StartDate: ev.StartDate,
		EndDate:   ev.EndDate,
		Notes:     ev.Notes,
	}
	s.modal = &draft
	return draft
}

func (s *boardService) Modal() (EventDraft, bool) {
	if s.modal == nil {
		return EventDraft{}, false
	}
	return *s.modal, true
}

// CloseModal discards the open form without touching any collection.
func (s *boardService) CloseModal() {
	s.modal = nil
}

// SaveModal submits the open form. Fields left nil in the input keep the
// draft's value. The form is closed whatever the outcome.
func (s *boardService) SaveModal(ctx context.Context, in EventInput) (planner.MonthView, error) {
	if s.modal == nil {
		return s.MonthView(), ErrModalClosed
	}
	draft := *s.modal
	s.modal = nil

	full := FullEventInput(draft.Title, draft.StartDate, draft.EndDate, draft.Notes)
	merged := EventInput{
		Title:     firstNonNil(in.Title, full.Title),
		StartDate: firstNonNil(in.StartDate, full.StartDate),
		EndDate:   firstNonNil(in.EndDate, full.EndDate),
		Notes:     firstNonNil(in.Notes, full.Notes),
	}
	var editing *domain.ID
	if draft.IsEdit() {
		editing = &draft.EditingID
	}
	return s.CreateOrUpdateMonthlyEvent(ctx, editing, merged)
}

func firstNonNil(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}
