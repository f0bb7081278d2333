package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/alexanderramin/planboard/internal/repository"
)

type boardService struct {
	store    repository.KVStore
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time

	tasks   []domain.Task
	weekly  []domain.WeeklyEvent
	monthly []domain.MonthlyEvent
	lastID  domain.ID

	filter domain.FilterMode
	query  string
	nav    planner.Navigator
	modal  *EventDraft
	drag   DragPayload
}

type BoardOption func(*boardService)

// WithClock replaces time.Now as the source of "today" and of fresh ids.
func WithClock(now func() time.Time) BoardOption {
	return func(s *boardService) { s.now = now }
}

// WithUnitOfWork makes Import write all collections in one transaction.
func WithUnitOfWork(uow db.UnitOfWork) BoardOption {
	return func(s *boardService) { s.uow = uow }
}

func WithObserver(obs UseCaseObserver) BoardOption {
	return func(s *boardService) { s.observer = useCaseObserverOrNoop([]UseCaseObserver{obs}) }
}

// NewBoardService creates an empty board over store. Call Load to pick up
// persisted state. The calendar starts on the clock's current month.
func NewBoardService(store repository.KVStore, opts ...BoardOption) BoardService {
	s := &boardService{
		store:    store,
		observer: NoopUseCaseObserver{},
		now:      time.Now,
		tasks:    []domain.Task{},
		weekly:   []domain.WeeklyEvent{},
		monthly:  []domain.MonthlyEvent{},
		filter:   domain.FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.nav = planner.NewNavigator(s.now())
	return s
}

func (s *boardService) Load(ctx context.Context) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "load", startedAt, err, fields) }()

	tasks, err := loadOrDegrade[domain.Task](ctx, s.store, repository.KeyTasks, fields)
	if err != nil {
		return err
	}
	weekly, err := loadOrDegrade[domain.WeeklyEvent](ctx, s.store, repository.KeyWeeklyEvents, fields)
	if err != nil {
		return err
	}
	monthly, err := loadOrDegrade[domain.MonthlyEvent](ctx, s.store, repository.KeyMonthlyEvents, fields)
	if err != nil {
		return err
	}

	s.replaceCollections(tasks, weekly, monthly)
	fields["tasks"] = len(tasks)
	fields["weekly_events"] = len(weekly)
	fields["monthly_events"] = len(monthly)
	return nil
}

// loadOrDegrade treats an unparseable collection as empty and records the
// key in fields. Store read failures are returned.
func loadOrDegrade[T any](ctx context.Context, store repository.KVStore, key string, fields map[string]any) ([]T, error) {
	items, err := repository.LoadCollection[T](ctx, store, key)
	if err == nil {
		return items, nil
	}
	if errors.Is(err, domain.ErrParseFailure) {
		fields["degraded_"+key] = err.Error()
		return []T{}, nil
	}
	return nil, fmt.Errorf("loading %s: %w", key, err)
}

func (s *boardService) replaceCollections(tasks []domain.Task, weekly []domain.WeeklyEvent, monthly []domain.MonthlyEvent) {
	s.tasks, s.weekly, s.monthly = tasks, weekly, monthly
	s.lastID = 0
	for _, t := range tasks {
		s.lastID = max(s.lastID, t.ID)
	}
	for _, e := range weekly {
		s.lastID = max(s.lastID, e.ID)
	}
	for _, e := range monthly {
		s.lastID = max(s.lastID, e.ID)
	}
	s.modal = nil
	s.drag = DragPayload{}
}

func (s *boardService) nextID() domain.ID {
	s.lastID = domain.NextID(s.now(), s.lastID)
	return s.lastID
}

func (s *boardService) Today() string {
	return domain.Today(s.now())
}

func (s *boardService) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (s *boardService) WeeklyEvents() []domain.WeeklyEvent {
	out := make([]domain.WeeklyEvent, len(s.weekly))
	for i, e := range s.weekly {
		out[i] = e
		out[i].Task = e.Task.Clone()
	}
	return out
}

func (s *boardService) MonthlyEvents() []domain.MonthlyEvent {
	return append([]domain.MonthlyEvent{}, s.monthly...)
}

func (s *boardService) TaskView() planner.TaskView {
	return planner.BuildTaskView(s.Tasks(), s.filter, s.query, s.Today())
}

func (s *boardService) WeekView() planner.WeekGrid {
	return planner.ProjectWeek(s.WeeklyEvents())
}

func (s *boardService) MonthView() planner.MonthView {
	return planner.ProjectMonth(s.nav, s.MonthlyEvents(), s.query)
}

func (s *boardService) Progress() planner.Progress {
	return planner.TodayProgress(s.tasks, s.Today())
}

func (s *boardService) Filter() domain.FilterMode { return s.filter }

func (s *boardService) SetFilter(mode domain.FilterMode) (planner.TaskView, error) {
	if !mode.IsValid() {
		return s.TaskView(), fmt.Errorf("%w: %q", domain.ErrInvalidFilter, mode)
	}
	s.filter = mode
	return s.TaskView(), nil
}

func (s *boardService) Query() string { return s.query }

// Search sets the query shared by the task list and the month calendar.
func (s *boardService) Search(query string) SearchResult {
	s.query = query
	return SearchResult{Tasks: s.TaskView(), Month: s.MonthView()}
}

func (s *boardService) Navigator() planner.Navigator { return s.nav }

func (s *boardService) SetMonth(nav planner.Navigator) planner.MonthView {
	s.nav = nav
	return s.MonthView()
}

func (s *boardService) NextMonth() planner.MonthView { return s.SetMonth(s.nav.Next()) }
func (s *boardService) PrevMonth() planner.MonthView { return s.SetMonth(s.nav.Prev()) }

func (s *boardService) CreateTask(ctx context.Context, in TaskInput) (view planner.TaskView, err error) {
	startedAt := time.Now()
	fields := map[string]any{"title": in.Title}
	defer func() { s.observe(ctx, "create-task", startedAt, err, fields) }()

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	task := domain.Task{
		ID:       s.nextID(),
		Title:    in.Title,
		Priority: priority,
		DueDate:  in.DueDate,
		Tags:     domain.ParseTags(in.Tags),
	}
	s.tasks = append(s.tasks, task)
	fields["id"] = task.ID.String()

	err = s.saveTasks(ctx)
	return s.TaskView(), err
}

func (s *boardService) DeleteTask(ctx context.Context, index int) (view planner.TaskView, err error) {
	startedAt := time.Now()
	defer func() { s.observe(ctx, "delete-task", startedAt, err, map[string]any{"index": index}) }()

	remaining, err := planner.RemoveAt(s.tasks, index)
	if err != nil {
		return s.TaskView(), err
	}
	s.tasks = remaining
	err = s.saveTasks(ctx)
	return s.TaskView(), err
}

func (s *boardService) ToggleTaskCompletion(ctx context.Context, index int, checked bool) (view planner.TaskView, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "toggle-task", startedAt, err, map[string]any{"index": index, "completed": checked})
	}()

	if err = s.checkTaskIndex(index); err != nil {
		return s.TaskView(), err
	}
	s.tasks[index].Completed = checked
	err = s.saveTasks(ctx)
	return s.TaskView(), err
}

func (s *boardService) RenameTaskInline(ctx context.Context, index int, title string) (view planner.TaskView, err error) {
	startedAt := time.Now()
	defer func() { s.observe(ctx, "rename-task", startedAt, err, map[string]any{"index": index}) }()

	if err = s.checkTaskIndex(index); err != nil {
		return s.TaskView(), err
	}
	s.tasks[index].Title = title
	err = s.saveTasks(ctx)
	return s.TaskView(), err
}

func (s *boardService) ReorderTask(ctx context.Context, from, to int) (view planner.TaskView, err error) {
	startedAt := time.Now()
	defer func() { s.observe(ctx, "reorder-task", startedAt, err, map[string]any{"from": from, "to": to}) }()

	reordered, err := planner.Reorder(s.tasks, from, to)
	if err != nil {
		return s.TaskView(), err
	}
	s.tasks = reordered
	err = s.saveTasks(ctx)
	return s.TaskView(), err
}

func (s *boardService) checkTaskIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: task %d of %d", domain.ErrIndexOutOfRange, index, len(s.tasks))
	}
	return nil
}

func (s *boardService) ScheduleWeeklyEvent(ctx context.Context, task domain.Task, day, slot string) (grid planner.WeekGrid, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "schedule-weekly", startedAt, err, map[string]any{"task_id": task.ID.String(), "day": day, "time": slot})
	}()

	if err = domain.ValidateSlot(day, slot); err != nil {
		return s.WeekView(), err
	}
	s.weekly = append(s.weekly, domain.NewWeeklyEvent(task, day, slot))
	err = s.saveWeekly(ctx)
	return s.WeekView(), err
}

// CreateOrUpdateMonthlyEvent replaces the event with editingID when it is
// set, keeping fields the input leaves nil. Otherwise it appends a new
// event with a fresh id.
func (s *boardService) CreateOrUpdateMonthlyEvent(ctx context.Context, editingID *domain.ID, in EventInput) (view planner.MonthView, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "save-monthly", startedAt, err, fields) }()
	s.modal = nil

	if editingID != nil && *editingID != 0 {
		fields["mode"] = "update"
		fields["id"] = editingID.String()
		i := s.monthlyIndex(*editingID)
		if i < 0 {
			return s.MonthView(), fmt.Errorf("monthly event %s: %w", editingID, domain.ErrLookupMiss)
		}
		s.monthly[i] = applyEventInput(s.monthly[i], in)
	} else {
		ev := applyEventInput(domain.MonthlyEvent{ID: s.nextID()}, in)
		fields["mode"] = "create"
		fields["id"] = ev.ID.String()
		s.monthly = append(s.monthly, ev)
	}
	err = s.saveMonthly(ctx)
	return s.MonthView(), err
}

func applyEventInput(ev domain.MonthlyEvent, in EventInput) domain.MonthlyEvent {
	if in.Title != nil {
		ev.Title = *in.Title
	}
	if in.StartDate != nil {
		ev.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		ev.EndDate = *in.EndDate
	}
	if in.Notes != nil {
		ev.Notes = *in.Notes
	}
	return ev
}

// RelocateMonthlyEvent moves an event to a single day. The id may be in
// any form ParseID accepts.
func (s *boardService) RelocateMonthlyEvent(ctx context.Context, eventID string, year int, month time.Month, day int) (view planner.MonthView, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "relocate-monthly", startedAt, err, map[string]any{"id": eventID, "year": year, "month": int(month), "day": day})
	}()

	nav := planner.NavigatorFor(year, month)
	if day < 1 || day > nav.DaysInMonth() {
		return s.MonthView(), fmt.Errorf("%w: day %d of %s", domain.ErrIndexOutOfRange, day, nav.Label())
	}
	i, err := s.monthlyIndexFor(eventID)
	if err != nil {
		return s.MonthView(), err
	}
	s.monthly[i].MoveTo(nav.DateOf(day))
	err = s.saveMonthly(ctx)
	return s.MonthView(), err
}

// FindEventByTitle returns the first event whose title equals title.
func (s *boardService) FindEventByTitle(title string) (domain.MonthlyEvent, error) {
	for _, ev := range s.monthly {
		if ev.Title == title {
			return ev, nil
		}
	}
	return domain.MonthlyEvent{}, fmt.Errorf("monthly event titled %q: %w", title, domain.ErrLookupMiss)
}

func (s *boardService) FindEventByID(id string) (domain.MonthlyEvent, error) {
	i, err := s.monthlyIndexFor(id)
	if err != nil {
		return domain.MonthlyEvent{}, err
	}
	return s.monthly[i], nil
}

func (s *boardService) monthlyIndexFor(raw string) (int, error) {
	id, err := domain.ParseID(raw)
	if err != nil {
		return -1, fmt.Errorf("monthly event %q: %w", raw, domain.ErrLookupMiss)
	}
	i := s.monthlyIndex(id)
	if i < 0 {
		return -1, fmt.Errorf("monthly event %s: %w", id, domain.ErrLookupMiss)
	}
	return i, nil
}

func (s *boardService) monthlyIndex(id domain.ID) int {
	for i, ev := range s.monthly {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

func (s *boardService) saveTasks(ctx context.Context) error {
	return wrapPersist(repository.KeyTasks, repository.SaveCollection(ctx, s.store, repository.KeyTasks, s.tasks))
}

func (s *boardService) saveWeekly(ctx context.Context) error {
	return wrapPersist(repository.KeyWeeklyEvents, repository.SaveCollection(ctx, s.store, repository.KeyWeeklyEvents, s.weekly))
}

func (s *boardService) saveMonthly(ctx context.Context) error {
	return wrapPersist(repository.KeyMonthlyEvents, repository.SaveCollection(ctx, s.store, repository.KeyMonthlyEvents, s.monthly))
}

func wrapPersist(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrPersist, key, err)
}
