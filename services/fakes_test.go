package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/repository"
)

// callLog records the order of repository and cover-store calls across fakes.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) has(call string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range l.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (l *callLog) index(call string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, c := range l.calls {
		if c == call {
			return i
		}
	}
	return -1
}

type fakeGameRepo struct {
	log       *callLog
	games     map[uint]*models.Game
	nextID    uint
	updates   []repository.GameUpdate
	createErr error
	updateErr error
	deleteErr error
	getErr    error
}

func newFakeGameRepo(log *callLog) *fakeGameRepo {
	return &fakeGameRepo{log: log, games: map[uint]*models.Game{}, nextID: 1}
}

func (r *fakeGameRepo) put(g models.Game) *models.Game {
	if g.ID == 0 {
		g.ID = r.nextID
	}
	if g.ID >= r.nextID {
		r.nextID = g.ID + 1
	}
	r.games[g.ID] = &g
	return &g
}

func (r *fakeGameRepo) Create(ctx context.Context, game *models.Game) error {
	r.log.add("games.Create")
	if r.createErr != nil {
		return r.createErr
	}
	game.ID = r.nextID
	r.nextID++
	copied := *game
	r.games[game.ID] = &copied
	return nil
}

func (r *fakeGameRepo) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	r.log.add("games.GetByID %d", id)
	if r.getErr != nil {
		return nil, r.getErr
	}
	g, ok := r.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGameRepo) sorted(filter func(models.Game) bool) []models.Game {
	var out []models.Game
	for _, g := range r.games {
		if filter(*g) {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func (r *fakeGameRepo) ListAll(ctx context.Context) ([]models.Game, error) {
	return r.sorted(func(models.Game) bool { return true }), nil
}

func (r *fakeGameRepo) ListHighlighted(ctx context.Context) ([]models.Game, error) {
	return r.sorted(func(g models.Game) bool { return g.Highlighted }), nil
}

func (r *fakeGameRepo) Update(ctx context.Context, id uint, update repository.GameUpdate) error {
	r.log.add("games.Update %d", id)
	r.updates = append(r.updates, update)
	if r.updateErr != nil {
		return r.updateErr
	}
	g, ok := r.games[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.Title = update.Title
	g.Description = update.Description
	g.ReleaseDate = update.ReleaseDate
	g.Highlighted = update.Highlighted
	g.Image = update.Image
	g.GenreID = update.GenreID
	if update.EditorID != nil {
		g.EditorID = update.EditorID
	}
	return nil
}

func (r *fakeGameRepo) Delete(ctx context.Context, id uint) error {
	r.log.add("games.Delete %d", id)
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.games[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.games, id)
	return nil
}

type fakeGenreRepo struct {
	log       *callLog
	mu        sync.Mutex
	genres    map[uint]*models.Genre
	nextID    uint
	getErr    error
	createErr error
}

func newFakeGenreRepo(log *callLog, names ...string) *fakeGenreRepo {
	r := &fakeGenreRepo{log: log, genres: map[uint]*models.Genre{}, nextID: 1}
	for _, n := range names {
		r.genres[r.nextID] = &models.Genre{ID: r.nextID, Name: n}
		r.nextID++
	}
	return r
}

func (r *fakeGenreRepo) Create(ctx context.Context, genre *models.Genre) error {
	r.log.add("genres.Create %s", genre.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	genre.ID = r.nextID
	r.nextID++
	copied := *genre
	r.genres[genre.ID] = &copied
	return nil
}

func (r *fakeGenreRepo) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	r.log.add("genres.GetByID %d", id)
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.genres[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGenreRepo) GetWithGames(ctx context.Context, id uint) (*models.Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.genres[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	copied.Games = append([]models.Game(nil), g.Games...)
	return &copied, nil
}

func (r *fakeGenreRepo) ListAll(ctx context.Context) ([]models.Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Genre
	for _, g := range r.genres {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeGenreRepo) ListSummaries(ctx context.Context) ([]models.GenreSummary, error) {
	all, _ := r.ListAll(ctx)
	out := make([]models.GenreSummary, 0, len(all))
	for _, g := range all {
		out = append(out, models.GenreSummary{ID: g.ID, Name: g.Name, GameCount: int64(len(g.Games))})
	}
	return out, nil
}

func (r *fakeGenreRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.genres)), nil
}

type fakeEditorRepo struct {
	log     *callLog
	editors map[uint]*models.Editor
	nextID  uint
}

func newFakeEditorRepo(log *callLog, names ...string) *fakeEditorRepo {
	r := &fakeEditorRepo{log: log, editors: map[uint]*models.Editor{}, nextID: 1}
	for _, n := range names {
		r.editors[r.nextID] = &models.Editor{ID: r.nextID, Name: n}
		r.nextID++
	}
	return r
}

func (r *fakeEditorRepo) Create(ctx context.Context, editor *models.Editor) error {
	r.log.add("editors.Create %s", editor.Name)
	editor.ID = r.nextID
	r.nextID++
	copied := *editor
	r.editors[editor.ID] = &copied
	return nil
}

func (r *fakeEditorRepo) GetByID(ctx context.Context, id uint) (*models.Editor, error) {
	r.log.add("editors.GetByID %d", id)
	e, ok := r.editors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEditorRepo) GetWithGames(ctx context.Context, id uint) (*models.Editor, error) {
	e, ok := r.editors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	copied.Games = append([]models.Game(nil), e.Games...)
	return &copied, nil
}

func (r *fakeEditorRepo) ListAll(ctx context.Context) ([]models.Editor, error) {
	var out []models.Editor
	for _, e := range r.editors {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeEditorRepo) ListSummaries(ctx context.Context) ([]models.EditorSummary, error) {
	all, _ := r.ListAll(ctx)
	out := make([]models.EditorSummary, 0, len(all))
	for _, e := range all {
		out = append(out, models.EditorSummary{ID: e.ID, Name: e.Name, GameCount: int64(len(e.Games))})
	}
	return out, nil
}

func (r *fakeEditorRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.editors)), nil
}

func (r *fakeEditorRepo) Rename(ctx context.Context, id uint, name string) error {
	r.log.add("editors.Rename %d %s", id, name)
	e, ok := r.editors[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Name = name
	return nil
}

func (r *fakeEditorRepo) Delete(ctx context.Context, id uint) error {
	r.log.add("editors.Delete %d", id)
	if _, ok := r.editors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.editors, id)
	return nil
}

type fakeCovers struct {
	log       *callLog
	saved     []string
	deleted   []string
	next      int
	saveErr   error
	deleteErr error
}

func (c *fakeCovers) SaveCover(data io.Reader) (string, error) {
	if c.saveErr != nil {
		c.log.add("covers.Save failed")
		return "", c.saveErr
	}
	if _, err := io.ReadAll(data); err != nil {
		return "", err
	}
	c.next++
	p := fmt.Sprintf("/uploads/cover-%d.png", c.next)
	c.saved = append(c.saved, p)
	c.log.add("covers.Save %s", p)
	return p, nil
}

func (c *fakeCovers) DeleteCover(publicPath string) error {
	c.log.add("covers.Delete %s", publicPath)
	c.deleted = append(c.deleted, publicPath)
	return c.deleteErr
}

var errStorage = errors.New("disk on fire")
