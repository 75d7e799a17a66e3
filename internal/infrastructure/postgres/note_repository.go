package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo guarda el ParentRef como (parent_kind, parent_id).
type NoteRepo struct {
	q Querier
}

func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

const noteColumns = `id, content, parent_kind, parent_id, created_at, updated_at`

func scanNote(row rowScanner) (*entity.Note, error) {
	var n entity.Note
	var kind, parentID string
	if err := row.Scan(&n.ID, &n.Content, &kind, &parentID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	var k entity.ParentKind
	if err := parseEnum(&k, kind, entity.ParseParentKind); err != nil {
		return nil, err
	}
	parent, err := entity.NewParentRef(k, parentID)
	if err != nil {
		return nil, err
	}
	n.Parent = parent
	return &n, nil
}

func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	query := `
		INSERT INTO notes (` + noteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Content, n.Parent.Kind().String(), n.Parent.ID(), n.CreatedAt, n.UpdatedAt,
	)
	return writeErr("insert note", "Note", err)
}

func (r *NoteRepo) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	if !validID(id) {
		return nil, nil
	}
	n, err := scanNote(r.q.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (r *NoteRepo) List(ctx context.Context) ([]*entity.Note, error) {
	return r.list(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY created_at DESC`)
}

// ListByParent notas del padre, más recientes primero.
func (r *NoteRepo) ListByParent(ctx context.Context, parent entity.ParentRef) ([]*entity.Note, error) {
	if !validID(parent.ID()) {
		return []*entity.Note{}, nil
	}
	return r.list(ctx, `SELECT `+noteColumns+` FROM notes
		WHERE parent_kind = $1 AND parent_id = $2 ORDER BY created_at DESC`,
		parent.Kind().String(), parent.ID())
}

func (r *NoteRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Note, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	list, err := collect(rows, scanNote)
	if err != nil {
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return list, nil
}

// Update solo el contenido; el padre no cambia.
func (r *NoteRepo) Update(ctx context.Context, n *entity.Note) error {
	_, err := r.q.Exec(ctx, `UPDATE notes SET content = $2, updated_at = $3 WHERE id = $1`,
		n.ID, n.Content, n.UpdatedAt)
	return writeErr("update note", "Note", err)
}

func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	return writeErr("delete note", "Note", err)
}
