package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CreateNoteRequest la nota se adjunta a exactamente un padre (parentType + parentId).
type CreateNoteRequest struct {
	Content    string            `json:"content" validate:"required"`
	ParentType entity.ParentKind `json:"parentType" validate:"required,enum" swaggertype:"string" enums:"Customer,Lead,Ticket,Sale,Task"`
	ParentID   string            `json:"parentId" validate:"required"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type NoteResponse struct {
	ID         string            `json:"id"`
	Content    string            `json:"content"`
	ParentType entity.ParentKind `json:"parentType" swaggertype:"string"`
	ParentID   string            `json:"parentId"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  *time.Time        `json:"updatedAt,omitempty"`
}
