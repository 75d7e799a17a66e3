package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/crm-api/internal/domain"
)

// rowScanner lo cumplen pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation 23503: la fila referencia (o es referenciada por) otra inexistente.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// validID un id que no es UUID no puede existir en la tabla. Se descarta antes de
// consultar: el error 22P02 de Postgres abortaría la transacción en curso.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// isAbsent la fila no existe: GetByID devuelve (nil, nil).
func isAbsent(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// writeErr traduce el error de una escritura: unicidad y llaves foráneas -> Conflict,
// resto envuelto con op.
func writeErr(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return domain.Duplicate(entity)
	}
	if isForeignKeyViolation(err) {
		return domain.Conflict(entity + " is linked to records that do not exist or still depend on it")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// parseEnum convierte el texto guardado en la columna al enum cerrado.
func parseEnum[T any](dst *T, raw string, parse func(string) (T, error)) error {
	v, err := parse(raw)
	if err != nil {
		return fmt.Errorf("valor de enum en base de datos: %w", err)
	}
	*dst = v
	return nil
}

// collect recorre rows aplicando scan; cierra rows siempre.
func collect[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]*T, error) {
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// prefixed califica una lista de columnas con el alias de tabla.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
