// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError menerjemahkan error Postgres (pgx/libpq) ke status + pesan HTTP.
// 23P01 = exclusion violation (bentrok jadwal), 23503 = FK, 23505 = unique.
func MapPGError(err error) (int, string) {
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return mapPGCode(pgxErr.Code, pgxErr.Message)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return mapPGCode(string(pqErr.Code), pqErr.Error())
	}
	return http.StatusInternalServerError, err.Error()
}

func mapPGCode(code, raw string) (int, string) {
	switch code {
	case "23P01":
		return http.StatusConflict, "Bentrok jadwal: rentang waktu tumpang tindih."
	case "23503":
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case "23505":
		return http.StatusConflict, "Data duplikat (unique violation)."
	default:
		return http.StatusInternalServerError, raw
	}
}

// WritePGError menulis hasil MapPGError sebagai JSON error standar.
func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}

// FromFiberError mengubah error hasil Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten. Jika bukan *fiber.Error, coba mapping PG,
// fallback 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return WritePGError(c, err)
}
