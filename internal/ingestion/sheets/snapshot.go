package sheets

import (
	"context"
	"fmt"

	"dmthub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotWriter replaces a disaster's sheet-sourced registration rows
// with a fresh mirror of the spreadsheet. Delete and reinsert run in one
// transaction, so a concurrent reader sees either the old snapshot or the
// new one, never an empty table.
type SnapshotWriter struct {
	pool *pgxpool.Pool
}

func NewSnapshotWriter(pool *pgxpool.Pool) *SnapshotWriter {
	return &SnapshotWriter{pool: pool}
}

const snapshotInsert = `
	INSERT INTO dmt_data (
		disaster_id, source, nama_tim, ketua_tim, contact_person, email,
		telepon, institusi_asal, jenis_layanan,
		kapasitas_rawat_jalan, kapasitas_rawat_inap, kapasitas_bedah,
		jumlah_dokter, jumlah_perawat, jumlah_tenaga_lain,
		tanggal_kedatangan, tanggal_pelayanan_dimulai,
		tanggal_pelayanan_diakhiri, rencana_tanggal_kepulangan,
		masa_penugasan_hari, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, NOW(), NOW()
	)`

// Replace writes the new snapshot. Form-submitted rows are untouched;
// only the sheet channel is mirrored.
func (w *SnapshotWriter) Replace(ctx context.Context, disasterID int64, regs []models.Registration) error {
	tx, err := w.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM dmt_data WHERE disaster_id = $1 AND source = $2`,
		disasterID, models.RegistrationSourceSheet,
	); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	for i := range regs {
		r := &regs[i]
		if _, err := tx.Exec(ctx, snapshotInsert,
			disasterID,
			models.RegistrationSourceSheet,
			r.NamaTim,
			r.KetuaTim,
			r.ContactPerson,
			r.Email,
			r.Telepon,
			r.InstitusiAsal,
			r.JenisLayanan,
			r.KapasitasRawatJalan,
			r.KapasitasRawatInap,
			r.KapasitasBedah,
			r.JumlahDokter,
			r.JumlahPerawat,
			r.JumlahTenagaLain,
			r.TanggalKedatangan,
			r.TanggalPelayananDimulai,
			r.TanggalPelayananDiakhiri,
			r.RencanaTanggalKepulangan,
			r.MasaPenugasanHari,
		); err != nil {
			return fmt.Errorf("failed to insert row %q: %w", r.NamaTim, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
