package sheets

import (
	"strings"

	"dmthub/internal/models"
)

// Column binds one external header label to a typed setter. The mapping
// is data-driven: a column an operator renames in the sheet simply stops
// being imported, and nothing infers types from field-name conventions.
type Column struct {
	Header string
	Set    func(reg *models.Registration, raw string)
}

// Schema is the fixed lookup table from the registration sheet's header
// labels to dmt_data fields.
var Schema = []Column{
	{"Nama Tim", func(r *models.Registration, raw string) {
		if s := ParseString(raw); s != nil {
			r.NamaTim = *s
		}
	}},
	{"Ketua Tim", func(r *models.Registration, raw string) { r.KetuaTim = ParseString(raw) }},
	{"Contact Person", func(r *models.Registration, raw string) { r.ContactPerson = ParseString(raw) }},
	{"Email", func(r *models.Registration, raw string) { r.Email = ParseString(raw) }},
	{"No. Telepon", func(r *models.Registration, raw string) { r.Telepon = ParseString(raw) }},
	{"Institusi Asal", func(r *models.Registration, raw string) { r.InstitusiAsal = ParseString(raw) }},
	{"Jenis Layanan", func(r *models.Registration, raw string) { r.JenisLayanan = ParseString(raw) }},

	{"Kapasitas Rawat Jalan", func(r *models.Registration, raw string) { r.KapasitasRawatJalan, _ = ParseInt(raw) }},
	{"Kapasitas Rawat Inap", func(r *models.Registration, raw string) { r.KapasitasRawatInap, _ = ParseInt(raw) }},
	{"Kapasitas Bedah", func(r *models.Registration, raw string) { r.KapasitasBedah, _ = ParseInt(raw) }},
	{"Jumlah Dokter", func(r *models.Registration, raw string) { r.JumlahDokter, _ = ParseInt(raw) }},
	{"Jumlah Perawat", func(r *models.Registration, raw string) { r.JumlahPerawat, _ = ParseInt(raw) }},
	{"Jumlah Tenaga Lain", func(r *models.Registration, raw string) { r.JumlahTenagaLain, _ = ParseInt(raw) }},

	{"Tanggal Kedatangan", func(r *models.Registration, raw string) { r.TanggalKedatangan, _ = ParseDate(raw) }},
	{"Tanggal Pelayanan Dimulai", func(r *models.Registration, raw string) { r.TanggalPelayananDimulai, _ = ParseDate(raw) }},
	{"Tanggal Pelayanan Diakhiri", func(r *models.Registration, raw string) { r.TanggalPelayananDiakhiri, _ = ParseDate(raw) }},
	{"Rencana Tanggal Kepulangan", func(r *models.Registration, raw string) { r.RencanaTanggalKepulangan, _ = ParseDate(raw) }},
	{"Masa Penugasan (Hari)", func(r *models.Registration, raw string) { r.MasaPenugasanHari, _ = ParseInt(raw) }},
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// MapRows converts a fetched cell grid into registration rows. The first
// row is the header; columns are matched to the schema by label
// (case-insensitive). Rows without a team name are discarded.
func MapRows(vr *ValueRange, disasterID int64) []models.Registration {
	if vr == nil || len(vr.Values) < 2 {
		return nil
	}

	// column index -> schema entry
	byHeader := make(map[string]*Column, len(Schema))
	for i := range Schema {
		byHeader[normalizeHeader(Schema[i].Header)] = &Schema[i]
	}
	setters := make(map[int]*Column)
	for idx, cell := range vr.Values[0] {
		if col, ok := byHeader[normalizeHeader(CellString(cell))]; ok {
			setters[idx] = col
		}
	}

	regs := make([]models.Registration, 0, len(vr.Values)-1)
	for _, row := range vr.Values[1:] {
		reg := models.Registration{
			DisasterID: disasterID,
			Source:     models.RegistrationSourceSheet,
		}
		for idx, col := range setters {
			if idx < len(row) {
				col.Set(&reg, CellString(row[idx]))
			}
		}
		if reg.NamaTim == "" {
			continue
		}
		regs = append(regs, reg)
	}
	return regs
}
