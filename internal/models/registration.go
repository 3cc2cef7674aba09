package models

import "time"

// Registration source channels. Sheet-scanned rows never carry an
// approval state; only form submissions go through the approval workflow.
const (
	RegistrationSourceForm  = "form"
	RegistrationSourceSheet = "sheet"
)

// Logistics attachment categories for RegistrationFile.
const (
	FileKategoriLogistikMedis = "logistik_medis"
	FileKategoriLogistikUmum  = "logistik_umum"
)

// Registration is one DMT row (dmt_data). Pointer fields are nullable in
// the source data; sheet-scanned rows regularly leave most of them empty.
type Registration struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	DisasterID int64  `json:"disaster_id" gorm:"not null;index"`
	Source     string `json:"source" gorm:"not null;default:'form'"`

	NamaTim       string  `json:"nama_tim" gorm:"not null"`
	KetuaTim      *string `json:"ketua_tim,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Telepon       *string `json:"telepon,omitempty"`
	InstitusiAsal *string `json:"institusi_asal,omitempty"`
	JenisLayanan  *string `json:"jenis_layanan,omitempty"`

	KapasitasRawatJalan *int `json:"kapasitas_rawat_jalan,omitempty"`
	KapasitasRawatInap  *int `json:"kapasitas_rawat_inap,omitempty"`
	KapasitasBedah      *int `json:"kapasitas_bedah,omitempty"`
	JumlahDokter        *int `json:"jumlah_dokter,omitempty"`
	JumlahPerawat       *int `json:"jumlah_perawat,omitempty"`
	JumlahTenagaLain    *int `json:"jumlah_tenaga_lain,omitempty"`

	TanggalKedatangan        *time.Time `json:"tanggal_kedatangan,omitempty"`
	TanggalPelayananDimulai  *time.Time `json:"tanggal_pelayanan_dimulai,omitempty"`
	TanggalPelayananDiakhiri *time.Time `json:"tanggal_pelayanan_diakhiri,omitempty"`
	RencanaTanggalKepulangan *time.Time `json:"rencana_tanggal_kepulangan,omitempty"`
	MasaPenugasanHari        *int       `json:"masa_penugasan_hari,omitempty"`

	SuratTugasPath *string `json:"surat_tugas_path,omitempty"`
	KredensialPath *string `json:"kredensial_path,omitempty"`
	DaftarNamaPath *string `json:"daftar_nama_path,omitempty"`

	StatusPendaftaran *string `json:"status_pendaftaran,omitempty" gorm:"index"`
	StatusPenugasan   *string `json:"status_penugasan,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Disaster *Disaster          `json:"disaster,omitempty" gorm:"foreignKey:DisasterID;constraint:OnDelete:CASCADE"`
	Files    []RegistrationFile `json:"files,omitempty" gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE"`
}

func (Registration) TableName() string {
	return "dmt_data"
}

// RegistrationFile is one logistics attachment uploaded with a public
// registration.
type RegistrationFile struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RegistrationID int64     `json:"registration_id" gorm:"not null;index"`
	Kategori       string    `json:"kategori" gorm:"not null"`
	Path           string    `json:"path" gorm:"not null"`
	OriginalName   string    `json:"original_name"`
	SizeBytes      int64     `json:"size_bytes"`
	CreatedAt      time.Time `json:"created_at"`
}

func (RegistrationFile) TableName() string {
	return "dmt_files"
}

// AttachmentPaths returns every stored file path referenced by the
// registration, for cascade deletion.
func (r *Registration) AttachmentPaths() []string {
	paths := make([]string, 0, len(r.Files)+3)
	for _, f := range r.Files {
		paths = append(paths, f.Path)
	}
	for _, p := range []*string{r.SuratTugasPath, r.KredensialPath, r.DaftarNamaPath} {
		if p != nil && *p != "" {
			paths = append(paths, *p)
		}
	}
	return paths
}
