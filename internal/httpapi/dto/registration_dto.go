package dto

import "dmthub/internal/models"

// PublicRegistrationForm: multipart fields of the self-service DMT
// registration form. File parts are read off the multipart form directly.
type PublicRegistrationForm struct {
	NamaTim       string  `form:"nama_tim" binding:"required"`
	KetuaTim      *string `form:"ketua_tim"`
	ContactPerson *string `form:"contact_person"`
	Email         *string `form:"email" binding:"omitempty,email"`
	Telepon       *string `form:"telepon"`
	InstitusiAsal *string `form:"institusi_asal"`
	JenisLayanan  *string `form:"jenis_layanan"`

	KapasitasRawatJalan *int `form:"kapasitas_rawat_jalan" binding:"omitempty,gte=0"`
	KapasitasRawatInap  *int `form:"kapasitas_rawat_inap" binding:"omitempty,gte=0"`
	KapasitasBedah      *int `form:"kapasitas_bedah" binding:"omitempty,gte=0"`
	JumlahDokter        *int `form:"jumlah_dokter" binding:"omitempty,gte=0"`
	JumlahPerawat       *int `form:"jumlah_perawat" binding:"omitempty,gte=0"`
	JumlahTenagaLain    *int `form:"jumlah_tenaga_lain" binding:"omitempty,gte=0"`

	TanggalKedatangan        *string `form:"tanggal_kedatangan"`
	TanggalPelayananDimulai  *string `form:"tanggal_pelayanan_dimulai"`
	TanggalPelayananDiakhiri *string `form:"tanggal_pelayanan_diakhiri"`
	RencanaTanggalKepulangan *string `form:"rencana_tanggal_kepulangan"`
	MasaPenugasanHari        *int    `form:"masa_penugasan_hari"`
}

// UpdateRegistrationStatusRequest: payload for the approval workflow
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required,pendaftaran"`
}

// RegistrationListResponse: paginated admin list
type RegistrationListResponse struct {
	Data     []models.Registration `json:"data"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}
