package status

import "time"

// Registration approval states (status_pendaftaran).
const (
	PendaftaranPending  = "pending"
	PendaftaranApproved = "approved"
	PendaftaranRejected = "rejected"
)

// Operational states (status_penugasan). The first three are derived from
// the service window; the last two are fixed literals written by the
// approval workflow.
const (
	PenugasanBelumDatang = "Belum Datang"
	PenugasanAktif       = "Aktif"
	PenugasanSelesai     = "Selesai"
	PenugasanPending     = "Pending"
	PenugasanDibatalkan  = "Dibatalkan"
)

// IsValidPendaftaran reports whether s is a known approval state.
func IsValidPendaftaran(s string) bool {
	switch s {
	case PendaftaranPending, PendaftaranApproved, PendaftaranRejected:
		return true
	default:
		return false
	}
}

// ServiceWindow carries the date fields a registration derives its
// operational status from. Nil means the field was never filled in.
type ServiceWindow struct {
	TanggalKedatangan        *time.Time // arrival
	TanggalPelayananDimulai  *time.Time // service start
	TanggalPelayananDiakhiri *time.Time // service end
	MasaPenugasanHari        *int       // assignment length in days
}

// Derive computes the operational status for a service window as of the
// given day. It returns "" when no usable date is present; the caller
// decides the fallback (the stored snapshot, or Aktif at approval time).
//
// The end boundary is strictly-after: on the end date itself the team is
// still Aktif. An explicit end date always wins over the end implied by
// start + assignment length. Comparisons are date-only in today's
// location; time-of-day on the inputs is ignored.
func Derive(today time.Time, w ServiceWindow) string {
	d := dateOnly(today)

	if w.TanggalPelayananDiakhiri != nil && d.After(dateOnly(*w.TanggalPelayananDiakhiri)) {
		return PenugasanSelesai
	}

	if w.TanggalPelayananDimulai != nil {
		start := dateOnly(*w.TanggalPelayananDimulai)
		if w.TanggalPelayananDiakhiri == nil && w.MasaPenugasanHari != nil {
			implied := start.AddDate(0, 0, *w.MasaPenugasanHari)
			if d.After(implied) {
				return PenugasanSelesai
			}
		}
		if !d.Before(start) {
			return PenugasanAktif
		}
	}

	if w.TanggalKedatangan != nil && d.Before(dateOnly(*w.TanggalKedatangan)) {
		return PenugasanBelumDatang
	}

	return ""
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
