package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func intPtr(i int) *int { return &i }

func TestDerive_AllNilReturnsEmpty(t *testing.T) {
	got := Derive(time.Now(), ServiceWindow{})
	assert.Equal(t, "", got)
}

func TestDerive_ExplicitEndStrictlyAfter(t *testing.T) {
	end := datePtr(2025, time.March, 10)

	// On the end date itself the team is still active, not finished.
	today := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.Local)
	got := Derive(today, ServiceWindow{
		TanggalPelayananDimulai:  datePtr(2025, time.March, 1),
		TanggalPelayananDiakhiri: end,
	})
	assert.Equal(t, PenugasanAktif, got)

	// One day later it is finished.
	got = Derive(today.AddDate(0, 0, 1), ServiceWindow{
		TanggalPelayananDimulai:  datePtr(2025, time.March, 1),
		TanggalPelayananDiakhiri: end,
	})
	assert.Equal(t, PenugasanSelesai, got)
}

func TestDerive_ImpliedEndFromAssignmentLength(t *testing.T) {
	w := ServiceWindow{
		TanggalPelayananDimulai: datePtr(2025, time.March, 1),
		MasaPenugasanHari:       intPtr(14),
	}

	// D + N is still active, D + N + 1 is finished.
	assert.Equal(t, PenugasanAktif, Derive(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local), w))
	assert.Equal(t, PenugasanSelesai, Derive(time.Date(2025, time.March, 16, 0, 0, 0, 0, time.Local), w))
}

func TestDerive_ExplicitEndWinsOverImplied(t *testing.T) {
	// Implied end (Mar 8) already passed, but the explicit end is later.
	w := ServiceWindow{
		TanggalPelayananDimulai:  datePtr(2025, time.March, 1),
		TanggalPelayananDiakhiri: datePtr(2025, time.March, 20),
		MasaPenugasanHari:        intPtr(7),
	}
	assert.Equal(t, PenugasanAktif, Derive(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local), w))
}

func TestDerive_ActiveFromServiceStart(t *testing.T) {
	w := ServiceWindow{TanggalPelayananDimulai: datePtr(2025, time.March, 5)}

	assert.Equal(t, PenugasanAktif, Derive(time.Date(2025, time.March, 5, 8, 0, 0, 0, time.Local), w))
	assert.Equal(t, "", Derive(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.Local), w))
}

func TestDerive_BelumDatangBeforeArrival(t *testing.T) {
	w := ServiceWindow{TanggalKedatangan: datePtr(2025, time.April, 1)}

	assert.Equal(t, PenugasanBelumDatang, Derive(time.Date(2025, time.March, 28, 0, 0, 0, 0, time.Local), w))
	// Arrived but no service start yet: nothing derivable.
	assert.Equal(t, "", Derive(time.Date(2025, time.April, 2, 0, 0, 0, 0, time.Local), w))
}

func TestDerive_Total(t *testing.T) {
	// Every combination of set/unset inputs yields one of the known
	// values without panicking.
	dates := []*time.Time{nil, datePtr(2025, time.January, 10)}
	masas := []*int{nil, intPtr(5)}
	valid := map[string]bool{"": true, PenugasanBelumDatang: true, PenugasanAktif: true, PenugasanSelesai: true}

	for _, ked := range dates {
		for _, mulai := range dates {
			for _, akhir := range dates {
				for _, masa := range masas {
					got := Derive(time.Now(), ServiceWindow{
						TanggalKedatangan:        ked,
						TanggalPelayananDimulai:  mulai,
						TanggalPelayananDiakhiri: akhir,
						MasaPenugasanHari:        masa,
					})
					assert.True(t, valid[got], "unexpected status %q", got)
				}
			}
		}
	}
}

func TestIsValidPendaftaran(t *testing.T) {
	assert.True(t, IsValidPendaftaran(PendaftaranPending))
	assert.True(t, IsValidPendaftaran(PendaftaranApproved))
	assert.True(t, IsValidPendaftaran(PendaftaranRejected))
	assert.False(t, IsValidPendaftaran("Dibatalkan"))
	assert.False(t, IsValidPendaftaran(""))
}
